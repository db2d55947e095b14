package folio

import "context"

// Counter contador atómico externo por clave de tipo de documento.
// Increment debe ser una sola operación atómica de ida y vuelta en el almacén.
type Counter interface {
	Current(ctx context.Context, key string) (int64, error)
	Increment(ctx context.Context, key string) (int64, error)
}
