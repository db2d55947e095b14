package repository

import "context"

// FolioCounterRepository contador atómico compartido por clave de documento.
type FolioCounterRepository interface {
	// Current devuelve el último valor asignado (0 si la clave no existe). No modifica nada.
	Current(ctx context.Context, key string) (int64, error)
	// Increment suma 1 en una sola operación atómica y devuelve el nuevo valor.
	Increment(ctx context.Context, key string) (int64, error)
}
