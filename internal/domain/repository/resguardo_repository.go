package repository

import (
	"context"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

// ResguardoRepository persistencia de resguardos (cabecera y líneas en una transacción).
type ResguardoRepository interface {
	Create(ctx context.Context, r *entity.Resguardo) error
	// GetByFolio devuelve nil, nil si no existe.
	GetByFolio(ctx context.Context, folio string) (*entity.Resguardo, error)
}
