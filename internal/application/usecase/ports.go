package usecase

import (
	"context"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

// ResguardoPDFGenerator genera el documento imprimible de un resguardo.
type ResguardoPDFGenerator interface {
	GenerateResguardoPDF(ctx context.Context, r *entity.Resguardo) ([]byte, error)
}

// Observer recibe eventos de negocio para métricas. Las implementaciones no deben bloquear.
type Observer interface {
	SearchPerformed(op string)
	SelectionConflict(kind string)
	ResguardoCreated()
}

type nopObserver struct{}

func (nopObserver) SearchPerformed(string)   {}
func (nopObserver) SelectionConflict(string) {}
func (nopObserver) ResguardoCreated()        {}
