package repository

import (
	"context"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

// PredicateOp operador de un predicado de consulta.
type PredicateOp string

const (
	OpEq    PredicateOp = "eq"
	OpILike PredicateOp = "ilike" // subcadena sin distinguir mayúsculas
)

// Predicate condición sobre un campo buscable.
type Predicate struct {
	Field entity.FieldType
	Op    PredicateOp
	Value string
}

// PredicateGroup predicados unidos con OR. Los grupos de una consulta se unen con AND.
type PredicateGroup []Predicate

// MuebleQuery consulta paginada al almacén.
type MuebleQuery struct {
	Where   []PredicateGroup
	OrderBy string // campo de ordenamiento (FieldType o columna extra)
	Desc    bool
	Limit   int
	Offset  int
}

// MuebleRepository puerto del origen de datos de muebles.
type MuebleRepository interface {
	// Query devuelve la página pedida y el total de filas que cumplen la consulta.
	Query(ctx context.Context, q MuebleQuery) ([]*entity.Mueble, int, error)
	// Update aplica una actualización parcial (reasignación de área o director).
	Update(ctx context.Context, id int64, patch entity.MueblePatch) error
}
