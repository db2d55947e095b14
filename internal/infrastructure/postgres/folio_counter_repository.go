package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Resguardos-api/internal/domain/repository"
)

var _ repository.FolioCounterRepository = (*FolioCounterRepo)(nil)

// FolioCounterRepo contador de folios en la tabla folios (una fila por clave).
type FolioCounterRepo struct {
	q Querier
}

// NewFolioCounterRepository construye el adaptador.
func NewFolioCounterRepository(q Querier) *FolioCounterRepo {
	return &FolioCounterRepo{q: q}
}

// Current lee el último valor asignado sin bloquear ni modificar la fila.
func (r *FolioCounterRepo) Current(ctx context.Context, key string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT valor FROM folios WHERE clave = $1`, key).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("leer folio %s: %w", key, err)
	}
	return n, nil
}

// Increment crea la clave en 1 o suma 1 en una sola sentencia; el bloqueo de fila de Postgres
// serializa a los llamadores concurrentes.
func (r *FolioCounterRepo) Increment(ctx context.Context, key string) (int64, error) {
	const q = `
		INSERT INTO folios (clave, valor, updated_at) VALUES ($1, 1, now())
		ON CONFLICT (clave) DO UPDATE SET valor = folios.valor + 1, updated_at = now()
		RETURNING valor`
	var n int64
	if err := r.q.QueryRow(ctx, q, key).Scan(&n); err != nil {
		return 0, fmt.Errorf("incrementar folio %s: %w", key, err)
	}
	return n, nil
}
