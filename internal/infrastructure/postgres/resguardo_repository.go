package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Resguardos-api/internal/domain"
	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/repository"
)

var _ repository.ResguardoRepository = (*ResguardoRepo)(nil)

// ResguardoRepo persiste cabecera y líneas del resguardo en una sola transacción.
type ResguardoRepo struct {
	pool Querier
	tx   *TxRunner
}

// NewResguardoRepository construye el adaptador.
func NewResguardoRepository(pool Querier, tx *TxRunner) *ResguardoRepo {
	return &ResguardoRepo{pool: pool, tx: tx}
}

// Create inserta la cabecera y envía las líneas en un batch dentro de la misma transacción.
func (r *ResguardoRepo) Create(ctx context.Context, res *entity.Resguardo) error {
	return r.tx.Run(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO resguardos (id, folio, director, area, puesto, resguardante, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			res.ID, res.Folio, res.Director, res.Area, res.Puesto, res.Custodian, res.CreatedBy, res.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert resguardo: %w", err)
		}

		batch := &pgx.Batch{}
		for i, it := range res.Items {
			batch.Queue(`
				INSERT INTO resguardo_items (resguardo_id, posicion, mueble_id, id_inv, descripcion, estado, origen)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				res.ID, i+1, it.MuebleID, it.InventoryCode, it.Description, it.Condition, it.Origin,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert resguardo_items: %w", err)
		}
		return nil
	})
}

// GetByFolio devuelve nil, nil si no existe.
func (r *ResguardoRepo) GetByFolio(ctx context.Context, folio string) (*entity.Resguardo, error) {
	var res entity.Resguardo
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, folio, director, area, puesto, resguardante, created_by, created_at
		FROM resguardos WHERE folio = $1`, folio,
	).Scan(&res.ID, &res.Folio, &res.Director, &res.Area, &res.Puesto, &res.Custodian, &res.CreatedBy, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resguardo: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT mueble_id, id_inv, descripcion, estado, origen
		FROM resguardo_items WHERE resguardo_id = $1 ORDER BY posicion`, res.ID)
	if err != nil {
		return nil, fmt.Errorf("list resguardo_items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.ResguardoItem
		if err := rows.Scan(&it.MuebleID, &it.InventoryCode, &it.Description, &it.Condition, &it.Origin); err != nil {
			return nil, fmt.Errorf("scan resguardo_item: %w", err)
		}
		res.Items = append(res.Items, it)
	}
	return &res, rows.Err()
}
