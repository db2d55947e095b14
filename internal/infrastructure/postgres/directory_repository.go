package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/repository"
)

var _ repository.DirectoryRepository = (*DirectoryRepo)(nil)

// DirectoryRepo catálogos de directorio y áreas.
type DirectoryRepo struct {
	q Querier
}

// NewDirectoryRepository construye el adaptador.
func NewDirectoryRepository(q Querier) *DirectoryRepo {
	return &DirectoryRepo{q: q}
}

func (r *DirectoryRepo) ListDirectors(ctx context.Context) ([]entity.Director, error) {
	rows, err := r.q.Query(ctx, `SELECT id_directorio, nombre, COALESCE(puesto, '') FROM directorio ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list directorio: %w", err)
	}
	defer rows.Close()
	var list []entity.Director
	for rows.Next() {
		var d entity.Director
		if err := rows.Scan(&d.ID, &d.Name, &d.Position); err != nil {
			return nil, fmt.Errorf("scan directorio: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *DirectoryRepo) ListAreas(ctx context.Context) ([]entity.Area, error) {
	rows, err := r.q.Query(ctx, `SELECT id_area, nombre FROM areas ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()
	var list []entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *DirectoryRepo) ListDirectorAreas(ctx context.Context) ([]entity.DirectorArea, error) {
	rows, err := r.q.Query(ctx, `SELECT id_directorio, id_area FROM directorio_areas`)
	if err != nil {
		return nil, fmt.Errorf("list directorio_areas: %w", err)
	}
	defer rows.Close()
	var list []entity.DirectorArea
	for rows.Next() {
		var rel entity.DirectorArea
		if err := rows.Scan(&rel.DirectorID, &rel.AreaID); err != nil {
			return nil, fmt.Errorf("scan directorio_areas: %w", err)
		}
		list = append(list, rel)
	}
	return list, rows.Err()
}
