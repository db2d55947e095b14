package repository

import (
	"context"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

// DirectoryRepository catálogos de referencia: directores, áreas y su relación.
// Se devuelven planos; la unión se hace en memoria.
type DirectoryRepository interface {
	ListDirectors(ctx context.Context) ([]entity.Director, error)
	ListAreas(ctx context.Context) ([]entity.Area, error)
	ListDirectorAreas(ctx context.Context) ([]entity.DirectorArea, error)
}
