package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrSessionNotFound  = errors.New("sesión no encontrada")
	ErrEmptySelection   = errors.New("no hay muebles seleccionados")
	ErrFolioUnavailable = errors.New("no se pudo asignar el folio")
	ErrStoreUnavailable = errors.New("origen de datos no disponible")
)
