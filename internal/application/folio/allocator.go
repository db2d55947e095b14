// Package folio asigna folios consecutivos de resguardo sobre un contador compartido del servidor.
package folio

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Resguardos-api/internal/domain"
	domfolio "github.com/jhoicas/Resguardos-api/internal/domain/folio"
	"github.com/jhoicas/Resguardos-api/pkg/logger"
)

// Format prefijo y ancho por clave de contador.
type Format struct {
	Prefix string
	Width  int
}

// Allocator separa la lectura de vista previa (no consume) de la asignación (consume).
type Allocator struct {
	counter  Counter
	formats  map[string]Format
	fallback Format
	log      *logger.Logger
	onAlloc  func(key string)
}

// NewAllocator construye el asignador. fallback aplica a claves sin formato propio.
func NewAllocator(counter Counter, fallback Format, log *logger.Logger) *Allocator {
	return &Allocator{
		counter:  counter,
		formats:  make(map[string]Format),
		fallback: fallback,
		log:      log,
	}
}

// WithFormat registra el formato de una clave de contador.
func (a *Allocator) WithFormat(key string, f Format) *Allocator {
	a.formats[strings.ToUpper(key)] = f
	return a
}

// OnAllocate registra un callback invocado tras cada asignación exitosa (métricas).
func (a *Allocator) OnAllocate(fn func(key string)) *Allocator {
	a.onAlloc = fn
	return a
}

// Preview devuelve el folio que se asignaría a continuación, sin modificar el contador.
func (a *Allocator) Preview(ctx context.Context, key string) (string, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return "", err
	}
	n, err := a.counter.Current(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: leer contador %s: %v", domain.ErrStoreUnavailable, key, err)
	}
	f := a.format(key)
	return domfolio.Format(f.Prefix, f.Width, n+1), nil
}

// Allocate incrementa el contador de forma atómica y devuelve el folio reservado.
// Si el almacén falla no se inventa un folio local: se devuelve ErrFolioUnavailable.
func (a *Allocator) Allocate(ctx context.Context, key string) (string, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return "", err
	}
	n, err := a.counter.Increment(ctx, key)
	if err != nil {
		if a.log != nil {
			a.log.Error().Err(err).Str("counter", key).Msg("asignación de folio fallida")
		}
		return "", fmt.Errorf("%w: %v", domain.ErrFolioUnavailable, err)
	}
	f := a.format(key)
	folio := domfolio.Format(f.Prefix, f.Width, n)
	if a.log != nil {
		a.log.Info().Str("counter", key).Str("folio", folio).Msg("folio asignado")
	}
	if a.onAlloc != nil {
		a.onAlloc(key)
	}
	return folio, nil
}

func (a *Allocator) format(key string) Format {
	if f, ok := a.formats[key]; ok {
		return f
	}
	f := a.fallback
	if f.Prefix == "" {
		f.Prefix = key
	}
	return f
}

func normalizeKey(key string) (string, error) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if key == "" {
		return "", domain.ErrInvalidInput
	}
	return key, nil
}
