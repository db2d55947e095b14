package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Resguardos-api/internal/application/dto"
	"github.com/jhoicas/Resguardos-api/internal/domain"
	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/repository"
	"github.com/jhoicas/Resguardos-api/internal/domain/search"
	"github.com/jhoicas/Resguardos-api/pkg/logger"
)

// Snapshot instantánea inmutable de la colección de muebles y de los catálogos de referencia.
// Las sesiones la leen sin copiarla; nadie la modifica después de publicarla.
type Snapshot struct {
	Version      uint64
	LoadedAt     time.Time
	Records      []*entity.Mueble
	Index        *search.Index // campos de las pantallas de inventario
	UnifiedIndex *search.Index // incluye origen
	Directory    entity.Directory
	byID         map[int64]*entity.Mueble
}

func newSnapshot(version uint64, records []*entity.Mueble, dir entity.Directory) *Snapshot {
	byID := make(map[int64]*entity.Mueble, len(records))
	for _, m := range records {
		byID[m.ID] = m
	}
	return &Snapshot{
		Version:      version,
		LoadedAt:     time.Now(),
		Records:      records,
		Index:        search.BuildIndex(records, search.DefaultFields),
		UnifiedIndex: search.BuildIndex(records, search.UnifiedFields),
		Directory:    dir,
		byID:         byID,
	}
}

// Mueble busca un mueble de la instantánea por ID.
func (s *Snapshot) Mueble(id int64) (*entity.Mueble, bool) {
	m, ok := s.byID[id]
	return m, ok
}

// CatalogUseCase mantiene la instantánea de muebles usada por el omnibox y la selección,
// y expone las consultas y actualizaciones directas contra el almacén.
type CatalogUseCase struct {
	muebles   repository.MuebleRepository
	directory repository.DirectoryRepository
	batchSize int
	log       *logger.Logger
	refresh   *search.Debouncer
	onLoad    func(records int, err error)

	mu   sync.RWMutex
	snap *Snapshot
}

// NewCatalogUseCase construye el caso de uso. refreshDelay agrupa pedidos de refresco seguidos en una sola carga.
func NewCatalogUseCase(
	muebles repository.MuebleRepository,
	directory repository.DirectoryRepository,
	batchSize int,
	refreshDelay time.Duration,
	log *logger.Logger,
) *CatalogUseCase {
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &CatalogUseCase{
		muebles:   muebles,
		directory: directory,
		batchSize: batchSize,
		log:       log.Component("catalog"),
		refresh:   search.NewDebouncer(refreshDelay),
		snap:      newSnapshot(0, nil, entity.Directory{}),
	}
}

// OnLoad registra un callback invocado después de cada carga, exitosa o no.
func (uc *CatalogUseCase) OnLoad(fn func(records int, err error)) *CatalogUseCase {
	uc.onLoad = fn
	return uc
}

// Snapshot devuelve la instantánea vigente (vacía, versión 0, antes de la primera carga).
func (uc *CatalogUseCase) Snapshot() *Snapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snap
}

// Load lee la colección completa y los catálogos de referencia en paralelo y publica una nueva instantánea.
// Si algo falla la instantánea anterior sigue vigente.
func (uc *CatalogUseCase) Load(ctx context.Context) error {
	var (
		records []*entity.Mueble
		dir     entity.Directory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = uc.fetchAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dir.Directors, err = uc.directory.ListDirectors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dir.Areas, err = uc.directory.ListAreas(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dir.Relations, err = uc.directory.ListDirectorAreas(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if uc.onLoad != nil {
			uc.onLoad(0, err)
		}
		return fmt.Errorf("%w: cargar catálogo: %v", domain.ErrStoreUnavailable, err)
	}

	uc.mu.Lock()
	snap := newSnapshot(uc.snap.Version+1, records, dir)
	uc.snap = snap
	uc.mu.Unlock()

	uc.log.Info().
		Uint64("version", snap.Version).
		Int("muebles", len(records)).
		Int("directores", len(dir.Directors)).
		Msg("catálogo cargado")
	if uc.onLoad != nil {
		uc.onLoad(len(records), nil)
	}
	return nil
}

func (uc *CatalogUseCase) fetchAll(ctx context.Context) ([]*entity.Mueble, error) {
	var all []*entity.Mueble
	for offset := 0; ; offset += uc.batchSize {
		page, total, err := uc.muebles.Query(ctx, repository.MuebleQuery{
			OrderBy: string(search.SortByRecordID),
			Limit:   uc.batchSize,
			Offset:  offset,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < uc.batchSize || len(all) >= total {
			return all, nil
		}
	}
}

// RequestRefresh programa una recarga; varias solicitudes seguidas producen una sola.
func (uc *CatalogUseCase) RequestRefresh() {
	uc.refresh.Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := uc.Load(ctx); err != nil {
			uc.log.Error().Err(err).Msg("refresco del catálogo")
		}
	})
}

// Close cancela un refresco pendiente.
func (uc *CatalogUseCase) Close() {
	uc.refresh.Stop()
}

// List consulta el almacén directamente (filtros, orden y paginación del lado del servidor).
func (uc *CatalogUseCase) List(ctx context.Context, in dto.MuebleListRequest) (*dto.MuebleListResponse, error) {
	in.Page.DefaultPage()
	q := repository.MuebleQuery{
		OrderBy: in.Sort,
		Desc:    in.Desc,
		Limit:   in.Page.Limit,
		Offset:  in.Page.Offset,
	}
	if q.OrderBy == "" {
		q.OrderBy = string(search.SortByInventoryCode)
	}
	if !search.SortField(q.OrderBy).Valid() {
		return nil, fmt.Errorf("%w: orden %q", domain.ErrInvalidInput, q.OrderBy)
	}
	for _, f := range in.All {
		p, err := toPredicate(f)
		if err != nil {
			return nil, err
		}
		q.Where = append(q.Where, repository.PredicateGroup{p})
	}
	if len(in.Any) > 0 {
		group := make(repository.PredicateGroup, 0, len(in.Any))
		for _, f := range in.Any {
			p, err := toPredicate(f)
			if err != nil {
				return nil, err
			}
			group = append(group, p)
		}
		q.Where = append(q.Where, group)
	}

	rows, total, err := uc.muebles.Query(ctx, q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &dto.MuebleListResponse{
		Items: toMuebleList(rows),
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

func toPredicate(f dto.FilterRequest) (repository.Predicate, error) {
	t := entity.FieldType(f.Field)
	if !t.Valid() || strings.TrimSpace(f.Value) == "" {
		return repository.Predicate{}, domain.ErrInvalidInput
	}
	op := repository.OpILike
	if f.Op == string(repository.OpEq) {
		op = repository.OpEq
	}
	return repository.Predicate{Field: t, Op: op, Value: strings.TrimSpace(f.Value)}, nil
}

// Reassign cambia área y/o responsable de varios muebles mediante actualizaciones parciales
// y agenda un refresco de la instantánea. Se detiene en el primer error.
func (uc *CatalogUseCase) Reassign(ctx context.Context, in dto.ReassignRequest) (*dto.ReassignResponse, error) {
	patch := entity.MueblePatch{ResponsibleParty: in.ResponsibleParty}
	switch {
	case in.AreaID != nil:
		area, ok := uc.Snapshot().Directory.AreaByID(*in.AreaID)
		if !ok {
			return nil, domain.ErrNotFound
		}
		id := area.ID
		patch.Area = &entity.AreaRef{ID: &id, Name: area.Name}
	case in.AreaName != nil && strings.TrimSpace(*in.AreaName) != "":
		patch.Area = &entity.AreaRef{Name: strings.TrimSpace(*in.AreaName)}
	}
	if patch.Empty() || len(in.MuebleIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	out := &dto.ReassignResponse{}
	if patch.ResponsibleParty != nil && patch.Area != nil && patch.Area.ID != nil {
		dir := uc.Snapshot().Directory
		if d, ok := dir.DirectorByName(*patch.ResponsibleParty); ok && !dir.Manages(d.ID, *patch.Area.ID) {
			for _, a := range dir.AreasOf(d.ID) {
				out.DirectorAreas = append(out.DirectorAreas, a.Name)
			}
			uc.log.Warn().Str("director", d.Name).Str("area", patch.Area.Name).
				Strs("asignadas", out.DirectorAreas).Msg("el director no tiene asignada el área")
		}
	}

	for _, id := range in.MuebleIDs {
		if err := uc.muebles.Update(ctx, id, patch); err != nil {
			uc.RequestRefresh()
			if errors.Is(err, domain.ErrNotFound) {
				return out, fmt.Errorf("mueble %d: %w", id, err)
			}
			return out, fmt.Errorf("%w: actualizar mueble %d: %v", domain.ErrStoreUnavailable, id, err)
		}
		out.Updated++
	}
	uc.RequestRefresh()
	return out, nil
}
