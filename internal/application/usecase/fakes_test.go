package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Resguardos-api/internal/application/folio"
	"github.com/jhoicas/Resguardos-api/internal/application/usecase"
	"github.com/jhoicas/Resguardos-api/internal/domain"
	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/repository"
	"github.com/jhoicas/Resguardos-api/internal/domain/search"
	"github.com/jhoicas/Resguardos-api/pkg/logger"
)

// ── muebles ───────────────────────────────────────────────────────────────────

type fakeMuebles struct {
	mu       sync.Mutex
	rows     []*entity.Mueble
	queryErr error
	queries  []repository.MuebleQuery
}

func (f *fakeMuebles) Query(_ context.Context, q repository.MuebleQuery) ([]*entity.Mueble, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.queryErr != nil {
		return nil, 0, f.queryErr
	}
	var matched []*entity.Mueble
	for _, m := range f.rows {
		if matchGroups(m, q.Where) {
			matched = append(matched, m)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := len(matched)
	if q.Offset >= len(matched) {
		return []*entity.Mueble{}, total, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

func matchGroups(m *entity.Mueble, groups []repository.PredicateGroup) bool {
	for _, g := range groups {
		ok := false
		for _, p := range g {
			v, has := search.FieldValue(m, p.Field)
			if !has {
				continue
			}
			if p.Op == repository.OpEq && v == p.Value ||
				p.Op != repository.OpEq && strings.Contains(strings.ToLower(v), strings.ToLower(p.Value)) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// Update reemplaza la fila por una copia para no mutar la instantánea publicada.
func (f *fakeMuebles) Update(_ context.Context, id int64, patch entity.MueblePatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.rows {
		if m.ID != id {
			continue
		}
		cp := *m
		if patch.Area != nil {
			a := *patch.Area
			cp.Area = &a
		}
		if patch.ResponsibleParty != nil {
			cp.ResponsibleParty = entity.StrPtr(*patch.ResponsibleParty)
		}
		if patch.Custodian != nil {
			cp.Custodian = entity.StrPtr(*patch.Custodian)
		}
		f.rows[i] = &cp
		return nil
	}
	return domain.ErrNotFound
}

func (f *fakeMuebles) remove(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.rows {
		if m.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return
		}
	}
}

func (f *fakeMuebles) get(id int64) *entity.Mueble {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.rows {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// ── directorio ────────────────────────────────────────────────────────────────

type fakeDirectory struct {
	dir entity.Directory
	err error
}

func (f *fakeDirectory) ListDirectors(context.Context) ([]entity.Director, error) {
	return f.dir.Directors, f.err
}
func (f *fakeDirectory) ListAreas(context.Context) ([]entity.Area, error) { return f.dir.Areas, f.err }
func (f *fakeDirectory) ListDirectorAreas(context.Context) ([]entity.DirectorArea, error) {
	return f.dir.Relations, f.err
}

// ── resguardos ────────────────────────────────────────────────────────────────

type fakeResguardos struct {
	mu      sync.Mutex
	byFolio map[string]*entity.Resguardo
	err     error
}

func (f *fakeResguardos) Create(_ context.Context, r *entity.Resguardo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, dup := f.byFolio[r.Folio]; dup {
		return domain.ErrDuplicate
	}
	f.byFolio[r.Folio] = r
	return nil
}

func (f *fakeResguardos) GetByFolio(_ context.Context, folio string) (*entity.Resguardo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byFolio[folio], nil
}

// ── folios ────────────────────────────────────────────────────────────────────

type fakeCounter struct {
	mu     sync.Mutex
	values map[string]int64
	err    error
}

func (c *fakeCounter) Current(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key], c.err
}

func (c *fakeCounter) Increment(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	c.values[key]++
	return c.values[key], nil
}

// ── pdf y observador ──────────────────────────────────────────────────────────

type fakePDF struct{}

func (fakePDF) GenerateResguardoPDF(_ context.Context, r *entity.Resguardo) ([]byte, error) {
	return []byte("%PDF " + r.Folio), nil
}

type countingObserver struct {
	mu        sync.Mutex
	searches  map[string]int
	conflicts map[string]int
	created   int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{searches: map[string]int{}, conflicts: map[string]int{}}
}

func (o *countingObserver) SearchPerformed(op string) {
	o.mu.Lock()
	o.searches[op]++
	o.mu.Unlock()
}

func (o *countingObserver) SelectionConflict(kind string) {
	o.mu.Lock()
	o.conflicts[kind]++
	o.mu.Unlock()
}

func (o *countingObserver) ResguardoCreated() {
	o.mu.Lock()
	o.created++
	o.mu.Unlock()
}

// ── fixture ───────────────────────────────────────────────────────────────────

var errStore = errors.New("conexión perdida")

func areaRef(id int64, name string) *entity.AreaRef {
	return &entity.AreaRef{ID: &id, Name: name}
}

func sampleMuebles() []*entity.Mueble {
	return []*entity.Mueble{
		{ID: 1, InventoryCode: "ITEA-001", Description: entity.StrPtr("Proyector Epson X200"), ResponsibleParty: entity.StrPtr("Juan Pérez"), Area: areaRef(10, "Sistemas"), Condition: entity.StrPtr("Bueno")},
		{ID: 2, InventoryCode: "ITEA-002", Description: entity.StrPtr("Silla ejecutiva"), ResponsibleParty: entity.StrPtr("Juan Pérez"), Area: areaRef(10, "Sistemas")},
		{ID: 3, InventoryCode: "ITEA-003", Description: entity.StrPtr("Monitor 24"), ResponsibleParty: entity.StrPtr("Ana López"), Area: areaRef(10, "Sistemas")},
		{ID: 4, InventoryCode: "ITEA-004", Description: entity.StrPtr("Archivero"), ResponsibleParty: entity.StrPtr("Juan Pérez"), Area: areaRef(20, "Almacén")},
		{ID: 5, InventoryCode: "ITEA-005", Description: entity.StrPtr("Escritorio"), ResponsibleParty: entity.StrPtr("Juan Pérez"), Area: areaRef(10, "Sistemas")},
	}
}

func sampleDirectory() entity.Directory {
	return entity.Directory{
		Directors: []entity.Director{{ID: 1, Name: "Juan Pérez", Position: "Director de Sistemas"}, {ID: 2, Name: "Ana López", Position: "Jefa de Almacén"}},
		Areas:     []entity.Area{{ID: 10, Name: "Sistemas"}, {ID: 20, Name: "Almacén"}},
		Relations: []entity.DirectorArea{{DirectorID: 1, AreaID: 10}, {DirectorID: 2, AreaID: 20}},
	}
}

type fixture struct {
	muebles    *fakeMuebles
	directory  *fakeDirectory
	resguardos *fakeResguardos
	counter    *fakeCounter
	observer   *countingObserver
	catalog    *usecase.CatalogUseCase
	search     *usecase.SearchUseCase
	resguardo  *usecase.ResguardoUseCase
}

// newFixture arma los casos de uso sobre fakes en memoria, sin retardos de asentamiento.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		muebles:    &fakeMuebles{rows: sampleMuebles()},
		directory:  &fakeDirectory{dir: sampleDirectory()},
		resguardos: &fakeResguardos{byFolio: map[string]*entity.Resguardo{}},
		counter:    &fakeCounter{values: map[string]int64{}},
		observer:   newCountingObserver(),
	}
	log := logger.Nop()
	f.catalog = usecase.NewCatalogUseCase(f.muebles, f.directory, 2, 0, log)
	require.NoError(t, f.catalog.Load(context.Background()))

	f.search = usecase.NewSearchUseCase(f.catalog, usecase.SearchConfig{SuggestionLimit: 7, PageSize: 2}, f.observer)
	folios := folio.NewAllocator(f.counter, folio.Format{Prefix: "RES", Width: 4}, log)
	f.resguardo = usecase.NewResguardoUseCase(
		f.catalog, f.search, folios, "RESGUARDO",
		f.muebles, f.resguardos, fakePDF{}, f.observer, log,
	)
	return f
}
