package usecase

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Resguardos-api/internal/application/dto"
	"github.com/jhoicas/Resguardos-api/internal/domain"
	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/search"
)

// SearchConfig parámetros del omnibox.
type SearchConfig struct {
	SuggestionLimit int
	SettleDelay     time.Duration
	PageSize        int
	Sessions        SessionLimits
}

// omnibox resultado de clasificar y sugerir un término.
type omnibox struct {
	term        string
	fieldType   entity.FieldType
	matched     bool
	suggestions []entity.Suggestion
}

// searchSession estado de búsqueda de un formulario. El término vivo se aplica al instante
// al filtrado; la clasificación y las sugerencias se recalculan cuando el término se asienta.
type searchSession struct {
	mu      sync.Mutex
	unified bool
	state   *search.State
	settle  *search.Debouncer
	settled omnibox
}

// SearchUseCase omnibox sin estado (clasificar/sugerir) y sesiones de búsqueda con filtros activos.
type SearchUseCase struct {
	catalog  *CatalogUseCase
	cfg      SearchConfig
	sessions *sessionStore[searchSession]
	observer Observer
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(catalog *CatalogUseCase, cfg SearchConfig, observer Observer) *SearchUseCase {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = search.DefaultSuggestionLimit
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &SearchUseCase{
		catalog:  catalog,
		cfg:      cfg,
		sessions: newSessionStore(cfg.Sessions, func(sess *searchSession) { sess.settle.Stop() }),
		observer: observer,
	}
}

// Classify detecta el campo al que apunta la consulta sobre la instantánea vigente.
// El origen solo se considera en la vista unificada.
func (uc *SearchUseCase) Classify(query string, unified bool) dto.ClassifyResponse {
	uc.observer.SearchPerformed("classify")
	t, ok := search.Classify(query, uc.catalog.Snapshot().Records, fieldsFor(unified)...)
	return dto.ClassifyResponse{Query: query, Type: string(t), Matched: ok}
}

// Suggest devuelve las sugerencias de autocompletado para la consulta.
func (uc *SearchUseCase) Suggest(query string, unified bool) dto.SuggestResponse {
	uc.observer.SearchPerformed("suggest")
	snap := uc.catalog.Snapshot()
	return dto.SuggestResponse{
		Query:       query,
		Suggestions: toSuggestions(search.Suggest(query, indexFor(snap, unified), uc.cfg.SuggestionLimit)),
	}
}

func fieldsFor(unified bool) []entity.FieldType {
	if unified {
		return search.UnifiedFields
	}
	return search.DefaultFields
}

func indexFor(snap *Snapshot, unified bool) *search.Index {
	if unified {
		return snap.UnifiedIndex
	}
	return snap.Index
}

func (uc *SearchUseCase) evaluate(term string, unified bool) omnibox {
	snap := uc.catalog.Snapshot()
	t, ok := search.Classify(term, snap.Records, fieldsFor(unified)...)
	return omnibox{
		term:        term,
		fieldType:   t,
		matched:     ok,
		suggestions: search.Suggest(term, indexFor(snap, unified), uc.cfg.SuggestionLimit),
	}
}

// CreateSession abre una sesión de búsqueda y devuelve su estado inicial.
func (uc *SearchUseCase) CreateSession(in dto.CreateSearchSessionRequest) dto.SearchSessionResponse {
	sess := &searchSession{
		unified: in.Unified,
		state:   search.NewState(fieldsFor(in.Unified)),
		settle:  search.NewDebouncer(uc.cfg.SettleDelay),
	}
	id := uc.sessions.create(sess)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sessionResponse(id, sess)
}

// GetSession devuelve el estado de la sesión.
func (uc *SearchUseCase) GetSession(id string) (*dto.SearchSessionResponse, error) {
	sess, err := uc.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := sessionResponse(id, sess)
	return &out, nil
}

// CloseSession cierra la sesión y cancela recálculos pendientes.
func (uc *SearchUseCase) CloseSession(id string) error {
	sess, ok := uc.sessions.delete(id)
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.settle.Stop()
	return nil
}

// SetTerm registra el término vivo. El filtrado lo usa de inmediato; el omnibox se recalcula
// cuando deja de cambiar durante el retardo de asentamiento.
func (uc *SearchUseCase) SetTerm(id, term string) (*dto.SearchSessionResponse, error) {
	sess, err := uc.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	sess.state.SetTerm(term)
	unified := sess.unified
	out := sessionResponse(id, sess)
	sess.mu.Unlock()

	sess.settle.Trigger(func() {
		res := uc.evaluate(term, unified)
		sess.mu.Lock()
		defer sess.mu.Unlock()
		// Un término guardado o reemplazado mientras se evaluaba ya no es el vigente.
		if sess.state.Term != term {
			return
		}
		sess.settled = res
		uc.observer.SearchPerformed("omnibox")
	})
	return &out, nil
}

// Omnibox devuelve el último resultado asentado; Pending indica que el término aún no se asienta.
func (uc *SearchUseCase) Omnibox(id string) (*dto.OmniboxResponse, error) {
	sess, err := uc.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s := sess.settled
	return &dto.OmniboxResponse{
		Term:        s.term,
		Type:        string(s.fieldType),
		Matched:     s.matched,
		Suggestions: toSuggestions(s.suggestions),
		Pending:     sess.settle.Pending() || s.term != sess.state.Term,
	}, nil
}

// AddFilter confirma un filtro activo. Sin tipo explícito se usa el campo detectado para el término;
// si no se detecta ninguno es entrada inválida.
func (uc *SearchUseCase) AddFilter(id string, in dto.AddFilterRequest) (*dto.SearchSessionResponse, error) {
	term := strings.TrimSpace(in.Term)
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	records := uc.catalog.Snapshot().Records
	return uc.mutate(id, func(s *search.State) error {
		t := entity.FieldType(in.Type)
		if t == "" {
			var ok bool
			if t, ok = search.Classify(term, records, s.Fields...); !ok {
				return domain.ErrInvalidInput
			}
		} else if !slices.Contains(s.Fields, t) {
			return domain.ErrInvalidInput
		}
		s.AddFilter(term, t)
		return nil
	})
}

// SaveCurrentTerm convierte el término vivo en filtro activo y limpia la caja de búsqueda.
// La caja vacía no tiene nada que asentar: se cancela el recálculo pendiente y el omnibox queda vacío.
func (uc *SearchUseCase) SaveCurrentTerm(id string) (*dto.SearchSessionResponse, error) {
	sess, err := uc.sessions.get(id)
	if err != nil {
		return nil, err
	}
	records := uc.catalog.Snapshot().Records
	sess.mu.Lock()
	defer sess.mu.Unlock()
	term := strings.TrimSpace(sess.state.Term)
	t, ok := search.Classify(term, records, sess.state.Fields...)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	sess.state.AddFilter(term, t)
	sess.state.SetTerm("")
	sess.settle.Stop()
	sess.settled = omnibox{}
	out := sessionResponse(id, sess)
	return &out, nil
}

// RemoveFilter elimina el filtro en la posición index.
func (uc *SearchUseCase) RemoveFilter(id string, index int) (*dto.SearchSessionResponse, error) {
	return uc.mutate(id, func(s *search.State) error {
		if !s.RemoveFilter(index) {
			return domain.ErrNotFound
		}
		return nil
	})
}

// ClearFilters elimina todos los filtros activos.
func (uc *SearchUseCase) ClearFilters(id string) (*dto.SearchSessionResponse, error) {
	return uc.mutate(id, func(s *search.State) error {
		s.ClearFilters()
		return nil
	})
}

// SetSort cambia el orden de los resultados.
func (uc *SearchUseCase) SetSort(id string, in dto.SortRequest) (*dto.SearchSessionResponse, error) {
	dir := search.Direction(in.Direction)
	if dir == "" {
		dir = search.Asc
	}
	if dir != search.Asc && dir != search.Desc || !search.SortField(in.Field).Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(id, func(s *search.State) error {
		s.SetSort(search.SortSpec{Field: search.SortField(in.Field), Direction: dir})
		return nil
	})
}

func (uc *SearchUseCase) mutate(id string, fn func(*search.State) error) (*dto.SearchSessionResponse, error) {
	sess, err := uc.sessions.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := fn(sess.state); err != nil {
		return nil, err
	}
	out := sessionResponse(id, sess)
	return &out, nil
}

// Results aplica filtros, término y orden a la instantánea y devuelve la página pedida,
// que queda como página visible de la sesión.
func (uc *SearchUseCase) Results(id string, page int) (*dto.SearchResultsResponse, error) {
	sess, err := uc.sessions.get(id)
	if err != nil {
		return nil, err
	}
	records := uc.catalog.Snapshot().Records
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if page < 0 {
		page = sess.state.Page
	}
	rows := sess.state.Results(records)
	pageRows, totalPages := search.Paginate(rows, page, uc.cfg.PageSize)
	sess.state.Page = page
	uc.observer.SearchPerformed("results")
	return &dto.SearchResultsResponse{
		Items:      toMuebleList(pageRows),
		Page:       page,
		PageSize:   uc.cfg.PageSize,
		TotalPages: totalPages,
		Total:      len(rows),
	}, nil
}

// VisiblePage devuelve los muebles de la página visible de la sesión.
func (uc *SearchUseCase) VisiblePage(id string) ([]*entity.Mueble, error) {
	sess, err := uc.sessions.get(id)
	if err != nil {
		return nil, err
	}
	records := uc.catalog.Snapshot().Records
	sess.mu.Lock()
	defer sess.mu.Unlock()
	rows, _ := search.Paginate(sess.state.Results(records), sess.state.Page, uc.cfg.PageSize)
	return rows, nil
}

func sessionResponse(id string, sess *searchSession) dto.SearchSessionResponse {
	filters := sess.state.Filters.All()
	out := dto.SearchSessionResponse{
		ID:      id,
		Term:    sess.state.Term,
		Filters: make([]dto.ActiveFilterResponse, 0, len(filters)),
		Sort:    dto.SortRequest{Field: string(sess.state.Sort.Field), Direction: string(sess.state.Sort.Direction)},
		Page:    sess.state.Page,
	}
	for i, f := range filters {
		out.Filters = append(out.Filters, dto.ActiveFilterResponse{Index: i, Term: f.Term, Type: string(f.Type)})
	}
	return out
}
