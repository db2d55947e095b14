package search

import "github.com/jhoicas/Resguardos-api/internal/domain/entity"

// State estado de búsqueda de una sesión (un formulario abierto): filtros activos,
// término vivo, orden y página. Cualquier cambio regresa a la primera página.
type State struct {
	Filters FilterSet
	Term    string
	Sort    SortSpec
	Page    int
	Fields  []entity.FieldType
}

// NewState crea un estado vacío para los campos dados (DefaultFields si fields es nil).
func NewState(fields []entity.FieldType) *State {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	return &State{Sort: DefaultSort, Fields: fields}
}

// AddFilter agrega un filtro activo.
func (s *State) AddFilter(term string, t entity.FieldType) {
	s.Filters.Add(term, t)
	s.Page = 0
}

// RemoveFilter elimina el filtro en la posición i.
func (s *State) RemoveFilter(i int) bool {
	if !s.Filters.RemoveAt(i) {
		return false
	}
	s.Page = 0
	return true
}

// ClearFilters elimina todos los filtros activos. El término vivo no se toca.
func (s *State) ClearFilters() {
	s.Filters.Clear()
	s.Page = 0
}

// SetTerm cambia el término vivo de la caja de búsqueda.
func (s *State) SetTerm(term string) {
	if term == s.Term {
		return
	}
	s.Term = term
	s.Page = 0
}

// SetSort cambia el orden.
func (s *State) SetSort(spec SortSpec) {
	s.Sort = spec
	s.Page = 0
}

// Query arma la consulta de filtrado a partir del estado.
func (s *State) Query() Query {
	return Query{Filters: s.Filters.All(), Term: s.Term, Sort: s.Sort, Fields: s.Fields}
}

// Results aplica el estado a la colección.
func (s *State) Results(records []*entity.Mueble) []*entity.Mueble {
	return Apply(records, s.Query())
}
