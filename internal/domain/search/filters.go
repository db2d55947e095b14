package search

import "github.com/jhoicas/Resguardos-api/internal/domain/entity"

// FilterSet colección ordenada de filtros activos. Se identifican por posición;
// se permiten duplicados. No valida el tipo de campo: eso es responsabilidad del llamador.
type FilterSet struct {
	items []entity.ActiveFilter
}

// Add agrega un filtro al final.
func (s *FilterSet) Add(term string, t entity.FieldType) {
	s.items = append(s.items, entity.ActiveFilter{Term: term, Type: t})
}

// RemoveAt elimina el filtro en la posición i; los siguientes se recorren una posición.
// Devuelve false si el índice está fuera de rango.
func (s *FilterSet) RemoveAt(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return true
}

// Clear vacía el conjunto.
func (s *FilterSet) Clear() {
	s.items = nil
}

// Len número de filtros activos.
func (s *FilterSet) Len() int {
	return len(s.items)
}

// All devuelve una copia de los filtros en orden.
func (s *FilterSet) All() []entity.ActiveFilter {
	return append([]entity.ActiveFilter(nil), s.items...)
}
