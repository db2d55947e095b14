// Package selection valida la selección múltiple de muebles para un resguardo:
// todos los muebles deben compartir el mismo responsable (usufinal) y la misma área.
package selection

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

// ConflictKind campo que provocó el rechazo.
type ConflictKind string

const (
	ConflictResponsible ConflictKind = "usufinal"
	ConflictArea        ConflictKind = "area"
)

// Conflict señal de conflicto con el valor que no coincidió (Value nil = el mueble no tiene valor).
type Conflict struct {
	Kind    ConflictKind
	Value   *string
	Message string
}

// AddResult resultado de TryAdd. Un rechazo no es un error: es un hecho de consistencia de datos.
type AddResult struct {
	Added     bool
	Duplicate bool
	Conflict  *Conflict
}

// BatchResult resultado de SelectAllVisible. Si Conflict no es nil no se agregó nada.
type BatchResult struct {
	Added    int
	Conflict *Conflict
}

// State selección en curso de un formulario de resguardo.
// El primer mueble insertado fija el responsable y el área requeridos (nil también es un valor fijado).
type State struct {
	items       []*entity.Mueble
	established bool
	responsible *string
	area        *entity.AreaRef

	responsibleConflict *Conflict
	areaConflict        *Conflict
}

// New crea una selección vacía.
func New() *State {
	return &State{}
}

// TryAdd intenta agregar el mueble. En rechazo la selección queda intacta
// y se activa la señal de conflicto correspondiente.
func (s *State) TryAdd(m *entity.Mueble) AddResult {
	if m == nil {
		return AddResult{}
	}
	if s.Contains(m.ID) {
		return AddResult{Duplicate: true}
	}
	if !s.established {
		s.establish(m)
		s.items = append(s.items, m)
		return AddResult{Added: true}
	}
	if c := s.check(m); c != nil {
		if c.Kind == ConflictResponsible {
			s.responsibleConflict = c
		} else {
			s.areaConflict = c
		}
		return AddResult{Conflict: c}
	}
	s.items = append(s.items, m)
	return AddResult{Added: true}
}

// Remove quita el mueble con ese ID. Si la selección queda vacía se libera la restricción.
func (s *State) Remove(id int64) bool {
	for i, m := range s.items {
		if m.ID != id {
			continue
		}
		s.items = append(s.items[:i:i], s.items[i+1:]...)
		if len(s.items) == 0 {
			s.release()
		}
		return true
	}
	return false
}

// SelectAllVisible agrega todos los muebles de la página o ninguno. Antes de tocar la selección
// revisa que la página no mezcle responsables ni áreas y que coincida con lo ya fijado.
func (s *State) SelectAllVisible(page []*entity.Mueble) BatchResult {
	candidates := make([]*entity.Mueble, 0, len(page))
	for _, m := range page {
		if m != nil && !s.Contains(m.ID) && !containsID(candidates, m.ID) {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return BatchResult{}
	}

	refResponsible, refArea := candidates[0].ResponsibleParty, candidates[0].Area
	if s.established {
		refResponsible, refArea = s.responsible, s.area
	}

	var responsibles, areas []string
	for _, m := range candidates {
		if !entity.SameString(m.ResponsibleParty, refResponsible) {
			responsibles = appendUnique(responsibles, label(m.ResponsibleParty))
		}
		if !m.Area.Equal(refArea) {
			areas = appendUnique(areas, areaLabel(m.Area))
		}
	}
	if len(responsibles) > 0 {
		return BatchResult{Conflict: &Conflict{
			Kind:    ConflictResponsible,
			Message: batchMessage("responsables", label(refResponsible), responsibles, s.established),
		}}
	}
	if len(areas) > 0 {
		return BatchResult{Conflict: &Conflict{
			Kind:    ConflictArea,
			Message: batchMessage("áreas", areaLabel(refArea), areas, s.established),
		}}
	}

	if !s.established {
		s.establish(candidates[0])
	}
	s.items = append(s.items, candidates...)
	return BatchResult{Added: len(candidates)}
}

// Revalidate sincroniza la selección con una instantánea nueva de la colección.
// Los muebles que ya no existen se eliminan (pruned); los demás toman sus datos actualizados.
// Si con los datos nuevos algún mueble ya no coincide con el primero, también se elimina (dropped).
func (s *State) Revalidate(snapshot []*entity.Mueble) (pruned, dropped []int64) {
	if len(s.items) == 0 {
		return nil, nil
	}
	byID := make(map[int64]*entity.Mueble, len(snapshot))
	for _, m := range snapshot {
		byID[m.ID] = m
	}
	current := s.items
	s.items = nil
	s.release()
	for _, old := range current {
		fresh, ok := byID[old.ID]
		if !ok {
			pruned = append(pruned, old.ID)
			continue
		}
		if !s.established {
			s.establish(fresh)
			s.items = append(s.items, fresh)
			continue
		}
		if s.check(fresh) != nil {
			dropped = append(dropped, old.ID)
			continue
		}
		s.items = append(s.items, fresh)
	}
	return pruned, dropped
}

// Clear vacía la selección, libera la restricción y descarta los conflictos.
func (s *State) Clear() {
	s.items = nil
	s.release()
	s.responsibleConflict = nil
	s.areaConflict = nil
}

// Items copia de los muebles seleccionados en orden de inserción.
func (s *State) Items() []*entity.Mueble {
	return append([]*entity.Mueble(nil), s.items...)
}

// Len número de muebles seleccionados.
func (s *State) Len() int {
	return len(s.items)
}

// Contains indica si el mueble ya está seleccionado.
func (s *State) Contains(id int64) bool {
	return containsID(s.items, id)
}

// Established devuelve el responsable y el área fijados; ok=false si la selección está vacía.
func (s *State) Established() (responsible *string, area *entity.AreaRef, ok bool) {
	return s.responsible, s.area, s.established
}

// ResponsibleConflict último conflicto de responsable sin descartar.
func (s *State) ResponsibleConflict() *Conflict { return s.responsibleConflict }

// AreaConflict último conflicto de área sin descartar.
func (s *State) AreaConflict() *Conflict { return s.areaConflict }

// DismissResponsibleConflict descarta la señal de conflicto de responsable.
func (s *State) DismissResponsibleConflict() { s.responsibleConflict = nil }

// DismissAreaConflict descarta la señal de conflicto de área.
func (s *State) DismissAreaConflict() { s.areaConflict = nil }

func (s *State) establish(m *entity.Mueble) {
	s.established = true
	s.responsible = m.ResponsibleParty
	s.area = m.Area
}

func (s *State) release() {
	s.established = false
	s.responsible = nil
	s.area = nil
}

// check compara el mueble con los valores fijados: primero responsable, luego área.
func (s *State) check(m *entity.Mueble) *Conflict {
	if !entity.SameString(m.ResponsibleParty, s.responsible) {
		return &Conflict{
			Kind:  ConflictResponsible,
			Value: m.ResponsibleParty,
			Message: fmt.Sprintf("el mueble %s pertenece a %s y la selección es de %s",
				m.InventoryCode, label(m.ResponsibleParty), label(s.responsible)),
		}
	}
	if !m.Area.Equal(s.area) {
		var v *string
		if m.Area != nil {
			name := m.Area.Name
			v = &name
		}
		return &Conflict{
			Kind:  ConflictArea,
			Value: v,
			Message: fmt.Sprintf("el mueble %s está en el área %s y la selección es del área %s",
				m.InventoryCode, areaLabel(m.Area), areaLabel(s.area)),
		}
	}
	return nil
}

func batchMessage(what, ref string, others []string, established bool) string {
	if established {
		return fmt.Sprintf("no se puede seleccionar la página: la selección es de %s y la página incluye %s",
			ref, strings.Join(others, ", "))
	}
	return fmt.Sprintf("no se puede seleccionar la página: mezcla %s (%s, %s)",
		what, ref, strings.Join(others, ", "))
}

func containsID(items []*entity.Mueble, id int64) bool {
	for _, m := range items {
		if m.ID == id {
			return true
		}
	}
	return false
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func label(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "(sin asignar)"
	}
	return *s
}

func areaLabel(a *entity.AreaRef) string {
	if a == nil {
		return "(sin asignar)"
	}
	return label(&a.Name)
}
