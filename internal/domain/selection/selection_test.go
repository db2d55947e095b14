package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/selection"
)

func item(id int64, responsible, area string) *entity.Mueble {
	m := &entity.Mueble{ID: id, InventoryCode: "INV-" + string(rune('A'+id)), ResponsibleParty: entity.StrPtr(responsible)}
	if area != "" {
		m.Area = &entity.AreaRef{Name: area}
	}
	return m
}

func selectedIDs(s *selection.State) []int64 {
	var out []int64
	for _, m := range s.Items() {
		out = append(out, m.ID)
	}
	return out
}

// invariante: todos los seleccionados comparten responsable y área con el primero.
func assertConsistent(t *testing.T, s *selection.State) {
	t.Helper()
	items := s.Items()
	for _, m := range items[1:] {
		assert.True(t, entity.SameString(m.ResponsibleParty, items[0].ResponsibleParty), "responsable distinto en %d", m.ID)
		assert.True(t, m.Area.Equal(items[0].Area), "área distinta en %d", m.ID)
	}
}

func TestTryAdd_EscenarioA_ResponsableDistinto(t *testing.T) {
	s := selection.New()
	juan, ana := item(1, "Juan", "A"), item(2, "Ana", "A")

	res := s.TryAdd(juan)
	assert.True(t, res.Added)

	res = s.TryAdd(ana)
	assert.False(t, res.Added)
	require.NotNil(t, res.Conflict)
	assert.Equal(t, selection.ConflictResponsible, res.Conflict.Kind)
	require.NotNil(t, res.Conflict.Value)
	assert.Equal(t, "Ana", *res.Conflict.Value)
	assert.Contains(t, res.Conflict.Message, "Juan")

	assert.Equal(t, []int64{1}, selectedIDs(s), "el rechazo no modifica la selección")
	assert.Equal(t, res.Conflict, s.ResponsibleConflict())
	assert.Nil(t, s.AreaConflict())
}

func TestTryAdd_AreaDistinta(t *testing.T) {
	s := selection.New()
	s.TryAdd(item(1, "Juan", "Sistemas"))

	res := s.TryAdd(item(2, " Juan ", "Almacén"))
	require.NotNil(t, res.Conflict, "el responsable coincide sin importar espacios; el área no")
	assert.Equal(t, selection.ConflictArea, res.Conflict.Kind)
	assert.Equal(t, "Almacén", *res.Conflict.Value)
	assert.NotNil(t, s.AreaConflict())
	assert.Nil(t, s.ResponsibleConflict())
}

func TestTryAdd_ResponsableSeRevisaAntesQueArea(t *testing.T) {
	s := selection.New()
	s.TryAdd(item(1, "Juan", "Sistemas"))
	res := s.TryAdd(item(2, "Ana", "Almacén"))
	require.NotNil(t, res.Conflict)
	assert.Equal(t, selection.ConflictResponsible, res.Conflict.Kind)
}

func TestTryAdd_NuloEsUnValorFijado(t *testing.T) {
	s := selection.New()
	assert.True(t, s.TryAdd(item(1, "", "")).Added)
	assert.True(t, s.TryAdd(item(2, "", "")).Added, "dos muebles sin responsable ni área son consistentes")

	res := s.TryAdd(item(3, "Juan", ""))
	require.NotNil(t, res.Conflict)
	assert.Equal(t, selection.ConflictResponsible, res.Conflict.Kind)
}

func TestTryAdd_AreaPorID(t *testing.T) {
	one, two := int64(1), int64(2)
	a := &entity.Mueble{ID: 1, Area: &entity.AreaRef{ID: &one, Name: "Sistemas"}}
	b := &entity.Mueble{ID: 2, Area: &entity.AreaRef{ID: &one, Name: "SISTEMAS (antes)"}}
	c := &entity.Mueble{ID: 3, Area: &entity.AreaRef{ID: &two, Name: "Sistemas"}}

	s := selection.New()
	s.TryAdd(a)
	assert.True(t, s.TryAdd(b).Added, "con ID en ambos lados se compara por ID")
	assert.NotNil(t, s.TryAdd(c).Conflict)
}

func TestTryAdd_Duplicado(t *testing.T) {
	s := selection.New()
	m := item(1, "Juan", "A")
	s.TryAdd(m)
	res := s.TryAdd(m)
	assert.True(t, res.Duplicate)
	assert.False(t, res.Added)
	assert.Nil(t, res.Conflict)
	assert.Equal(t, 1, s.Len())
}

func TestRemove_LiberaRestriccionAlVaciar(t *testing.T) {
	s := selection.New()
	s.TryAdd(item(1, "Juan", "A"))
	s.TryAdd(item(2, "Juan", "A"))

	assert.True(t, s.Remove(1))
	_, _, ok := s.Established()
	assert.True(t, ok, "con un mueble restante la restricción sigue")
	assert.NotNil(t, s.TryAdd(item(3, "Ana", "A")).Conflict)

	assert.True(t, s.Remove(2))
	assert.False(t, s.Remove(2))
	_, _, ok = s.Established()
	assert.False(t, ok)

	assert.True(t, s.TryAdd(item(3, "Ana", "B")).Added, "la selección vacía acepta cualquier responsable")
	resp, area, _ := s.Established()
	assert.Equal(t, "Ana", *resp)
	assert.Equal(t, "B", area.Name)
}

func TestDismissConflicts_Independientes(t *testing.T) {
	s := selection.New()
	s.TryAdd(item(1, "Juan", "A"))
	s.TryAdd(item(2, "Ana", "A"))
	s.TryAdd(item(3, "Juan", "B"))
	require.NotNil(t, s.ResponsibleConflict())
	require.NotNil(t, s.AreaConflict())

	s.DismissResponsibleConflict()
	assert.Nil(t, s.ResponsibleConflict())
	assert.NotNil(t, s.AreaConflict())

	s.DismissAreaConflict()
	assert.Nil(t, s.AreaConflict())
}

func TestSelectAllVisible_EscenarioE_AreasMezcladas(t *testing.T) {
	s := selection.New()
	page := []*entity.Mueble{item(1, "Juan", "A"), item(2, "Juan", "B")}

	res := s.SelectAllVisible(page)
	assert.Zero(t, res.Added)
	require.NotNil(t, res.Conflict)
	assert.Equal(t, selection.ConflictArea, res.Conflict.Kind)
	assert.Contains(t, res.Conflict.Message, "A")
	assert.Contains(t, res.Conflict.Message, "B")
	assert.Zero(t, s.Len(), "el lote se rechaza completo")
}

func TestSelectAllVisible_NoCoincideConLoFijado(t *testing.T) {
	s := selection.New()
	s.TryAdd(item(1, "Juan", "A"))
	before := selectedIDs(s)

	res := s.SelectAllVisible([]*entity.Mueble{item(2, "Ana", "A"), item(3, "Ana", "A")})
	require.NotNil(t, res.Conflict)
	assert.Equal(t, selection.ConflictResponsible, res.Conflict.Kind)
	assert.Contains(t, res.Conflict.Message, "Juan")
	assert.Contains(t, res.Conflict.Message, "Ana")
	assert.Equal(t, before, selectedIDs(s))
}

func TestSelectAllVisible_AgregaTodoSinDuplicar(t *testing.T) {
	s := selection.New()
	s.TryAdd(item(1, "Juan", "A"))

	page := []*entity.Mueble{item(1, "Juan", "A"), item(2, "Juan", "A"), item(3, "Juan", "A"), item(2, "Juan", "A")}
	res := s.SelectAllVisible(page)
	assert.Nil(t, res.Conflict)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, []int64{1, 2, 3}, selectedIDs(s))
	assertConsistent(t, s)

	res = s.SelectAllVisible(page)
	assert.Zero(t, res.Added)
	assert.Nil(t, res.Conflict)
}

func TestSelectAllVisible_FijaRestriccionEnSeleccionVacia(t *testing.T) {
	s := selection.New()
	res := s.SelectAllVisible([]*entity.Mueble{item(1, "Juan", "A"), item(2, "Juan", "A")})
	assert.Equal(t, 2, res.Added)

	assert.NotNil(t, s.TryAdd(item(3, "Ana", "A")).Conflict)
}

func TestInvariante_SecuenciaArbitraria(t *testing.T) {
	pool := []*entity.Mueble{
		item(1, "Juan", "A"), item(2, "Ana", "A"), item(3, "Juan", "B"),
		item(4, "Juan", "A"), item(5, "", "A"), item(6, "Juan", "A"),
	}
	s := selection.New()
	for i := 0; i < 30; i++ {
		m := pool[(i*7)%len(pool)]
		switch i % 4 {
		case 0, 1:
			s.TryAdd(m)
		case 2:
			s.SelectAllVisible(pool[i%3 : i%3+3])
		case 3:
			s.Remove(m.ID)
		}
		if s.Len() > 0 {
			assertConsistent(t, s)
		}
	}
}

func TestClear(t *testing.T) {
	s := selection.New()
	s.TryAdd(item(1, "Juan", "A"))
	s.TryAdd(item(2, "Ana", "A"))
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Nil(t, s.ResponsibleConflict())
	_, _, ok := s.Established()
	assert.False(t, ok)
}

func TestRevalidate(t *testing.T) {
	s := selection.New()
	s.TryAdd(item(1, "Juan", "A"))
	s.TryAdd(item(2, "Juan", "A"))
	s.TryAdd(item(3, "Juan", "A"))
	s.TryAdd(item(4, "Juan", "A"))

	// 1 desaparece, 3 cambia de responsable, 2 y 4 siguen igual pero con datos nuevos.
	fresh2 := item(2, "Juan", "A")
	fresh2.Description = entity.StrPtr("actualizado")
	snapshot := []*entity.Mueble{fresh2, item(3, "Ana", "A"), item(4, "Juan", "A")}

	pruned, dropped := s.Revalidate(snapshot)
	assert.Equal(t, []int64{1}, pruned)
	assert.Equal(t, []int64{3}, dropped)
	assert.Equal(t, []int64{2, 4}, selectedIDs(s))
	assert.Equal(t, "actualizado", entity.Str(s.Items()[0].Description), "los miembros toman los datos refrescados")

	pruned, dropped = s.Revalidate(snapshot)
	assert.Empty(t, pruned)
	assert.Empty(t, dropped)
}

func TestRevalidate_RefijaDesdeElPrimerSobreviviente(t *testing.T) {
	s := selection.New()
	s.TryAdd(item(1, "Juan", "A"))
	s.TryAdd(item(2, "Juan", "A"))

	pruned, dropped := s.Revalidate([]*entity.Mueble{item(2, "Ana", "B")})
	assert.Equal(t, []int64{1}, pruned)
	assert.Empty(t, dropped)
	resp, area, ok := s.Established()
	require.True(t, ok)
	assert.Equal(t, "Ana", *resp)
	assert.Equal(t, "B", area.Name)
}
