package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/search"
)

func catalogo() []*entity.Mueble {
	return records(
		mueble{id: 1, code: "C-003", area: "Almacén", responsible: "Juan", description: "Silla", value: "1200.50"},
		mueble{id: 2, code: "C-001", area: "Sistemas", responsible: "Ana", description: "Monitor", value: "3500"},
		mueble{id: 3, code: "C-002", area: "Sistemas", responsible: "Juan", description: "Silla ejecutiva"},
		mueble{id: 4, code: "C-004", responsible: "Beatriz", description: "Escritorio", value: "999.99"},
	)
}

func TestApply_EscenarioC_FiltroPorArea(t *testing.T) {
	got := search.Apply(catalogo(), search.Query{
		Filters: []entity.ActiveFilter{{Term: "A", Type: entity.FieldArea}},
		Sort:    search.DefaultSort,
	})
	// "Almacén" y "Sistemas" contienen "a"; el registro sin área queda fuera.
	assert.Equal(t, []int64{2, 3, 1}, ids(got), "ordenado por código de inventario ascendente")
}

func TestApply_FiltrosSeUnenConAND(t *testing.T) {
	rs := catalogo()
	q := search.Query{Filters: []entity.ActiveFilter{
		{Term: "sistemas", Type: entity.FieldArea},
		{Term: "juan", Type: entity.FieldResponsible},
	}}
	got := search.Apply(rs, q)
	assert.Equal(t, []int64{3}, ids(got))

	q.Filters = append(q.Filters, entity.ActiveFilter{Term: "monitor", Type: entity.FieldDescription})
	assert.Empty(t, search.Apply(rs, q))
}

func TestApply_TerminoVivoEnCualquierCampo(t *testing.T) {
	got := search.Apply(catalogo(), search.Query{Term: "SILLA"})
	assert.Equal(t, []int64{3, 1}, ids(got))

	got = search.Apply(catalogo(), search.Query{
		Term:    "juan",
		Filters: []entity.ActiveFilter{{Term: "silla ejec", Type: entity.FieldDescription}},
	})
	assert.Equal(t, []int64{3}, ids(got), "el término vivo se combina con los filtros activos")
}

func TestApply_NoModificaLaEntrada(t *testing.T) {
	rs := catalogo()
	before := ids(rs)
	_ = search.Apply(rs, search.Query{Sort: search.SortSpec{Field: search.SortByValue, Direction: search.Desc}})
	assert.Equal(t, before, ids(rs))
}

func TestSortRecords_NulosAlFinal(t *testing.T) {
	asc := search.Apply(catalogo(), search.Query{Sort: search.SortSpec{Field: search.SortByValue, Direction: search.Asc}})
	assert.Equal(t, []int64{4, 1, 2, 3}, ids(asc))

	desc := search.Apply(catalogo(), search.Query{Sort: search.SortSpec{Field: search.SortByValue, Direction: search.Desc}})
	assert.Equal(t, []int64{2, 1, 4, 3}, ids(desc), "el nulo sigue al final en descendente")

	byArea := search.Apply(catalogo(), search.Query{Sort: search.SortSpec{Field: search.SortField(entity.FieldArea), Direction: search.Desc}})
	assert.Equal(t, int64(4), byArea[len(byArea)-1].ID)
}

func TestSortRecords_ColacionEspanol(t *testing.T) {
	rs := records(
		mueble{id: 1, code: "1", responsible: "zapata"},
		mueble{id: 2, code: "2", responsible: "Álvarez"},
		mueble{id: 3, code: "3", responsible: "beltrán"},
	)
	search.SortRecords(rs, search.SortSpec{Field: search.SortField(entity.FieldResponsible), Direction: search.Asc})
	assert.Equal(t, []int64{2, 3, 1}, ids(rs), "acentos y mayúsculas no alteran el orden alfabético")
}

func TestSortRecords_Estable(t *testing.T) {
	rs := records(
		mueble{id: 1, code: "1", area: "B"},
		mueble{id: 2, code: "2", area: "A"},
		mueble{id: 3, code: "3", area: "B"},
		mueble{id: 4, code: "4", area: "A"},
	)
	search.SortRecords(rs, search.SortSpec{Field: search.SortField(entity.FieldArea), Direction: search.Asc})
	assert.Equal(t, []int64{2, 4, 1, 3}, ids(rs))
}

func TestSortRecords_PorRegistro(t *testing.T) {
	rs := catalogo()
	search.SortRecords(rs, search.SortSpec{Field: search.SortByRecordID, Direction: search.Desc})
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(rs))
}

func TestPaginate(t *testing.T) {
	rs := catalogo()

	page, total := search.Paginate(rs, 0, 3)
	assert.Equal(t, 2, total)
	assert.Equal(t, []int64{1, 2, 3}, ids(page))

	page, _ = search.Paginate(rs, 1, 3)
	assert.Equal(t, []int64{4}, ids(page))

	page, total = search.Paginate(rs, 5, 3)
	assert.Empty(t, page)
	assert.Equal(t, 2, total)

	page, total = search.Paginate(nil, 0, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, total)
}
