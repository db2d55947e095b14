package search

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

// Direction sentido del ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortField columna de ordenamiento. Acepta cualquier FieldType más columnas no buscables.
type SortField string

const (
	SortByInventoryCode   SortField = SortField(entity.FieldID)
	SortByDescription     SortField = SortField(entity.FieldDescription)
	SortByValue           SortField = "valor"
	SortByAcquisitionDate SortField = "fecha_adquisicion"
	SortByRecordID        SortField = "registro"
)

// Valid indica si el campo es ordenable: un FieldType o una de las columnas extra.
func (f SortField) Valid() bool {
	switch f {
	case SortByValue, SortByAcquisitionDate, SortByRecordID:
		return true
	}
	return entity.FieldType(f).Valid()
}

// SortSpec campo y sentido de ordenamiento.
type SortSpec struct {
	Field     SortField
	Direction Direction
}

// DefaultSort ordena por código de inventario ascendente.
var DefaultSort = SortSpec{Field: SortByInventoryCode, Direction: Asc}

// Query entradas del filtrado: filtros activos (AND), término vivo (OR entre campos) y orden.
type Query struct {
	Filters []entity.ActiveFilter
	Term    string
	Sort    SortSpec
	Fields  []entity.FieldType // campos del término vivo; DefaultFields si está vacío
}

// Apply filtra y ordena una copia de records. Es función pura de sus entradas.
func Apply(records []*entity.Mueble, q Query) []*entity.Mueble {
	fields := q.Fields
	if len(fields) == 0 {
		fields = DefaultFields
	}
	filters := make([]entity.ActiveFilter, 0, len(q.Filters))
	for _, f := range q.Filters {
		filters = append(filters, entity.ActiveFilter{Term: normalize(f.Term), Type: f.Type})
	}
	term := normalize(q.Term)

	out := make([]*entity.Mueble, 0, len(records))
	for _, m := range records {
		if matchesAll(m, filters) && (term == "" || matchesAny(m, term, fields)) {
			out = append(out, m)
		}
	}
	SortRecords(out, q.Sort)
	return out
}

// matchesAll exige que el mueble cumpla cada filtro activo.
func matchesAll(m *entity.Mueble, filters []entity.ActiveFilter) bool {
	for _, f := range filters {
		v, ok := FieldValue(m, f.Type)
		if !ok || !containsFold(v, f.Term) {
			return false
		}
	}
	return true
}

func matchesAny(m *entity.Mueble, term string, fields []entity.FieldType) bool {
	for _, f := range fields {
		if v, ok := FieldValue(m, f); ok && containsFold(v, term) {
			return true
		}
	}
	return false
}

// SortRecords ordena de forma estable. Los valores nulos van al final sin importar el sentido.
func SortRecords(rows []*entity.Mueble, spec SortSpec) {
	if spec.Field == "" {
		spec = DefaultSort
	}
	col := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(rows, func(i, j int) bool {
		return compare(col, rows[i], rows[j], spec) < 0
	})
}

func compare(col *collate.Collator, a, b *entity.Mueble, spec SortSpec) int {
	av, aok := sortKey(a, spec.Field)
	bv, bok := sortKey(b, spec.Field)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}

	var c int
	switch x := av.(type) {
	case string:
		c = col.CompareString(x, bv.(string))
	case decimal.Decimal:
		c = x.Cmp(bv.(decimal.Decimal))
	case int64:
		y := bv.(int64)
		switch {
		case x < y:
			c = -1
		case x > y:
			c = 1
		}
	}
	if spec.Direction == Desc {
		return -c
	}
	return c
}

// sortKey devuelve el valor comparable de la columna; ok=false si es nulo.
func sortKey(m *entity.Mueble, f SortField) (any, bool) {
	switch f {
	case SortByValue:
		if m.Value == nil {
			return nil, false
		}
		return *m.Value, true
	case SortByAcquisitionDate:
		if m.AcquisitionDate == nil {
			return nil, false
		}
		return strings.TrimSpace(*m.AcquisitionDate), true
	case SortByRecordID:
		return m.ID, true
	}
	v, ok := FieldValue(m, entity.FieldType(f))
	if !ok {
		return nil, false
	}
	return v, true
}

// Paginate devuelve la página (base 0) de tamaño size y el total de páginas.
func Paginate(rows []*entity.Mueble, page, size int) ([]*entity.Mueble, int) {
	if size <= 0 {
		size = len(rows)
		if size == 0 {
			return []*entity.Mueble{}, 0
		}
	}
	totalPages := (len(rows) + size - 1) / size
	if page < 0 || page >= totalPages {
		return []*entity.Mueble{}, totalPages
	}
	start := page * size
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}
