package search_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/search"
)

func TestBuildIndex_OmiteVaciosYConservaOrden(t *testing.T) {
	rs := records(
		mueble{id: 1, code: "A-1", description: "Silla"},
		mueble{id: 2, code: "A-2"},
		mueble{id: 3, code: "A-3", description: "Mesa"},
	)
	idx := search.BuildIndex(rs, search.DefaultFields)

	assert.Equal(t, []string{"Silla", "Mesa"}, idx.Values(entity.FieldDescription))
	assert.Equal(t, []string{"A-1", "A-2", "A-3"}, idx.Values(entity.FieldID))
	assert.Empty(t, idx.Values(entity.FieldArea))
	assert.Nil(t, idx.Values(entity.FieldOrigin), "origen no está indexado en la vista por defecto")
	assert.Equal(t, search.DefaultFields, idx.Fields())
}

func TestSuggest_ConsultaCorta(t *testing.T) {
	idx := search.BuildIndex(records(mueble{id: 1, code: "A-1", description: "Silla"}), search.DefaultFields)

	got := search.Suggest(" s ", idx, 7)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, search.Suggest("", idx, 7))
}

func TestSuggest_RespetaTope(t *testing.T) {
	var ms []mueble
	for i := 0; i < 20; i++ {
		ms = append(ms, mueble{id: int64(i + 1), code: fmt.Sprintf("SIL-%02d", i), description: fmt.Sprintf("Silla modelo %d", i)})
	}
	idx := search.BuildIndex(records(ms...), search.DefaultFields)

	assert.Len(t, search.Suggest("sil", idx, 7), 7)
	assert.Len(t, search.Suggest("sil", idx, 10), 10)
	assert.Len(t, search.Suggest("sil", idx, 0), search.DefaultSuggestionLimit)
}

func TestSuggest_SinDuplicados(t *testing.T) {
	rs := records(
		mueble{id: 1, code: "A-1", responsible: "Juan Pérez", description: "Archivero"},
		mueble{id: 2, code: "A-2", responsible: "JUAN PÉREZ", custodian: "Juan Pérez"},
		mueble{id: 3, code: "A-3", description: "juan pérez (donación)"},
	)
	idx := search.BuildIndex(rs, search.DefaultFields)
	got := search.Suggest("juan", idx, 10)

	seen := map[string]bool{}
	for _, s := range got {
		key := string(s.Type) + "|" + s.Value
		assert.False(t, seen[key], "sugerencia repetida: %s", key)
		seen[key] = true
	}
	assert.Equal(t, []entity.Suggestion{
		{Value: "Juan Pérez", Type: entity.FieldResponsible},
		{Value: "juan pérez (donación)", Type: entity.FieldDescription},
	}, got, "responsable y resguardante comparten clave; descripción no")
}

func TestSuggest_PrefijoPrimero(t *testing.T) {
	rs := records(
		mueble{id: 1, code: "A-1", description: "Gabinete de sistemas"},
		mueble{id: 2, code: "A-2", description: "Sistema de audio"},
		mueble{id: 3, code: "A-3", description: "Rack sistemas"},
		mueble{id: 4, code: "A-4", description: "sistemas operativos"},
	)
	idx := search.BuildIndex(rs, search.DefaultFields)
	got := search.Suggest("Sist", idx, 7)

	require.Len(t, got, 4)
	assert.Equal(t, "Sistema de audio", got[0].Value)
	assert.Equal(t, "sistemas operativos", got[1].Value)
	assert.Equal(t, "Gabinete de sistemas", got[2].Value, "sin prefijo se conserva el orden original")
	assert.Equal(t, "Rack sistemas", got[3].Value)
}

func TestSuggest_OrdenDeCamposYVistaUnificada(t *testing.T) {
	rs := records(mueble{id: 1, code: "INV-ITEA-01", area: "ITEA", description: "Donación ITEA", origin: "ITEA"})

	got := search.Suggest("itea", search.BuildIndex(rs, search.DefaultFields), 7)
	assert.Equal(t, []entity.Suggestion{
		{Value: "ITEA", Type: entity.FieldArea},
		{Value: "INV-ITEA-01", Type: entity.FieldID},
		{Value: "Donación ITEA", Type: entity.FieldDescription},
	}, got, "prefijo primero; empates en el orden de prioridad de campos")

	unified := search.Suggest("itea", search.BuildIndex(rs, search.UnifiedFields), 7)
	assert.Contains(t, unified, entity.Suggestion{Value: "ITEA", Type: entity.FieldOrigin})
}
