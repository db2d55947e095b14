package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

const (
	// DefaultSuggestionLimit tope de sugerencias devueltas.
	DefaultSuggestionLimit = 7
	// MinQueryLength longitud mínima (en caracteres, sin espacios extremos) para sugerir.
	MinQueryLength = 2
)

// Suggest devuelve hasta limit pares (valor, tipo) distintos cuyo valor contiene la consulta.
// Los campos se recorren en el orden del índice; los valores que empiezan con la consulta van primero.
func Suggest(query string, idx *Index, limit int) []entity.Suggestion {
	q := normalize(query)
	if utf8.RuneCountInString(q) < MinQueryLength || idx == nil {
		return []entity.Suggestion{}
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	out := make([]entity.Suggestion, 0, limit)
	seen := make(map[string]struct{}, limit)
collect:
	for _, f := range idx.Fields() {
		for _, v := range idx.Values(f) {
			lv := strings.ToLower(v)
			if !strings.Contains(lv, q) {
				continue
			}
			key := string(dedupKind(f)) + "\x00" + lv
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, entity.Suggestion{Value: v, Type: f})
			if len(out) == limit {
				break collect
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return hasPrefixFold(out[i].Value, q) && !hasPrefixFold(out[j].Value, q)
	})
	return out
}

// dedupKind pliega campos sinónimos (responsable y resguardante nombran personas)
// para que el mismo nombre no se sugiera dos veces.
func dedupKind(t entity.FieldType) entity.FieldType {
	if t == entity.FieldCustodian {
		return entity.FieldResponsible
	}
	return t
}

func hasPrefixFold(v, q string) bool {
	return strings.HasPrefix(strings.ToLower(v), q)
}
