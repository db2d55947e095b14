package search

import "github.com/jhoicas/Resguardos-api/internal/domain/entity"

// scoredField puntaje por coincidencia exacta y por subcadena para los campos estructurados.
type scoredField struct {
	field     entity.FieldType
	exact     int
	substring int
}

// Prioridad: código de inventario > área > responsable/resguardante.
var scoredFields = []scoredField{
	{entity.FieldID, 6, 4},
	{entity.FieldArea, 5, 3},
	{entity.FieldResponsible, 4, 2},
	{entity.FieldCustodian, 4, 2},
}

const maxScore = 6

// Campos de texto libre revisados en estricto orden cuando ningún campo estructurado coincide.
var fallbackFields = []entity.FieldType{
	entity.FieldDescription,
	entity.FieldCategory,
	entity.FieldCondition,
	entity.FieldStatus,
	entity.FieldOrigin,
}

// Classify determina el campo al que más probablemente apunta la consulta.
// Solo considera los campos buscables indicados (DefaultFields si no se indica ninguno),
// de modo que origen solo se detecta en la vista unificada.
// Devuelve ok=false con consulta vacía, colección vacía o sin coincidencias.
func Classify(query string, records []*entity.Mueble, fields ...entity.FieldType) (entity.FieldType, bool) {
	q := normalize(query)
	if q == "" || len(records) == 0 {
		return "", false
	}
	if len(fields) == 0 {
		fields = DefaultFields
	}
	allowed := make(map[entity.FieldType]bool, len(fields))
	for _, f := range fields {
		allowed[f] = true
	}

	best, bestScore := entity.FieldType(""), 0
scan:
	for _, m := range records {
		for _, sf := range scoredFields {
			if !allowed[sf.field] {
				continue
			}
			v, ok := FieldValue(m, sf.field)
			if !ok || v == "" {
				continue
			}
			score := 0
			switch {
			case normalize(v) == q:
				score = sf.exact
			case containsFold(v, q):
				score = sf.substring
			}
			if score > bestScore {
				best, bestScore = sf.field, score
				if bestScore == maxScore {
					break scan
				}
			}
		}
	}
	if bestScore > 0 {
		return best, true
	}

	for _, f := range fallbackFields {
		if !allowed[f] {
			continue
		}
		for _, m := range records {
			if v, ok := FieldValue(m, f); ok && v != "" && containsFold(v, q) {
				return f, true
			}
		}
	}
	return "", false
}
