// Package search implementa el motor de búsqueda tipo omnibox sobre la colección de muebles:
// índice por campo, clasificación del término, sugerencias, filtros activos y filtrado/ordenamiento.
// Todas las funciones son puras y síncronas; no hacen I/O.
package search

import (
	"strings"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

// DefaultFields campos buscables de las pantallas de inventario, en orden de prioridad.
var DefaultFields = []entity.FieldType{
	entity.FieldID,
	entity.FieldArea,
	entity.FieldResponsible,
	entity.FieldCustodian,
	entity.FieldDescription,
	entity.FieldCategory,
	entity.FieldCondition,
	entity.FieldStatus,
}

// UnifiedFields agrega el origen para la vista unificada de varias tablas.
var UnifiedFields = append(append([]entity.FieldType{}, DefaultFields...), entity.FieldOrigin)

// FieldValue devuelve el valor del campo mapeado al tipo. ok=false si el valor es nulo
// o el tipo no tiene campo asociado.
func FieldValue(m *entity.Mueble, t entity.FieldType) (string, bool) {
	if m == nil {
		return "", false
	}
	switch t {
	case entity.FieldID:
		return m.InventoryCode, m.InventoryCode != ""
	case entity.FieldDescription:
		return deref(m.Description)
	case entity.FieldCategory:
		return deref(m.Category)
	case entity.FieldCondition:
		return deref(m.Condition)
	case entity.FieldStatus:
		return deref(m.Status)
	case entity.FieldArea:
		if m.Area == nil {
			return "", false
		}
		return m.Area.Name, true
	case entity.FieldResponsible:
		return deref(m.ResponsibleParty)
	case entity.FieldCustodian:
		return deref(m.Custodian)
	case entity.FieldOrigin:
		return deref(m.Origin)
	}
	return "", false
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// normalize recorta y pasa a minúsculas un término de búsqueda.
func normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// containsFold indica si value contiene needle (needle ya normalizado).
func containsFold(value, needle string) bool {
	return strings.Contains(strings.ToLower(value), needle)
}
