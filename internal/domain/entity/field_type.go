package entity

// FieldType identifica el campo semántico al que apunta un término de búsqueda.
type FieldType string

const (
	FieldID          FieldType = "id"
	FieldDescription FieldType = "descripcion"
	FieldCategory    FieldType = "rubro"
	FieldCondition   FieldType = "estado"
	FieldStatus      FieldType = "estatus"
	FieldArea        FieldType = "area"
	FieldResponsible FieldType = "usufinal"
	FieldCustodian   FieldType = "resguardante"
	FieldOrigin      FieldType = "origen"
)

// Valid indica si el tipo es uno de los conocidos.
func (t FieldType) Valid() bool {
	switch t {
	case FieldID, FieldDescription, FieldCategory, FieldCondition, FieldStatus,
		FieldArea, FieldResponsible, FieldCustodian, FieldOrigin:
		return true
	}
	return false
}

// ActiveFilter par inmutable (término, tipo) aplicado de forma persistente al listado.
type ActiveFilter struct {
	Term string
	Type FieldType
}

// Suggestion par transitorio (valor, tipo) ofrecido por el autocompletado.
type Suggestion struct {
	Value string
	Type  FieldType
}
