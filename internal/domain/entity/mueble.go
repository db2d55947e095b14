package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AreaRef referencia normalizada a un área. El área puede venir como texto plano
// o como objeto unido {id, nombre}; el adaptador de persistencia traduce ambas formas a AreaRef.
type AreaRef struct {
	ID   *int64
	Name string
}

// Equal compara dos referencias de área (nil es un valor válido y solo coincide con nil).
// Si ambas traen ID se compara por ID; si no, por nombre.
func (a *AreaRef) Equal(b *AreaRef) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.ID != nil && b.ID != nil {
		return *a.ID == *b.ID
	}
	return strings.TrimSpace(a.Name) == strings.TrimSpace(b.Name)
}

// Label devuelve el nombre del área o "" si no hay área.
func (a *AreaRef) Label() string {
	if a == nil {
		return ""
	}
	return a.Name
}

// Mueble representa un bien del inventario (registro de la colección buscable).
// ID es único dentro de una instantánea; los demás campos son opcionales.
type Mueble struct {
	ID               int64
	InventoryCode    string  // id_inv
	Category         *string // rubro
	Description      *string
	Value            *decimal.Decimal
	AcquisitionDate  *string
	AcquisitionForm  *string
	Supplier         *string
	Invoice          *string
	LocationState    *string
	LocationCity     *string
	LocationNumber   *string
	Condition        *string // estado físico
	Status           *string // estatus
	Area             *AreaRef
	ResponsibleParty *string // usufinal
	DeprecationDate  *string
	DeprecationCause *string
	Custodian        *string // resguardante
	Image            *string
	Origin           *string // tabla de origen en la vista unificada
}

// MueblePatch actualización parcial usada al reasignar área o director.
// Solo se escriben los campos no nil.
type MueblePatch struct {
	Area             *AreaRef
	ResponsibleParty *string
	Custodian        *string
}

// Empty indica si el parche no modifica nada.
func (p MueblePatch) Empty() bool {
	return p.Area == nil && p.ResponsibleParty == nil && p.Custodian == nil
}

// Str devuelve el valor de un campo opcional o "".
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StrPtr devuelve un puntero al valor (nil si está vacío).
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SameString compara dos campos opcionales: nil solo coincide con nil.
func SameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return strings.TrimSpace(*a) == strings.TrimSpace(*b)
}
