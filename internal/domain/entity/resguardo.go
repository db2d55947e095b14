package entity

import "time"

// Resguardo documento de custodia: un conjunto de muebles bajo un director, un área y un resguardante.
type Resguardo struct {
	ID        string
	Folio     string
	Director  string
	Area      string
	Puesto    string
	Custodian string
	CreatedBy string
	CreatedAt time.Time
	Items     []ResguardoItem
}

// ResguardoItem línea del resguardo (copia de los datos del mueble al momento de firmar).
type ResguardoItem struct {
	MuebleID      int64
	InventoryCode string
	Description   string
	Condition     string
	Origin        string
}
