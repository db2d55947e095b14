package dto

import "github.com/shopspring/decimal"

// AreaResponse área normalizada.
type AreaResponse struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"nombre"`
}

// MuebleResponse salida de un mueble. Los campos nulos se omiten.
type MuebleResponse struct {
	ID               int64            `json:"id"`
	InventoryCode    string           `json:"id_inv"`
	Category         *string          `json:"rubro,omitempty"`
	Description      *string          `json:"descripcion,omitempty"`
	Value            *decimal.Decimal `json:"valor,omitempty"`
	AcquisitionDate  *string          `json:"f_adq,omitempty"`
	AcquisitionForm  *string          `json:"adquisicion,omitempty"`
	Supplier         *string          `json:"proveedor,omitempty"`
	Invoice          *string          `json:"factura,omitempty"`
	LocationState    *string          `json:"ubicacion_es,omitempty"`
	LocationCity     *string          `json:"ubicacion_mu,omitempty"`
	LocationNumber   *string          `json:"ubicacion_no,omitempty"`
	Condition        *string          `json:"estado,omitempty"`
	Status           *string          `json:"estatus,omitempty"`
	Area             *AreaResponse    `json:"area,omitempty"`
	ResponsibleParty *string          `json:"usufinal,omitempty"`
	DeprecationDate  *string          `json:"fechabaja,omitempty"`
	DeprecationCause *string          `json:"causadebaja,omitempty"`
	Custodian        *string          `json:"resguardante,omitempty"`
	Image            *string          `json:"image_path,omitempty"`
	Origin           *string          `json:"origen,omitempty"`
}

// FilterRequest predicado de la consulta al almacén.
type FilterRequest struct {
	Field string `json:"field" validate:"required"`
	Op    string `json:"op" validate:"omitempty,oneof=eq ilike"`
	Value string `json:"value" validate:"required"`
}

// MuebleListRequest consulta paginada del catálogo en el servidor.
// Any se une con OR; All se une con AND.
type MuebleListRequest struct {
	All  []FilterRequest `json:"all" validate:"dive"`
	Any  []FilterRequest `json:"any" validate:"dive"`
	Sort string          `json:"sort"`
	Desc bool            `json:"desc"`
	Page PageRequest     `json:"page"`
}

// MuebleListResponse lista paginada de muebles.
type MuebleListResponse struct {
	Items []MuebleResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ReassignRequest reasignación de área y/o director de varios muebles.
type ReassignRequest struct {
	MuebleIDs        []int64 `json:"mueble_ids" validate:"required,min=1"`
	AreaID           *int64  `json:"area_id"`
	AreaName         *string `json:"area"`
	ResponsibleParty *string `json:"usufinal"`
}

// ReassignResponse resultado de la reasignación.
// DirectorAreas lista las áreas asignadas al nuevo responsable cuando este es director
// y el área destino no está entre ellas.
type ReassignResponse struct {
	Updated       int      `json:"updated"`
	DirectorAreas []string `json:"director_areas,omitempty"`
}
