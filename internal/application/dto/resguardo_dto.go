package dto

import "time"

// ConflictResponse conflicto de selección (responsable o área).
type ConflictResponse struct {
	Kind    string  `json:"kind"`
	Value   *string `json:"value"`
	Message string  `json:"message"`
}

// ResguardoSessionResponse selección en curso y campos derivados del primer mueble.
type ResguardoSessionResponse struct {
	ID                  string            `json:"id"`
	Items               []MuebleResponse  `json:"items"`
	Director            *string           `json:"director"`
	Area                *string           `json:"area"`
	Puesto              string            `json:"puesto,omitempty"`
	ResponsibleConflict *ConflictResponse `json:"usufinal_conflict,omitempty"`
	AreaConflict        *ConflictResponse `json:"area_conflict,omitempty"`
	Pruned              []int64           `json:"pruned,omitempty"`
	Dropped             []int64           `json:"dropped,omitempty"`
}

// AddItemRequest mueble a agregar.
type AddItemRequest struct {
	MuebleID int64 `json:"mueble_id" validate:"required"`
}

// AddItemResponse resultado de agregar un mueble.
type AddItemResponse struct {
	Added     bool                     `json:"added"`
	Duplicate bool                     `json:"duplicate,omitempty"`
	Conflict  *ConflictResponse        `json:"conflict,omitempty"`
	Session   ResguardoSessionResponse `json:"session"`
}

// SelectPageRequest selecciona la página visible de una sesión de búsqueda.
type SelectPageRequest struct {
	SearchSessionID string `json:"search_session_id" validate:"required"`
}

// SelectPageResponse resultado de seleccionar la página completa.
type SelectPageResponse struct {
	Added    int                      `json:"added"`
	Conflict *ConflictResponse        `json:"conflict,omitempty"`
	Session  ResguardoSessionResponse `json:"session"`
}

// FolioResponse folio formateado.
type FolioResponse struct {
	Key   string `json:"key"`
	Folio string `json:"folio"`
}

// SubmitResguardoRequest datos capturados en el formulario al firmar.
type SubmitResguardoRequest struct {
	Custodian string `json:"resguardante" validate:"required,max=200"`
	Puesto    string `json:"puesto" validate:"max=200"`
}

// ResguardoItemResponse línea del resguardo.
type ResguardoItemResponse struct {
	MuebleID      int64  `json:"mueble_id"`
	InventoryCode string `json:"id_inv"`
	Description   string `json:"descripcion"`
	Condition     string `json:"estado"`
	Origin        string `json:"origen,omitempty"`
}

// ResguardoResponse resguardo creado.
type ResguardoResponse struct {
	ID        string                  `json:"id"`
	Folio     string                  `json:"folio"`
	Director  string                  `json:"director"`
	Area      string                  `json:"area"`
	Puesto    string                  `json:"puesto"`
	Custodian string                  `json:"resguardante"`
	CreatedBy string                  `json:"created_by"`
	CreatedAt time.Time               `json:"created_at"`
	Items     []ResguardoItemResponse `json:"items"`
}
