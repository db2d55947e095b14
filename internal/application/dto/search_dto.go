package dto

// SuggestionResponse sugerencia del autocompletado.
type SuggestionResponse struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// ClassifyResponse campo detectado para una consulta; Type vacío si no hubo coincidencia.
type ClassifyResponse struct {
	Query   string `json:"query"`
	Type    string `json:"type,omitempty"`
	Matched bool   `json:"matched"`
}

// SuggestResponse lista de sugerencias.
type SuggestResponse struct {
	Query       string               `json:"query"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// OmniboxResponse último resultado asentado de la caja de búsqueda de una sesión.
type OmniboxResponse struct {
	Term        string               `json:"term"`
	Type        string               `json:"type,omitempty"`
	Matched     bool                 `json:"matched"`
	Suggestions []SuggestionResponse `json:"suggestions"`
	Pending     bool                 `json:"pending"`
}

// ActiveFilterResponse filtro activo con su posición.
type ActiveFilterResponse struct {
	Index int    `json:"index"`
	Term  string `json:"term"`
	Type  string `json:"type"`
}

// CreateSearchSessionRequest opciones de la sesión de búsqueda.
type CreateSearchSessionRequest struct {
	Unified bool `json:"unified"` // incluye el campo origen
}

// SetTermRequest término vivo.
type SetTermRequest struct {
	Term string `json:"term"`
}

// AddFilterRequest filtro a confirmar. Si Type está vacío se clasifica Term.
type AddFilterRequest struct {
	Term string `json:"term" validate:"required"`
	Type string `json:"type"`
}

// SortRequest orden de resultados.
type SortRequest struct {
	Field     string `json:"field" validate:"required"`
	Direction string `json:"direction" validate:"omitempty,oneof=asc desc"`
}

// SearchSessionResponse estado de una sesión de búsqueda.
type SearchSessionResponse struct {
	ID      string                 `json:"id"`
	Term    string                 `json:"term"`
	Filters []ActiveFilterResponse `json:"filters"`
	Sort    SortRequest            `json:"sort"`
	Page    int                    `json:"page"`
}

// SearchResultsResponse página de resultados filtrados y ordenados.
type SearchResultsResponse struct {
	Items      []MuebleResponse `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	Total      int              `json:"total"`
}
