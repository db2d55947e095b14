package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Resguardos-api/internal/application/dto"
	"github.com/jhoicas/Resguardos-api/internal/application/usecase"
)

// SearchHandler omnibox y sesiones de búsqueda.
type SearchHandler struct {
	uc *usecase.SearchUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Classify godoc
// @Summary      Detectar el campo de una consulta
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        q        query  string  true   "Consulta"
// @Param        unified  query  bool    false  "Incluir origen"
// @Success      200  {object}  dto.ClassifyResponse
// @Router       /api/search/classify [get]
func (h *SearchHandler) Classify(c *fiber.Ctx) error {
	return c.JSON(h.uc.Classify(c.Query("q"), c.QueryBool("unified", false)))
}

// Suggest godoc
// @Summary      Sugerencias de autocompletado
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        q        query  string  true   "Consulta"
// @Param        unified  query  bool    false  "Incluir origen"
// @Success      200  {object}  dto.SuggestResponse
// @Router       /api/search/suggest [get]
func (h *SearchHandler) Suggest(c *fiber.Ctx) error {
	return c.JSON(h.uc.Suggest(c.Query("q"), c.QueryBool("unified", false)))
}

// CreateSession godoc
// @Summary      Abrir sesión de búsqueda
// @Tags         search
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSearchSessionRequest  false  "Opciones"
// @Success      201   {object}  dto.SearchSessionResponse
// @Router       /api/search/sessions [post]
func (h *SearchHandler) CreateSession(c *fiber.Ctx) error {
	var in dto.CreateSearchSessionRequest
	if len(c.Body()) > 0 {
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
	}
	return c.Status(fiber.StatusCreated).JSON(h.uc.CreateSession(in))
}

// GetSession godoc
// @Summary      Estado de la sesión de búsqueda
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SearchSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/search/sessions/{id} [get]
func (h *SearchHandler) GetSession(c *fiber.Ctx) error {
	out, err := h.uc.GetSession(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CloseSession godoc
// @Summary      Cerrar sesión de búsqueda
// @Tags         search
// @Security     Bearer
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/search/sessions/{id} [delete]
func (h *SearchHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.uc.CloseSession(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetTerm godoc
// @Summary      Actualizar el término vivo
// @Tags         search
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la sesión"
// @Param        body  body  dto.SetTermRequest   true  "Término"
// @Success      200   {object}  dto.SearchSessionResponse
// @Router       /api/search/sessions/{id}/term [put]
func (h *SearchHandler) SetTerm(c *fiber.Ctx) error {
	var in dto.SetTermRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.SetTerm(c.Params("id"), in.Term)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Omnibox godoc
// @Summary      Clasificación y sugerencias del término asentado
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.OmniboxResponse
// @Router       /api/search/sessions/{id}/omnibox [get]
func (h *SearchHandler) Omnibox(c *fiber.Ctx) error {
	out, err := h.uc.Omnibox(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddFilter godoc
// @Summary      Confirmar filtro activo
// @Description  Sin type se usa el campo detectado para el término. Con save=true se guarda el término vivo.
// @Tags         search
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path   string                true   "ID de la sesión"
// @Param        save  query  bool                  false  "Guardar el término vivo"
// @Param        body  body   dto.AddFilterRequest  false  "Filtro"
// @Success      200   {object}  dto.SearchSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/search/sessions/{id}/filters [post]
func (h *SearchHandler) AddFilter(c *fiber.Ctx) error {
	if c.QueryBool("save", false) {
		out, err := h.uc.SaveCurrentTerm(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	var in dto.AddFilterRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddFilter(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveFilter godoc
// @Summary      Quitar un filtro activo
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID de la sesión"
// @Param        index  path  int     true  "Posición del filtro"
// @Success      200    {object}  dto.SearchSessionResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/search/sessions/{id}/filters/{index} [delete]
func (h *SearchHandler) RemoveFilter(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "index debe ser numérico"})
	}
	out, err := h.uc.RemoveFilter(c.Params("id"), index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ClearFilters godoc
// @Summary      Quitar todos los filtros
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SearchSessionResponse
// @Router       /api/search/sessions/{id}/filters [delete]
func (h *SearchHandler) ClearFilters(c *fiber.Ctx) error {
	out, err := h.uc.ClearFilters(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetSort godoc
// @Summary      Cambiar el orden de los resultados
// @Tags         search
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la sesión"
// @Param        body  body  dto.SortRequest  true  "Orden"
// @Success      200   {object}  dto.SearchSessionResponse
// @Router       /api/search/sessions/{id}/sort [put]
func (h *SearchHandler) SetSort(c *fiber.Ctx) error {
	var in dto.SortRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.SetSort(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Results godoc
// @Summary      Página de resultados filtrados
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID de la sesión"
// @Param        page  query  int     false  "Página (0 = primera; omitir para la actual)"
// @Success      200   {object}  dto.SearchResultsResponse
// @Router       /api/search/sessions/{id}/results [get]
func (h *SearchHandler) Results(c *fiber.Ctx) error {
	out, err := h.uc.Results(c.Params("id"), c.QueryInt("page", -1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
