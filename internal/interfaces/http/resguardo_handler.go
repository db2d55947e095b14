package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Resguardos-api/internal/application/dto"
	"github.com/jhoicas/Resguardos-api/internal/application/usecase"
)

// ResguardoHandler formulario de resguardo: selección, folio y firma.
type ResguardoHandler struct {
	uc *usecase.ResguardoUseCase
}

// NewResguardoHandler construye el handler.
func NewResguardoHandler(uc *usecase.ResguardoUseCase) *ResguardoHandler {
	return &ResguardoHandler{uc: uc}
}

// CreateSession godoc
// @Summary      Abrir formulario de resguardo
// @Tags         resguardos
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.ResguardoSessionResponse
// @Router       /api/resguardos/sessions [post]
func (h *ResguardoHandler) CreateSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.uc.CreateSession())
}

// GetSession godoc
// @Summary      Selección en curso
// @Description  Si el catálogo se refrescó, la respuesta reporta los muebles eliminados (pruned) o descartados (dropped).
// @Tags         resguardos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del formulario"
// @Success      200  {object}  dto.ResguardoSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resguardos/sessions/{id} [get]
func (h *ResguardoHandler) GetSession(c *fiber.Ctx) error {
	out, err := h.uc.GetSession(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CloseSession godoc
// @Summary      Descartar formulario
// @Tags         resguardos
// @Security     Bearer
// @Param        id   path  string  true  "ID del formulario"
// @Success      204
// @Router       /api/resguardos/sessions/{id} [delete]
func (h *ResguardoHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.uc.CloseSession(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem godoc
// @Summary      Agregar mueble a la selección
// @Description  Un conflicto de responsable o área se devuelve en el cuerpo con added=false; no es un error HTTP.
// @Tags         resguardos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del formulario"
// @Param        body  body  dto.AddItemRequest  true  "Mueble"
// @Success      200   {object}  dto.AddItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resguardos/sessions/{id}/items [post]
func (h *ResguardoHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddItem(c.Params("id"), in.MuebleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar mueble de la selección
// @Tags         resguardos
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "ID del formulario"
// @Param        muebleId  path  int     true  "ID del mueble"
// @Success      200       {object}  dto.ResguardoSessionResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/resguardos/sessions/{id}/items/{muebleId} [delete]
func (h *ResguardoHandler) RemoveItem(c *fiber.Ctx) error {
	muebleID, err := c.ParamsInt("muebleId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "muebleId debe ser numérico"})
	}
	out, err := h.uc.RemoveItem(c.Params("id"), int64(muebleID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SelectPage godoc
// @Summary      Seleccionar la página visible de una búsqueda
// @Description  Todo o nada: si la página mezcla responsables o áreas, o no coincide con la selección, no se agrega ninguno.
// @Tags         resguardos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del formulario"
// @Param        body  body  dto.SelectPageRequest  true  "Sesión de búsqueda"
// @Success      200   {object}  dto.SelectPageResponse
// @Router       /api/resguardos/sessions/{id}/select-page [post]
func (h *ResguardoHandler) SelectPage(c *fiber.Ctx) error {
	var in dto.SelectPageRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.SelectPage(c.Params("id"), in.SearchSessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DismissConflict godoc
// @Summary      Descartar aviso de conflicto
// @Tags         resguardos
// @Security     Bearer
// @Produce      json
// @Param        id    path  string  true  "ID del formulario"
// @Param        kind  path  string  true  "usufinal | area"
// @Success      200   {object}  dto.ResguardoSessionResponse
// @Router       /api/resguardos/sessions/{id}/conflicts/{kind} [delete]
func (h *ResguardoHandler) DismissConflict(c *fiber.Ctx) error {
	out, err := h.uc.DismissConflict(c.Params("id"), c.Params("kind"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar la selección
// @Tags         resguardos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del formulario"
// @Success      200  {object}  dto.ResguardoSessionResponse
// @Router       /api/resguardos/sessions/{id}/items [delete]
func (h *ResguardoHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PreviewFolio godoc
// @Summary      Folio que se asignará al firmar
// @Tags         resguardos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del formulario"
// @Success      200  {object}  dto.FolioResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/resguardos/sessions/{id}/folio/preview [get]
func (h *ResguardoHandler) PreviewFolio(c *fiber.Ctx) error {
	if _, err := h.uc.GetSession(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.PreviewFolio(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Firmar el resguardo
// @Tags         resguardos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del formulario"
// @Param        body  body  dto.SubmitResguardoRequest  true  "Resguardante y puesto"
// @Success      201   {object}  dto.ResguardoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/resguardos/sessions/{id}/submit [post]
func (h *ResguardoHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitResguardoRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Submit(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF godoc
// @Summary      PDF del resguardo
// @Tags         resguardos
// @Security     Bearer
// @Produce      application/pdf
// @Param        folio  path  string  true  "Folio"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resguardos/{folio}/pdf [get]
func (h *ResguardoHandler) PDF(c *fiber.Ctx) error {
	folio := c.Params("folio")
	doc, err := h.uc.PDF(c.UserContext(), folio)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+folio+`.pdf"`)
	return c.Send(doc)
}
