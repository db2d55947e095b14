package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Resguardos-api/internal/application/dto"
	"github.com/jhoicas/Resguardos-api/internal/application/folio"
)

// FolioHandler vista previa de folios por clave de contador.
type FolioHandler struct {
	folios *folio.Allocator
}

// NewFolioHandler construye el handler.
func NewFolioHandler(folios *folio.Allocator) *FolioHandler {
	return &FolioHandler{folios: folios}
}

// Preview godoc
// @Summary      Siguiente folio de una clave, sin consumirlo
// @Tags         folios
// @Security     Bearer
// @Produce      json
// @Param        key  path  string  true  "Clave del contador"
// @Success      200  {object}  dto.FolioResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/folios/{key}/preview [get]
func (h *FolioHandler) Preview(c *fiber.Ctx) error {
	key := c.Params("key")
	f, err := h.folios.Preview(c.UserContext(), key)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FolioResponse{Key: key, Folio: f})
}
