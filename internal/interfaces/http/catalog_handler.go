package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Resguardos-api/internal/application/dto"
	"github.com/jhoicas/Resguardos-api/internal/application/usecase"
)

// CatalogHandler consultas directas al catálogo de muebles y reasignaciones.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Consultar muebles en el servidor
// @Description  Filtros "campo:valor" o "campo:eq:valor". Los parámetros all se unen con AND; los any, con OR.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        all     query  []string  false  "Filtros obligatorios"  collectionFormat(multi)
// @Param        any     query  []string  false  "Filtros alternativos"  collectionFormat(multi)
// @Param        sort    query  string    false  "Campo de orden"        default(id)
// @Param        desc    query  bool      false  "Orden descendente"
// @Param        limit   query  int       false  "Límite"                default(20)
// @Param        offset  query  int       false  "Offset"                default(0)
// @Success      200     {object}  dto.MuebleListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /api/catalog/muebles [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	in := dto.MuebleListRequest{
		Sort: c.Query("sort"),
		Desc: c.QueryBool("desc", false),
		Page: dto.PageRequest{Limit: c.QueryInt("limit", dto.DefaultPageLimit), Offset: c.QueryInt("offset", 0)},
	}
	var err error
	if in.All, err = parseFilters(c, "all"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if in.Any, err = parseFilters(c, "any"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseFilters lee los valores repetidos de un parámetro de query con forma campo[:op]:valor.
func parseFilters(c *fiber.Ctx, key string) ([]dto.FilterRequest, error) {
	var out []dto.FilterRequest
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		parts := strings.SplitN(string(raw), ":", 3)
		switch len(parts) {
		case 2:
			out = append(out, dto.FilterRequest{Field: parts[0], Value: parts[1]})
		case 3:
			out = append(out, dto.FilterRequest{Field: parts[0], Op: parts[1], Value: parts[2]})
		default:
			return nil, fiber.NewError(fiber.StatusBadRequest, "filtro "+key+" con formato inválido: "+string(raw))
		}
	}
	return out, nil
}

// Refresh godoc
// @Summary      Programar recarga de la instantánea del catálogo
// @Tags         catalog
// @Security     Bearer
// @Success      202
// @Router       /api/catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *fiber.Ctx) error {
	h.uc.RequestRefresh()
	return c.SendStatus(fiber.StatusAccepted)
}

// Reassign godoc
// @Summary      Reasignar área y/o director de muebles
// @Tags         muebles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReassignRequest  true  "Muebles y nuevos valores"
// @Success      200   {object}  dto.ReassignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/muebles/reassign [put]
func (h *CatalogHandler) Reassign(c *fiber.Ctx) error {
	var in dto.ReassignRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Reassign(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
