package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Resguardos-api/internal/application/folio"
	"github.com/jhoicas/Resguardos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	SearchUC    *usecase.SearchUseCase
	ResguardoUC *usecase.ResguardoUseCase
	Folios      *folio.Allocator
	JWTSecret   string
	AdminRoles  []string // roles que pueden reasignar y forzar recargas
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(deps.AdminRoles...)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalog/muebles", catalogHandler.List)
	api.Post("/catalog/refresh", admin, catalogHandler.Refresh)
	api.Put("/muebles/reassign", admin, catalogHandler.Reassign)

	// Omnibox
	searchHandler := NewSearchHandler(deps.SearchUC)
	api.Get("/search/classify", searchHandler.Classify)
	api.Get("/search/suggest", searchHandler.Suggest)

	sessions := api.Group("/search/sessions")
	sessions.Post("/", searchHandler.CreateSession)
	sessions.Get("/:id", searchHandler.GetSession)
	sessions.Delete("/:id", searchHandler.CloseSession)
	sessions.Put("/:id/term", searchHandler.SetTerm)
	sessions.Get("/:id/omnibox", searchHandler.Omnibox)
	sessions.Post("/:id/filters", searchHandler.AddFilter)
	sessions.Delete("/:id/filters/:index", searchHandler.RemoveFilter)
	sessions.Delete("/:id/filters", searchHandler.ClearFilters)
	sessions.Put("/:id/sort", searchHandler.SetSort)
	sessions.Get("/:id/results", searchHandler.Results)

	// Resguardos
	resguardoHandler := NewResguardoHandler(deps.ResguardoUC)
	forms := api.Group("/resguardos/sessions")
	forms.Post("/", resguardoHandler.CreateSession)
	forms.Get("/:id", resguardoHandler.GetSession)
	forms.Delete("/:id", resguardoHandler.CloseSession)
	forms.Post("/:id/items", resguardoHandler.AddItem)
	forms.Delete("/:id/items/:muebleId", resguardoHandler.RemoveItem)
	forms.Delete("/:id/items", resguardoHandler.Clear)
	forms.Post("/:id/select-page", resguardoHandler.SelectPage)
	forms.Delete("/:id/conflicts/:kind", resguardoHandler.DismissConflict)
	forms.Get("/:id/folio/preview", resguardoHandler.PreviewFolio)
	forms.Post("/:id/submit", resguardoHandler.Submit)
	api.Get("/resguardos/:folio/pdf", resguardoHandler.PDF)

	// Folios
	folioHandler := NewFolioHandler(deps.Folios)
	api.Get("/folios/:key/preview", folioHandler.Preview)
}
