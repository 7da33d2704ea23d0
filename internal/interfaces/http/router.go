package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ranjan0044/invoice-builder/internal/application/drafting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC *drafting.SessionUseCase
	ToolsUC   *drafting.ToolsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	tools := NewToolsHandler(deps.ToolsUC)
	api.Get("/templates", tools.Templates)

	toolsGroup := api.Group("/tools")
	toolsGroup.Post("/totals", tools.Totals)
	toolsGroup.Post("/words", tools.Words)
	toolsGroup.Get("/document-number", tools.DocumentNumber)

	// Sesiones de edición
	drafts := api.Group("/drafts")
	h := NewDraftHandler(deps.SessionUC)
	drafts.Post("/", h.Create)
	drafts.Get("/:id", h.Get)
	drafts.Patch("/:id", h.Update)
	drafts.Delete("/:id", h.Discard)
	drafts.Put("/:id/kind", h.SetKind)

	drafts.Post("/:id/items", h.AddItem)
	drafts.Patch("/:id/items/:itemId", h.UpdateItem)
	drafts.Delete("/:id/items/:itemId", h.RemoveItem)
	drafts.Post("/:id/items/:itemId/duplicate", h.DuplicateItem)

	drafts.Post("/:id/custom-fields", h.AddCustomField)
	drafts.Patch("/:id/custom-fields/:fieldId", h.UpdateCustomField)
	drafts.Delete("/:id/custom-fields/:fieldId", h.RemoveCustomField)

	drafts.Put("/:id/logo", h.UploadLogo)
	drafts.Delete("/:id/logo", h.ClearLogo)

	// Salidas
	drafts.Get("/:id/preview", h.Preview)
	drafts.Get("/:id/print", h.Print)
	drafts.Get("/:id/export.xlsx", h.ExportSpreadsheet)
	drafts.Get("/:id/export.pdf", h.ExportPDF)

	// Estado de la interfaz
	drafts.Get("/:id/view", h.View)
	drafts.Post("/:id/view/dismiss", h.DismissView)
	drafts.Post("/:id/view/:flag/:transition", h.TransitionView)
	drafts.Get("/:id/title-suggestions", h.TitleSuggestions)
}
