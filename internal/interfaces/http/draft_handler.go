package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/ranjan0044/invoice-builder/internal/application/drafting"
	"github.com/ranjan0044/invoice-builder/internal/application/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DraftHandler maneja las sesiones de edición de borradores.
type DraftHandler struct {
	uc *drafting.SessionUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *drafting.SessionUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir sesión de edición con un borrador nuevo
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDraftRequest  false  "Tipo de documento y prefijo del número"
// @Success      201   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/drafts [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDraftRequest
	if len(c.Body()) > 0 {
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener el borrador de una sesión
// @Tags         drafts
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Fusionar cambios en el borrador
// @Description  Campo ausente = sin cambio. business, client, items y custom_fields reemplazan el valor completo.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la sesión"
// @Param        body  body  dto.UpdateDraftRequest  true  "Cambios"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [patch]
func (h *DraftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDraftRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Discard cierra la sesión y descarta el borrador.
// DELETE /api/drafts/:id
func (h *DraftHandler) Discard(c *fiber.Ctx) error {
	if err := h.uc.Discard(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetKind godoc
// @Summary      Cambiar entre factura con impuestos y sin impuestos
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la sesión"
// @Param        body  body  dto.SetKindRequest  true  "Tipo"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/kind [put]
func (h *DraftHandler) SetKind(c *fiber.Ctx) error {
	var in dto.SetKindRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.SetKind(c.Context(), c.Params("id"), in.Kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem agrega una línea; el cuerpo con valores iniciales es opcional.
// POST /api/drafts/:id/items
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	var in dto.ItemPatchRequest
	if len(c.Body()) > 0 {
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
	}
	out, err := h.uc.AddItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem PATCH /api/drafts/:id/items/:itemId
func (h *DraftHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.ItemPatchRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateItem(c.Context(), c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem quita la línea salvo que sea la única.
// DELETE /api/drafts/:id/items/:itemId
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DuplicateItem POST /api/drafts/:id/items/:itemId/duplicate
func (h *DraftHandler) DuplicateItem(c *fiber.Ctx) error {
	out, err := h.uc.DuplicateItem(c.Context(), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddCustomField godoc
// @Summary      Agregar campo personalizado
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la sesión"
// @Param        body  body  dto.CustomFieldRequest  true  "Etiqueta y valor"
// @Success      201   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/custom-fields [post]
func (h *DraftHandler) AddCustomField(c *fiber.Ctx) error {
	var in dto.CustomFieldRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddCustomField(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCustomField PATCH /api/drafts/:id/custom-fields/:fieldId
func (h *DraftHandler) UpdateCustomField(c *fiber.Ctx) error {
	var in dto.CustomFieldPatchRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateCustomField(c.Context(), c.Params("id"), c.Params("fieldId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveCustomField DELETE /api/drafts/:id/custom-fields/:fieldId
func (h *DraftHandler) RemoveCustomField(c *fiber.Ctx) error {
	out, err := h.uc.RemoveCustomField(c.Context(), c.Params("id"), c.Params("fieldId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UploadLogo godoc
// @Summary      Subir logo del emisor
// @Tags         drafts
// @Accept       mpfd
// @Produce      json
// @Param        id    path      string  true  "ID de la sesión"
// @Param        logo  formData  file    true  "Imagen (png, jpeg, gif)"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/logo [put]
func (h *DraftHandler) UploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo 'logo' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UploadLogo(c.Context(), c.Params("id"), data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ClearLogo DELETE /api/drafts/:id/logo
func (h *DraftHandler) ClearLogo(c *fiber.Ctx) error {
	out, err := h.uc.ClearLogo(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Vista previa en vivo
// @Tags         drafts
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.PreviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/preview [get]
func (h *DraftHandler) Preview(c *fiber.Ctx) error {
	out, err := h.uc.Preview(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Print devuelve la vista imprimible en HTML.
// GET /api/drafts/:id/print
func (h *DraftHandler) Print(c *fiber.Ctx) error {
	html, err := h.uc.RenderPrint(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ExportSpreadsheet GET /api/drafts/:id/export.xlsx
func (h *DraftHandler) ExportSpreadsheet(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportSpreadsheet(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// ExportPDF GET /api/drafts/:id/export.pdf
func (h *DraftHandler) ExportPDF(c *fiber.Ctx) error {
	return writeError(c, h.uc.ExportPDF(c.Context(), c.Params("id")))
}

// View estado de la interfaz del editor.
// GET /api/drafts/:id/view
func (h *DraftHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TransitionView abre, cierra o alterna un flag de la interfaz.
// POST /api/drafts/:id/view/:flag/:transition
func (h *DraftHandler) TransitionView(c *fiber.Ctx) error {
	out, err := h.uc.TransitionView(c.Context(), c.Params("id"), c.Params("flag"), c.Params("transition"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DismissView cierra desplegables, modales y calendarios (click fuera / Escape).
// POST /api/drafts/:id/view/dismiss
func (h *DraftHandler) DismissView(c *fiber.Ctx) error {
	out, err := h.uc.DismissView(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TitleSuggestions GET /api/drafts/:id/title-suggestions
func (h *DraftHandler) TitleSuggestions(c *fiber.Ctx) error {
	out, err := h.uc.TitleSuggestions(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
