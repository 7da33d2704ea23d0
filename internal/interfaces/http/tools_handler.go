package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ranjan0044/invoice-builder/internal/application/drafting"
	"github.com/ranjan0044/invoice-builder/internal/application/dto"
)

// ToolsHandler cálculos sin sesión: totales, importe en letras y numeración.
type ToolsHandler struct {
	uc *drafting.ToolsUseCase
}

// NewToolsHandler construye el handler.
func NewToolsHandler(uc *drafting.ToolsUseCase) *ToolsHandler {
	return &ToolsHandler{uc: uc}
}

// Totals godoc
// @Summary      Calcular totales de una lista de líneas
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TotalsRequest  true  "Líneas, impuesto y descuento global"
// @Success      200   {object}  dto.TotalsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tools/totals [post]
func (h *ToolsHandler) Totals(c *fiber.Ctx) error {
	var in dto.TotalsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	return c.JSON(h.uc.Totals(c.Context(), in))
}

// Words godoc
// @Summary      Importe en letras
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WordsRequest  true  "Importe y moneda"
// @Success      200   {object}  dto.WordsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tools/words [post]
func (h *ToolsHandler) Words(c *fiber.Ctx) error {
	var in dto.WordsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	return c.JSON(h.uc.Words(c.Context(), in))
}

// DocumentNumber GET /api/tools/document-number?prefix=INV
func (h *ToolsHandler) DocumentNumber(c *fiber.Ctx) error {
	return c.JSON(h.uc.DocumentNumber(c.Context(), c.Query("prefix")))
}

// Templates GET /api/templates
func (h *ToolsHandler) Templates(c *fiber.Ctx) error {
	return c.JSON(drafting.Templates())
}
