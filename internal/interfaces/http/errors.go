package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ranjan0044/invoice-builder/internal/application/dto"
	"github.com/ranjan0044/invoice-builder/internal/domain"
)

// Mensajes visibles para el editor.
const (
	msgLabelRequired = "Label is required"
	msgPDFComingSoon = "PDF download feature coming soon!"
)

// writeError traduce los errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión o elemento no encontrado"})
	case errors.Is(err, domain.ErrLabelRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "LABEL_REQUIRED", Message: msgLabelRequired})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TOO_LARGE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_MEDIA", Message: err.Error()})
	case errors.Is(err, domain.ErrNotImplemented):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: msgPDFComingSoon})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
