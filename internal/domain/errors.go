package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrLabelRequired    = errors.New("la etiqueta es obligatoria")
	ErrNotImplemented   = errors.New("funcionalidad no implementada")
	ErrUnsupportedMedia = errors.New("tipo de archivo no soportado")
	ErrTooLarge         = errors.New("archivo demasiado grande")
)
