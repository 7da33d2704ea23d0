// Package logo procesa el logo subido por el selector de archivos: lo decodifica,
// lo ajusta a la caja del encabezado y lo devuelve como data-URL PNG.
package logo

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ranjan0044/invoice-builder/internal/domain"
)

// DataURLPrefix prefijo de los logos generados.
const DataURLPrefix = "data:image/png;base64,"

// Processor implementa drafting.LogoProcessor con disintegration/imaging.
type Processor struct {
	maxWidth  int
	maxHeight int
	maxBytes  int
}

// NewProcessor construye el procesador. maxBytes limita el archivo de entrada.
func NewProcessor(maxWidth, maxHeight, maxBytes int) *Processor {
	return &Processor{maxWidth: maxWidth, maxHeight: maxHeight, maxBytes: maxBytes}
}

// Process decodifica (PNG, JPEG, GIF, BMP, TIFF), reduce si excede la caja y codifica en PNG.
func (p *Processor) Process(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("logo vacío: %w", domain.ErrInvalidInput)
	}
	if p.maxBytes > 0 && len(data) > p.maxBytes {
		return "", fmt.Errorf("logo de %d bytes (máx. %d): %w", len(data), p.maxBytes, domain.ErrTooLarge)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decodificar logo: %v: %w", err, domain.ErrUnsupportedMedia)
	}
	b := img.Bounds()
	if p.maxWidth > 0 && p.maxHeight > 0 && (b.Dx() > p.maxWidth || b.Dy() > p.maxHeight) {
		img = imaging.Fit(img, p.maxWidth, p.maxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("codificar logo: %w", err)
	}
	return DataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
