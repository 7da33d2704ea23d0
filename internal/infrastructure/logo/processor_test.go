package logo_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjan0044/invoice-builder/internal/domain"
	"github.com/ranjan0044/invoice-builder/internal/infrastructure/logo"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: 139, G: 92, B: 246, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	require.True(t, strings.HasPrefix(dataURL, logo.DataURLPrefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, logo.DataURLPrefix))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestProcess_ReduceALaCaja(t *testing.T) {
	p := logo.NewProcessor(400, 200, 1<<20)
	out, err := p.Process(pngBytes(t, 800, 200))
	require.NoError(t, err)

	b := decodeDataURL(t, out).Bounds()
	assert.Equal(t, 400, b.Dx())
	assert.Equal(t, 100, b.Dy())
}

func TestProcess_ImagenPequeñaSinCambios(t *testing.T) {
	p := logo.NewProcessor(400, 200, 1<<20)
	out, err := p.Process(pngBytes(t, 120, 60))
	require.NoError(t, err)

	b := decodeDataURL(t, out).Bounds()
	assert.Equal(t, 120, b.Dx())
	assert.Equal(t, 60, b.Dy())
}

func TestProcess_Errores(t *testing.T) {
	p := logo.NewProcessor(400, 200, 1024)

	_, err := p.Process(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = p.Process([]byte("esto no es una imagen"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	_, err = p.Process(make([]byte, 2048))
	assert.ErrorIs(t, err, domain.ErrTooLarge)
}
