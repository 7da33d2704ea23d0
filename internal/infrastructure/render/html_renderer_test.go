package render_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjan0044/invoice-builder/internal/application/drafting"
	"github.com/ranjan0044/invoice-builder/internal/domain/draft"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
	"github.com/ranjan0044/invoice-builder/internal/domain/viewstate"
	"github.com/ranjan0044/invoice-builder/internal/infrastructure/render"
)

func preview(kind entity.DocumentKind, mutate func(d *entity.DocumentDraft)) drafting.Preview {
	e := draft.NewEditor(draft.DefaultRules())
	d := e.New(kind, "INV-123456-007", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	d.Business.Name = "Acme Pvt Ltd"
	d.Client.Name = "Globex"
	d.Items[0].Description = "Consultoría"
	d.Items[0].Quantity = decimal.NewFromInt(2)
	d.Items[0].UnitPrice = decimal.NewFromInt(100)
	if mutate != nil {
		mutate(&d)
	}
	return drafting.BuildPreview(entity.Session{ID: "s1", Draft: d, View: viewstate.Default()})
}

func TestRenderHTML_FacturaConImpuestos(t *testing.T) {
	html, err := render.NewHTMLRenderer().RenderHTML(preview(entity.DocumentKindTax, nil))
	require.NoError(t, err)

	assert.Contains(t, html, "INV-123456-007")
	assert.Contains(t, html, "Acme Pvt Ltd")
	assert.Contains(t, html, "HSN/SAC")
	assert.Contains(t, html, "CGST")
	assert.Contains(t, html, "₹236.00")
	assert.Contains(t, html, "Two Hundred Thirty Six Rupees Only")
	assert.Contains(t, html, "25/03/2024")
	assert.Contains(t, html, "--primary: #8B5CF6")
}

func TestRenderHTML_SinImpuestos(t *testing.T) {
	html, err := render.NewHTMLRenderer().RenderHTML(preview(entity.DocumentKindNonTax, func(d *entity.DocumentDraft) {
		d.Notes = "Gracias por su compra"
	}))
	require.NoError(t, err)

	assert.NotContains(t, html, "HSN/SAC")
	assert.NotContains(t, html, "CGST")
	assert.Contains(t, html, "$200.00")
	assert.Contains(t, html, "Gracias por su compra")
}

func TestRenderHTML_EscapaContenido(t *testing.T) {
	html, err := render.NewHTMLRenderer().RenderHTML(preview(entity.DocumentKindNonTax, func(d *entity.DocumentDraft) {
		d.Client.Name = `<script>alert("x")</script>`
		d.Business.Logo = `javascript:alert(1)`
	}))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "javascript:alert")
	assert.NotContains(t, html, "<img")
}

func TestRenderHTML_Logo(t *testing.T) {
	const logo = "data:image/png;base64,iVBORw0KGgo="
	html, err := render.NewHTMLRenderer().RenderHTML(preview(entity.DocumentKindNonTax, func(d *entity.DocumentDraft) {
		d.Business.Logo = logo
	}))
	require.NoError(t, err)
	assert.Contains(t, html, `src="`+logo+`"`)
}
