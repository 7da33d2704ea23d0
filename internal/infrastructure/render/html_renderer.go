// Package render genera la vista imprimible (HTML) del borrador. La impresión y el
// "guardar como PDF" quedan en manos del diálogo de impresión del navegador.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/ranjan0044/invoice-builder/internal/application/drafting"
	"github.com/ranjan0044/invoice-builder/internal/infrastructure/logo"
)

const printTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Draft.Title}} {{.Draft.Number}}</title>
  <style>
    :root { --primary: {{color .Template.Colors.Primary}}; --secondary: {{color .Template.Colors.Secondary}}; }
    * { box-sizing: border-box; }
    body { margin: 0; padding: 32px; font-family: "Helvetica Neue", Arial, sans-serif; color: #111827; background: #ffffff; }
    .doc { max-width: 820px; margin: 0 auto; }
    .header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 24px; }
    .header h1 { color: var(--primary); margin: 0 0 8px 0; }
    .header img { max-height: 96px; max-width: 180px; }
    .meta { font-size: 14px; }
    .meta .label { color: #6b7280; }
    .parties { display: flex; gap: 24px; margin-bottom: 24px; }
    .party { flex: 1; background: #f5f3ff; border-radius: 6px; padding: 12px; font-size: 14px; }
    .party h3 { color: var(--primary); margin: 0 0 6px 0; font-size: 15px; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    thead tr { background: var(--primary); color: #ffffff; }
    th, td { padding: 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    td.num, th.num { text-align: right; }
    .totals { margin-top: 16px; margin-left: auto; width: 320px; font-size: 14px; }
    .totals div { display: flex; justify-content: space-between; padding: 4px 0; }
    .totals .grand { border-top: 2px solid #111827; font-weight: 700; font-size: 18px; padding-top: 8px; }
    .words { font-size: 12px; color: #6b7280; margin-top: 4px; }
    .notes { margin-top: 24px; font-size: 13px; }
    @media print { body { padding: 0; } }
  </style>
</head>
<body>
  <div class="doc">
    <div class="header">
      <div>
        <h1>{{.Draft.Title}}</h1>
        <div class="meta"><span class="label">{{.Draft.Title}} No#</span> {{.Draft.Number}}</div>
        <div class="meta"><span class="label">{{.Draft.Title}} Date</span> {{date .Draft.IssueDate}}</div>
        {{if .ShowDueDate}}<div class="meta"><span class="label">Due Date</span> {{date .Draft.DueDate}}</div>{{end}}
        {{range .Draft.CustomFields}}<div class="meta"><span class="label">{{.Label}}</span> {{.Value}}</div>{{end}}
      </div>
      {{with logo .Draft.Business.Logo}}<img src="{{.}}" alt="Business logo" />{{end}}
    </div>

    <div class="parties">
      <div class="party">
        <h3>Billed By</h3>
        <div><strong>{{.Draft.Business.Name}}</strong></div>
        {{if .Draft.Business.Address}}<div>{{.Draft.Business.Address}}</div>{{end}}
        {{if .Draft.Business.Email}}<div>{{.Draft.Business.Email}}</div>{{end}}
        {{if .BusinessPhone}}<div>{{.BusinessPhone}}</div>{{end}}
        {{if .Draft.Business.TaxID}}<div>{{if .ShowTaxColumns}}GSTIN{{else}}Tax ID{{end}}: {{.Draft.Business.TaxID}}</div>{{end}}
      </div>
      <div class="party">
        <h3>Billed To</h3>
        <div><strong>{{.Draft.Client.Name}}</strong></div>
        {{if .Draft.Client.Address}}<div>{{.Draft.Client.Address}}</div>{{end}}
        {{if .Draft.Client.Email}}<div>{{.Draft.Client.Email}}</div>{{end}}
        {{if .ClientPhone}}<div>{{.ClientPhone}}</div>{{end}}
        {{if .Draft.Client.TaxID}}<div>{{if .ShowTaxColumns}}GSTIN{{else}}Tax ID{{end}}: {{.Draft.Client.TaxID}}</div>{{end}}
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th>#</th>
          <th>Item</th>
          {{if .ShowTaxColumns}}<th>HSN/SAC</th><th class="num">GST Rate</th>{{end}}
          <th class="num">Quantity</th>
          <th class="num">Rate</th>
          <th class="num">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}
        <tr>
          <td>{{.Index}}</td>
          <td>{{.Item.Description}}</td>
          {{if $.ShowTaxColumns}}<td>{{.Item.TaxCode}}</td><td class="num">{{.Item.TaxRate}}%</td>{{end}}
          <td class="num">{{.Item.Quantity}}</td>
          <td class="num">{{.UnitPriceText}}</td>
          <td class="num">{{.AmountText}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <div><span>Sub Total</span><span>{{.Formatted.Subtotal}}</span></div>
      {{if .Totals.TotalDiscount.IsPositive}}<div><span>Discount</span><span>-{{.Formatted.Discount}}</span></div>{{end}}
      {{if .GST}}
      <div><span>CGST</span><span>{{.Formatted.CGST}}</span></div>
      <div><span>SGST</span><span>{{.Formatted.SGST}}</span></div>
      {{else if .Totals.TotalTax.IsPositive}}
      <div><span>Tax</span><span>{{.Formatted.Tax}}</span></div>
      {{end}}
      <div class="grand"><span>Total ({{.Draft.Currency}})</span><span>{{.Formatted.Total}}</span></div>
      <div class="words">Total in words: {{.AmountInWords}}</div>
    </div>

    {{if or .Draft.Notes .Draft.Terms}}
    <div class="notes">
      {{if .Draft.Notes}}<div><strong>Notes:</strong><div>{{.Draft.Notes}}</div></div>{{end}}
      {{if .Draft.Terms}}<div><strong>Terms &amp; Conditions:</strong><div>{{.Draft.Terms}}</div></div>{{end}}
    </div>
    {{end}}
  </div>
</body>
</html>
`

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// HTMLRenderer implementa drafting.PrintRenderer.
type HTMLRenderer struct {
	tpl *template.Template
}

// NewHTMLRenderer compila la plantilla una sola vez.
func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"date":  formatDate,
		"color": sanitizeColor,
		"logo":  trustedLogo,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("print").Funcs(funcs).Parse(printTemplate)),
	}
}

// RenderHTML ejecuta la plantilla sobre la vista previa.
func (r *HTMLRenderer) RenderHTML(p drafting.Preview) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return buf.String(), nil
}

// formatDate dd/mm/yyyy, como el selector de fechas del editor.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func sanitizeColor(c string) template.CSS {
	if hexColorPattern.MatchString(c) {
		return template.CSS(c)
	}
	return template.CSS("#8B5CF6")
}

// trustedLogo solo se confía en las data-URL PNG que genera el procesador de logos.
func trustedLogo(dataURL string) template.URL {
	if !strings.HasPrefix(dataURL, logo.DataURLPrefix) {
		return ""
	}
	return template.URL(dataURL)
}
