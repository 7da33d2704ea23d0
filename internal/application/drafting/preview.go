package drafting

import (
	"github.com/shopspring/decimal"

	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
	"github.com/ranjan0044/invoice-builder/internal/domain/invoice"
	"github.com/ranjan0044/invoice-builder/internal/domain/viewstate"
	"github.com/ranjan0044/invoice-builder/pkg/money"
	"github.com/ranjan0044/invoice-builder/pkg/phone"
)

// PreviewLine fila de la vista previa con su importe bruto.
type PreviewLine struct {
	Index         int // 1-based, orden de inserción
	Item          entity.LineItem
	Amount        decimal.Decimal
	UnitPriceText string
	AmountText    string
}

// FormattedTotals totales ya formateados con la moneda del documento.
type FormattedTotals struct {
	Subtotal string
	Discount string
	Tax      string
	CGST     string
	SGST     string
	Total    string
}

// Preview modelo de la vista previa en vivo, común a JSON, HTML y hoja de cálculo.
type Preview struct {
	SessionID      string
	Draft          entity.DocumentDraft
	Template       entity.InvoiceTemplate
	ShowTaxColumns bool // HSN/SAC y tasa GST solo en facturas con impuestos
	ShowDueDate    bool
	BusinessPhone  string
	ClientPhone    string
	Lines          []PreviewLine
	Totals         entity.Totals
	GST            *invoice.GSTSplit // nil salvo factura con impuestos y total de impuesto > 0
	Formatted      FormattedTotals
	AmountInWords  string
}

// BuildPreview re-deriva totales y textos a partir de la sesión.
func BuildPreview(s entity.Session) Preview {
	d := s.Draft
	totals := invoice.DraftTotals(d)
	cur := d.Currency

	p := Preview{
		SessionID:      s.ID,
		Draft:          d,
		Template:       entity.FindTemplate(d.Template),
		ShowTaxColumns: d.Kind == entity.DocumentKindTax,
		ShowDueDate:    s.View.IsOpen(viewstate.DueDateVisible),
		BusinessPhone:  phone.Display(d.Business.Phone, d.Business.Country),
		ClientPhone:    phone.Display(d.Client.Phone, d.Client.Country),
		Lines:          make([]PreviewLine, 0, len(d.Items)),
		Totals:         totals,
		Formatted: FormattedTotals{
			Subtotal: money.FormatCurrency(totals.Subtotal, cur),
			Discount: money.FormatCurrency(totals.TotalDiscount, cur),
			Tax:      money.FormatCurrency(totals.TotalTax, cur),
			Total:    money.FormatCurrency(totals.Total, cur),
		},
		AmountInWords: invoice.AmountToWords(totals.Total, cur),
	}
	for i, item := range d.Items {
		amount := invoice.LineAmount(item)
		p.Lines = append(p.Lines, PreviewLine{
			Index:         i + 1,
			Item:          item,
			Amount:        amount,
			UnitPriceText: money.FormatCurrency(item.UnitPrice, cur),
			AmountText:    money.FormatCurrency(amount, cur),
		})
	}
	if p.ShowTaxColumns && totals.TotalTax.IsPositive() {
		split := invoice.SplitGST(totals.TotalTax)
		p.GST = &split
		p.Formatted.CGST = money.FormatCurrency(split.CGST, cur)
		p.Formatted.SGST = money.FormatCurrency(split.SGST, cur)
	}
	return p
}
