// Package xlsx exporta la vista previa del borrador a una hoja de cálculo con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ranjan0044/invoice-builder/internal/application/drafting"
	"github.com/ranjan0044/invoice-builder/internal/application/dto"
)

const sheet = "Sheet1"

// Exporter implementa drafting.SpreadsheetExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export escribe cabecera, líneas y totales. Los importes van como números (no texto)
// para que la hoja pueda recalcular.
func (e *Exporter) Export(_ context.Context, p drafting.Preview) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	w := &sheetWriter{f: f}
	d := p.Draft

	w.row("Title", d.Title)
	w.row("Number", d.Number)
	w.row("Issue date", d.IssueDate.Format(dto.DateLayout))
	if p.ShowDueDate {
		w.row("Due date", d.DueDate.Format(dto.DateLayout))
	}
	w.row("Currency", d.Currency)
	w.row("From", d.Business.Name)
	w.row("For", d.Client.Name)
	for _, cf := range d.CustomFields {
		w.row(cf.Label, cf.Value)
	}
	w.next()

	header := []interface{}{"#", "Description"}
	if p.ShowTaxColumns {
		header = append(header, "HSN/SAC", "GST %")
	}
	header = append(header, "Quantity", "Rate", "Discount %", "Amount")
	headerRow := w.row(header...)
	if err := w.styleRow(headerRow, len(header), bold); err != nil {
		return nil, err
	}

	for _, l := range p.Lines {
		values := []interface{}{l.Index, l.Item.Description}
		if p.ShowTaxColumns {
			values = append(values, l.Item.TaxCode, l.Item.TaxRate.InexactFloat64())
		}
		values = append(values,
			l.Item.Quantity.InexactFloat64(),
			l.Item.UnitPrice.InexactFloat64(),
			l.Item.Discount.InexactFloat64(),
			l.Amount.InexactFloat64(),
		)
		w.row(values...)
	}
	w.next()

	w.row("Subtotal", p.Totals.Subtotal.InexactFloat64())
	w.row("Discount", p.Totals.TotalDiscount.InexactFloat64())
	if p.GST != nil {
		w.row("CGST", p.GST.CGST.InexactFloat64())
		w.row("SGST", p.GST.SGST.InexactFloat64())
	} else {
		w.row("Tax", p.Totals.TotalTax.InexactFloat64())
	}
	totalRow := w.row("Total ("+d.Currency+")", p.Totals.Total.InexactFloat64())
	if err := w.styleRow(totalRow, 2, bold); err != nil {
		return nil, err
	}
	w.row("Total in words", p.AmountInWords)

	if w.err != nil {
		return nil, fmt.Errorf("xlsx: escribir celdas: %w", w.err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter escribe filas consecutivas y guarda el primer error.
type sheetWriter struct {
	f   *excelize.File
	cur int
	err error
}

func (w *sheetWriter) next() { w.cur++ }

// row escribe values desde la columna A en la fila siguiente y devuelve su número.
func (w *sheetWriter) row(values ...interface{}) int {
	w.cur++
	for i, v := range values {
		if w.err != nil {
			return w.cur
		}
		cell, err := excelize.CoordinatesToCellName(i+1, w.cur)
		if err != nil {
			w.err = err
			return w.cur
		}
		w.err = w.f.SetCellValue(sheet, cell, v)
	}
	return w.cur
}

func (w *sheetWriter) styleRow(rowNo, cols, style int) error {
	from, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(cols, rowNo)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, from, to, style)
}
