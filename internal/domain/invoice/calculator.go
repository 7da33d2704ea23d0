// Package invoice reúne la lógica pura del documento: cálculo de totales,
// importe en letras y generación del número de borrador.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// percentOf devuelve base * rate / 100.
func percentOf(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}

// LineAmount importe bruto de la línea (cantidad * precio unitario).
func LineAmount(item entity.LineItem) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice)
}

// ItemDiscount descuento propio de la línea sobre su importe bruto.
func ItemDiscount(item entity.LineItem) decimal.Decimal {
	return percentOf(LineAmount(item), item.Discount)
}

// ItemTax impuesto propio de la línea, calculado sobre el importe ya descontado.
func ItemTax(item entity.LineItem) decimal.Decimal {
	return percentOf(LineAmount(item).Sub(ItemDiscount(item)), item.TaxRate)
}

// ItemTotal importe de la línea tras su descuento y su impuesto.
func ItemTotal(item entity.LineItem) decimal.Decimal {
	afterDiscount := LineAmount(item).Sub(ItemDiscount(item))
	return afterDiscount.Add(percentOf(afterDiscount, item.TaxRate))
}

// CalculateTotals deriva subtotal, descuento, impuesto y total.
//
//	subtotal      = Σ qty*price
//	totalDiscount = Σ descuento de línea + subtotal*globalDiscount/100
//	afterDiscount = subtotal - totalDiscount
//	totalTax      = Σ impuesto de línea + afterDiscount*globalTax/100
//	total         = afterDiscount + totalTax
//
// El descuento global se aplica sobre el subtotal bruto (no se compone con el de línea)
// y el impuesto global se suma al de línea sobre el agregado ya descontado.
// No valida signos: entradas negativas se aceptan tal cual.
func CalculateTotals(items []entity.LineItem, globalTaxRate, globalDiscount decimal.Decimal) entity.Totals {
	var subtotal, itemDiscounts, itemTaxes decimal.Decimal
	for _, item := range items {
		subtotal = subtotal.Add(LineAmount(item))
		itemDiscounts = itemDiscounts.Add(ItemDiscount(item))
		itemTaxes = itemTaxes.Add(ItemTax(item))
	}

	totalDiscount := itemDiscounts.Add(percentOf(subtotal, globalDiscount))
	afterDiscount := subtotal.Sub(totalDiscount)
	totalTax := itemTaxes.Add(percentOf(afterDiscount, globalTaxRate))

	return entity.Totals{
		Subtotal:      subtotal,
		TotalDiscount: totalDiscount,
		TotalTax:      totalTax,
		Total:         afterDiscount.Add(totalTax),
	}
}

// DraftTotals atajo de CalculateTotals con las líneas y porcentajes del borrador.
func DraftTotals(d entity.DocumentDraft) entity.Totals {
	return CalculateTotals(d.Items, d.TaxRate, d.Discount)
}

// GSTSplit desglose del impuesto total en partes central y estatal.
type GSTSplit struct {
	CGST decimal.Decimal
	SGST decimal.Decimal
}

// SplitGST reparte el impuesto total a partes iguales entre CGST y SGST.
func SplitGST(totalTax decimal.Decimal) GSTSplit {
	half := totalTax.Div(decimal.NewFromInt(2))
	return GSTSplit{CGST: half, SGST: half}
}
