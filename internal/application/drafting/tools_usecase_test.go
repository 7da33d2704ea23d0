package drafting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ranjan0044/invoice-builder/internal/application/drafting"
	"github.com/ranjan0044/invoice-builder/internal/application/dto"
	"github.com/ranjan0044/invoice-builder/internal/domain/invoice"
)

func newTools() *drafting.ToolsUseCase {
	numbers := invoice.NewNumberGeneratorWith(
		func() time.Time { return time.UnixMilli(42) },
		func(int) int { return 999 },
	)
	return drafting.NewToolsUseCase(numbers, "INV")
}

func TestTools_Totals(t *testing.T) {
	out := newTools().Totals(context.Background(), dto.TotalsRequest{
		Items:   []dto.LineItemDTO{{Quantity: dec("1"), UnitPrice: dec("100"), Discount: dec("10")}},
		TaxRate: dec("10"),
	})
	assert.True(t, out.Totals.Subtotal.Equal(dec("100")))
	assert.True(t, out.Totals.TotalDiscount.Equal(dec("10")))
	assert.True(t, out.Totals.AfterDiscount.Equal(dec("90")))
	assert.True(t, out.Totals.TotalTax.Equal(dec("9")))
	assert.True(t, out.Totals.Total.Equal(dec("99")))
	assert.Equal(t, "$99.00", out.Formatted.Total)
	assert.Equal(t, "Ninety Nine USD", out.AmountInWords)
}

func TestTools_Words(t *testing.T) {
	out := newTools().Words(context.Background(), dto.WordsRequest{Amount: dec("0"), Currency: "inr"})
	assert.Equal(t, "Zero Rupees Only", out.Words)
	assert.Equal(t, "₹0.00", out.Formatted)
}

func TestTools_DocumentNumber(t *testing.T) {
	tools := newTools()
	assert.Equal(t, "INV-000042-999", tools.DocumentNumber(context.Background(), "").Number)
	assert.Equal(t, "EST-000042-999", tools.DocumentNumber(context.Background(), "EST").Number)
}
