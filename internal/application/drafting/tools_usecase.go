package drafting

import (
	"context"

	"github.com/ranjan0044/invoice-builder/internal/application/dto"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
	"github.com/ranjan0044/invoice-builder/internal/domain/invoice"
	"github.com/ranjan0044/invoice-builder/pkg/money"
)

// ToolsUseCase cálculos sin sesión: totales, importe en letras y número de documento.
type ToolsUseCase struct {
	numbers *invoice.NumberGenerator
	prefix  string
}

// NewToolsUseCase construye el caso de uso.
func NewToolsUseCase(numbers *invoice.NumberGenerator, defaultPrefix string) *ToolsUseCase {
	return &ToolsUseCase{numbers: numbers, prefix: defaultPrefix}
}

// Totals calcula los totales de una lista de líneas con los porcentajes globales dados.
func (uc *ToolsUseCase) Totals(ctx context.Context, in dto.TotalsRequest) *dto.TotalsResponse {
	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, fromItemDTO(it))
	}
	totals := invoice.CalculateTotals(items, in.TaxRate, in.Discount)

	cur := normalizeCurrency(in.Currency)
	if cur == "" {
		cur = entity.CurrencyUSD
	}
	return &dto.TotalsResponse{
		Totals: ToTotalsDTO(totals),
		Formatted: dto.FormattedTotalsDTO{
			Subtotal: money.FormatCurrency(totals.Subtotal, cur),
			Discount: money.FormatCurrency(totals.TotalDiscount, cur),
			Tax:      money.FormatCurrency(totals.TotalTax, cur),
			Total:    money.FormatCurrency(totals.Total, cur),
		},
		AmountInWords: invoice.AmountToWords(totals.Total, cur),
	}
}

// Words importe en letras y formateado.
func (uc *ToolsUseCase) Words(ctx context.Context, in dto.WordsRequest) *dto.WordsResponse {
	cur := normalizeCurrency(in.Currency)
	return &dto.WordsResponse{
		Words:     invoice.AmountToWords(in.Amount, cur),
		Formatted: money.FormatCurrency(in.Amount, cur),
	}
}

// DocumentNumber genera un número de documento con el prefijo dado (o el configurado).
func (uc *ToolsUseCase) DocumentNumber(ctx context.Context, prefix string) *dto.DocumentNumberResponse {
	if prefix == "" {
		prefix = uc.prefix
	}
	return &dto.DocumentNumberResponse{Number: uc.numbers.Generate(prefix)}
}
