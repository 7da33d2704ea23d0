// Package money formatea importes monetarios con símbolo y agrupación en-US,
// usando la escala estándar de la moneda (JPY sin decimales, USD/INR/EUR/GBP con dos).
// El formateo trabaja sobre la representación decimal exacta, sin pasar por float64.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// símbolos en convención en-US; las monedas fuera de la tabla usan su código ISO.
var symbols = map[string]string{
	"USD": "$",
	"INR": "₹",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "CA$",
	"CNY": "CN¥",
}

// Symbol devuelve el símbolo de la moneda o, si no tiene, el código seguido de un espacio.
func Symbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if s, ok := symbols[code]; ok {
		return s
	}
	return code + " "
}

// Scale número de decimales estándar de la moneda (2 si el código no es ISO 4217).
func Scale(code string) int32 {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

// FormatCurrency p.ej. FormatCurrency(1234.5, "USD") = "$1,234.50".
func FormatCurrency(amount decimal.Decimal, code string) string {
	scale := Scale(code)
	rounded := amount.Round(scale)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + Symbol(code) + groupDigits(rounded.Abs().StringFixed(scale))
}

// groupDigits separa los miles de la parte entera con comas: "1234567.89" → "1,234,567.89".
func groupDigits(fixed string) string {
	whole, frac, hasFrac := strings.Cut(fixed, ".")
	var b strings.Builder
	b.Grow(len(fixed) + len(whole)/3)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
