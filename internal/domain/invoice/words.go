package invoice

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
)

// NumberingSystem agrupación usada al nombrar la parte entera.
type NumberingSystem int

const (
	// ShortScale Thousand / Million / Billion / Trillion.
	ShortScale NumberingSystem = iota
	// Indian Thousand / Lakh / Crore.
	Indian
)

// SystemFor devuelve el sistema de numeración de la moneda: indio para INR, escala corta para el resto.
func SystemFor(currency string) NumberingSystem {
	if normalizeCode(currency) == entity.CurrencyINR {
		return Indian
	}
	return ShortScale
}

var (
	smallNumbers = [...]string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tensNames = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

type scale struct {
	value int64
	name  string
}

// Escalas por debajo del trillón largo; lo que supera un quintillón se nombra por recursión.
var shortScales = []scale{
	{1_000_000_000_000_000, "Quadrillion"},
	{1_000_000_000_000, "Trillion"},
	{1_000_000_000, "Billion"},
	{1_000_000, "Million"},
	{1_000, "Thousand"},
}

var (
	quintillion = decimal.New(1, 18)
	crore       = decimal.New(1, 7)
)

// IntegerToWords nombra en inglés la parte entera de n, sin límite de magnitud. Cero ⇒ "Zero".
func IntegerToWords(n decimal.Decimal, system NumberingSystem) string {
	n = n.Truncate(0)
	if n.IsZero() {
		return "Zero"
	}
	var words []string
	if n.IsNegative() {
		words = append(words, "Minus")
		n = n.Neg()
	}
	if system == Indian {
		words = append(words, indianWords(n)...)
	} else {
		words = append(words, shortScaleWords(n)...)
	}
	return strings.Join(words, " ")
}

// NumberToWords atajo de IntegerToWords para enteros de máquina.
func NumberToWords(n int64, system NumberingSystem) string {
	return IntegerToWords(decimal.NewFromInt(n), system)
}

// hundredsWords nombra 0..999.
func hundredsWords(n int64) []string {
	var words []string
	if n >= 100 {
		words = append(words, smallNumbers[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		words = append(words, tensNames[n/10])
		n %= 10
	}
	if n > 0 {
		words = append(words, smallNumbers[n])
	}
	return words
}

// indianWords n ≥ 0; los crores se nombran a su vez en sistema indio ("One Lakh Crore").
func indianWords(n decimal.Decimal) []string {
	if n.GreaterThanOrEqual(crore) {
		q, r := n.QuoRem(crore, 0)
		words := append(indianWords(q), "Crore")
		return append(words, indianWords(r)...)
	}
	return indianBelowCrore(n.IntPart())
}

func indianBelowCrore(n int64) []string {
	switch {
	case n >= 100_000:
		words := append(hundredsWords(n/100_000), "Lakh")
		return append(words, indianBelowCrore(n%100_000)...)
	case n >= 1_000:
		words := append(hundredsWords(n/1_000), "Thousand")
		return append(words, hundredsWords(n%1_000)...)
	default:
		return hundredsWords(n)
	}
}

// shortScaleWords n ≥ 0; por encima de un quintillón el cociente se nombra de nuevo ("One Thousand Quintillion").
func shortScaleWords(n decimal.Decimal) []string {
	if n.GreaterThanOrEqual(quintillion) {
		q, r := n.QuoRem(quintillion, 0)
		words := append(shortScaleWords(q), "Quintillion")
		return append(words, shortScaleWords(r)...)
	}
	rest := n.IntPart()
	var words []string
	for _, s := range shortScales {
		if rest >= s.value {
			words = append(words, hundredsWords(rest/s.value)...)
			words = append(words, s.name)
			rest %= s.value
		}
	}
	return append(words, hundredsWords(rest)...)
}

// AmountToWords importe en letras para la línea legal "Amount in Words".
// El importe se redondea a dos decimales y se separa en parte entera y centavos/paise.
//
//	INR:  "<palabras> Rupees[ <palabras> Paise] Only"
//	otra: "<palabras> <CODE>[ and <palabras> Cents]"
func AmountToWords(amount decimal.Decimal, currency string) string {
	code := normalizeCode(currency)
	system := SystemFor(code)

	rounded := amount.Abs().Round(2)
	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()

	var b strings.Builder
	if amount.IsNegative() && !rounded.IsZero() {
		b.WriteString("Minus ")
	}
	b.WriteString(IntegerToWords(whole, system))
	if code == entity.CurrencyINR {
		b.WriteString(" Rupees")
		if cents > 0 {
			b.WriteString(" " + NumberToWords(cents, system) + " Paise")
		}
		b.WriteString(" Only")
		return b.String()
	}
	b.WriteString(" " + code)
	if cents > 0 {
		b.WriteString(" and " + NumberToWords(cents, system) + " Cents")
	}
	return b.String()
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
