// Package money formats cent amounts for display. Prices are carried as
// integer cents everywhere; formatting is the only place decimals appear.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders cents as a Brazilian Real string, e.g. 7000 ->
// "R$ 70,00" and 123456 -> "R$ 1.234,56".
func FormatBRL(cents int64) string {
	value := decimal.New(cents, -2)
	negative := value.IsNegative()
	fixed := value.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString("R$ ")
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
