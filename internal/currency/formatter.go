package currency

import (
	"math"
	"strconv"
	"strings"
)

// zeroDecimalCurrencies are currencies conventionally displayed without a
// fractional part.
var zeroDecimalCurrencies = map[string]bool{
	"IDR": true,
	"JPY": true,
}

// Format renders an amount as a display string with the currency code and a
// thousands separator, e.g. "IDR 1,500,000" or "USD 1,234.50".
func Format(amount float64, code string) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	var intPart, fracPart string
	if zeroDecimalCurrencies[code] {
		intPart = strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
	} else {
		s := strconv.FormatFloat(amount, 'f', 2, 64)
		intPart, fracPart, _ = strings.Cut(s, ".")
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString(code)
	sb.WriteByte(' ')
	sb.WriteString(groupThousands(intPart))
	if fracPart != "" {
		sb.WriteByte('.')
		sb.WriteString(fracPart)
	}
	return sb.String()
}

// groupThousands inserts comma separators into a digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var sb strings.Builder
	head := n % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
