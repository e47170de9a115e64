package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRM formats a decimal amount as a string like "RM 1,234.50".
// Uses comma as thousands separator and two decimal places (en-MY style).
// Rounding to 2 decimals happens here, at display time, half away from zero.
func FormatRM(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:] // includes the dot

	var b strings.Builder
	// Pre-allocate: digits + separators + prefix
	b.Grow(len(s) + len(intPart)/3 + 4)
	if neg {
		b.WriteString("-RM ")
	} else {
		b.WriteString("RM ")
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)

	return b.String()
}

// FormatAmount formats a decimal amount with two decimals and no currency
// prefix, for table cells whose column header already names the currency
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
