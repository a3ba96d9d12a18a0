// Package numwords renders monetary amounts as English words using the
// Indian numbering system (crore = 1,00,00,000; lakh = 1,00,000).
package numwords

import (
	"github.com/shopspring/decimal"
)

const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var teens = []string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// words decomposes n into crore/lakh/thousand/remainder groups, largest
// unit first. A zero group renders as the empty string; only the top-level
// Convert treats a true zero specially.
func words(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		s := tens[n/10]
		if r := n % 10; r != 0 {
			s += " " + ones[r]
		}
		return s
	case n < thousand:
		s := ones[n/100] + " Hundred"
		if r := n % 100; r != 0 {
			s += " and " + words(r)
		}
		return s
	case n < lakh:
		return group(n, thousand, "Thousand")
	case n < crore:
		return group(n, lakh, "Lakh")
	default:
		return group(n, crore, "Crore")
	}
}

func group(n, unit int64, name string) string {
	s := words(n/unit) + " " + name
	if r := n % unit; r != 0 {
		s += " " + words(r)
	}
	return s
}

// Convert renders a non-negative whole number as words, ending in "Only".
// Convert(0) yields "Zero Only".
func Convert(n int64) string {
	if n == 0 {
		return "Zero Only"
	}
	return words(n) + " Only"
}

var hundred = decimal.NewFromInt(100)

// AmountInWords renders a non-negative currency amount as
// "<words> Indian Rupee[ and <words> Paise]". The paise clause is omitted
// when the fractional part is zero. Negative amounts are clamped to zero;
// callers are expected to validate sign upstream.
func AmountInWords(amount decimal.Decimal) string {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	amount = amount.Round(2)
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(hundred).IntPart()

	out := Convert(rupees) + " Indian Rupee"
	if paise > 0 {
		out += " and " + Convert(paise) + " Paise"
	}
	return out
}
