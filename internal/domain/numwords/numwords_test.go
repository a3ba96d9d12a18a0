package numwords_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/robobooks/robobooks-api/internal/domain/numwords"
)

// TestConvert_GoldenVectors locks down the exact wording of the whole
// number converter. These strings are printed on customer-facing
// documents; changing them changes existing PDFs.
func TestConvert_GoldenVectors(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "Zero Only"},
		{1, "One Only"},
		{7, "Seven Only"},
		{10, "Ten Only"},
		{14, "Fourteen Only"},
		{19, "Nineteen Only"},
		{20, "Twenty Only"},
		{42, "Forty Two Only"},
		{99, "Ninety Nine Only"},
		{100, "One Hundred Only"},
		{101, "One Hundred and One Only"},
		{115, "One Hundred and Fifteen Only"},
		{150, "One Hundred and Fifty Only"},
		{999, "Nine Hundred and Ninety Nine Only"},
		{1_000, "One Thousand Only"},
		{1_001, "One Thousand One Only"},
		{25_500, "Twenty Five Thousand Five Hundred Only"},
		{1_00_000, "One Lakh Only"},
		{1_50_000, "One Lakh Fifty Thousand Only"},
		{12_34_567, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Only"},
		{1_00_00_000, "One Crore Only"},
		{2_50_00_000, "Two Crore Fifty Lakh Only"},
		{9_87_65_432, "Nine Crore Eighty Seven Lakh Sixty Five Thousand Four Hundred and Thirty Two Only"},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, numwords.Convert(tc.n), "Convert(%d)", tc.n)
	}
}

// TestConvert_ZeroSubgroupRendersEmpty verifies the deliberate asymmetry:
// a true zero reads "Zero Only", but a zero group inside a nonzero number
// is silently skipped rather than rendered as "Zero".
func TestConvert_ZeroSubgroupRendersEmpty(t *testing.T) {
	assert.Equal(t, "One Lakh Only", numwords.Convert(1_00_000),
		"zero thousand/remainder groups must not appear")
	assert.Equal(t, "One Crore One Only", numwords.Convert(1_00_00_001),
		"only the nonzero groups appear")
}

func TestAmountInWords_WholeRupees(t *testing.T) {
	got := numwords.AmountInWords(decimal.NewFromFloat(100.00))
	assert.Equal(t, "One Hundred Only Indian Rupee", got,
		"zero paise must omit the paise clause entirely")
}

func TestAmountInWords_RupeesAndPaise(t *testing.T) {
	got := numwords.AmountInWords(decimal.NewFromFloat(100.50))
	assert.Equal(t, "One Hundred Only Indian Rupee and Fifty Only Paise", got)

	got = numwords.AmountInWords(decimal.NewFromFloat(1234.05))
	assert.Equal(t, "One Thousand Two Hundred and Thirty Four Only Indian Rupee and Five Only Paise", got)
}

func TestAmountInWords_Zero(t *testing.T) {
	assert.Equal(t, "Zero Only Indian Rupee", numwords.AmountInWords(decimal.Zero))
}

func TestAmountInWords_PaiseOnly(t *testing.T) {
	got := numwords.AmountInWords(decimal.NewFromFloat(0.75))
	assert.Equal(t, "Zero Only Indian Rupee and Seventy Five Only Paise", got)
}

func TestAmountInWords_NegativeClampsToZero(t *testing.T) {
	assert.Equal(t, "Zero Only Indian Rupee", numwords.AmountInWords(decimal.NewFromInt(-5)))
}
