package displayfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// FormatFixed renders value with exactly precision fractional digits, a dot
// decimal separator and no grouping. Halves round away from zero. precision is
// clamped to [0, 20].
func FormatFixed(value float64, precision int) string {
	precision = clampPrecision(precision)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', precision, 64)
	}
	return decimal.NewFromFloat(value).StringFixed(int32(precision))
}

// FormatPercentage renders the magnitude of a ratio as a percentage with two
// fixed fractional digits. The sign is dropped: -0.2567 becomes "25.67%".
func FormatPercentage(value float64) string {
	value = math.Abs(value)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', 2, 64) + "%"
	}
	percent := decimal.NewFromFloat(value).Mul(decimal.NewFromInt(100))
	return percent.StringFixed(2) + "%"
}

// MaskDigits replaces every decimal digit in s with 'X', keeping separators,
// signs and prefixes so the masked string has the same shape.
func MaskDigits(s string) string {
	if s == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return 'X'
		}
		return r
	}, s)
}

func maskNumber(fn NumberFormatter) NumberFormatter {
	return func(value float64) string {
		return MaskDigits(fn(value))
	}
}
