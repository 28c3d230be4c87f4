package displayfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	shortSignificantDigits = 3
	minSIExponent          = -24
	maxSIExponent          = 24
)

// FormatShort renders value with an SI prefix and three significant digits,
// e.g. 1234 -> "1.23k", 0.5 -> "500m", 0 -> "0.00". Trailing zeros are kept so
// labels along an axis line up. Locale and precision settings do not apply.
func FormatShort(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	digits, exponent := significantDigits(value, shortSignificantDigits)
	siExponent := floorDiv(exponent, 3) * 3
	siExponent = min(max(siExponent, minSIExponent), maxSIExponent)

	return sign + placeDecimalPoint(digits, exponent-siExponent+1) + siPrefix(siExponent)
}

// significantDigits rounds value to n significant digits and returns them
// without a decimal point, along with the decimal exponent of the first one.
func significantDigits(value float64, n int) (string, int) {
	formatted := strconv.FormatFloat(value, 'e', n-1, 64)
	mantissa, exp, _ := strings.Cut(formatted, "e")
	exponent, err := strconv.Atoi(exp)
	if err != nil {
		exponent = 0
	}
	return strings.Replace(mantissa, ".", "", 1), exponent
}

// placeDecimalPoint inserts a decimal point after intLen digits, padding with
// zeros on either side when needed.
func placeDecimalPoint(digits string, intLen int) string {
	switch {
	case intLen <= 0:
		return "0." + strings.Repeat("0", -intLen) + digits
	case intLen >= len(digits):
		return digits + strings.Repeat("0", intLen-len(digits))
	default:
		return digits[:intLen] + "." + digits[intLen:]
	}
}

// siPrefix returns the SI symbol for a multiple-of-three exponent. The probe
// sits one decade above the boundary so float error in humanize's log10 cannot
// push it into the neighbouring prefix.
func siPrefix(exponent int) string {
	if exponent == 0 {
		return ""
	}
	_, prefix := humanize.ComputeSI(math.Pow10(exponent + 1))
	return prefix
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
