package displayfmt

import (
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// defaultMaxFractionDigits matches the decimal pattern most CLDR locales ship (#,##0.###).
const defaultMaxFractionDigits = 3

// LocaleFormatter returns a number formatter for locale at the given precision.
//
// Without a locale the output is fixed-point with exactly precision fractional
// digits, independent of any locale. With a locale, underscore tags are
// normalized (en_US -> en-US), precision is clamped to [0, 20] and used as the
// minimum number of fractional digits; the maximum stays at the locale default
// of three unless the minimum exceeds it.
func LocaleFormatter(locale string, precision int) NumberFormatter {
	precision = clampPrecision(precision)

	if strings.TrimSpace(locale) == "" {
		return func(value float64) string {
			return FormatFixed(value, precision)
		}
	}

	printer := message.NewPrinter(localeTag(locale))
	opts := []number.Option{
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(max(precision, defaultMaxFractionDigits)),
	}

	return func(value float64) string {
		return printer.Sprintf("%v", number.Decimal(value, opts...))
	}
}
