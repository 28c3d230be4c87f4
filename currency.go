package displayfmt

import (
	"strings"

	"golang.org/x/text/currency"
)

// ISOPrecisions builds a precision table from the ISO 4217 minor units of the
// given currency codes (USD 2, JPY 0, BHD 3). Codes that are not recognized
// ISO currencies are skipped; keys use the canonical upper case code.
func ISOPrecisions(codes ...string) PrecisionTable {
	table := make(PrecisionTable, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		unit, err := currency.ParseISO(code)
		if err != nil {
			continue
		}
		scale, _ := currency.Standard.Rounding(unit)
		table[unit.String()] = scale
	}
	return table
}
