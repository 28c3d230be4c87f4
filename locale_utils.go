package displayfmt

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// localeTag resolves a normalized locale into a language tag. Malformed tags are
// left to language.Make, which degrades to the closest valid tag or und.
func localeTag(locale string) language.Tag {
	return language.Make(normalizeLocale(locale))
}

// clampPrecision keeps precision inside the domain the number formatter accepts.
func clampPrecision(precision int) int {
	if precision < MinPrecision {
		return MinPrecision
	}
	if precision > MaxPrecision {
		return MaxPrecision
	}
	return precision
}
