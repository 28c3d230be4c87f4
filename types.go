package displayfmt

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPrecision is the fractional digit count used when a currency has no
// configured precision.
const DefaultPrecision = 2

// Precision bounds accepted by the locale number formatter.
const (
	MinPrecision = 0
	MaxPrecision = 20
)

// NumberFormatter renders a number as a display string.
type NumberFormatter func(value float64) string

// AmountFormatter renders a number followed by its currency code.
type AmountFormatter func(value float64, currency string) string

// DateFormatter renders a date label.
type DateFormatter func(t time.Time) string

// FormatterContext is the pair of number formatters derived from the current
// settings. It is a value: recomputed on change, never mutated.
type FormatterContext struct {
	Short  NumberFormatter
	Amount AmountFormatter
}

// Interval is the reporting period granularity used to pick date labels.
type Interval string

const (
	IntervalYear    Interval = "year"
	IntervalQuarter Interval = "quarter"
	IntervalMonth   Interval = "month"
	IntervalWeek    Interval = "week"
	IntervalDay     Interval = "day"
)

// DefaultInterval is used when settings do not name one.
const DefaultInterval = IntervalMonth

// Intervals lists every supported interval, coarsest first.
func Intervals() []Interval {
	return []Interval{IntervalYear, IntervalQuarter, IntervalMonth, IntervalWeek, IntervalDay}
}

// ParseInterval converts a tag into an Interval. Matching is case-insensitive.
func ParseInterval(value string) (Interval, error) {
	candidate := Interval(strings.ToLower(strings.TrimSpace(value)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInterval, value)
}

// Valid reports whether i is one of the supported intervals.
func (i Interval) Valid() bool {
	switch i {
	case IntervalYear, IntervalQuarter, IntervalMonth, IntervalWeek, IntervalDay:
		return true
	default:
		return false
	}
}

func (i Interval) String() string {
	return string(i)
}

// PrecisionTable maps a currency code to the number of fractional digits to render.
type PrecisionTable map[string]int

// Clone returns an independent copy of the table.
func (p PrecisionTable) Clone() PrecisionTable {
	if p == nil {
		return nil
	}
	out := make(PrecisionTable, len(p))
	for code, precision := range p {
		out[code] = precision
	}
	return out
}

// Lookup returns the precision configured for currency.
func (p PrecisionTable) Lookup(currency string) (int, bool) {
	if p == nil {
		return 0, false
	}
	precision, ok := p[currency]
	return precision, ok
}

// Options carries the global display options the formatter context depends on.
type Options struct {
	Locale string `json:"locale" yaml:"locale" toml:"locale"`
}

// Settings is the full set of user inputs that drive formatting.
type Settings struct {
	Options    `yaml:",inline"`
	Precisions PrecisionTable `json:"precisions" yaml:"precisions" toml:"precisions"`
	Incognito  bool           `json:"incognito" yaml:"incognito" toml:"incognito"`
	Interval   Interval       `json:"interval" yaml:"interval" toml:"interval"`
}

// Clone returns a copy of s that shares no mutable state with it.
func (s Settings) Clone() Settings {
	out := s
	out.Precisions = s.Precisions.Clone()
	return out
}

// Merge overlays the non-zero fields of other onto s. Precisions are merged per currency.
func (s Settings) Merge(other Settings) Settings {
	out := s.Clone()
	if other.Locale != "" {
		out.Locale = other.Locale
	}
	if len(other.Precisions) > 0 {
		if out.Precisions == nil {
			out.Precisions = make(PrecisionTable, len(other.Precisions))
		}
		for code, precision := range other.Precisions {
			out.Precisions[code] = precision
		}
	}
	if other.Incognito {
		out.Incognito = true
	}
	if other.Interval != "" {
		out.Interval = other.Interval
	}
	return out
}
