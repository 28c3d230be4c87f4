package displayfmt

import "time"

// TemplateHelpers exposes the formatting helpers for text/template and
// html/template. The helpers read the current derived values on every call, so
// a func map built once keeps tracking settings changes.
func TemplateHelpers(f *Formatting) map[string]any {
	helpers := map[string]any{
		"format_percentage": FormatPercentage,
		"format_fixed":      FormatFixed,
		"today":             TodayAsString,
	}

	if f == nil {
		helpers["format_short"] = FormatShort
		helpers["format_amount"] = NewFormatterContext(Settings{}).Amount
		return helpers
	}

	helpers["format_short"] = f.Short
	helpers["format_amount"] = f.Amount
	helpers["format_date"] = func(t time.Time) string {
		return f.FormatDate(t)
	}
	helpers["format_filter_date"] = func(t time.Time) string {
		return f.FormatFilterDate(t)
	}

	return helpers
}
