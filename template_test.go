package displayfmt

import (
	"strings"
	"testing"
	"text/template"
	"time"
)

func TestTemplateHelpers(t *testing.T) {
	f, err := NewFormatting(Settings{
		Options:    Options{Locale: "en-US"},
		Precisions: PrecisionTable{"JPY": 0},
		Interval:   IntervalQuarter,
	})
	if err != nil {
		t.Fatalf("NewFormatting: %v", err)
	}
	defer f.Close()

	tmpl := template.Must(template.New("report").Funcs(TemplateHelpers(f)).Parse(
		`{{format_amount .Total "JPY"}}|{{format_short .Total}}|{{format_percentage .Ratio}}|{{format_date .Date}}|{{format_filter_date .Date}}`,
	))

	data := map[string]any{
		"Total": 123456.0,
		"Ratio": -0.125,
		"Date":  time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC),
	}

	render := func() string {
		var out strings.Builder
		if err := tmpl.Execute(&out, data); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		return out.String()
	}

	if got, want := render(), "123,456 JPY|123k|12.50%|2024Q2|2024-Q2"; got != want {
		t.Fatalf("render = %q; want %q", got, want)
	}

	f.SetIncognito(true)
	if err := f.SetInterval(IntervalMonth); err != nil {
		t.Fatalf("SetInterval: %v", err)
	}

	if got, want := render(), "XXX,XXX JPY|XXXk|12.50%|May 2024|2024-05"; got != want {
		t.Fatalf("render after settings change = %q; want %q", got, want)
	}
}

func TestTemplateHelpersWithoutFormatting(t *testing.T) {
	helpers := TemplateHelpers(nil)

	for _, name := range []string{"format_short", "format_amount", "format_percentage", "format_fixed", "today"} {
		if _, ok := helpers[name]; !ok {
			t.Errorf("missing helper %q", name)
		}
	}

	amount := helpers["format_amount"].(AmountFormatter)
	if got := amount(3.14159, "EUR"); got != "3.14 EUR" {
		t.Fatalf("format_amount = %q; want 3.14 EUR", got)
	}
}
