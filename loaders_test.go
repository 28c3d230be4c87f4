package displayfmt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFile(t *testing.T) {
	tests := []struct {
		path     string
		expected Settings
	}{
		{
			path: "testdata/settings.json",
			expected: Settings{
				Options:    Options{Locale: "en-US"},
				Precisions: PrecisionTable{"USD": 2, "JPY": 0, "BTC": 8},
				Interval:   IntervalWeek,
			},
		},
		{
			path: "testdata/settings.yaml",
			expected: Settings{
				Options:    Options{Locale: "de-DE"},
				Precisions: PrecisionTable{"EUR": 2, "CHF": 3},
				Incognito:  true,
				Interval:   IntervalQuarter,
			},
		},
		{
			path: "testdata/settings.toml",
			expected: Settings{
				Options:    Options{Locale: "fr-FR"},
				Precisions: PrecisionTable{"EUR": 1},
				Interval:   IntervalDay,
			},
		},
	}

	for _, tt := range tests {
		t.Run(filepath.Ext(tt.path), func(t *testing.T) {
			got, err := LoadSettingsFile(tt.path)
			if err != nil {
				t.Fatalf("LoadSettingsFile(%q): %v", tt.path, err)
			}
			assertSettings(t, got, tt.expected)
		})
	}
}

func TestLoadSettingsFileErrors(t *testing.T) {
	if _, err := LoadSettingsFile("testdata/invalid_interval.yaml"); !errors.Is(err, ErrUnknownInterval) {
		t.Fatalf("invalid interval err = %v; want ErrUnknownInterval", err)
	}

	if _, err := LoadSettingsFile("testdata/missing.json"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v; want os.ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "settings.ini")
	if err := os.WriteFile(path, []byte("locale=en"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadSettingsFile(path); !errors.Is(err, ErrUnsupportedSettingsFormat) {
		t.Fatalf("ini err = %v; want ErrUnsupportedSettingsFormat", err)
	}

	broken := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadSettingsFile(broken); err == nil {
		t.Fatal("expected decode error for broken json")
	}
}

func assertSettings(t *testing.T, got, want Settings) {
	t.Helper()

	if got.Locale != want.Locale {
		t.Errorf("Locale = %q; want %q", got.Locale, want.Locale)
	}
	if got.Incognito != want.Incognito {
		t.Errorf("Incognito = %v; want %v", got.Incognito, want.Incognito)
	}
	if got.Interval != want.Interval {
		t.Errorf("Interval = %q; want %q", got.Interval, want.Interval)
	}
	if len(got.Precisions) != len(want.Precisions) {
		t.Fatalf("Precisions = %v; want %v", got.Precisions, want.Precisions)
	}
	for code, precision := range want.Precisions {
		if got.Precisions[code] != precision {
			t.Errorf("Precisions[%s] = %d; want %d", code, got.Precisions[code], precision)
		}
	}
}
