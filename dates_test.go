package displayfmt

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestDateFormatters(t *testing.T) {
	date := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		interval Interval
		human    string
		filter   string
	}{
		{IntervalYear, "2024", "2024"},
		{IntervalQuarter, "2024Q2", "2024-Q2"},
		{IntervalMonth, "May 2024", "2024-05"},
		{IntervalWeek, "2024W20", "2024-W20"},
		{IntervalDay, "2024-05-17", "2024-05-17"},
	}

	human := DateFormatters()
	filter := FilterDateFormatters()

	for _, tt := range tests {
		t.Run(tt.interval.String(), func(t *testing.T) {
			if got := human[tt.interval](date); got != tt.human {
				t.Errorf("human %s = %q; want %q", tt.interval, got, tt.human)
			}
			if got := filter[tt.interval](date); got != tt.filter {
				t.Errorf("filter %s = %q; want %q", tt.interval, got, tt.filter)
			}
		})
	}
}

func TestDateFormattersUseUTC(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	// 2025-01-01 03:00 UTC
	date := time.Date(2024, 12, 31, 22, 0, 0, 0, zone)

	if got := DateFormatters()[IntervalYear](date); got != "2025" {
		t.Fatalf("year = %q; want 2025", got)
	}
	if got := FilterDateFormatters()[IntervalDay](date); got != "2025-01-01" {
		t.Fatalf("day = %q; want 2025-01-01", got)
	}
	if got := DateFormatters()[IntervalQuarter](date); got != "2025Q1" {
		t.Fatalf("quarter = %q; want 2025Q1", got)
	}
}

func TestWeekOfYear(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected int
		label    string
	}{
		// 2023-01-01 is a Sunday, before the first Monday
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 0, "2023W00"},
		{time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), 1, "2023W01"},
		// 2024-01-01 is a Monday
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1, "2024W01"},
		{time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), 1, "2024W01"},
		{time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 2, "2024W02"},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 53, "2024W53"},
	}

	for _, tt := range tests {
		if got := WeekOfYear(tt.date); got != tt.expected {
			t.Errorf("WeekOfYear(%s) = %d; want %d", tt.date.Format(time.DateOnly), got, tt.expected)
		}
		if got := DateFormatters()[IntervalWeek](tt.date); got != tt.label {
			t.Errorf("week label(%s) = %q; want %q", tt.date.Format(time.DateOnly), got, tt.label)
		}
	}
}

func TestQuarter(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		date := time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC)
		want := (int(month)-1)/3 + 1
		if got := Quarter(date); got != want {
			t.Fatalf("Quarter(%s) = %d; want %d", month, got, want)
		}
	}
}

func TestDateFormattersReturnCopies(t *testing.T) {
	table := DateFormatters()
	delete(table, IntervalYear)

	if _, ok := DateFormatters()[IntervalYear]; !ok {
		t.Fatal("mutating a returned table must not affect the package tables")
	}
}

func TestDateFormatterForUnknownInterval(t *testing.T) {
	if _, err := DateFormatterFor("decade"); !errors.Is(err, ErrUnknownInterval) {
		t.Fatalf("DateFormatterFor(decade) err = %v; want ErrUnknownInterval", err)
	}
	fn, err := FilterDateFormatterFor(IntervalMonth)
	if err != nil {
		t.Fatalf("FilterDateFormatterFor(month): %v", err)
	}
	if got := fn(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)); got != "2024-02" {
		t.Fatalf("filter month = %q", got)
	}
}

func TestTodayAsString(t *testing.T) {
	original := now
	defer func() { now = original }()

	zone := time.FixedZone("UTC+9", 9*60*60)
	now = func() time.Time {
		// 2024-03-01 02:00 in UTC+9 is still 2024-02-29 in UTC
		return time.Date(2024, 3, 1, 2, 0, 0, 0, zone)
	}

	if got := TodayAsString(); got != "2024-02-29" {
		t.Fatalf("TodayAsString() = %q; want 2024-02-29", got)
	}
}

func TestTodayAsStringPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	before := time.Now().UTC().Format(time.DateOnly)
	got := TodayAsString()
	after := time.Now().UTC().Format(time.DateOnly)

	if !pattern.MatchString(got) {
		t.Fatalf("TodayAsString() = %q; want YYYY-MM-DD", got)
	}
	if got != before && got != after {
		t.Fatalf("TodayAsString() = %q; want %q or %q", got, before, after)
	}
}
