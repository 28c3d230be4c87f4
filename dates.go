package displayfmt

import (
	"fmt"
	"strconv"
	"time"
)

// now is swapped in tests.
var now = time.Now

var dateFormatters = map[Interval]DateFormatter{
	IntervalYear:    formatYear,
	IntervalQuarter: func(t time.Time) string { return formatQuarter(t, "") },
	IntervalMonth:   func(t time.Time) string { return t.UTC().Format("Jan 2006") },
	IntervalWeek:    func(t time.Time) string { return formatWeek(t, "") },
	IntervalDay:     formatDay,
}

var filterDateFormatters = map[Interval]DateFormatter{
	IntervalYear:    formatYear,
	IntervalQuarter: func(t time.Time) string { return formatQuarter(t, "-") },
	IntervalMonth:   func(t time.Time) string { return t.UTC().Format("2006-01") },
	IntervalWeek:    func(t time.Time) string { return formatWeek(t, "-") },
	IntervalDay:     formatDay,
}

// DateFormatters returns the human readable label formatters keyed by interval:
// 2024, 2024Q2, May 2024, 2024W20, 2024-05-17.
func DateFormatters() map[Interval]DateFormatter {
	return cloneDateFormatters(dateFormatters)
}

// FilterDateFormatters returns formatters whose output is accepted by the time
// filter input: 2024, 2024-Q2, 2024-05, 2024-W20, 2024-05-17.
func FilterDateFormatters() map[Interval]DateFormatter {
	return cloneDateFormatters(filterDateFormatters)
}

// DateFormatterFor returns the human readable formatter for interval.
func DateFormatterFor(interval Interval) (DateFormatter, error) {
	return lookupDateFormatter(dateFormatters, interval)
}

// FilterDateFormatterFor returns the filter-input formatter for interval.
func FilterDateFormatterFor(interval Interval) (DateFormatter, error) {
	return lookupDateFormatter(filterDateFormatters, interval)
}

// TodayAsString renders the current date in UTC as YYYY-MM-DD.
func TodayAsString() string {
	return formatDay(now())
}

// WeekOfYear returns the Monday-based week number of t in UTC. Days before the
// first Monday of the year belong to week 0.
func WeekOfYear(t time.Time) int {
	t = t.UTC()
	yearDay := t.YearDay() - 1
	weekday := (int(t.Weekday()) + 6) % 7
	return (yearDay + 7 - weekday) / 7
}

// Quarter returns the 1-based quarter of t in UTC.
func Quarter(t time.Time) int {
	return (int(t.UTC().Month())-1)/3 + 1
}

func lookupDateFormatter(table map[Interval]DateFormatter, interval Interval) (DateFormatter, error) {
	fn, ok := table[interval]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInterval, string(interval))
	}
	return fn, nil
}

func cloneDateFormatters(source map[Interval]DateFormatter) map[Interval]DateFormatter {
	out := make(map[Interval]DateFormatter, len(source))
	for interval, fn := range source {
		out[interval] = fn
	}
	return out
}

func formatYear(t time.Time) string {
	return t.UTC().Format("2006")
}

func formatDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func formatQuarter(t time.Time, sep string) string {
	return formatYear(t) + sep + "Q" + strconv.Itoa(Quarter(t))
}

func formatWeek(t time.Time, sep string) string {
	return fmt.Sprintf("%s%sW%02d", formatYear(t), sep, WeekOfYear(t))
}
