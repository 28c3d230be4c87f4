package displayfmt

import (
	"time"

	"go.uber.org/zap"
)

// Formatting is the formatter context builder. It owns the observable inputs
// (incognito flag, options, precision table, interval) and the values derived
// from them. Writers are expected to be serialized, readers may be concurrent.
type Formatting struct {
	logger       *zap.Logger
	cache        *formatterCache
	// locale the cache was last filled for
	cachedLocale string

	incognito  *Store[bool]
	options    *Store[Options]
	precisions *Store[PrecisionTable]
	interval   *Store[Interval]

	context          *Derived[FormatterContext]
	dateFormat       *Derived[DateFormatter]
	filterDateFormat *Derived[DateFormatter]
}

// FormattingOption customizes a Formatting during construction
type FormattingOption func(*Formatting)

// WithFormattingLogger sets the logger used for recomputation events
func WithFormattingLogger(logger *zap.Logger) FormattingOption {
	return func(f *Formatting) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFormatting wires the input stores and derived formatters for settings.
// An empty interval selects DefaultInterval.
func NewFormatting(settings Settings, opts ...FormattingOption) (*Formatting, error) {
	interval := settings.Interval
	if interval == "" {
		interval = DefaultInterval
	}
	interval, err := ParseInterval(string(interval))
	if err != nil {
		return nil, err
	}

	f := &Formatting{
		logger:     zap.NewNop(),
		cache:      newFormatterCache(),
		incognito:  NewComparableStore(settings.Incognito),
		options:    NewComparableStore(settings.Options),
		precisions: NewStore(settings.Precisions.Clone()),
		interval:   NewComparableStore(interval),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}

	f.context = Derive(f.computeContext, f.incognito, f.options, f.precisions)
	f.dateFormat = Derive(func() DateFormatter {
		return dateFormatters[f.interval.Get()]
	}, f.interval)
	f.filterDateFormat = Derive(func() DateFormatter {
		return filterDateFormatters[f.interval.Get()]
	}, f.interval)

	return f, nil
}

func (f *Formatting) computeContext() FormatterContext {
	locale := f.options.Get().Locale
	precisions := f.precisions.Get()
	incognito := f.incognito.Get()

	if normalized := normalizeLocale(locale); normalized != f.cachedLocale {
		f.cache.Reset()
		f.cachedLocale = normalized
	}

	f.logger.Debug("formatter context recomputed",
		zap.String("locale", locale),
		zap.Int("currencies", len(precisions)),
		zap.Bool("incognito", incognito),
	)

	return buildFormatterContext(f.cache, locale, precisions, incognito)
}

// Context is the derived formatter context
func (f *Formatting) Context() Readable[FormatterContext] {
	return f.context
}

// DateFormat is the human readable date formatter for the current interval
func (f *Formatting) DateFormat() Readable[DateFormatter] {
	return f.dateFormat
}

// FilterDateFormat is the filter-input date formatter for the current interval
func (f *Formatting) FilterDateFormat() Readable[DateFormatter] {
	return f.filterDateFormat
}

// Incognito exposes the incognito flag for observation
func (f *Formatting) Incognito() Readable[bool] {
	return f.incognito
}

// Options exposes the global options for observation
func (f *Formatting) Options() Readable[Options] {
	return f.options
}

// Precisions exposes the precision table for observation. Subscribers must
// treat the table as read only.
func (f *Formatting) Precisions() Readable[PrecisionTable] {
	return f.precisions
}

// Interval exposes the current interval for observation
func (f *Formatting) Interval() Readable[Interval] {
	return f.interval
}

// SetIncognito toggles digit masking
func (f *Formatting) SetIncognito(enabled bool) {
	f.incognito.Set(enabled)
}

// SetLocale replaces the locale; an empty locale selects fixed-point output.
func (f *Formatting) SetLocale(locale string) {
	f.options.Update(func(current Options) Options {
		current.Locale = locale
		return current
	})
}

// SetOptions replaces the global options
func (f *Formatting) SetOptions(options Options) {
	f.options.Set(options)
}

// SetPrecisions replaces the precision table with a copy of table
func (f *Formatting) SetPrecisions(table PrecisionTable) {
	f.precisions.Set(table.Clone())
}

// SetInterval selects the interval used by DateFormat and FilterDateFormat
func (f *Formatting) SetInterval(interval Interval) error {
	parsed, err := ParseInterval(string(interval))
	if err != nil {
		return err
	}
	f.interval.Set(parsed)
	return nil
}

// Apply replaces every input with the values from settings. Only inputs that
// changed trigger recomputation, except the precision table which always does.
func (f *Formatting) Apply(settings Settings) error {
	interval := settings.Interval
	if interval == "" {
		interval = f.interval.Get()
	}
	if err := f.SetInterval(interval); err != nil {
		return err
	}

	f.SetOptions(settings.Options)
	f.SetPrecisions(settings.Precisions)
	f.SetIncognito(settings.Incognito)
	return nil
}

// Settings returns a snapshot of the current inputs
func (f *Formatting) Settings() Settings {
	return Settings{
		Options:    f.options.Get(),
		Precisions: f.precisions.Get().Clone(),
		Incognito:  f.incognito.Get(),
		Interval:   f.interval.Get(),
	}
}

// Short formats value with the current context
func (f *Formatting) Short(value float64) string {
	return f.context.Get().Short(value)
}

// Amount formats value followed by currency with the current context
func (f *Formatting) Amount(value float64, currency string) string {
	return f.context.Get().Amount(value, currency)
}

// FormatDate renders t with the human readable formatter for the current interval
func (f *Formatting) FormatDate(t time.Time) string {
	return f.dateFormat.Get()(t)
}

// FormatFilterDate renders t with the filter-input formatter for the current interval
func (f *Formatting) FormatFilterDate(t time.Time) string {
	return f.filterDateFormat.Get()(t)
}

// Close detaches derived values from their inputs and drops cached formatters
func (f *Formatting) Close() {
	if f == nil {
		return
	}
	f.context.Close()
	f.dateFormat.Close()
	f.filterDateFormat.Close()
	f.cache.Reset()
}
