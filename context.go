package displayfmt

// NewFormatterContext derives the short and amount formatters for settings.
// Only Locale, Precisions and Incognito are consulted.
func NewFormatterContext(settings Settings) FormatterContext {
	return buildFormatterContext(newFormatterCache(), settings.Locale, settings.Precisions, settings.Incognito)
}

func buildFormatterContext(cache *formatterCache, locale string, precisions PrecisionTable, incognito bool) FormatterContext {
	defaultFormatter := cache.Formatter(locale, DefaultPrecision)

	currencyFormatters := make(map[string]NumberFormatter, len(precisions))
	for code, precision := range precisions {
		currencyFormatters[code] = cache.Formatter(locale, precision)
	}

	number := func(value float64, currency string) string {
		if fn, ok := currencyFormatters[currency]; ok {
			return fn(value)
		}
		return defaultFormatter(value)
	}

	short := NumberFormatter(FormatShort)
	if incognito {
		short = maskNumber(short)
	}

	// the currency code is appended after masking so it is never redacted
	amount := func(value float64, currency string) string {
		formatted := number(value, currency)
		if incognito {
			formatted = MaskDigits(formatted)
		}
		return formatted + " " + currency
	}

	return FormatterContext{
		Short:  short,
		Amount: amount,
	}
}
