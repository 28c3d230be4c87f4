package displayfmt

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Config captures formatting settings and wiring
type Config struct {
	Settings Settings
	Logger   *zap.Logger

	settingsFiles []string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Options apply in order, so a
// settings file loaded first can be overridden by later explicit options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.Settings.Interval == "" {
		cfg.Settings.Interval = DefaultInterval
	}

	return cfg, nil
}

// WithLocale sets the display locale; empty selects fixed-point output
func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.Settings.Locale = normalizeLocale(locale)
		return nil
	}
}

// WithPrecisions merges table into the configured precision table
func WithPrecisions(table PrecisionTable) Option {
	return func(c *Config) error {
		c.Settings = c.Settings.Merge(Settings{Precisions: table})
		return nil
	}
}

// WithPrecision sets the precision for a single currency
func WithPrecision(currency string, precision int) Option {
	return func(c *Config) error {
		currency = strings.TrimSpace(currency)
		if currency == "" {
			return fmt.Errorf("displayfmt: empty currency code")
		}
		return WithPrecisions(PrecisionTable{currency: precision})(c)
	}
}

// WithISOPrecisions seeds precisions for codes from their ISO 4217 minor units
func WithISOPrecisions(codes ...string) Option {
	return func(c *Config) error {
		return WithPrecisions(ISOPrecisions(codes...))(c)
	}
}

// WithIncognito toggles digit masking
func WithIncognito(enabled bool) Option {
	return func(c *Config) error {
		c.Settings.Incognito = enabled
		return nil
	}
}

// WithInterval selects the reporting interval
func WithInterval(interval string) Option {
	return func(c *Config) error {
		parsed, err := ParseInterval(interval)
		if err != nil {
			return err
		}
		c.Settings.Interval = parsed
		return nil
	}
}

// WithSettingsFile loads settings from path and merges them over what is
// already configured
func WithSettingsFile(path string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(path) == "" {
			return nil
		}
		settings, err := LoadSettingsFile(path)
		if err != nil {
			return err
		}
		c.Settings = c.Settings.Merge(settings)
		c.settingsFiles = append(c.settingsFiles, path)
		return nil
	}
}

// WithLogger sets the logger handed to the built Formatting
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// SettingsFiles lists the settings files merged into the config, in load order
func (cfg *Config) SettingsFiles() []string {
	if cfg == nil || len(cfg.settingsFiles) == 0 {
		return nil
	}
	return append([]string(nil), cfg.settingsFiles...)
}

// Build wires a Formatting from the config
func (cfg *Config) Build() (*Formatting, error) {
	if cfg == nil {
		return nil, fmt.Errorf("displayfmt: nil config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, path := range cfg.settingsFiles {
		logger.Info("settings loaded", zap.String("path", path))
	}

	return NewFormatting(cfg.Settings, WithFormattingLogger(logger))
}
