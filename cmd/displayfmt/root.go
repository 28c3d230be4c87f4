package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-displayfmt"
)

type cliOptions struct {
	locale        string
	precisions    []string
	isoPrecisions []string
	incognito     bool
	settings      string
	interval      string
	verbose       bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&cliOptions{})
}

func newRootCmdWith(opts *cliOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "displayfmt",
		Short: "Format numbers and dates the way report views display them",
		Long: `displayfmt renders amounts, short axis labels, percentages and
interval date labels using the same rules as the report views.

Examples:
  displayfmt amount 1234.5 USD --locale en_US
  displayfmt amount 1234.5 JPY --iso-precisions JPY
  displayfmt short 1234567
  displayfmt date --interval week 2024-05-17`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.locale, "locale", "", "locale used for amounts (en_US, de-DE); empty renders fixed-point")
	flags.StringArrayVar(&opts.precisions, "precision", nil, "per-currency precision as CUR=N (repeatable)")
	flags.StringSliceVar(&opts.isoPrecisions, "iso-precisions", nil, "currencies whose precision comes from ISO 4217 minor units")
	flags.BoolVar(&opts.incognito, "incognito", false, "mask digits in numeric output")
	flags.StringVar(&opts.settings, "settings", "", "settings file (.json, .yaml, .toml)")
	flags.StringVar(&opts.interval, "interval", "", "interval for date labels: year, quarter, month, week, day")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newAmountCmd(opts),
		newShortCmd(opts),
		newPercentCmd(),
		newDateCmd(opts),
		newTodayCmd(),
	)

	return root
}

func newAmountCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "amount VALUE CURRENCY",
		Short: "Format an amount followed by its currency code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			formatting, err := opts.formatting()
			if err != nil {
				return err
			}
			defer formatting.Close()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatting.Amount(value, args[1]))
			return err
		},
	}
}

func newShortCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "short VALUE",
		Short: "Format a number with an SI prefix and three significant digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			formatting, err := opts.formatting()
			if err != nil {
				return err
			}
			defer formatting.Close()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatting.Short(value))
			return err
		},
	}
}

func newPercentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "percent RATIO",
		Short: "Format the magnitude of a ratio as a percentage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), displayfmt.FormatPercentage(value))
			return err
		},
	}
}

func newDateCmd(opts *cliOptions) *cobra.Command {
	var filter bool

	cmd := &cobra.Command{
		Use:   "date YYYY-MM-DD",
		Short: "Format a date label for the selected interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(args[0]), time.UTC)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}
			formatting, err := opts.formatting()
			if err != nil {
				return err
			}
			defer formatting.Close()

			label := formatting.FormatDate(date)
			if filter {
				label = formatting.FormatFilterDate(date)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
			return err
		},
	}

	cmd.Flags().BoolVar(&filter, "filter", false, "render the label accepted by the time filter input")
	return cmd
}

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's date in UTC as YYYY-MM-DD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), displayfmt.TodayAsString())
			return err
		},
	}
}

func (opts *cliOptions) formatting() (*displayfmt.Formatting, error) {
	configOpts := []displayfmt.Option{
		displayfmt.WithLogger(opts.logger),
		displayfmt.WithSettingsFile(opts.settings),
	}

	if len(opts.isoPrecisions) > 0 {
		configOpts = append(configOpts, displayfmt.WithISOPrecisions(opts.isoPrecisions...))
	}

	for _, raw := range opts.precisions {
		currency, precision, err := parsePrecisionFlag(raw)
		if err != nil {
			return nil, err
		}
		configOpts = append(configOpts, displayfmt.WithPrecision(currency, precision))
	}

	if opts.locale != "" {
		configOpts = append(configOpts, displayfmt.WithLocale(opts.locale))
	}
	if opts.incognito {
		configOpts = append(configOpts, displayfmt.WithIncognito(true))
	}
	if opts.interval != "" {
		configOpts = append(configOpts, displayfmt.WithInterval(opts.interval))
	}

	cfg, err := displayfmt.NewConfig(configOpts...)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

func parsePrecisionFlag(raw string) (string, int, error) {
	currency, digits, ok := strings.Cut(raw, "=")
	currency = strings.TrimSpace(currency)
	if !ok || currency == "" {
		return "", 0, fmt.Errorf("invalid precision %q (want CUR=N)", raw)
	}
	precision, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil {
		return "", 0, fmt.Errorf("invalid precision %q: %w", raw, err)
	}
	return currency, precision, nil
}

func parseValue(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", raw, err)
	}
	return value, nil
}
