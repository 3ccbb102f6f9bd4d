package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nowwaveradio/datefmt/internal/config"
	"github.com/nowwaveradio/datefmt/internal/dateutil"
	"github.com/nowwaveradio/datefmt/internal/errorutil"
	"github.com/nowwaveradio/datefmt/internal/logger"
	"github.com/nowwaveradio/datefmt/internal/template"
)

const version = "1.0.0"

// options holds the parsed command line
type options struct {
	configFile        string
	date              string
	epochMillis       int64
	epochSet          bool
	format            string
	parseFormat       string
	separator         string
	separatorSet      bool
	custom            bool
	showTime          bool
	timeMode          string
	locale            string
	timezone          string
	relative          bool
	human             bool
	calendar          bool
	all               bool
	templateName      string
	templateText      string
	listTemplates     bool
	validateTemplates bool
	writeConfig       string
	showVersion       bool
}

// app carries the process environment so tests can substitute it
type app struct {
	stdout io.Writer
	stderr io.Writer
	clock  dateutil.Clock
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("datefmt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configFile, "config", "", "Path to a TOML or YAML configuration file")
	fs.StringVar(&opts.date, "date", "", "Date to format, read with -parse-format (default: now)")
	fs.Int64Var(&opts.epochMillis, "epoch-ms", 0, "Date to format as milliseconds since the Unix epoch")
	fs.StringVar(&opts.format, "format", "", "Output format tag (see -all for the list)")
	fs.StringVar(&opts.parseFormat, "parse-format", "", "Format of -date: dd-mm-yyyy, mm-dd-yyyy or yyyy-mm-dd")
	fs.StringVar(&opts.separator, "separator", "", "Join day, month and year with this separator")
	fs.BoolVar(&opts.custom, "custom", false, "Use the configured separator instead of the format's own")
	fs.BoolVar(&opts.showTime, "time", false, "Also print the time of day in the configured time mode")
	fs.StringVar(&opts.timeMode, "time-mode", "", "Time mode for -time: 24-hour or 12-hour")
	fs.StringVar(&opts.locale, "locale", "", "Locale for fullDate, e.g. en-GB")
	fs.StringVar(&opts.timezone, "timezone", "", "IANA time zone for parsing and display")
	fs.BoolVar(&opts.relative, "relative", false, "Also print the time relative to now")
	fs.BoolVar(&opts.human, "human", false, "Also print tomorrow/today/yesterday/N days ago")
	fs.BoolVar(&opts.calendar, "calendar", false, "Also print leap year, days in month, week number")
	fs.BoolVar(&opts.all, "all", false, "Print the date in every supported format")
	fs.StringVar(&opts.templateName, "template", "", "Render the named template from the config file")
	fs.StringVar(&opts.templateText, "template-text", "", "Render an inline text/template")
	fs.BoolVar(&opts.listTemplates, "list-templates", false, "List the templates defined in the config file")
	fs.BoolVar(&opts.validateTemplates, "validate-templates", false, "Render every configured template against a sample date")
	fs.StringVar(&opts.writeConfig, "write-config", "", "Write the effective configuration to this TOML file and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "datefmt v%s\n\n", version)
		fmt.Fprintf(stderr, "Formats and parses dates in a fixed set of numeric, textual and relative shapes.\n\n")
		fmt.Fprintf(stderr, "Usage: datefmt [OPTIONS]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  datefmt -date 24-08-2024 -parse-format dd-mm-yyyy -format mmmm-dd-yyyy\n")
		fmt.Fprintf(stderr, "  datefmt -epoch-ms 1724457600000 -format iso -time -time-mode 12-hour\n")
		fmt.Fprintf(stderr, "  datefmt -date 2024-08-24 -separator . -format dd-mmm-yyyy\n")
		fmt.Fprintf(stderr, "  datefmt -config datefmt.toml -template report\n")
		fmt.Fprintf(stderr, "  datefmt -locale en-GB -timezone Europe/London -write-config datefmt.toml\n")
	}

	return fs
}

// parseFlags parses args and records which optional flags were given explicitly
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "epoch-ms":
			opts.epochSet = true
		case "separator":
			opts.separatorSet = true
		}
	})

	if opts.date != "" && opts.epochSet {
		return nil, fmt.Errorf("-date and -epoch-ms are mutually exclusive")
	}

	return opts, nil
}

// loadConfiguration returns defaults when no file is given
func loadConfiguration(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		if err := cfg.ApplyEnvironmentOverrides(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfig(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return cfg, nil
}

// applyFlagOverrides copies explicitly given flags over the configuration
func applyFlagOverrides(cfg *config.Config, opts *options) error {
	vb := errorutil.NewValidationBuilder("command line")
	f := &cfg.Formatting

	if opts.format != "" {
		vb.Check("-format", opts.format, f.Format.UnmarshalText([]byte(opts.format)))
	}
	if opts.parseFormat != "" {
		vb.Check("-parse-format", opts.parseFormat, f.ParseFormat.UnmarshalText([]byte(opts.parseFormat)))
	}
	if opts.timeMode != "" {
		vb.Check("-time-mode", opts.timeMode, f.TimeMode.UnmarshalText([]byte(opts.timeMode)))
	}
	if opts.separatorSet {
		f.Separator = opts.separator
	}
	if opts.locale != "" {
		f.Locale = opts.locale
	}
	if opts.timezone != "" {
		f.Timezone = opts.timezone
	}

	return vb.Build()
}

// resolveInstant picks the time to format from -date, -epoch-ms or the clock
func resolveInstant(opts *options, cfg *config.Config, f *dateutil.Formatter) (time.Time, error) {
	switch {
	case opts.date != "":
		return f.ParseDate(opts.date, cfg.Formatting.ParseFormat)
	case opts.epochSet:
		return time.UnixMilli(opts.epochMillis).In(f.Location()), nil
	default:
		return f.Now().In(f.Location()), nil
	}
}

// render produces every requested output line
func render(opts *options, cfg *config.Config, f *dateutil.Formatter, t time.Time) ([]string, error) {
	fc := cfg.Formatting
	var lines []string

	switch {
	case opts.all:
		for _, format := range dateutil.Formats() {
			out, err := f.FormatDate(t, format)
			if err != nil {
				return nil, err
			}
			lines = append(lines, fmt.Sprintf("%-13s %s", format, out))
		}
	case opts.separatorSet || opts.custom:
		lines = append(lines, dateutil.FormatWithCustomSeparator(t, fc.Separator, fc.Format))
	default:
		out, err := f.FormatDate(t, fc.Format)
		if err != nil {
			return nil, err
		}
		lines = append(lines, out)
	}

	if opts.showTime {
		lines = append(lines, dateutil.FormatToTime(t, fc.TimeMode))
	}
	if opts.relative {
		lines = append(lines, f.FormatToRelativeTime(t))
	}
	if opts.human {
		lines = append(lines, f.FormatToHumanReadable(t))
	}
	if opts.calendar {
		month := int(t.Month()) - 1
		lines = append(lines,
			fmt.Sprintf("weekday: %s", dateutil.WeekdayName(t)),
			fmt.Sprintf("month: %s", dateutil.MonthName(month, true, fc.Case)),
			fmt.Sprintf("leap year: %t", dateutil.IsLeapYear(t.Year())),
			fmt.Sprintf("days in month: %d", dateutil.DaysInMonth(t.Year(), month)),
			fmt.Sprintf("week: %d", dateutil.WeekNumber(t)),
		)
	}

	if opts.templateName != "" || opts.templateText != "" {
		tf := template.NewTemplateFormatter(cfg.Templates, f)
		if err := tf.LoadTemplates(); err != nil {
			return nil, err
		}
		data := tf.Data(t, fc.Format, fc.Separator)

		if opts.templateName != "" {
			out, err := tf.Render(opts.templateName, data)
			if err != nil {
				return nil, err
			}
			lines = append(lines, out)
		}
		if opts.templateText != "" {
			out, err := tf.RenderText(opts.templateText, data)
			if err != nil {
				return nil, err
			}
			lines = append(lines, out)
		}
	}

	return lines, nil
}

func (a *app) run(args []string) int {
	startTime := time.Now()

	opts, err := parseFlags(args, a.stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(a.stdout, "datefmt v%s\n", version)
		return 0
	}

	cfg, err := loadConfiguration(opts.configFile)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	if err := applyFlagOverrides(cfg, opts); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	if opts.writeConfig != "" {
		if err := config.SaveConfig(cfg, filepath.Clean(opts.writeConfig)); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(a.stdout, "Configuration written to %s\n", opts.writeConfig)
		return 0
	}

	log, err := logger.NewLogger(cfg.Logging, a.stderr)
	if err != nil {
		fmt.Fprintf(a.stderr, "Warning: logging disabled: %v\n", err)
		log = logger.Nop()
	}
	defer log.Close()

	if name := log.FileName(); name != "" {
		log.Debug("Writing log file", slog.String("path", name))
	}
	log.LogAttrs(context.Background(), slog.LevelDebug, "Configuration loaded", errorutil.ConfigContext(opts.configFile)...)

	exitCode := a.execute(log, opts, cfg)
	log.LogExecutionSummary(startTime, opts.configFile, mode(opts), exitCode)
	return exitCode
}

func (a *app) execute(log *logger.Logger, opts *options, cfg *config.Config) int {
	attrs := errorutil.FormatContext(string(cfg.Formatting.Format), opts.date)

	f, err := cfg.Formatter(dateutil.WithClock(a.clock))
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", errorutil.LogAndWrap(log.Logger, "build formatter", err, attrs...))
		return 1
	}

	if !dateutil.SupportsLocale(f.Locale()) {
		errorutil.LogWarning(log.Logger, "resolve locale",
			fmt.Errorf("no long-date style for %s, using en-US", f.Locale()), attrs...)
	}

	if opts.listTemplates || opts.validateTemplates {
		return a.templateCommand(log, opts, cfg, f)
	}

	t, err := resolveInstant(opts, cfg, f)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", errorutil.LogAndWrap(log.Logger, "parse date", err, attrs...))
		return 1
	}

	lines, err := render(opts, cfg, f, t)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", errorutil.LogAndWrap(log.Logger, "format date", err, attrs...))
		return 1
	}

	for _, line := range lines {
		fmt.Fprintln(a.stdout, line)
	}

	log.Debug("Formatted date",
		slog.String("instant", dateutil.FormatToISO(t)),
		slog.Int("lines", len(lines)))
	return 0
}

// templateCommand lists or validates the configured templates
func (a *app) templateCommand(log *logger.Logger, opts *options, cfg *config.Config, f *dateutil.Formatter) int {
	tf := template.NewTemplateFormatter(cfg.Templates, f)
	if err := tf.LoadTemplates(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", errorutil.LogAndWrap(log.Logger, "load templates", err))
		return 1
	}

	exitCode := 0
	for _, name := range tf.ListTemplates() {
		if !opts.validateTemplates {
			fmt.Fprintln(a.stdout, name)
			continue
		}
		if err := tf.ValidateTemplate(name); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			exitCode = 1
			continue
		}
		fmt.Fprintf(a.stdout, "%s: ok\n", name)
	}
	return exitCode
}

func mode(opts *options) string {
	switch {
	case opts.listTemplates || opts.validateTemplates:
		return "templates"
	case opts.all:
		return "all"
	case opts.templateName != "" || opts.templateText != "":
		return "template"
	case opts.separatorSet || opts.custom:
		return "custom-separator"
	default:
		return "format"
	}
}

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr, clock: dateutil.SystemClock}
	os.Exit(a.run(os.Args[1:]))
}
