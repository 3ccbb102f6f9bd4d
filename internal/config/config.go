// Package config provides configuration management for the datefmt CLI.
// It handles loading TOML (or YAML) configuration files, merging defaults,
// environment overrides and validation of formatting and logging settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/nowwaveradio/datefmt/internal/constants"
	"github.com/nowwaveradio/datefmt/internal/dateutil"
	"github.com/nowwaveradio/datefmt/internal/errorutil"
	"github.com/nowwaveradio/datefmt/internal/logger"
)

// Config represents the main configuration structure
type Config struct {
	Formatting FormattingConfig          `toml:"formatting" yaml:"formatting"`
	Logging    logger.Config             `toml:"logging" yaml:"logging"`
	Templates  map[string]TemplateConfig `toml:"templates" yaml:"templates"`
}

// FormattingConfig holds the defaults the CLI applies when a flag is not given
type FormattingConfig struct {
	Format      dateutil.Format   `toml:"format" yaml:"format"`
	ParseFormat dateutil.Format   `toml:"parse_format" yaml:"parse_format"`
	TimeMode    dateutil.TimeMode `toml:"time_mode" yaml:"time_mode"`
	Separator   string            `toml:"separator" yaml:"separator"`
	Case        dateutil.CaseMode `toml:"case" yaml:"case"`
	Locale      string            `toml:"locale" yaml:"locale"`
	Timezone    string            `toml:"timezone" yaml:"timezone"`
}

// TemplateConfig is a named text/template rendered against a date
type TemplateConfig struct {
	Text string `toml:"text" yaml:"text"`
}

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field   string
	Message string
}

func (e ConfigError) Error() string {
	if e.Field != "" {
		return "config." + e.Field + ": " + e.Message
	}
	return e.Message
}

var (
	ErrFileNotFound  = errors.New("configuration file not found")
	ErrInvalidFormat = errors.New("invalid configuration file format")
)

// LoadConfig reads and parses a configuration file. Files ending in .yaml or
// .yml are decoded as YAML, everything else as TOML.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var loaded Config
	if isYAML(path) {
		err = yaml.Unmarshal(data, &loaded)
	} else {
		err = toml.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %v", ErrInvalidFormat, path, err)
	}

	cfg := mergeWithDefaults(&loaded, DefaultConfig())

	if err := cfg.ApplyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Validate checks every formatting and logging field and reports all problems together
func (c *Config) Validate() error {
	return errorutil.ValidateConfig("datefmt", func(vb *errorutil.ValidationBuilder) *errorutil.ValidationBuilder {
		f := c.Formatting

		_, err := dateutil.ParseFormat(string(f.Format))
		vb.Check("formatting.format", f.Format, err)

		vb.Custom("formatting.parse_format", f.ParseFormat, func(v interface{}) bool {
			switch v.(dateutil.Format) {
			case dateutil.FormatDDMMYYYY, dateutil.FormatMMDDYYYY, dateutil.FormatYYYYMMDD:
				return true
			}
			return false
		}, "must be one of: dd-mm-yyyy, mm-dd-yyyy, yyyy-mm-dd")

		_, err = dateutil.ParseTimeMode(string(f.TimeMode))
		vb.Check("formatting.time_mode", f.TimeMode, err)

		vb.RequiredString("formatting.locale", f.Locale)
		if !errorutil.IsEmptyString(f.Locale) {
			_, err = dateutil.ParseLocale(f.Locale)
			vb.Check("formatting.locale", f.Locale, err)
		}

		_, err = time.LoadLocation(f.Timezone)
		vb.Check("formatting.timezone", f.Timezone, err)

		vb.Check("logging.filename_pattern", c.Logging.FilenamePattern, logger.ValidateFilenamePattern(c.Logging.FilenamePattern))
		vb.OneOf("logging.level", strings.ToLower(c.Logging.Level), []string{"debug", "info", "warn", "warning", "error"})

		for name, tmpl := range c.Templates {
			vb.RequiredString("templates."+name+".text", tmpl.Text)
		}

		return vb
	})
}

// Formatter builds a dateutil.Formatter for the configured locale and time
// zone. Extra options are applied after the configured ones.
func (c *Config) Formatter(extra ...dateutil.Option) (*dateutil.Formatter, error) {
	tag, err := dateutil.ParseLocale(c.Formatting.Locale)
	if err != nil {
		return nil, ConfigError{Field: "formatting.locale", Message: err.Error()}
	}

	loc, err := time.LoadLocation(c.Formatting.Timezone)
	if err != nil {
		return nil, ConfigError{Field: "formatting.timezone", Message: err.Error()}
	}

	opts := append([]dateutil.Option{dateutil.WithLocale(tag), dateutil.WithLocation(loc)}, extra...)
	return dateutil.New(opts...), nil
}

// DefaultConfig returns a Config struct with sensible default values
func DefaultConfig() *Config {
	// DefaultCase is one of the literals ParseCaseMode accepts.
	caseMode, _ := dateutil.ParseCaseMode(constants.DefaultCase)

	return &Config{
		Formatting: FormattingConfig{
			Format:      dateutil.Format(constants.DefaultFormat),
			ParseFormat: dateutil.Format(constants.DefaultParseFormat),
			TimeMode:    dateutil.TimeMode(constants.DefaultTimeMode),
			Separator:   ".",
			Case:        caseMode,
			Locale:      constants.DefaultLocale,
			Timezone:    constants.DefaultTimezone,
		},
		Logging: logger.Config{
			Enabled:         false,
			Directory:       constants.DefaultLogDirectory,
			FilenamePattern: constants.DefaultLogFilenamePattern,
			Level:           constants.DefaultLogLevel,
			ConsoleOutput:   false,
		},
		Templates: make(map[string]TemplateConfig),
	}
}

// mergeWithDefaults overlays the non-zero values of loaded onto defaults
func mergeWithDefaults(loaded, defaults *Config) *Config {
	result := *defaults

	if loaded.Formatting.Format != "" {
		result.Formatting.Format = loaded.Formatting.Format
	}
	if loaded.Formatting.ParseFormat != "" {
		result.Formatting.ParseFormat = loaded.Formatting.ParseFormat
	}
	if loaded.Formatting.TimeMode != "" {
		result.Formatting.TimeMode = loaded.Formatting.TimeMode
	}
	if loaded.Formatting.Separator != "" {
		result.Formatting.Separator = loaded.Formatting.Separator
	}
	if loaded.Formatting.Case != dateutil.CaseTitle {
		result.Formatting.Case = loaded.Formatting.Case
	}
	if loaded.Formatting.Locale != "" {
		result.Formatting.Locale = loaded.Formatting.Locale
	}
	if loaded.Formatting.Timezone != "" {
		result.Formatting.Timezone = loaded.Formatting.Timezone
	}

	if loaded.Logging.Enabled {
		result.Logging.Enabled = true
	}
	if loaded.Logging.Directory != "" {
		result.Logging.Directory = loaded.Logging.Directory
	}
	if loaded.Logging.FilenamePattern != "" {
		result.Logging.FilenamePattern = loaded.Logging.FilenamePattern
	}
	if loaded.Logging.Level != "" {
		result.Logging.Level = loaded.Logging.Level
	}
	if loaded.Logging.ConsoleOutput {
		result.Logging.ConsoleOutput = true
	}

	result.Templates = make(map[string]TemplateConfig, len(loaded.Templates))
	for name, tmpl := range loaded.Templates {
		result.Templates[name] = tmpl
	}

	return &result
}

// ApplyEnvironmentOverrides replaces config values with DATEFMT_* environment
// variables. Typed values are parsed, and a bad value is reported rather than ignored.
func (c *Config) ApplyEnvironmentOverrides() error {
	env := func(name string) string {
		return os.Getenv(constants.EnvPrefix + name)
	}

	vb := errorutil.NewValidationBuilder("environment")

	if v := env("FORMAT"); v != "" {
		vb.Check(constants.EnvPrefix+"FORMAT", v, c.Formatting.Format.UnmarshalText([]byte(v)))
	}
	if v := env("PARSE_FORMAT"); v != "" {
		vb.Check(constants.EnvPrefix+"PARSE_FORMAT", v, c.Formatting.ParseFormat.UnmarshalText([]byte(v)))
	}
	if v := env("TIME_MODE"); v != "" {
		vb.Check(constants.EnvPrefix+"TIME_MODE", v, c.Formatting.TimeMode.UnmarshalText([]byte(v)))
	}
	if v := env("CASE"); v != "" {
		vb.Check(constants.EnvPrefix+"CASE", v, c.Formatting.Case.UnmarshalText([]byte(v)))
	}
	if v := env("SEPARATOR"); v != "" {
		c.Formatting.Separator = v
	}
	if v := env("LOCALE"); v != "" {
		c.Formatting.Locale = v
	}
	if v := env("TIMEZONE"); v != "" {
		c.Formatting.Timezone = v
	}
	if v := env("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := env("LOG_ENABLED"); v == "true" {
		c.Logging.Enabled = true
	}

	return vb.Build()
}

// SaveConfig writes a Config struct to a TOML file
func SaveConfig(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to TOML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
