// Package logger provides the structured logger used by the datefmt CLI.
// Output goes to the console, a dated log file, or both.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nowwaveradio/datefmt/internal/dateutil"
)

// Config represents logging configuration
type Config struct {
	Enabled         bool   `toml:"enabled" yaml:"enabled"`
	Directory       string `toml:"directory" yaml:"directory"`
	FilenamePattern string `toml:"filename_pattern" yaml:"filename_pattern"`
	Level           string `toml:"level" yaml:"level"`
	ConsoleOutput   bool   `toml:"console_output" yaml:"console_output"`
}

// Logger wraps slog.Logger with an optional backing file
type Logger struct {
	*slog.Logger
	config   Config
	file     *os.File
	fileName string
	mu       sync.Mutex
}

// NewLogger creates a new logger with the given configuration. Console output
// goes to console; when neither console nor file output is enabled the logger
// discards everything.
func NewLogger(config Config, console io.Writer) (*Logger, error) {
	l := &Logger{config: config}

	writers := []io.Writer{}
	if config.ConsoleOutput && console != nil {
		writers = append(writers, console)
	}

	if config.Enabled {
		if err := ValidateFilenamePattern(config.FilenamePattern); err != nil {
			return nil, err
		}

		logDir := expandLogDirectory(config.Directory)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		filePath := filepath.Join(logDir, generateLogFilename(config.FilenamePattern, time.Now()))
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = file
		l.fileName = filePath
		writers = append(writers, file)
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}

	l.Logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:       parseLogLevel(config.Level),
		ReplaceAttr: replaceAttr,
	}))

	l.Debug("Logger initialized",
		slog.String("log_file", l.fileName),
		slog.String("level", config.Level),
		slog.Bool("console", config.ConsoleOutput))

	return l, nil
}

// Nop returns a logger that writes nowhere
func Nop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// replaceAttr renders times as ISO-8601 in UTC and shortens source paths
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		return slog.String(slog.TimeKey, dateutil.FormatToISO(a.Value.Time()))
	}
	if a.Key == slog.SourceKey {
		if source, ok := a.Value.Any().(*slog.Source); ok {
			return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.Base(source.File), source.Line))
		}
	}
	return a
}

// FileName returns the path of the log file, or "" when file logging is off
func (l *Logger) FileName() string {
	return l.fileName
}

// expandLogDirectory falls back to "logs" in the working directory
func expandLogDirectory(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return "logs"
	}
	return filepath.Clean(dir)
}

// generateLogFilename replaces {date} in the pattern with the yyyy-mm-dd date
func generateLogFilename(pattern string, now time.Time) string {
	if pattern == "" {
		pattern = "datefmt-{date}.log"
	}
	return strings.ReplaceAll(pattern, "{date}", dateutil.FormatToYYYYMMDD(now))
}

// parseLogLevel converts string level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// LogExecutionSummary logs how a CLI run went
func (l *Logger) LogExecutionSummary(startTime time.Time, configFile string, mode string, exitCode int) {
	l.Info("Execution summary",
		slog.String("start_time", dateutil.FormatToISO(startTime)),
		slog.String("config_file", configFile),
		slog.String("mode", mode),
		slog.Duration("total_duration", time.Since(startTime)),
		slog.Int("exit_code", exitCode))
}
