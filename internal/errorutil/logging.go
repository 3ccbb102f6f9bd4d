// Package errorutil collects the error helpers shared by the CLI and its
// supporting packages: structured log-then-wrap and validation accumulation.
package errorutil

import (
	"fmt"
	"log/slog"
)

func toAny(attrs []slog.Attr) []any {
	out := make([]any, len(attrs))
	for i, attr := range attrs {
		out[i] = attr
	}
	return out
}

// LogAndWrap logs an error with structured context and returns it wrapped
// with the operation name
func LogAndWrap(logger *slog.Logger, operation string, err error, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if logger != nil {
		logAttrs := append([]slog.Attr{slog.String("error", err.Error())}, attrs...)
		logger.Error(operation+" failed", toAny(logAttrs)...)
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// LogWarning logs a non-fatal error as warning without wrapping
func LogWarning(logger *slog.Logger, operation string, err error, attrs ...slog.Attr) {
	if logger == nil || err == nil {
		return
	}

	logAttrs := append([]slog.Attr{slog.String("error", err.Error())}, attrs...)
	logger.Warn("Non-fatal error in "+operation, toAny(logAttrs)...)
}

// FormatContext describes a formatting request for log lines
func FormatContext(format, input string) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if format != "" {
		attrs = append(attrs, slog.String("format", format))
	}
	if input != "" {
		attrs = append(attrs, slog.String("input", input))
	}
	return attrs
}

// ConfigContext names the config file a log line refers to
func ConfigContext(configFile string) []slog.Attr {
	if configFile == "" {
		return nil
	}
	return []slog.Attr{slog.String("config_file", configFile)}
}
