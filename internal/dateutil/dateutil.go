// Package dateutil renders points in time into a fixed set of textual shapes
// (numeric with various separators, long-form textual, ISO-8601, relative
// phrases) and parses a subset of the numeric shapes back into time values.
//
// Every operation is a pure function of its time.Time argument except
// FormatToRelativeTime and FormatToHumanReadable, which read the current time
// from the Formatter's Clock.
package dateutil

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format identifies one output shape. The set is closed; values arriving from
// outside the package should go through ParseFormat.
type Format string

const (
	FormatDDMMYYYY      Format = "dd-mm-yyyy"
	FormatMMDDYYYY      Format = "mm-dd-yyyy"
	FormatYYYYMMDD      Format = "yyyy-mm-dd"
	FormatDDMMYYYYSlash Format = "dd/mm/yyyy"
	FormatMMDDYYYYSlash Format = "mm/dd/yyyy"
	FormatYYYYMMDDSlash Format = "yyyy/mm/dd"
	FormatFullDate      Format = "fullDate"
	FormatDDMMMYYYY     Format = "dd-mmm-yyyy"
	FormatDDMMMMYYYY    Format = "dd-mmmm-yyyy"
	FormatMMMMDDYYYY    Format = "mmmm-dd-yyyy"
	FormatMMMDDYYYY     Format = "mmm-dd-yyyy"
	FormatISO           Format = "iso"
	FormatTimestamp     Format = "timestamp"
)

var allFormats = []Format{
	FormatDDMMYYYY,
	FormatMMDDYYYY,
	FormatYYYYMMDD,
	FormatDDMMYYYYSlash,
	FormatMMDDYYYYSlash,
	FormatYYYYMMDDSlash,
	FormatFullDate,
	FormatDDMMMYYYY,
	FormatDDMMMMYYYY,
	FormatMMMMDDYYYY,
	FormatMMMDDYYYY,
	FormatISO,
	FormatTimestamp,
}

var (
	ErrUnsupportedFormat      = errors.New("date format not supported")
	ErrUnsupportedParseFormat = errors.New("date format not supported for parsing")
	ErrMalformedDate          = errors.New("malformed date")
	ErrUnsupportedTimeMode    = errors.New("time mode not supported")
	ErrUnsupportedCaseMode    = errors.New("case mode not supported")
)

// Formats returns every supported format in declaration order.
func Formats() []Format {
	out := make([]Format, len(allFormats))
	copy(out, allFormats)
	return out
}

// ParseFormat validates a format tag from untyped input.
func ParseFormat(s string) (Format, error) {
	for _, f := range allFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// UnmarshalText lets a Format be decoded directly from TOML/YAML config.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Format) String() string {
	return string(f)
}

// CaseMode controls how month names are cased. The zero value is CaseTitle.
type CaseMode int

const (
	CaseTitle CaseMode = iota
	CaseUpper
	CaseLower
)

// ParseCaseMode accepts "title", "upper" or "lower" (case-insensitive).
func ParseCaseMode(s string) (CaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title", "":
		return CaseTitle, nil
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	}
	return CaseTitle, fmt.Errorf("%w: %q", ErrUnsupportedCaseMode, s)
}

func (m *CaseMode) UnmarshalText(text []byte) error {
	parsed, err := ParseCaseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m CaseMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m CaseMode) String() string {
	switch m {
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	default:
		return "title"
	}
}

// Apply cases s. Title casing uppercases the first letter and lowercases the
// rest; no per-word handling is needed because month names are single words.
func (m CaseMode) Apply(s string) string {
	switch m {
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	default:
		return cases.Title(language.Und).String(s)
	}
}

var (
	shortMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	longMonths  = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

// MonthName returns the English name of the zero-based month index, either
// abbreviated or full, in the requested case. An index outside 0-11 panics.
func MonthName(index int, full bool, mode CaseMode) string {
	names := shortMonths
	if full {
		names = longMonths
	}
	return mode.Apply(names[index])
}
