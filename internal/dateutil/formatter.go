package dateutil

import (
	"time"

	"golang.org/x/text/language"
)

// Clock supplies the current time to the relative-time renderers.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Formatter holds the environmental inputs a few operations need: the clock
// for relative time, the locale for the full date and the location used when
// parsing dates to midnight. It is immutable after construction and safe for
// concurrent use.
type Formatter struct {
	clock    Clock
	locale   language.Tag
	location *time.Location
}

// Option configures a Formatter during construction.
type Option func(*Formatter)

// WithClock overrides the clock used for relative time.
func WithClock(c Clock) Option {
	return func(f *Formatter) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithLocale sets the locale used by FormatToFullDate.
func WithLocale(tag language.Tag) Option {
	return func(f *Formatter) {
		f.locale = tag
	}
}

// WithLocation sets the location ParseDate builds its results in.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// New creates a Formatter. Without options it uses the system clock, en-US
// and time.Local.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		clock:    SystemClock,
		locale:   language.AmericanEnglish,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Locale returns the configured locale.
func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// Location returns the location used by ParseDate.
func (f *Formatter) Location() *time.Location {
	return f.location
}

// Now returns the current time according to the Formatter's clock.
func (f *Formatter) Now() time.Time {
	return f.clock.Now()
}

var defaultFormatter = New()

// FormatDate renders t in the given format using the default Formatter.
func FormatDate(t time.Time, format Format) (string, error) {
	return defaultFormatter.FormatDate(t, format)
}

// FormatToFullDate renders the en-US long date, e.g. "Saturday, August 24, 2024".
func FormatToFullDate(t time.Time) string {
	return defaultFormatter.FormatToFullDate(t)
}

// FormatToRelativeTime describes t relative to the wall clock.
func FormatToRelativeTime(t time.Time) string {
	return defaultFormatter.FormatToRelativeTime(t)
}

// FormatToHumanReadable labels t as tomorrow, today, yesterday or N days ago.
func FormatToHumanReadable(t time.Time) string {
	return defaultFormatter.FormatToHumanReadable(t)
}

// ParseDate parses text into local midnight of the described day.
func ParseDate(text string, format Format) (time.Time, error) {
	return defaultFormatter.ParseDate(text, format)
}
