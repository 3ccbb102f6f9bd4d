package dateutil

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// longDateStyle renders a weekday + day + month + year date for one locale.
type longDateStyle struct {
	weekdays [7]string
	months   [12]string
	render   func(weekday, day, month, year string) string
}

var englishWeekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var (
	styleUS = longDateStyle{
		weekdays: englishWeekdays,
		months:   englishMonths,
		render: func(weekday, day, month, year string) string {
			return weekday + ", " + month + " " + day + ", " + year
		},
	}
	styleGB = longDateStyle{
		weekdays: englishWeekdays,
		months:   englishMonths,
		render: func(weekday, day, month, year string) string {
			return weekday + " " + day + " " + month + " " + year
		},
	}
	styleDE = longDateStyle{
		weekdays: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		render: func(weekday, day, month, year string) string {
			return weekday + ", " + day + ". " + month + " " + year
		},
	}
	styleFR = longDateStyle{
		weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		render: func(weekday, day, month, year string) string {
			return weekday + " " + day + " " + month + " " + year
		},
	}
	styleES = longDateStyle{
		weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		render: func(weekday, day, month, year string) string {
			return weekday + ", " + day + " de " + month + " de " + year
		},
	}
)

// The first tag is the matcher's fallback.
var (
	supportedLocales = []language.Tag{
		language.AmericanEnglish,
		language.MustParse("en-CA"),
		language.BritishEnglish,
		language.MustParse("en-AU"),
		language.MustParse("en-NZ"),
		language.MustParse("en-IE"),
		language.German,
		language.French,
		language.Spanish,
	}
	localeStyles = []longDateStyle{
		styleUS, styleUS,
		styleGB, styleGB, styleGB, styleGB,
		styleDE, styleFR, styleES,
	}
	localeMatcher = language.NewMatcher(supportedLocales)
)

func styleFor(tag language.Tag) longDateStyle {
	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return styleUS
	}
	return localeStyles[index]
}

// FormatToFullDate renders the long weekday date for the Formatter's locale:
// "Saturday, August 24, 2024" for en-US, "Saturday 24 August 2024" for en-GB,
// "Samstag, 24. August 2024" for de. Unsupported locales fall back to en-US.
func (f *Formatter) FormatToFullDate(t time.Time) string {
	style := styleFor(f.locale)
	return style.render(
		style.weekdays[t.Weekday()],
		strconv.Itoa(t.Day()),
		style.months[monthIndex(t)],
		strconv.Itoa(t.Year()),
	)
}

// ParseLocale parses a BCP 47 tag such as "en-GB".
func ParseLocale(s string) (language.Tag, error) {
	return language.Parse(s)
}

// SupportsLocale reports whether tag has its own long-date style rather than
// the en-US fallback.
func SupportsLocale(tag language.Tag) bool {
	_, _, confidence := localeMatcher.Match(tag)
	return confidence != language.No
}
