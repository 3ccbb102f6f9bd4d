package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateFields returns the zero-padded day and month and the unpadded year.
func dateFields(t time.Time) (day, month, year string) {
	return fmt.Sprintf("%02d", t.Day()), fmt.Sprintf("%02d", int(t.Month())), strconv.Itoa(t.Year())
}

func monthIndex(t time.Time) int {
	return int(t.Month()) - 1
}

// FormatToDDMMYYYY renders "24-08-2024".
func FormatToDDMMYYYY(t time.Time) string {
	day, month, year := dateFields(t)
	return day + "-" + month + "-" + year
}

// FormatToMMDDYYYY renders "08-24-2024".
func FormatToMMDDYYYY(t time.Time) string {
	day, month, year := dateFields(t)
	return month + "-" + day + "-" + year
}

// FormatToYYYYMMDD renders "2024-08-24".
func FormatToYYYYMMDD(t time.Time) string {
	day, month, year := dateFields(t)
	return year + "-" + month + "-" + day
}

// FormatToDDMMYYYYSlash renders "24/08/2024".
func FormatToDDMMYYYYSlash(t time.Time) string {
	day, month, year := dateFields(t)
	return day + "/" + month + "/" + year
}

// FormatToMMDDYYYYSlash renders "08/24/2024".
func FormatToMMDDYYYYSlash(t time.Time) string {
	day, month, year := dateFields(t)
	return month + "/" + day + "/" + year
}

// FormatToYYYYMMDDSlash renders "2024/08/24".
func FormatToYYYYMMDDSlash(t time.Time) string {
	day, month, year := dateFields(t)
	return year + "/" + month + "/" + day
}

// FormatToDDMMMYYYY renders "24 Aug, 2024".
func FormatToDDMMMYYYY(t time.Time) string {
	day, _, year := dateFields(t)
	return day + " " + MonthName(monthIndex(t), false, CaseTitle) + ", " + year
}

// FormatToDDMMMMYYYY renders "24 August, 2024".
func FormatToDDMMMMYYYY(t time.Time) string {
	day, _, year := dateFields(t)
	return day + " " + MonthName(monthIndex(t), true, CaseTitle) + ", " + year
}

// FormatToMMMMDDYYYY renders "August 24, 2024".
func FormatToMMMMDDYYYY(t time.Time) string {
	day, _, year := dateFields(t)
	return MonthName(monthIndex(t), true, CaseTitle) + " " + day + ", " + year
}

// FormatToMMMDDYYYY renders "Aug 24, 2024".
func FormatToMMMDDYYYY(t time.Time) string {
	day, _, year := dateFields(t)
	return MonthName(monthIndex(t), false, CaseTitle) + " " + day + ", " + year
}

// FormatToISO renders t in UTC with millisecond precision,
// e.g. "2024-08-24T00:00:00.000Z". Years outside 0-9999 use the signed
// six-digit expanded form, e.g. "+012345-01-02T00:00:00.000Z".
func FormatToISO(t time.Time) string {
	u := t.UTC()
	rest := u.Format("01-02T15:04:05.000Z")
	switch year := u.Year(); {
	case year < 0:
		return fmt.Sprintf("-%06d-%s", -year, rest)
	case year > 9999:
		return fmt.Sprintf("+%06d-%s", year, rest)
	default:
		return fmt.Sprintf("%04d-%s", year, rest)
	}
}

// FormatToTimestamp returns milliseconds since the Unix epoch.
func FormatToTimestamp(t time.Time) int64 {
	return t.UnixMilli()
}

// WeekdayName returns the English weekday name of t.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// FormatDate renders t in the given format. Unknown formats return an error
// wrapping ErrUnsupportedFormat.
func (f *Formatter) FormatDate(t time.Time, format Format) (string, error) {
	switch format {
	case FormatDDMMYYYY:
		return FormatToDDMMYYYY(t), nil
	case FormatMMDDYYYY:
		return FormatToMMDDYYYY(t), nil
	case FormatYYYYMMDD:
		return FormatToYYYYMMDD(t), nil
	case FormatDDMMYYYYSlash:
		return FormatToDDMMYYYYSlash(t), nil
	case FormatMMDDYYYYSlash:
		return FormatToMMDDYYYYSlash(t), nil
	case FormatYYYYMMDDSlash:
		return FormatToYYYYMMDDSlash(t), nil
	case FormatFullDate:
		return f.FormatToFullDate(t), nil
	case FormatDDMMMYYYY:
		return FormatToDDMMMYYYY(t), nil
	case FormatDDMMMMYYYY:
		return FormatToDDMMMMYYYY(t), nil
	case FormatMMMMDDYYYY:
		return FormatToMMMMDDYYYY(t), nil
	case FormatMMMDDYYYY:
		return FormatToMMMDDYYYY(t), nil
	case FormatISO:
		return FormatToISO(t), nil
	case FormatTimestamp:
		return strconv.FormatInt(FormatToTimestamp(t), 10), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// TimeMode selects the clock convention used by FormatToTime.
type TimeMode string

const (
	Hour24 TimeMode = "24-hour"
	Hour12 TimeMode = "12-hour"
)

// ParseTimeMode validates a time mode from untyped input.
func ParseTimeMode(s string) (TimeMode, error) {
	switch TimeMode(s) {
	case Hour24, Hour12:
		return TimeMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTimeMode, s)
}

func (m *TimeMode) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// FormatToTime renders the time of day as "HH:MM" or, in 12-hour mode,
// "hh:MM AM|PM" where hours 0 and 12 both show as 12. Any mode other than
// Hour12 renders the 24-hour form.
func FormatToTime(t time.Time, mode TimeMode) string {
	hour, minute := t.Hour(), t.Minute()
	if mode != Hour12 {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", h12, minute, period)
}

// FormatWithCustomSeparator joins day, month and year with sep. Field order
// comes from substring matching on the format tag: "dd" gives day-month-year,
// otherwise "mm" gives month-day-year, otherwise year-month-day. A tag that
// contains "mmm" puts the abbreviated month name in the month slot.
func FormatWithCustomSeparator(t time.Time, sep string, format Format) string {
	day, month, year := dateFields(t)
	tag := string(format)
	if strings.Contains(tag, "mmm") {
		month = MonthName(monthIndex(t), false, CaseTitle)
	}

	switch {
	case strings.Contains(tag, "dd"):
		return day + sep + month + sep + year
	case strings.Contains(tag, "mm"):
		return month + sep + day + sep + year
	default:
		return year + sep + month + sep + day
	}
}
