package dateutil

import "time"

// IsValidDate reports whether v is a time.Time (or non-nil *time.Time) that
// holds a real instant. The zero Time is what failed parses return and is
// treated as invalid, so the genuine instant 0001-01-01T00:00:00Z also
// reports false.
func IsValidDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return !t.IsZero()
	case *time.Time:
		return t != nil && !t.IsZero()
	default:
		return false
	}
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the zero-based month of year,
// found by stepping back one day from the first of the following month.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekNumber counts whole weeks since January 1 of t's year, starting at 1.
// Weeks are plain seven-day blocks from January 1, not ISO-8601 weeks.
func WeekNumber(t time.Time) int {
	return (t.YearDay()-1)/7 + 1
}
