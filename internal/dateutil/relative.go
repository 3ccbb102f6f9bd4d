package dateutil

import (
	"fmt"
	"math"
	"time"
)

const (
	msPerMinute = float64(time.Minute / time.Millisecond)
	msPerDay    = float64(24 * time.Hour / time.Millisecond)
)

// FormatToRelativeTime describes the distance between t and now in whole
// minutes (under an hour), hours (under a day) or days, rounded to nearest.
// Future instants read "in N unit", past ones "N unit ago". t equal to now
// counts as past and renders "0 minutes ago". The distance is taken from
// epoch milliseconds, so it is not capped at the time.Duration range.
func (f *Formatter) FormatToRelativeTime(t time.Time) string {
	diff := float64(f.clock.Now().UnixMilli() - t.UnixMilli())

	minutes := math.Abs(diff) / msPerMinute
	var value float64
	var unit string
	switch {
	case minutes < 60:
		value, unit = minutes, "minutes"
	case minutes/60 < 24:
		value, unit = minutes/60, "hours"
	default:
		value, unit = minutes/60/24, "days"
	}

	amount := int64(math.Round(value))
	if diff < 0 {
		return fmt.Sprintf("in %d %s", amount, unit)
	}
	return fmt.Sprintf("%d %s ago", amount, unit)
}

// FormatToHumanReadable buckets t by continuous 24-hour distance from now,
// not by calendar day: more than a day ahead is "tomorrow", anything else
// ahead is "today", less than a day behind is "yesterday", and older values
// read "N days ago".
func (f *Formatter) FormatToHumanReadable(t time.Time) string {
	daysDiff := float64(f.clock.Now().UnixMilli()-t.UnixMilli()) / msPerDay

	switch {
	case daysDiff < -1:
		return "tomorrow"
	case daysDiff < 0:
		return "today"
	case daysDiff < 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", int64(math.Abs(math.Round(daysDiff))))
	}
}
