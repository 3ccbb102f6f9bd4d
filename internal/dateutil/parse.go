package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dateSeparators = regexp.MustCompile(`[-/]`)

// ParseDate splits text on "-" or "/" and reads day, month and year in the
// order given by format. Only FormatDDMMYYYY, FormatMMDDYYYY and FormatYYYYMMDD
// are accepted; the separator in text does not have to match the tag.
//
// Fewer than three components or a non-integer component return an error
// wrapping ErrMalformedDate. Out-of-range values are not rejected: they
// normalize the way time.Date does, so "32-01-2024" is February 1.
// The result is midnight in the Formatter's location.
func (f *Formatter) ParseDate(text string, format Format) (time.Time, error) {
	var dayPos, monthPos, yearPos int
	switch format {
	case FormatDDMMYYYY:
		dayPos, monthPos, yearPos = 0, 1, 2
	case FormatMMDDYYYY:
		dayPos, monthPos, yearPos = 1, 0, 2
	case FormatYYYYMMDD:
		dayPos, monthPos, yearPos = 2, 1, 0
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedParseFormat, string(format))
	}

	parts := dateSeparators.Split(text, -1)
	if len(parts) < 3 {
		return time.Time{}, fmt.Errorf("%w: %q has %d components, want 3", ErrMalformedDate, text, len(parts))
	}

	values := make([]int, 3)
	for i := range values {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: component %q of %q is not an integer", ErrMalformedDate, parts[i], text)
		}
		values[i] = n
	}

	return time.Date(values[yearPos], time.Month(values[monthPos]), values[dayPos], 0, 0, 0, 0, f.location), nil
}
