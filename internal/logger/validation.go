package logger

import (
	"fmt"
	"strings"
)

// invalidFilenameChars are rejected on at least one supported platform
const invalidFilenameChars = `/\:*?"<>|`

// FilenameValidationError represents an error in filename pattern validation
type FilenameValidationError struct {
	Pattern      string
	InvalidChars []rune
	Suggestion   string
}

func (e *FilenameValidationError) Error() string {
	charList := make([]string, len(e.InvalidChars))
	for i, char := range e.InvalidChars {
		charList[i] = fmt.Sprintf("'%c'", char)
	}

	msg := fmt.Sprintf("invalid filename pattern %q contains invalid characters: %s",
		e.Pattern, strings.Join(charList, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidateFilenamePattern rejects patterns that would not produce a portable
// file name. The pattern is a bare name; directories belong in Config.Directory.
func ValidateFilenamePattern(pattern string) error {
	if pattern == "" {
		return nil
	}

	var invalid []rune
	seen := make(map[rune]bool)
	for _, r := range pattern {
		if (strings.ContainsRune(invalidFilenameChars, r) || r < 32) && !seen[r] {
			seen[r] = true
			invalid = append(invalid, r)
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	suggestion := strings.Map(func(r rune) rune {
		if seen[r] {
			return '-'
		}
		return r
	}, pattern)

	return &FilenameValidationError{
		Pattern:      pattern,
		InvalidChars: invalid,
		Suggestion:   suggestion,
	}
}
