package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			got, err := ParseFormat(string(f))
			require.NoError(t, err)
			assert.Equal(t, f, got)
		})
	}

	_, err := ParseFormat("dd.mm.yyyy")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatsReturnsCopy(t *testing.T) {
	list := Formats()
	require.Len(t, list, 13)
	list[0] = "changed"
	assert.Equal(t, FormatDDMMYYYY, Formats()[0])
}

func TestFormatUnmarshalText(t *testing.T) {
	var f Format
	require.NoError(t, f.UnmarshalText([]byte("mmm-dd-yyyy")))
	assert.Equal(t, FormatMMMDDYYYY, f)

	err := f.UnmarshalText([]byte("bogus"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, FormatMMMDDYYYY, f, "failed decode must not overwrite")
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		full     bool
		mode     CaseMode
		expected string
	}{
		{name: "short title", index: 7, full: false, mode: CaseTitle, expected: "Aug"},
		{name: "full title", index: 7, full: true, mode: CaseTitle, expected: "August"},
		{name: "short upper", index: 0, full: false, mode: CaseUpper, expected: "JAN"},
		{name: "full upper", index: 11, full: true, mode: CaseUpper, expected: "DECEMBER"},
		{name: "short lower", index: 4, full: false, mode: CaseLower, expected: "may"},
		{name: "full lower", index: 8, full: true, mode: CaseLower, expected: "september"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthName(tt.index, tt.full, tt.mode))
		})
	}
}

func TestMonthNameOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { MonthName(12, false, CaseTitle) })
	assert.Panics(t, func() { MonthName(-1, true, CaseTitle) })
}

func TestCaseModeApplyTitleLowersRest(t *testing.T) {
	assert.Equal(t, "August", CaseTitle.Apply("aUGUST"))
}

func TestParseCaseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected CaseMode
	}{
		{input: "", expected: CaseTitle},
		{input: "Title", expected: CaseTitle},
		{input: "UPPER", expected: CaseUpper},
		{input: " lower ", expected: CaseLower},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCaseMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, mustParseCase(t, got.String()))
		})
	}

	_, err := ParseCaseMode("camel")
	require.ErrorIs(t, err, ErrUnsupportedCaseMode)
}

func mustParseCase(t *testing.T, s string) CaseMode {
	t.Helper()
	m, err := ParseCaseMode(s)
	require.NoError(t, err)
	return m
}
