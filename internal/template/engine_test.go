package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/nowwaveradio/datefmt/internal/config"
	"github.com/nowwaveradio/datefmt/internal/dateutil"
)

var sample = time.Date(2024, time.August, 24, 13, 45, 0, 0, time.UTC)

func fixedFormatter() *dateutil.Formatter {
	now := time.Date(2024, time.August, 26, 13, 45, 0, 0, time.UTC)
	return dateutil.New(dateutil.WithClock(dateutil.ClockFunc(func() time.Time { return now })))
}

func TestNewTemplateFormatter(t *testing.T) {
	tf := NewTemplateFormatter(nil, nil)
	require.NotNil(t, tf)
	assert.NotNil(t, tf.formatter)
	assert.NotNil(t, tf.templates)
	require.NoError(t, tf.LoadTemplates())
	assert.Empty(t, tf.ListTemplates())
}

func TestLoadAndRenderTemplates(t *testing.T) {
	sources := map[string]config.TemplateConfig{
		"numeric": {Text: `{{ format .Time "dd-mm-yyyy" }}`},
		"long":    {Text: `{{ weekday .Time }}, {{ monthFull .Time }} {{ .Time.Day }} at {{ time12 .Time }}`},
		"custom":  {Text: `{{ sep .Time .Separator (print .Format) }}`},
	}

	tf := NewTemplateFormatter(sources, fixedFormatter())
	require.NoError(t, tf.LoadTemplates())
	assert.Equal(t, []string{"custom", "long", "numeric"}, tf.ListTemplates())
	assert.True(t, tf.HasTemplate("long"))
	assert.False(t, tf.HasTemplate("missing"))

	data := tf.Data(sample, dateutil.FormatDDMMMYYYY, ".")

	tests := []struct {
		name     string
		expected string
	}{
		{name: "numeric", expected: "24-08-2024"},
		{name: "long", expected: "Saturday, August 24 at 01:45 PM"},
		{name: "custom", expected: "24.Aug.2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tf.Render(tt.name, data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.NoError(t, tf.ValidateTemplate(tt.name))
		})
	}
}

func TestRenderTextFunctions(t *testing.T) {
	tf := NewTemplateFormatter(nil, fixedFormatter())
	data := tf.Data(sample, dateutil.FormatISO, "/")

	tests := []struct {
		text     string
		expected string
	}{
		{text: `{{ iso .Time }}`, expected: "2024-08-24T13:45:00.000Z"},
		{text: `{{ timestamp .Time }}`, expected: "1724507100000"},
		{text: `{{ time24 .Time }}`, expected: "13:45"},
		{text: `{{ relative .Time }}`, expected: "2 days ago"},
		{text: `{{ human .Time }}`, expected: "2 days ago"},
		{text: `{{ fullDate .Time }}`, expected: "Saturday, August 24, 2024"},
		{text: `{{ month .Time | upper }}`, expected: "AUG"},
		{text: `{{ monthName .MonthIndex true "lower" }}`, expected: "august"},
		{text: `{{ week .Time }}`, expected: "34"},
		{text: `{{ leap .Time.Year }}`, expected: "true"},
		{text: `{{ daysInMonth 2023 1 }}`, expected: "28"},
		{text: `{{ title "sATURDAY" }}`, expected: "Saturday"},
		{text: `{{ repeat "-" 3 }}`, expected: "---"},
		{text: `{{ format .Time (print .Format) }}`, expected: "2024-08-24T13:45:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := tf.RenderText(tt.text, data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFullDateUsesFormatterLocale(t *testing.T) {
	tf := NewTemplateFormatter(nil, dateutil.New(dateutil.WithLocale(language.German)))
	got, err := tf.RenderText(`{{ fullDate .Time }}`, tf.Data(sample, dateutil.FormatFullDate, ""))
	require.NoError(t, err)
	assert.Equal(t, "Samstag, 24. August 2024", got)
}

func TestTemplateErrors(t *testing.T) {
	tf := NewTemplateFormatter(map[string]config.TemplateConfig{
		"broken": {Text: `{{ format .Time }`},
	}, nil)
	assert.Error(t, tf.LoadTemplates())

	tf = NewTemplateFormatter(map[string]config.TemplateConfig{"blank": {Text: "  "}}, nil)
	assert.Error(t, tf.LoadTemplates())

	tf = NewTemplateFormatter(nil, nil)
	data := tf.Data(sample, dateutil.FormatISO, "")

	_, err := tf.Render("missing", data)
	assert.ErrorContains(t, err, "not found")

	_, err = tf.RenderText(`{{ format .Time "dd.mm.yyyy" }}`, data)
	assert.ErrorIs(t, err, dateutil.ErrUnsupportedFormat)

	_, err = tf.RenderText(`{{ monthName 12 false "title" }}`, data)
	assert.ErrorContains(t, err, "out of range")

	_, err = tf.RenderText(`{{ monthName 0 false "snake" }}`, data)
	assert.ErrorIs(t, err, dateutil.ErrUnsupportedCaseMode)

	assert.Error(t, tf.ValidateTemplate("missing"))
}
