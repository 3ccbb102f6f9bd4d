// Package template renders user-defined text/template snippets against a date,
// exposing the dateutil renderers as template functions.
package template

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/nowwaveradio/datefmt/internal/config"
	"github.com/nowwaveradio/datefmt/internal/dateutil"
)

// TemplateFormatter holds the parsed templates and the Formatter their functions use
type TemplateFormatter struct {
	templates map[string]*template.Template
	sources   map[string]config.TemplateConfig
	formatter *dateutil.Formatter
}

// TemplateData is the value templates execute against
type TemplateData struct {
	Time       time.Time
	Now        time.Time
	Format     dateutil.Format
	Separator  string
	MonthIndex int
}

// NewTemplateFormatter creates a TemplateFormatter for the given template
// sources. A nil formatter uses dateutil defaults.
func NewTemplateFormatter(sources map[string]config.TemplateConfig, f *dateutil.Formatter) *TemplateFormatter {
	if f == nil {
		f = dateutil.New()
	}
	return &TemplateFormatter{
		templates: make(map[string]*template.Template),
		sources:   sources,
		formatter: f,
	}
}

// funcMap exposes the dateutil operations to templates
func (tf *TemplateFormatter) funcMap() template.FuncMap {
	f := tf.formatter
	return template.FuncMap{
		"format": func(t time.Time, format string) (string, error) {
			return f.FormatDate(t, dateutil.Format(format))
		},
		"sep": func(t time.Time, sep, format string) string {
			return dateutil.FormatWithCustomSeparator(t, sep, dateutil.Format(format))
		},
		"time12": func(t time.Time) string {
			return dateutil.FormatToTime(t, dateutil.Hour12)
		},
		"time24": func(t time.Time) string {
			return dateutil.FormatToTime(t, dateutil.Hour24)
		},
		"iso":       dateutil.FormatToISO,
		"timestamp": dateutil.FormatToTimestamp,
		"fullDate":  f.FormatToFullDate,
		"relative":  f.FormatToRelativeTime,
		"human":     f.FormatToHumanReadable,
		"month": func(t time.Time) string {
			return dateutil.MonthName(int(t.Month())-1, false, dateutil.CaseTitle)
		},
		"monthFull": func(t time.Time) string {
			return dateutil.MonthName(int(t.Month())-1, true, dateutil.CaseTitle)
		},
		"monthName": func(index int, full bool, mode string) (string, error) {
			if index < 0 || index > 11 {
				return "", fmt.Errorf("month index %d out of range 0-11", index)
			}
			caseMode, err := dateutil.ParseCaseMode(mode)
			if err != nil {
				return "", err
			}
			return dateutil.MonthName(index, full, caseMode), nil
		},
		"weekday":     dateutil.WeekdayName,
		"week":        dateutil.WeekNumber,
		"leap":        dateutil.IsLeapYear,
		"daysInMonth": dateutil.DaysInMonth,
		"upper":       dateutil.CaseUpper.Apply,
		"lower":       dateutil.CaseLower.Apply,
		"title":       dateutil.CaseTitle.Apply,
		"repeat":      strings.Repeat,
	}
}

// LoadTemplates parses every configured template
func (tf *TemplateFormatter) LoadTemplates() error {
	tf.templates = make(map[string]*template.Template)

	for name, src := range tf.sources {
		tmpl, err := tf.parse(name, src.Text)
		if err != nil {
			return fmt.Errorf("loading template %s: %w", name, err)
		}
		tf.templates[name] = tmpl
	}

	return nil
}

func (tf *TemplateFormatter) parse(name, text string) (*template.Template, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("template text is required")
	}
	tmpl, err := template.New(name).Option("missingkey=error").Funcs(tf.funcMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return tmpl, nil
}

// Data builds the TemplateData for t
func (tf *TemplateFormatter) Data(t time.Time, format dateutil.Format, separator string) TemplateData {
	return TemplateData{
		Time:       t,
		Now:        tf.formatter.Now(),
		Format:     format,
		Separator:  separator,
		MonthIndex: int(t.Month()) - 1,
	}
}

// Render executes a loaded template
func (tf *TemplateFormatter) Render(name string, data TemplateData) (string, error) {
	tmpl, exists := tf.templates[name]
	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}
	return execute(tmpl, data)
}

// RenderText parses and executes an ad-hoc template
func (tf *TemplateFormatter) RenderText(text string, data TemplateData) (string, error) {
	tmpl, err := tf.parse("inline", text)
	if err != nil {
		return "", err
	}
	return execute(tmpl, data)
}

func execute(tmpl *template.Template, data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// ValidateTemplate executes a template against a fixed sample date
func (tf *TemplateFormatter) ValidateTemplate(name string) error {
	sample := time.Date(2024, time.August, 24, 13, 45, 0, 0, time.UTC)
	if _, err := tf.Render(name, tf.Data(sample, dateutil.FormatYYYYMMDD, "-")); err != nil {
		return fmt.Errorf("template %s validation failed: %w", name, err)
	}
	return nil
}

// ListTemplates returns the names of all loaded templates, sorted
func (tf *TemplateFormatter) ListTemplates() []string {
	names := make([]string, 0, len(tf.templates))
	for name := range tf.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasTemplate checks if a template with the given name exists
func (tf *TemplateFormatter) HasTemplate(name string) bool {
	_, exists := tf.templates[name]
	return exists
}
