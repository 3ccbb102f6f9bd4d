package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nowwaveradio/datefmt/internal/dateutil"
)

var testNow = time.Date(2024, time.August, 24, 12, 0, 0, 0, time.UTC)

func runApp(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{
		stdout: &stdout,
		stderr: &stderr,
		clock:  dateutil.ClockFunc(func() time.Time { return testNow }),
	}
	code := a.run(args)
	return stdout.String(), stderr.String(), code
}

func TestRunFormats(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "default format for now",
			args:     []string{"-timezone", "UTC"},
			expected: "2024-08-24\n",
		},
		{
			name:     "parse and reformat",
			args:     []string{"-timezone", "UTC", "-date", "24-08-2024", "-parse-format", "dd-mm-yyyy", "-format", "mmmm-dd-yyyy"},
			expected: "August 24, 2024\n",
		},
		{
			name:     "epoch millis to iso with 12-hour time",
			args:     []string{"-timezone", "UTC", "-epoch-ms", "1724507100000", "-format", "iso", "-time", "-time-mode", "12-hour"},
			expected: "2024-08-24T13:45:00.000Z\n01:45 PM\n",
		},
		{
			name:     "custom separator",
			args:     []string{"-timezone", "UTC", "-date", "2024-08-24", "-separator", ".", "-format", "dd-mmm-yyyy"},
			expected: "24.Aug.2024\n",
		},
		{
			name:     "configured separator",
			args:     []string{"-timezone", "UTC", "-date", "2024-08-24", "-custom"},
			expected: "24.08.2024\n",
		},
		{
			name:     "locale full date",
			args:     []string{"-timezone", "UTC", "-date", "2024-08-24", "-format", "fullDate", "-locale", "en-GB"},
			expected: "Saturday 24 August 2024\n",
		},
		{
			name:     "relative and human",
			args:     []string{"-timezone", "UTC", "-date", "2024-08-21", "-relative", "-human"},
			expected: "2024-08-21\n4 days ago\n4 days ago\n",
		},
		{
			name:     "calendar",
			args:     []string{"-timezone", "UTC", "-date", "2024-02-10", "-calendar"},
			expected: "2024-02-10\nweekday: Saturday\nmonth: February\nleap year: true\ndays in month: 29\nweek: 6\n",
		},
		{
			name:     "inline template",
			args:     []string{"-timezone", "UTC", "-date", "2024-08-24", "-template-text", `{{ weekday .Time }} {{ month .Time | upper }}`},
			expected: "2024-08-24\nSaturday AUG\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runApp(t, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestRunAll(t *testing.T) {
	stdout, stderr, code := runApp(t, "-timezone", "UTC", "-date", "2024-08-24", "-all")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(dateutil.Formats()))
	assert.Equal(t, "dd-mm-yyyy    24-08-2024", lines[0])
	assert.Equal(t, "timestamp     1724457600000", lines[12])
}

func TestRunWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datefmt.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[formatting]
format = "dd/mm/yyyy"
parse_format = "mm-dd-yyyy"
case = "upper"
timezone = "UTC"

[templates.report]
text = "{{ format .Time \"mmm-dd-yyyy\" }} is in week {{ week .Time }}"
`), 0644))

	stdout, stderr, code := runApp(t, "-config", path, "-date", "08-24-2024", "-template", "report", "-calendar")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "24/08/2024\nweekday: Saturday\nmonth: AUGUST\nleap year: true\ndays in month: 31\nweek: 34\nAug 24, 2024 is in week 34\n", stdout)
}

func TestRunTimeUsesConfiguredMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datefmt.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[formatting]
time_mode = "12-hour"
timezone = "UTC"
`), 0644))

	stdout, stderr, code := runApp(t, "-config", path, "-epoch-ms", "1724507100000", "-time")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "2024-08-24\n01:45 PM\n", stdout)

	t.Setenv("DATEFMT_TIME_MODE", "24-hour")
	stdout, stderr, code = runApp(t, "-config", path, "-epoch-ms", "1724507100000", "-time")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "2024-08-24\n13:45\n", stdout)

	stdout, stderr, code = runApp(t, "-config", path, "-epoch-ms", "1724507100000", "-time", "-time-mode", "12-hour")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "2024-08-24\n01:45 PM\n", stdout)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{name: "unknown format", args: []string{"-format", "dd.mm"}, code: 2, contains: "-format"},
		{name: "bad time mode", args: []string{"-time", "-time-mode", "36-hour"}, code: 2, contains: "-time-mode"},
		{name: "unparseable date", args: []string{"-date", "24-Aug-2024", "-parse-format", "dd-mm-yyyy"}, code: 1, contains: "malformed date"},
		{name: "parse format not parseable", args: []string{"-date", "24/08/2024", "-parse-format", "dd/mm/yyyy"}, code: 1, contains: "parse_format"},
		{name: "date and epoch", args: []string{"-date", "2024-08-24", "-epoch-ms", "0"}, code: 2, contains: "mutually exclusive"},
		{name: "stray argument", args: []string{"extra"}, code: 2, contains: "unexpected arguments"},
		{name: "missing config", args: []string{"-config", "/does/not/exist.toml"}, code: 1, contains: "configuration file not found"},
		{name: "bad timezone", args: []string{"-timezone", "Mars/Olympus"}, code: 1, contains: "formatting.timezone"},
		{name: "missing template", args: []string{"-template", "nope"}, code: 1, contains: "template nope not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runApp(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.contains)
		})
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	stdout, _, code := runApp(t, "-version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "datefmt v"+version+"\n", stdout)

	_, stderr, code := runApp(t, "-help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "Usage: datefmt [OPTIONS]")
}

func TestRunTemplateCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datefmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
templates:
  short:
    text: "{{ format .Time \"dd/mm/yyyy\" }}"
  broken:
    text: "{{ .Missing }}"
`), 0644))

	stdout, stderr, code := runApp(t, "-config", path, "-list-templates")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "broken\nshort\n", stdout)

	stdout, stderr, code = runApp(t, "-config", path, "-validate-templates")
	assert.Equal(t, 1, code)
	assert.Equal(t, "short: ok\n", stdout)
	assert.Contains(t, stderr, "template broken validation failed")
}

func TestRunWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")

	stdout, stderr, code := runApp(t, "-locale", "en-GB", "-timezone", "UTC", "-format", "iso", "-write-config", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Configuration written to "+path+"\n", stdout)

	stdout, stderr, code = runApp(t, "-config", path, "-epoch-ms", "0")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "1970-01-01T00:00:00.000Z\n", stdout)
}
