package constants

// Formatting defaults used when no configuration is present
const (
	// DefaultFormat is the date format tag used by the CLI
	DefaultFormat = "yyyy-mm-dd"

	// DefaultParseFormat is the tag used to read -date input
	DefaultParseFormat = "yyyy-mm-dd"

	// DefaultTimeMode for time-of-day output
	DefaultTimeMode = "24-hour"

	// DefaultLocale for the long weekday date
	DefaultLocale = "en-US"

	// DefaultTimezone names the location dates are parsed into
	DefaultTimezone = "Local"

	// DefaultCase for rendered month names
	DefaultCase = "title"
)

// File and logging configuration
const (
	// DefaultLogLevel when none is configured
	DefaultLogLevel = "info"

	// DefaultLogFilenamePattern; {date} expands to yyyy-mm-dd
	DefaultLogFilenamePattern = "datefmt-{date}.log"

	// DefaultLogDirectory relative to the working directory
	DefaultLogDirectory = "logs"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DATEFMT_"
