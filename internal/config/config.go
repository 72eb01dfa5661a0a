// Package config loads runtime settings from environment variables, with
// defaults for everything, and validates them up front.
package config

// Config holds all application configuration.
type Config struct {
	Input   InputConfig
	Report  ReportConfig
	Logging LoggingConfig
}

// InputConfig says where the cells sheet lives.
type InputConfig struct {
	// CSVPath is the cells CSV to load on startup (default: cells.csv)
	CSVPath string `env:"CELLS_CSV" default:"cells.csv"`
}

// ReportConfig controls how analytics reports are rendered.
type ReportConfig struct {
	// Format is one of text, markdown, json, yaml (default: text)
	Format string `env:"REPORT_FORMAT" default:"text"`

	// OutputDir, when set, also writes each report to a timestamped file there.
	OutputDir string `env:"REPORT_OUTPUT_DIR"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is console or json (default: console)
	Format string `env:"LOG_FORMAT" default:"console"`

	// File redirects logs away from stderr. The TUI only logs when this is set.
	File string `env:"LOG_FILE"`
}

// ReportFormats lists the accepted REPORT_FORMAT values.
var ReportFormats = []string{"text", "markdown", "json", "yaml"}
