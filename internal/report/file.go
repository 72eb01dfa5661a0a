package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cellstats/internal/analytics"
)

var extensions = map[string]string{
	FormatText:     "txt",
	FormatMarkdown: "md",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
}

// SaveToDir writes r to a new file named report_<timestamp>.<ext> in
// outputDir and returns its path.
func SaveToDir(outputDir, format string, r analytics.Report, now time.Time) (string, error) {
	format = strings.ToLower(format)
	extension, ok := extensions[format]
	if !ok {
		return "", fmt.Errorf("unsupported report format %q", format)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := fmt.Sprintf("report_%s.%s", now.Format("20060102_150405"), extension)
	path := filepath.Join(outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := Write(file, format, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("report failed: %w", err)
	}

	return path, nil
}
