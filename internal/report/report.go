// Package report renders analytics results and unique-value listings as
// text, markdown, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cellstats/internal/analytics"
	"cellstats/internal/session"

	"github.com/charmbracelet/lipgloss"
	"github.com/jackc/pgx/v5/pgtype"
	"gopkg.in/yaml.v3"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// Document is the encoded shape of a report.
type Document struct {
	Cells                        int         `json:"cells" yaml:"cells"`
	AverageWeightByOEM           []OEMWeight `json:"average_weight_by_oem" yaml:"average_weight_by_oem"`
	HighestAverageWeightOEM      *OEMWeight  `json:"highest_average_weight_oem" yaml:"highest_average_weight_oem"`
	SingleSensorPhones           int         `json:"single_sensor_phones" yaml:"single_sensor_phones"`
	DifferentAnnounceLaunchYears int         `json:"different_announce_launch_years" yaml:"different_announce_launch_years"`
	ModeLaunchYearAfter1999      *YearCount  `json:"mode_launch_year_after_1999" yaml:"mode_launch_year_after_1999"`
}

// OEMWeight is an average weight entry. OEM is nil for the unknown group.
type OEMWeight struct {
	OEM          *string `json:"oem" yaml:"oem"`
	AverageGrams float64 `json:"average_grams" yaml:"average_grams"`
	Phones       int     `json:"phones" yaml:"phones"`
}

type YearCount struct {
	Year   int32 `json:"year" yaml:"year"`
	Phones int   `json:"phones" yaml:"phones"`
}

// FieldValues is the encoded shape of one unique-values entry.
type FieldValues struct {
	Field  string   `json:"field" yaml:"field"`
	Values []string `json:"values" yaml:"values"`
}

// NewDocument converts r for encoding.
func NewDocument(r analytics.Report) Document {
	doc := Document{
		Cells:                        r.Cells,
		AverageWeightByOEM:           make([]OEMWeight, 0, len(r.AverageWeights)),
		SingleSensorPhones:           r.SingleSensorPhones,
		DifferentAnnounceLaunchYears: r.DifferentAnnounceLaunch,
	}
	for _, avg := range r.AverageWeights {
		doc.AverageWeightByOEM = append(doc.AverageWeightByOEM, oemWeight(avg))
	}
	if r.HasHeaviestOEM {
		w := oemWeight(r.HeaviestOEM)
		doc.HighestAverageWeightOEM = &w
	}
	if r.HasModeLaunchYear {
		doc.ModeLaunchYearAfter1999 = &YearCount{Year: r.ModeLaunchYear.Year, Phones: r.ModeLaunchYear.Count}
	}
	return doc
}

func oemWeight(avg analytics.OEMAverage) OEMWeight {
	w := OEMWeight{AverageGrams: avg.Average, Phones: avg.Count}
	if avg.OEM.Valid {
		oem := avg.OEM.String
		w.OEM = &oem
	}
	return w
}

// Write renders r to w in format.
func Write(w io.Writer, format string, r analytics.Report) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return writeText(w, r)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatJSON:
		return encodeJSON(w, NewDocument(r))
	case FormatYAML:
		return encodeYAML(w, NewDocument(r))
	}
	return fmt.Errorf("unsupported report format %q", format)
}

// WriteUniqueValues renders a unique-values listing to w in format.
func WriteUniqueValues(w io.Writer, format string, values []session.FieldValues) error {
	docs := make([]FieldValues, len(values))
	for i, fv := range values {
		docs[i] = FieldValues{Field: fv.Field.String(), Values: fv.Values}
	}

	switch strings.ToLower(format) {
	case FormatText, "":
		for _, d := range docs {
			if _, err := fmt.Fprintf(w, "%s: %s\n", d.Field, strings.Join(d.Values, ", ")); err != nil {
				return err
			}
		}
		return nil
	case FormatMarkdown:
		_, err := io.WriteString(w, UniqueValuesMarkdown(values))
		return err
	case FormatJSON:
		return encodeJSON(w, docs)
	case FormatYAML:
		return encodeYAML(w, docs)
	}
	return fmt.Errorf("unsupported report format %q", format)
}

func writeText(w io.Writer, r analytics.Report) error {
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Report over %d cells", r.Cells)))
	b.WriteString("\n")

	if r.HasHeaviestOEM {
		fmt.Fprintf(&b, "OEM with the highest average body weight: %s with max average weight: %s (grams)\n",
			oemName(r.HeaviestOEM.OEM), formatGrams(r.HeaviestOEM.Average))
	} else {
		b.WriteString("OEM with the highest average body weight: none (no phone has a known body weight)\n")
	}
	fmt.Fprintf(&b, "Total number of phones announced and launched in different years: %d\n", r.DifferentAnnounceLaunch)
	fmt.Fprintf(&b, "Total number of phones with only one sensor: %d\n", r.SingleSensorPhones)
	if r.HasModeLaunchYear {
		fmt.Fprintf(&b, "Year with most phones launched (post-1999): %d with %d launches\n",
			r.ModeLaunchYear.Year, r.ModeLaunchYear.Count)
	} else {
		b.WriteString("Year with most phones launched (post-1999): none\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Markdown renders r as a markdown document.
func Markdown(r analytics.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cell report\n\n%d cells loaded.\n\n", r.Cells)

	b.WriteString("## Average body weight by OEM\n\n")
	if len(r.AverageWeights) == 0 {
		b.WriteString("No phone has a known body weight.\n\n")
	} else {
		b.WriteString("| OEM | Average (g) | Phones |\n|---|---:|---:|\n")
		for _, avg := range r.AverageWeights {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", escapeCell(oemName(avg.OEM)), formatGrams(avg.Average), avg.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Summary\n\n")
	if r.HasHeaviestOEM {
		fmt.Fprintf(&b, "- Heaviest OEM on average: **%s** (%s g)\n", oemName(r.HeaviestOEM.OEM), formatGrams(r.HeaviestOEM.Average))
	} else {
		b.WriteString("- Heaviest OEM on average: none\n")
	}
	fmt.Fprintf(&b, "- Announced and launched in different years: **%d**\n", r.DifferentAnnounceLaunch)
	fmt.Fprintf(&b, "- Phones with a single sensor: **%d**\n", r.SingleSensorPhones)
	if r.HasModeLaunchYear {
		fmt.Fprintf(&b, "- Most launches after 1999: **%d** (%d phones)\n", r.ModeLaunchYear.Year, r.ModeLaunchYear.Count)
	} else {
		b.WriteString("- Most launches after 1999: none\n")
	}
	return b.String()
}

// UniqueValuesMarkdown renders a unique-values listing as markdown.
func UniqueValuesMarkdown(values []session.FieldValues) string {
	var b strings.Builder
	b.WriteString("# Unique values\n\n")
	for _, fv := range values {
		fmt.Fprintf(&b, "## %s\n\n", fv.Field)
		if len(fv.Values) == 0 {
			b.WriteString("_none_\n\n")
			continue
		}
		for _, v := range fv.Values {
			fmt.Fprintf(&b, "- %s\n", v)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func oemName(t pgtype.Text) string {
	if !t.Valid {
		return "unknown"
	}
	return t.String
}

func formatGrams(g float64) string {
	return strconv.FormatFloat(g, 'f', 2, 64)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
