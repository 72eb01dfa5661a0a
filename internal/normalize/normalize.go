// Package normalize turns the loosely formatted text found in phone
// specification sheets into typed values.
//
// Every function here is total: bad or missing input never produces an error,
// it produces a pgtype value with Valid=false (or a nil slice), which the rest
// of the module treats as "unknown".
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Placeholder is the marker spreadsheets use for "no value".
const Placeholder = "-"

var (
	yearRegex        = regexp.MustCompile(`\d{4}`)
	leadingIntRegex  = regexp.MustCompile(`^\d+`)
	displaySizeRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*in(?:ch(?:es)?)?(.*)`)
)

// IsBlank reports whether s carries no value: empty, whitespace, or a lone hyphen.
func IsBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == Placeholder
}

// Text keeps s as-is unless it is blank.
func Text(s string) pgtype.Text {
	if IsBlank(s) {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// BodySIM is Text with "No" treated as unknown.
func BodySIM(s string) pgtype.Text {
	if strings.TrimSpace(s) == "No" {
		return pgtype.Text{Valid: false}
	}
	return Text(s)
}

// Year extracts the first run of four digits in s.
func Year(s string) pgtype.Int4 {
	if IsBlank(s) {
		return pgtype.Int4{Valid: false}
	}
	match := yearRegex.FindString(s)
	if match == "" {
		return pgtype.Int4{Valid: false}
	}
	year, err := strconv.ParseInt(match, 10, 32)
	if err != nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(year), Valid: true}
}

// Weight reads the digits at the very start of s as grams: "169 g (5.96 oz)" is 169.
func Weight(s string) pgtype.Float8 {
	if IsBlank(s) {
		return pgtype.Float8{Valid: false}
	}
	match := leadingIntRegex.FindString(s)
	if match == "" {
		return pgtype.Float8{Valid: false}
	}
	grams, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: grams, Valid: true}
}

// DisplaySize rewrites the first "<n> in", "<n> inch" or "<n> inches" as
// "<n> inches", keeping whatever text follows the unit.
func DisplaySize(s string) pgtype.Text {
	if IsBlank(s) {
		return pgtype.Text{Valid: false}
	}
	m := displaySizeRegex.FindStringSubmatch(s)
	if m == nil {
		return pgtype.Text{Valid: false}
	}
	size, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{
		String: strconv.FormatFloat(size, 'f', -1, 64) + " inches" + m[2],
		Valid:  true,
	}
}

// PlatformOS keeps the part before the first comma: "Android 9.0 (Pie), One UI" is "Android 9.0 (Pie)".
func PlatformOS(s string) pgtype.Text {
	if IsBlank(s) {
		return pgtype.Text{Valid: false}
	}
	head, _, _ := strings.Cut(s, ",")
	head = strings.TrimSpace(head)
	if head == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: head, Valid: true}
}

// FeaturesSensors splits a comma separated sensor list. Entries that are just
// numbers are noise from the source sheets and get dropped; "V1" is kept.
// Returns nil when nothing is left.
func FeaturesSensors(s string) []string {
	if IsBlank(s) {
		return nil
	}
	var sensors []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "V1" && isNumeric(part) {
			continue
		}
		sensors = append(sensors, part)
	}
	return sensors
}

// isNumeric reports whether s reads as a plain number. An empty entry counts
// as numeric so that stray commas leave nothing behind. Named non-numbers
// like "NaN" or "inf" are not numbers here.
func isNumeric(s string) bool {
	if s == "" {
		return true
	}
	switch strings.TrimLeft(s, "+-") {
	case "Infinity":
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return false
		}
	}
	if math.IsNaN(f) {
		return false
	}
	if math.IsInf(f, 0) {
		// ParseFloat also accepts "inf"; only overflowing digits count.
		lower := strings.ToLower(strings.TrimLeft(s, "+-"))
		return lower != "inf" && lower != "infinity"
	}
	return true
}
