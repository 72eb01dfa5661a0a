package models

import (
	"strings"

	"cellstats/internal/normalize"

	"github.com/jackc/pgx/v5/pgtype"
)

// RawCell is one row of the cells sheet exactly as read, before normalization.
// An absent value is the empty string.
type RawCell struct {
	OEM               string `csv:"oem"`
	Model             string `csv:"model"`
	LaunchAnnounced   string `csv:"launch_announced"`
	LaunchStatus      string `csv:"launch_status"`
	BodyDimensions    string `csv:"body_dimensions"`
	BodyWeight        string `csv:"body_weight"`
	BodySIM           string `csv:"body_sim"`
	DisplayType       string `csv:"display_type"`
	DisplaySize       string `csv:"display_size"`
	DisplayResolution string `csv:"display_resolution"`
	FeaturesSensors   string `csv:"features_sensors"`
	PlatformOS        string `csv:"platform_os"`
}

// Get returns the raw value of f.
func (r RawCell) Get(f Field) string {
	switch f {
	case FieldOEM:
		return r.OEM
	case FieldModel:
		return r.Model
	case FieldLaunchAnnounced:
		return r.LaunchAnnounced
	case FieldLaunchStatus:
		return r.LaunchStatus
	case FieldBodyDimensions:
		return r.BodyDimensions
	case FieldBodyWeight:
		return r.BodyWeight
	case FieldBodySIM:
		return r.BodySIM
	case FieldDisplayType:
		return r.DisplayType
	case FieldDisplaySize:
		return r.DisplaySize
	case FieldDisplayResolution:
		return r.DisplayResolution
	case FieldFeaturesSensors:
		return r.FeaturesSensors
	case FieldPlatformOS:
		return r.PlatformOS
	}
	return ""
}

// Set returns a copy of r with f replaced by value.
func (r RawCell) Set(f Field, value string) RawCell {
	switch f {
	case FieldOEM:
		r.OEM = value
	case FieldModel:
		r.Model = value
	case FieldLaunchAnnounced:
		r.LaunchAnnounced = value
	case FieldLaunchStatus:
		r.LaunchStatus = value
	case FieldBodyDimensions:
		r.BodyDimensions = value
	case FieldBodyWeight:
		r.BodyWeight = value
	case FieldBodySIM:
		r.BodySIM = value
	case FieldDisplayType:
		r.DisplayType = value
	case FieldDisplaySize:
		r.DisplaySize = value
	case FieldDisplayResolution:
		r.DisplayResolution = value
	case FieldFeaturesSensors:
		r.FeaturesSensors = value
	case FieldPlatformOS:
		r.PlatformOS = value
	}
	return r
}

// Trimmed strips surrounding whitespace from every value.
func (r RawCell) Trimmed() RawCell {
	for _, f := range Fields() {
		r = r.Set(f, strings.TrimSpace(r.Get(f)))
	}
	return r
}

// Cell is a normalized phone specification. Any field may be unknown:
// Valid=false for pgtype values, nil for FeaturesSensors, StatusUnknown for
// LaunchStatus. Cells are values; use WithField to change one.
type Cell struct {
	OEM               pgtype.Text   `json:"oem"`
	Model             pgtype.Text   `json:"model"`
	LaunchAnnounced   pgtype.Int4   `json:"launch_announced"`
	LaunchStatus      LaunchStatus  `json:"launch_status"`
	BodyDimensions    pgtype.Text   `json:"body_dimensions"`
	BodyWeight        pgtype.Float8 `json:"body_weight"`
	BodySIM           pgtype.Text   `json:"body_sim"`
	DisplayType       pgtype.Text   `json:"display_type"`
	DisplaySize       pgtype.Text   `json:"display_size"`
	DisplayResolution pgtype.Text   `json:"display_resolution"`
	FeaturesSensors   []string      `json:"features_sensors"`
	PlatformOS        pgtype.Text   `json:"platform_os"`
}

// NewCell normalizes every field of raw.
func NewCell(raw RawCell) Cell {
	return Cell{
		OEM:               normalize.Text(raw.OEM),
		Model:             normalize.Text(raw.Model),
		LaunchAnnounced:   normalize.Year(raw.LaunchAnnounced),
		LaunchStatus:      ParseLaunchStatus(raw.LaunchStatus),
		BodyDimensions:    normalize.Text(raw.BodyDimensions),
		BodyWeight:        normalize.Weight(raw.BodyWeight),
		BodySIM:           normalize.BodySIM(raw.BodySIM),
		DisplayType:       normalize.Text(raw.DisplayType),
		DisplaySize:       normalize.DisplaySize(raw.DisplaySize),
		DisplayResolution: normalize.Text(raw.DisplayResolution),
		FeaturesSensors:   normalize.FeaturesSensors(raw.FeaturesSensors),
		PlatformOS:        normalize.PlatformOS(raw.PlatformOS),
	}
}

// WithField returns a copy of c with f re-parsed from raw, using the same
// rule NewCell applies.
func (c Cell) WithField(f Field, raw string) Cell {
	switch f {
	case FieldOEM:
		c.OEM = normalize.Text(raw)
	case FieldModel:
		c.Model = normalize.Text(raw)
	case FieldLaunchAnnounced:
		c.LaunchAnnounced = normalize.Year(raw)
	case FieldLaunchStatus:
		c.LaunchStatus = ParseLaunchStatus(raw)
	case FieldBodyDimensions:
		c.BodyDimensions = normalize.Text(raw)
	case FieldBodyWeight:
		c.BodyWeight = normalize.Weight(raw)
	case FieldBodySIM:
		c.BodySIM = normalize.BodySIM(raw)
	case FieldDisplayType:
		c.DisplayType = normalize.Text(raw)
	case FieldDisplaySize:
		c.DisplaySize = normalize.DisplaySize(raw)
	case FieldDisplayResolution:
		c.DisplayResolution = normalize.Text(raw)
	case FieldFeaturesSensors:
		c.FeaturesSensors = normalize.FeaturesSensors(raw)
	case FieldPlatformOS:
		c.PlatformOS = normalize.PlatformOS(raw)
	}
	return c
}

// Display renders the value of f for listings. ok is false when the field is unknown.
func (c Cell) Display(f Field) (value string, ok bool) {
	switch f {
	case FieldOEM:
		return textValue(c.OEM)
	case FieldModel:
		return textValue(c.Model)
	case FieldLaunchAnnounced:
		if !c.LaunchAnnounced.Valid {
			return "", false
		}
		return formatInt(c.LaunchAnnounced.Int32), true
	case FieldLaunchStatus:
		if !c.LaunchStatus.Known() {
			return "", false
		}
		return c.LaunchStatus.String(), true
	case FieldBodyDimensions:
		return textValue(c.BodyDimensions)
	case FieldBodyWeight:
		if !c.BodyWeight.Valid {
			return "", false
		}
		return formatFloat(c.BodyWeight.Float64), true
	case FieldBodySIM:
		return textValue(c.BodySIM)
	case FieldDisplayType:
		return textValue(c.DisplayType)
	case FieldDisplaySize:
		return textValue(c.DisplaySize)
	case FieldDisplayResolution:
		return textValue(c.DisplayResolution)
	case FieldFeaturesSensors:
		if c.FeaturesSensors == nil {
			return "", false
		}
		return strings.Join(c.FeaturesSensors, ", "), true
	case FieldPlatformOS:
		return textValue(c.PlatformOS)
	}
	return "", false
}

func textValue(t pgtype.Text) (string, bool) {
	if !t.Valid {
		return "", false
	}
	return t.String, true
}
