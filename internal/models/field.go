package models

import (
	"fmt"
	"strconv"
)

// Field names one column of the cells sheet.
type Field int

const (
	FieldOEM Field = iota
	FieldModel
	FieldLaunchAnnounced
	FieldLaunchStatus
	FieldBodyDimensions
	FieldBodyWeight
	FieldBodySIM
	FieldDisplayType
	FieldDisplaySize
	FieldDisplayResolution
	FieldFeaturesSensors
	FieldPlatformOS
)

var fieldNames = [...]string{
	FieldOEM:               "oem",
	FieldModel:             "model",
	FieldLaunchAnnounced:   "launch_announced",
	FieldLaunchStatus:      "launch_status",
	FieldBodyDimensions:    "body_dimensions",
	FieldBodyWeight:        "body_weight",
	FieldBodySIM:           "body_sim",
	FieldDisplayType:       "display_type",
	FieldDisplaySize:       "display_size",
	FieldDisplayResolution: "display_resolution",
	FieldFeaturesSensors:   "features_sensors",
	FieldPlatformOS:        "platform_os",
}

var fieldPrompts = [...]string{
	FieldOEM:               "Enter OEM: ",
	FieldModel:             "Enter model: ",
	FieldLaunchAnnounced:   "Enter launch year announced: ",
	FieldLaunchStatus:      "Enter launch status: ",
	FieldBodyDimensions:    "Enter body dimensions: ",
	FieldBodyWeight:        "Enter body weight (in grams): ",
	FieldBodySIM:           "Enter body SIM type: ",
	FieldDisplayType:       "Enter display type: ",
	FieldDisplaySize:       "Enter display size (in inches): ",
	FieldDisplayResolution: "Enter display resolution: ",
	FieldFeaturesSensors:   "Enter features and sensors: ",
	FieldPlatformOS:        "Enter platform OS: ",
}

// Fields returns every field in column order.
func Fields() []Field {
	fields := make([]Field, len(fieldNames))
	for i := range fieldNames {
		fields[i] = Field(i)
	}
	return fields
}

// ColumnNames returns the CSV header names in column order.
func ColumnNames() []string {
	names := make([]string, len(fieldNames))
	copy(names, fieldNames[:])
	return names
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// Prompt is the question asked when a field is entered interactively.
func (f Field) Prompt() string {
	if f < 0 || int(f) >= len(fieldPrompts) {
		return f.String() + ": "
	}
	return fieldPrompts[f]
}

// ParseField resolves a CSV column name.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}
