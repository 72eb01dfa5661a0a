package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"cellstats/internal/normalize"
)

// StatusKind tells which form a LaunchStatus takes.
type StatusKind int

const (
	StatusUnknown StatusKind = iota
	StatusYear
	StatusDiscontinued
	StatusCancelled
)

const (
	discontinuedTag = "Discontinued"
	cancelledTag    = "Cancelled"
)

// LaunchStatus is either a release year or one of the Discontinued/Cancelled tags.
type LaunchStatus struct {
	Kind StatusKind
	Year int32
}

// ParseLaunchStatus accepts the exact tags "Discontinued" and "Cancelled" and
// otherwise looks for a four digit year.
func ParseLaunchStatus(s string) LaunchStatus {
	switch strings.TrimSpace(s) {
	case discontinuedTag:
		return LaunchStatus{Kind: StatusDiscontinued}
	case cancelledTag:
		return LaunchStatus{Kind: StatusCancelled}
	}
	if year := normalize.Year(s); year.Valid {
		return LaunchStatus{Kind: StatusYear, Year: year.Int32}
	}
	return LaunchStatus{}
}

// Known reports whether the status holds a year or a tag.
func (s LaunchStatus) Known() bool { return s.Kind != StatusUnknown }

// IsYear reports whether the status is a release year.
func (s LaunchStatus) IsYear() bool { return s.Kind == StatusYear }

// DiffersFrom reports whether the status is not the given announcement year.
// A tag never equals a year.
func (s LaunchStatus) DiffersFrom(year int32) bool {
	return s.Kind != StatusYear || s.Year != year
}

func (s LaunchStatus) String() string {
	switch s.Kind {
	case StatusYear:
		return formatInt(s.Year)
	case StatusDiscontinued:
		return discontinuedTag
	case StatusCancelled:
		return cancelledTag
	}
	return "unknown"
}

// MarshalJSON writes a year as a number, a tag as a string and unknown as null.
func (s LaunchStatus) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case StatusYear:
		return json.Marshal(s.Year)
	case StatusDiscontinued, StatusCancelled:
		return json.Marshal(s.String())
	}
	return []byte("null"), nil
}

func formatInt(i int32) string {
	return strconv.FormatInt(int64(i), 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
