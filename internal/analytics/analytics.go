// Package analytics answers the fixed set of aggregate questions asked of a
// cell collection. Every query is read-only and depends only on the entries
// it is given, in the order they are listed.
package analytics

import (
	"cellstats/internal/store"

	"github.com/jackc/pgx/v5/pgtype"
)

// Lister is anything that can list its entries in a stable order.
type Lister interface {
	All() []store.Entry
}

// LaunchYearFloor is the year a launch must come after to count in ModeLaunchYearAfter1999.
const LaunchYearFloor = 1999

// OEMAverage is the mean body weight of one manufacturer's phones.
// An unknown OEM groups like any other value.
type OEMAverage struct {
	OEM     pgtype.Text
	Average float64
	Count   int
}

// YearCount is a launch year and how many phones launched in it.
type YearCount struct {
	Year  int32
	Count int
}

// AverageWeightByOEM averages the known body weights per OEM. Groups are
// returned in the order their OEM first appears.
func AverageWeightByOEM(src Lister) []OEMAverage {
	var groups []OEMAverage
	sums := make(map[pgtype.Text]float64)
	index := make(map[pgtype.Text]int)

	for _, e := range src.All() {
		c := e.Cell
		if !c.BodyWeight.Valid {
			continue
		}
		key := groupKey(c.OEM)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, OEMAverage{OEM: key})
		}
		sums[key] += c.BodyWeight.Float64
		groups[i].Count++
	}

	for i := range groups {
		groups[i].Average = sums[groups[i].OEM] / float64(groups[i].Count)
	}
	return groups
}

// groupKey folds every unknown OEM onto the zero value so they share a group.
func groupKey(t pgtype.Text) pgtype.Text {
	if !t.Valid {
		return pgtype.Text{}
	}
	return t
}

// HighestAverageWeightOEM picks the heaviest OEM on average. Ties go to the
// OEM seen first. ok is false when no phone has a known weight.
func HighestAverageWeightOEM(src Lister) (best OEMAverage, ok bool) {
	for _, g := range AverageWeightByOEM(src) {
		if !ok || g.Average > best.Average {
			best, ok = g, true
		}
	}
	return best, ok
}

// CountSingleSensorPhones counts phones listing exactly one sensor.
func CountSingleSensorPhones(src Lister) int {
	count := 0
	for _, e := range src.All() {
		if len(e.Cell.FeaturesSensors) == 1 {
			count++
		}
	}
	return count
}

// CountDifferentAnnounceLaunchYears counts phones whose launch status does
// not match the announcement year. A Discontinued or Cancelled status always
// counts as different.
func CountDifferentAnnounceLaunchYears(src Lister) int {
	count := 0
	for _, e := range src.All() {
		c := e.Cell
		if !c.LaunchAnnounced.Valid || !c.LaunchStatus.Known() {
			continue
		}
		if c.LaunchStatus.DiffersFrom(c.LaunchAnnounced.Int32) {
			count++
		}
	}
	return count
}

// ModeLaunchYearAfter1999 finds the most common launch year after 1999. Ties
// go to the year that appeared first. ok is false when no phone qualifies.
func ModeLaunchYearAfter1999(src Lister) (mode YearCount, ok bool) {
	var order []int32
	counts := make(map[int32]int)

	for _, e := range src.All() {
		status := e.Cell.LaunchStatus
		if !status.IsYear() || status.Year <= LaunchYearFloor {
			continue
		}
		if _, seen := counts[status.Year]; !seen {
			order = append(order, status.Year)
		}
		counts[status.Year]++
	}

	for _, year := range order {
		if counts[year] > mode.Count {
			mode, ok = YearCount{Year: year, Count: counts[year]}, true
		}
	}
	return mode, ok
}
