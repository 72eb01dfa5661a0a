package analytics

import (
	"testing"

	"cellstats/internal/models"
	"cellstats/internal/store"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeOf(raws ...models.RawCell) *store.Store {
	s := store.New()
	for _, r := range raws {
		s.Insert(models.NewCell(r))
	}
	return s
}

func text(s string) pgtype.Text { return pgtype.Text{String: s, Valid: true} }

func TestAverageWeightByOEM(t *testing.T) {
	s := storeOf(
		models.RawCell{OEM: "A", BodyWeight: "100"},
		models.RawCell{OEM: "A", BodyWeight: "200"},
		models.RawCell{OEM: "B", BodyWeight: "150"},
		models.RawCell{OEM: "C", BodyWeight: "-"},
	)

	got := AverageWeightByOEM(s)
	assert.Equal(t, []OEMAverage{
		{OEM: text("A"), Average: 150, Count: 2},
		{OEM: text("B"), Average: 150, Count: 1},
	}, got)

	best, ok := HighestAverageWeightOEM(s)
	require.True(t, ok)
	assert.Equal(t, text("A"), best.OEM, "tie goes to the first OEM seen")
}

func TestAverageWeightByOEM_UnknownOEMIsAGroup(t *testing.T) {
	s := storeOf(
		models.RawCell{OEM: "-", BodyWeight: "300"},
		models.RawCell{OEM: "", BodyWeight: "100"},
		models.RawCell{OEM: "A", BodyWeight: "150"},
	)

	got := AverageWeightByOEM(s)
	require.Len(t, got, 2)
	assert.False(t, got[0].OEM.Valid)
	assert.Equal(t, 200.0, got[0].Average)
	assert.Equal(t, 2, got[0].Count)

	best, ok := HighestAverageWeightOEM(s)
	require.True(t, ok)
	assert.False(t, best.OEM.Valid)
}

func TestHighestAverageWeightOEM_NoWeights(t *testing.T) {
	s := storeOf(models.RawCell{OEM: "A"}, models.RawCell{OEM: "B", BodyWeight: "n/a"})

	_, ok := HighestAverageWeightOEM(s)
	assert.False(t, ok)
	assert.Empty(t, AverageWeightByOEM(s))
}

func TestCountSingleSensorPhones(t *testing.T) {
	s := storeOf(
		models.RawCell{FeaturesSensors: "Accelerometer"},
		models.RawCell{FeaturesSensors: "Accelerometer, 3"},
		models.RawCell{FeaturesSensors: "Accelerometer, proximity"},
		models.RawCell{FeaturesSensors: "V1"},
		models.RawCell{FeaturesSensors: "-"},
		models.RawCell{FeaturesSensors: "1, 2"},
	)

	assert.Equal(t, 3, CountSingleSensorPhones(s))
}

func TestCountDifferentAnnounceLaunchYears(t *testing.T) {
	s := storeOf(
		models.RawCell{LaunchAnnounced: "2019", LaunchStatus: "Released 2019"},
		models.RawCell{LaunchAnnounced: "2019", LaunchStatus: "Released 2020"},
		models.RawCell{LaunchAnnounced: "2015", LaunchStatus: "Discontinued"},
		models.RawCell{LaunchAnnounced: "2016", LaunchStatus: "Cancelled"},
		models.RawCell{LaunchAnnounced: "-", LaunchStatus: "Released 2020"},
		models.RawCell{LaunchAnnounced: "2018", LaunchStatus: "Coming soon"},
	)

	assert.Equal(t, 3, CountDifferentAnnounceLaunchYears(s))
}

func TestModeLaunchYearAfter1999(t *testing.T) {
	s := storeOf(
		models.RawCell{LaunchStatus: "2005"},
		models.RawCell{LaunchStatus: "2005"},
		models.RawCell{LaunchStatus: "2010"},
	)

	got, ok := ModeLaunchYearAfter1999(s)
	require.True(t, ok)
	assert.Equal(t, YearCount{Year: 2005, Count: 2}, got)
}

func TestModeLaunchYearAfter1999_TieGoesToFirstYear(t *testing.T) {
	s := storeOf(
		models.RawCell{LaunchStatus: "2012"},
		models.RawCell{LaunchStatus: "2008"},
		models.RawCell{LaunchStatus: "2008"},
		models.RawCell{LaunchStatus: "2012"},
	)

	got, ok := ModeLaunchYearAfter1999(s)
	require.True(t, ok)
	assert.Equal(t, YearCount{Year: 2012, Count: 2}, got)
}

func TestModeLaunchYearAfter1999_IgnoresOldYearsAndTags(t *testing.T) {
	s := storeOf(
		models.RawCell{LaunchStatus: "1999"},
		models.RawCell{LaunchStatus: "1998"},
		models.RawCell{LaunchStatus: "Discontinued"},
		models.RawCell{LaunchStatus: ""},
	)

	_, ok := ModeLaunchYearAfter1999(s)
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	s := storeOf(
		models.RawCell{OEM: "A", BodyWeight: "120 g", LaunchAnnounced: "2019", LaunchStatus: "2020", FeaturesSensors: "gyro"},
		models.RawCell{OEM: "B", BodyWeight: "180 g", LaunchAnnounced: "2020", LaunchStatus: "2020"},
	)

	r := Build(s)
	assert.Equal(t, 2, r.Cells)
	assert.Len(t, r.AverageWeights, 2)
	require.True(t, r.HasHeaviestOEM)
	assert.Equal(t, "B", r.HeaviestOEM.OEM.String)
	assert.Equal(t, 1, r.SingleSensorPhones)
	assert.Equal(t, 1, r.DifferentAnnounceLaunch)
	require.True(t, r.HasModeLaunchYear)
	assert.Equal(t, YearCount{Year: 2020, Count: 2}, r.ModeLaunchYear)
}

func TestBuild_Empty(t *testing.T) {
	r := Build(store.New())
	assert.Equal(t, 0, r.Cells)
	assert.False(t, r.HasHeaviestOEM)
	assert.False(t, r.HasModeLaunchYear)
}
