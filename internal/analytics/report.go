package analytics

// Report gathers every query result, as printed after a CSV is loaded.
type Report struct {
	Cells                   int
	AverageWeights          []OEMAverage
	HeaviestOEM             OEMAverage
	HasHeaviestOEM          bool
	SingleSensorPhones      int
	DifferentAnnounceLaunch int
	ModeLaunchYear          YearCount
	HasModeLaunchYear       bool
}

// Build runs all queries over src.
func Build(src Lister) Report {
	r := Report{
		Cells:                   len(src.All()),
		AverageWeights:          AverageWeightByOEM(src),
		SingleSensorPhones:      CountSingleSensorPhones(src),
		DifferentAnnounceLaunch: CountDifferentAnnounceLaunchYears(src),
	}
	r.HeaviestOEM, r.HasHeaviestOEM = HighestAverageWeightOEM(src)
	r.ModeLaunchYear, r.HasModeLaunchYear = ModeLaunchYearAfter1999(src)
	return r
}
