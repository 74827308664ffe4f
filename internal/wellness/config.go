// Package wellness implements the scoring and recommendation core: metric
// validation, deterministic category scoring, blending with the external
// regression model, the feedback rule table and period trend statistics.
// Everything here is a pure function of its inputs plus an explicit Config.
package wellness

// Config collects every threshold the engine uses. Components never read
// package-level state; construct one Config in main and pass it down so
// behavior is reproducible and testable in isolation.
type Config struct {
	// Accepted input ranges
	SleepHoursMin, SleepHoursMax   float64
	CaloriesMin, CaloriesMax       float64
	StepsMin, StepsMax             int
	WaterIntakeMin, WaterIntakeMax float64
	ScreenTimeMin, ScreenTimeMax   float64
	StressLevelMin, StressLevelMax int

	// Defaults for optional fields
	DefaultScreenTime  float64
	DefaultStressLevel int

	// Category scoring
	SleepTargetLow, SleepTargetHigh     float64 // hours scoring 100
	StepsSaturation                     int     // steps scoring 100
	WaterIntakeTarget                   float64 // liters scoring 100
	CalorieBandLow, CalorieBandHigh     float64 // calories scoring 100
	StressPenaltyMax                    float64 // max points shaved off Nutrition

	// Score combining
	ModelWeight float64 // weight of the regression model in the blend

	// Trend classification
	TrendThreshold  float64 // relative change treated as movement
	TrendMinEntries int     // entries required before classifying
}

// DefaultConfig returns the calibrated production thresholds.
func DefaultConfig() Config {
	return Config{
		SleepHoursMin: 0, SleepHoursMax: 12,
		CaloriesMin: 1000, CaloriesMax: 4000,
		StepsMin: 0, StepsMax: 30000,
		WaterIntakeMin: 0, WaterIntakeMax: 5,
		ScreenTimeMin: 0, ScreenTimeMax: 24,
		StressLevelMin: 1, StressLevelMax: 10,

		DefaultScreenTime:  0,
		DefaultStressLevel: 5,

		SleepTargetLow: 7, SleepTargetHigh: 9,
		StepsSaturation:   10000,
		WaterIntakeTarget: 3,
		CalorieBandLow:    1800, CalorieBandHigh: 2500,
		StressPenaltyMax: 15,

		ModelWeight: 0.6,

		TrendThreshold:  0.05,
		TrendMinEntries: 4,
	}
}
