package domain

// CategoryName identifies one of the four wellness categories.
// @Description Wellness category: Sleep, Activity, Hydration or Nutrition.
type CategoryName string

const (
	CategorySleep     CategoryName = "Sleep"
	CategoryActivity  CategoryName = "Activity"
	CategoryHydration CategoryName = "Hydration"
	CategoryNutrition CategoryName = "Nutrition"
)

// CategoryStatus is the qualitative label derived from a category score.
type CategoryStatus string

const (
	StatusExcellent CategoryStatus = "Excellent"
	StatusGreat     CategoryStatus = "Great"
	StatusGood      CategoryStatus = "Good"
	StatusFair      CategoryStatus = "Fair"
	StatusPoor      CategoryStatus = "Poor"
)

// RawMetrics holds one day's validated health metrics.
type RawMetrics struct {
	SleepHours  float64 `json:"sleepHours"`
	Calories    float64 `json:"calories"`
	Steps       int     `json:"steps"`
	WaterIntake float64 `json:"waterIntake"`
	ScreenTime  float64 `json:"screenTime"`
	StressLevel int     `json:"stressLevel"`
}

// MetricsInput is the raw scoring request before validation. Required fields
// are pointers so a missing field can be told apart from a zero value.
// @Description Six daily health metrics. screenTime and stressLevel are optional.
type MetricsInput struct {
	// Hours slept (0-12), required
	SleepHours *float64 `json:"sleepHours" example:"7.5"`
	// Calories consumed (1000-4000), required
	Calories *float64 `json:"calories" example:"2000"`
	// Steps walked (0-30000), required
	Steps *int `json:"steps" example:"8500"`
	// Water intake in liters (0-5), required
	WaterIntake *float64 `json:"waterIntake" example:"2.5"`
	// Screen time in hours (0-24), defaults to 0
	ScreenTime *float64 `json:"screenTime,omitempty" example:"3"`
	// Stress level (1-10), defaults to 5
	StressLevel *int `json:"stressLevel,omitempty" example:"4"`
}

// CategoryScore is a deterministic 0-100 sub-score for one category.
// @Description Category sub-score with its qualitative status.
type CategoryScore struct {
	Name   CategoryName   `json:"name" example:"Sleep"`
	Score  int            `json:"score" example:"100"`
	Status CategoryStatus `json:"status" example:"Excellent"`
}

// CategoryDetail is the per-category payload in the serialized result.
type CategoryDetail struct {
	Score  int            `json:"score" example:"100"`
	Status CategoryStatus `json:"status" example:"Excellent"`
}

// RecommendationSet groups feedback messages by kind, in rule-table order.
// @Description Achievements, recommendations and warnings for one scoring run.
type RecommendationSet struct {
	Achievements    []string `json:"achievements"`
	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings"`
}

// WellnessResult is the outcome of scoring one set of metrics.
// @Description Final wellness score with category breakdown and feedback.
type WellnessResult struct {
	// Final blended score, 0-100, one decimal place
	WellnessScore float64 `json:"wellnessScore" example:"78.4"`
	// Per-category scores, keyed by category name
	Categories map[CategoryName]CategoryDetail `json:"categories"`
	// Feedback messages
	Recommendations RecommendationSet `json:"recommendations"`
	// True when the regression model was unavailable and the score is the
	// plain category average
	ModelFallback bool `json:"modelFallback,omitempty"`

	// Metrics after validation and defaulting, not serialized
	Metrics RawMetrics `json:"-"`
	// Category scores in fixed order (Sleep, Activity, Hydration, Nutrition),
	// not serialized; Categories is derived from it
	Ordered []CategoryScore `json:"-"`
}
