package domain

// TrendDirection classifies how a metric moved across a time window.
// @Description Trend label: improving, stable, declining or insufficient_data.
type TrendDirection string

const (
	TrendImproving        TrendDirection = "improving"
	TrendStable           TrendDirection = "stable"
	TrendDeclining        TrendDirection = "declining"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

// Metric names used as keys in per-metric averages.
const (
	MetricSleepHours    = "sleepHours"
	MetricCalories      = "calories"
	MetricSteps         = "steps"
	MetricWaterIntake   = "waterIntake"
	MetricScreenTime    = "screenTime"
	MetricStressLevel   = "stressLevel"
	MetricWellnessScore = "wellnessScore"
)

// TrendOverall is the trends key for the blended wellness score, alongside
// the four category names.
const TrendOverall = "Overall"

// StatisticsSummary is a derived, disposable view over a user's history
// window. Averages is nil when the window holds no entries.
// @Description Period statistics: averages per metric and trend per category.
type StatisticsSummary struct {
	PeriodDays           int                       `json:"periodDays" example:"30"`
	TotalEntries         int                       `json:"totalEntries" example:"24"`
	AverageWellnessScore *float64                  `json:"averageWellnessScore,omitempty" example:"76.3"`
	Averages             map[string]float64        `json:"averages,omitempty"`
	Trends               map[string]TrendDirection `json:"trends,omitempty"`
}

// StatisticsResponse is the response body for the statistics endpoint.
// @Description Statistics for the trailing period_days window.
type StatisticsResponse struct {
	PeriodDays int               `json:"periodDays" example:"30"`
	Statistics StatisticsSummary `json:"statistics"`
}

// SystemStatistics is the admin-level service overview.
type SystemStatistics struct {
	TotalUsers           int64    `json:"total_users"`
	TotalEntries         int64    `json:"total_entries"`
	AverageWellnessScore *float64 `json:"averageWellnessScore,omitempty"`
}
