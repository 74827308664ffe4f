package domain

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated wellness insights.
type LLMInsightsOutput struct {
	// Summary of recent wellness (2-3 sentences)
	Summary string `json:"summary" example:"Your wellness score has been trending up this week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance"`
}

// InsightsContext is the context object sent to the LLM.
// @Description Context data for LLM insights generation.
type InsightsContext struct {
	// ~30 day statistics baseline
	History StatisticsSummary `json:"history"`
	// ~7 day statistics window
	Recent StatisticsSummary `json:"recent"`
	// Most recent entry, if any
	Latest *EntryListItem `json:"latest,omitempty"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Wellness insights with the statistics they were derived from.
type InsightsResponse struct {
	Statistics struct {
		History StatisticsSummary `json:"history"`
		Recent  StatisticsSummary `json:"recent"`
	} `json:"statistics"`
	Latest   *EntryListItem    `json:"latest,omitempty"`
	Insights LLMInsightsOutput `json:"insights"`
}
