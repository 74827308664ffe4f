package wellness

import "github.com/mstolarz/wellness-tracker/internal/domain"

type ruleKind int

const (
	kindWarning ruleKind = iota
	kindAchievement
	kindRecommendation
)

// ruleInput is what a rule predicate may look at: the validated metrics plus
// the category status each metric contributed to.
type ruleInput struct {
	metrics domain.RawMetrics
	status  map[domain.CategoryName]domain.CategoryStatus
}

func (in ruleInput) statusAtLeastGreat(name domain.CategoryName) bool {
	s := in.status[name]
	return s == domain.StatusGreat || s == domain.StatusExcellent
}

func (in ruleInput) statusBelowGood(name domain.CategoryName) bool {
	s := in.status[name]
	return s == domain.StatusFair || s == domain.StatusPoor
}

// rule is one row of the feedback table: a predicate over the input, the
// metric it concerns, the list it appends to and the message it appends.
type rule struct {
	metric  string
	kind    ruleKind
	when    func(ruleInput) bool
	message string
}

// rules is evaluated top-to-bottom; once a rule fires for a metric, later
// rules for that metric are skipped. Warnings come first so a safety extreme
// suppresses the milder message for the same metric.
var rules = []rule{
	// Warnings: safety-relevant extremes, regardless of category score.
	{domain.MetricSleepHours, kindWarning,
		func(in ruleInput) bool { return in.metrics.SleepHours < 4 },
		"Severely insufficient sleep detected; prioritize rest tonight"},
	{domain.MetricStressLevel, kindWarning,
		func(in ruleInput) bool { return in.metrics.StressLevel >= 9 },
		"Very high stress level; consider talking to someone you trust or a professional"},
	{domain.MetricCalories, kindWarning,
		func(in ruleInput) bool { return in.metrics.Calories < 1200 },
		"Very low calorie intake; make sure you are eating enough"},
	{domain.MetricScreenTime, kindWarning,
		func(in ruleInput) bool { return in.metrics.ScreenTime > 6 },
		"Excessive screen time; take regular breaks away from screens"},

	// Achievements: strong categories and well-managed optional metrics.
	{domain.MetricSleepHours, kindAchievement,
		func(in ruleInput) bool { return in.statusAtLeastGreat(domain.CategorySleep) },
		"Excellent sleep duration, keep it up"},
	{domain.MetricSteps, kindAchievement,
		func(in ruleInput) bool { return in.statusAtLeastGreat(domain.CategoryActivity) },
		"Excellent activity level"},
	{domain.MetricWaterIntake, kindAchievement,
		func(in ruleInput) bool { return in.statusAtLeastGreat(domain.CategoryHydration) },
		"Great hydration"},
	{domain.MetricCalories, kindAchievement,
		func(in ruleInput) bool { return in.statusAtLeastGreat(domain.CategoryNutrition) },
		"Balanced calorie intake"},
	{domain.MetricScreenTime, kindAchievement,
		func(in ruleInput) bool { return in.metrics.ScreenTime <= 2 },
		"Excellent screen time control"},
	{domain.MetricStressLevel, kindAchievement,
		func(in ruleInput) bool { return in.metrics.StressLevel <= 3 },
		"Great stress management"},

	// Recommendations: weak categories and moderate optional metrics.
	{domain.MetricSleepHours, kindRecommendation,
		func(in ruleInput) bool { return in.statusBelowGood(domain.CategorySleep) },
		"Aim for 7-9 hours of sleep per night"},
	{domain.MetricSteps, kindRecommendation,
		func(in ruleInput) bool { return in.statusBelowGood(domain.CategoryActivity) },
		"Increase your daily steps toward 10,000"},
	{domain.MetricWaterIntake, kindRecommendation,
		func(in ruleInput) bool { return in.statusBelowGood(domain.CategoryHydration) },
		"Drink 2-3 liters of water daily"},
	{domain.MetricCalories, kindRecommendation,
		func(in ruleInput) bool { return in.statusBelowGood(domain.CategoryNutrition) },
		"Aim for 1800-2500 calories of nutrient-dense food"},
	{domain.MetricScreenTime, kindRecommendation,
		func(in ruleInput) bool { return in.metrics.ScreenTime > 4 },
		"Try to reduce screen time to under 4 hours a day"},
	{domain.MetricStressLevel, kindRecommendation,
		func(in ruleInput) bool { return in.metrics.StressLevel >= 6 },
		"Try relaxation techniques and short breaks during the day"},
}

// Recommend evaluates the feedback rule table over validated metrics and
// their category scores. At most one message fires per metric.
func Recommend(metrics domain.RawMetrics, categories []domain.CategoryScore) domain.RecommendationSet {
	in := ruleInput{
		metrics: metrics,
		status:  make(map[domain.CategoryName]domain.CategoryStatus, len(categories)),
	}
	for _, c := range categories {
		in.status[c.Name] = c.Status
	}

	set := domain.RecommendationSet{
		Achievements:    []string{},
		Recommendations: []string{},
		Warnings:        []string{},
	}
	fired := make(map[string]bool, len(rules))
	for _, r := range rules {
		if fired[r.metric] || !r.when(in) {
			continue
		}
		fired[r.metric] = true
		switch r.kind {
		case kindWarning:
			set.Warnings = append(set.Warnings, r.message)
		case kindAchievement:
			set.Achievements = append(set.Achievements, r.message)
		case kindRecommendation:
			set.Recommendations = append(set.Recommendations, r.message)
		}
	}
	return set
}
