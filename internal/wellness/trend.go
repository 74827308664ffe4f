package wellness

import (
	"math"
	"sort"
	"time"

	"github.com/mstolarz/wellness-tracker/internal/domain"
)

// Summarize computes period statistics over a user's entry history: per-metric
// averages plus a trend classification per category and for the overall score.
// Entries outside the trailing periodDays window are ignored. An empty window
// yields zero counts and absent averages, never an error.
func Summarize(entries []domain.HealthEntry, periodDays int, now time.Time, cfg Config) domain.StatisticsSummary {
	cutoff := now.AddDate(0, 0, -periodDays)

	window := make([]domain.HealthEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			window = append(window, e)
		}
	}
	sort.Slice(window, func(i, j int) bool { return window[i].Date.Before(window[j].Date) })

	summary := domain.StatisticsSummary{
		PeriodDays:   periodDays,
		TotalEntries: len(window),
	}
	if len(window) == 0 {
		return summary
	}

	var sleep, calories, steps, water, screen, stress, score float64
	for _, e := range window {
		sleep += e.SleepHours
		calories += e.Calories
		steps += float64(e.Steps)
		water += e.WaterIntake
		screen += e.ScreenTime
		stress += float64(e.StressLevel)
		score += e.WellnessScore
	}
	n := float64(len(window))
	summary.Averages = map[string]float64{
		domain.MetricSleepHours:    round1(sleep / n),
		domain.MetricCalories:      round1(calories / n),
		domain.MetricSteps:         round1(steps / n),
		domain.MetricWaterIntake:   round1(water / n),
		domain.MetricScreenTime:    round1(screen / n),
		domain.MetricStressLevel:   round1(stress / n),
		domain.MetricWellnessScore: round1(score / n),
	}
	avgScore := round1(score / n)
	summary.AverageWellnessScore = &avgScore

	// Per-entry category score series, recomputed from the stored metrics.
	series := map[string][]float64{
		string(domain.CategorySleep):     make([]float64, 0, len(window)),
		string(domain.CategoryActivity):  make([]float64, 0, len(window)),
		string(domain.CategoryHydration): make([]float64, 0, len(window)),
		string(domain.CategoryNutrition): make([]float64, 0, len(window)),
		domain.TrendOverall:              make([]float64, 0, len(window)),
	}
	for _, e := range window {
		for _, c := range ScoreCategories(e.Metrics(), cfg) {
			series[string(c.Name)] = append(series[string(c.Name)], float64(c.Score))
		}
		series[domain.TrendOverall] = append(series[domain.TrendOverall], e.WellnessScore)
	}

	summary.Trends = make(map[string]domain.TrendDirection, len(series))
	for name, s := range series {
		summary.Trends[name] = classifyTrend(s, cfg)
	}
	return summary
}

// classifyTrend splits a date-ordered series into two halves by index (not by
// calendar midpoint, so irregular logging does not skew the comparison) and
// compares the half means against a relative threshold.
func classifyTrend(series []float64, cfg Config) domain.TrendDirection {
	if len(series) < cfg.TrendMinEntries {
		return domain.TrendInsufficientData
	}

	mid := len(series) / 2
	earlier := mean(series[:mid])
	later := mean(series[mid:])

	if earlier == 0 {
		if later > 0 {
			return domain.TrendImproving
		}
		return domain.TrendStable
	}
	rel := (later - earlier) / math.Abs(earlier)
	switch {
	case rel > cfg.TrendThreshold:
		return domain.TrendImproving
	case rel < -cfg.TrendThreshold:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

func mean(s []float64) float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}
