package wellness

import (
	"math"

	"github.com/mstolarz/wellness-tracker/internal/domain"
)

// statusFor maps a category score to its qualitative label. One shared table
// for every category, so scores stay comparable across categories.
func statusFor(score int) domain.CategoryStatus {
	switch {
	case score >= 90:
		return domain.StatusExcellent
	case score >= 75:
		return domain.StatusGreat
	case score >= 60:
		return domain.StatusGood
	case score >= 40:
		return domain.StatusFair
	default:
		return domain.StatusPoor
	}
}

// ScoreCategories computes the four deterministic sub-scores from validated
// metrics, in fixed order: Sleep, Activity, Hydration, Nutrition.
func ScoreCategories(m domain.RawMetrics, cfg Config) []domain.CategoryScore {
	scores := []struct {
		name  domain.CategoryName
		value float64
	}{
		{domain.CategorySleep, sleepScore(m.SleepHours, cfg)},
		{domain.CategoryActivity, activityScore(m.Steps, cfg)},
		{domain.CategoryHydration, hydrationScore(m.WaterIntake, cfg)},
		{domain.CategoryNutrition, nutritionScore(m.Calories, m.StressLevel, cfg)},
	}

	out := make([]domain.CategoryScore, len(scores))
	for i, s := range scores {
		score := int(math.Round(clamp(s.value, 0, 100)))
		out[i] = domain.CategoryScore{Name: s.name, Score: score, Status: statusFor(score)}
	}
	return out
}

// sleepScore peaks at 100 inside the target band and degrades linearly
// toward 0 at both range ends.
func sleepScore(hours float64, cfg Config) float64 {
	switch {
	case hours >= cfg.SleepTargetLow && hours <= cfg.SleepTargetHigh:
		return 100
	case hours < cfg.SleepTargetLow:
		return 100 * (hours - cfg.SleepHoursMin) / (cfg.SleepTargetLow - cfg.SleepHoursMin)
	default:
		return 100 * (cfg.SleepHoursMax - hours) / (cfg.SleepHoursMax - cfg.SleepTargetHigh)
	}
}

// activityScore grows linearly with steps and saturates at the target.
func activityScore(steps int, cfg Config) float64 {
	if steps >= cfg.StepsSaturation {
		return 100
	}
	return 100 * float64(steps) / float64(cfg.StepsSaturation)
}

// hydrationScore grows linearly with intake and saturates at the target.
func hydrationScore(liters float64, cfg Config) float64 {
	if liters >= cfg.WaterIntakeTarget {
		return 100
	}
	return 100 * liters / cfg.WaterIntakeTarget
}

// nutritionScore peaks inside the calorie band, degrades linearly toward 0
// at both range ends, and takes a bounded penalty for above-baseline stress.
func nutritionScore(calories float64, stress int, cfg Config) float64 {
	var base float64
	switch {
	case calories >= cfg.CalorieBandLow && calories <= cfg.CalorieBandHigh:
		base = 100
	case calories < cfg.CalorieBandLow:
		base = 100 * (calories - cfg.CaloriesMin) / (cfg.CalorieBandLow - cfg.CaloriesMin)
	default:
		base = 100 * (cfg.CaloriesMax - calories) / (cfg.CaloriesMax - cfg.CalorieBandHigh)
	}

	if stress > cfg.DefaultStressLevel {
		over := float64(stress - cfg.DefaultStressLevel)
		span := float64(cfg.StressLevelMax - cfg.DefaultStressLevel)
		base -= cfg.StressPenaltyMax * over / span
	}
	return base
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
