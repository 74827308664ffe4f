package wellness

import (
	"fmt"
	"strings"

	"github.com/mstolarz/wellness-tracker/internal/domain"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation. Out-of-range
// values are rejected, never clamped, so the caller gets an actionable error
// instead of a plausible-looking but wrong score.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "invalid metrics: " + strings.Join(parts, "; ")
}

// Validate checks the six metrics against their accepted ranges and applies
// defaults for the optional fields. sleepHours, calories, steps and
// waterIntake are required.
func Validate(in domain.MetricsInput, cfg Config) (domain.RawMetrics, *ValidationError) {
	var verr ValidationError

	missing := func(field string) {
		verr.Fields = append(verr.Fields, FieldError{Field: field, Message: "is required"})
	}
	outOfRange := func(field string, min, max float64) {
		verr.Fields = append(verr.Fields, FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be between %g and %g", min, max),
		})
	}

	var m domain.RawMetrics

	switch {
	case in.SleepHours == nil:
		missing("sleepHours")
	case *in.SleepHours < cfg.SleepHoursMin || *in.SleepHours > cfg.SleepHoursMax:
		outOfRange("sleepHours", cfg.SleepHoursMin, cfg.SleepHoursMax)
	default:
		m.SleepHours = *in.SleepHours
	}

	switch {
	case in.Calories == nil:
		missing("calories")
	case *in.Calories < cfg.CaloriesMin || *in.Calories > cfg.CaloriesMax:
		outOfRange("calories", cfg.CaloriesMin, cfg.CaloriesMax)
	default:
		m.Calories = *in.Calories
	}

	switch {
	case in.Steps == nil:
		missing("steps")
	case *in.Steps < cfg.StepsMin || *in.Steps > cfg.StepsMax:
		outOfRange("steps", float64(cfg.StepsMin), float64(cfg.StepsMax))
	default:
		m.Steps = *in.Steps
	}

	switch {
	case in.WaterIntake == nil:
		missing("waterIntake")
	case *in.WaterIntake < cfg.WaterIntakeMin || *in.WaterIntake > cfg.WaterIntakeMax:
		outOfRange("waterIntake", cfg.WaterIntakeMin, cfg.WaterIntakeMax)
	default:
		m.WaterIntake = *in.WaterIntake
	}

	switch {
	case in.ScreenTime == nil:
		m.ScreenTime = cfg.DefaultScreenTime
	case *in.ScreenTime < cfg.ScreenTimeMin || *in.ScreenTime > cfg.ScreenTimeMax:
		outOfRange("screenTime", cfg.ScreenTimeMin, cfg.ScreenTimeMax)
	default:
		m.ScreenTime = *in.ScreenTime
	}

	switch {
	case in.StressLevel == nil:
		m.StressLevel = cfg.DefaultStressLevel
	case *in.StressLevel < cfg.StressLevelMin || *in.StressLevel > cfg.StressLevelMax:
		outOfRange("stressLevel", float64(cfg.StressLevelMin), float64(cfg.StressLevelMax))
	default:
		m.StressLevel = *in.StressLevel
	}

	if len(verr.Fields) > 0 {
		return domain.RawMetrics{}, &verr
	}
	return m, nil
}
