package model

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/mstolarz/wellness-tracker/internal/domain"
)

// ErrUnavailable is returned when no artifact is loaded. Callers are expected
// to degrade to their own fallback rather than fail the request.
var ErrUnavailable = errors.New("model unavailable")

// LinearPredictor evaluates the loaded regression artifact. Safe for
// concurrent use; Reload swaps the artifact with an atomic pointer so
// concurrent Predict calls always see a complete artifact.
type LinearPredictor struct {
	path    string
	current atomic.Pointer[Artifact]
}

// NewLinearPredictor loads the artifact at path. A load failure is returned
// to the caller; the service may still start with a nil predictor and run on
// category averages alone.
func NewLinearPredictor(path string) (*LinearPredictor, error) {
	p := &LinearPredictor{path: path}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads the artifact from disk and swaps it in atomically. On
// failure the previously loaded artifact stays active.
func (p *LinearPredictor) Reload() error {
	artifact, err := LoadArtifact(p.path)
	if err != nil {
		return err
	}
	p.current.Store(artifact)
	return nil
}

// Predict evaluates the linear model over the metric features and clamps the
// result to [0, 100].
func (p *LinearPredictor) Predict(_ context.Context, m domain.RawMetrics) (float64, error) {
	artifact := p.current.Load()
	if artifact == nil {
		return 0, ErrUnavailable
	}

	score := artifact.Intercept
	for _, feature := range artifact.Features {
		score += artifact.Coefficients[feature] * featureValue(m, feature)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}

// Info returns the loaded artifact's metadata.
func (p *LinearPredictor) Info() Info {
	artifact := p.current.Load()
	if artifact == nil {
		return Info{}
	}
	return Info{
		ModelName:    artifact.ModelName,
		Features:     artifact.Features,
		Coefficients: artifact.Coefficients,
		Metrics:      artifact.Metrics,
		Loaded:       true,
	}
}

// featureValue maps an artifact feature name to its metric value. Unknown
// features contribute 0, matching the training pipeline's handling of
// missing columns.
func featureValue(m domain.RawMetrics, feature string) float64 {
	switch feature {
	case domain.MetricSleepHours:
		return m.SleepHours
	case domain.MetricCalories:
		return m.Calories
	case domain.MetricSteps:
		return float64(m.Steps)
	case domain.MetricWaterIntake:
		return m.WaterIntake
	case domain.MetricScreenTime:
		return m.ScreenTime
	case domain.MetricStressLevel:
		return float64(m.StressLevel)
	default:
		return 0
	}
}
