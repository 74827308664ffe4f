package wellness

import (
	"context"
	"math"

	"github.com/mstolarz/wellness-tracker/internal/domain"
)

// Predictor is the external regression model capability. Implementations
// must be safe for concurrent use; a failing Predict is absorbed by the
// engine, never surfaced to the caller.
type Predictor interface {
	Predict(ctx context.Context, m domain.RawMetrics) (float64, error)
}

// Engine turns one day's raw metrics into a wellness result. It is stateless;
// every call is a pure function of the input, the config and the predictor.
type Engine struct {
	cfg       Config
	predictor Predictor
}

// NewEngine creates an engine. predictor may be nil, in which case every
// result carries the category average with the fallback flag set.
func NewEngine(cfg Config, predictor Predictor) *Engine {
	return &Engine{cfg: cfg, predictor: predictor}
}

// Config exposes the thresholds the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Score validates the input, computes category sub-scores, blends in the
// model prediction and generates feedback messages.
func (e *Engine) Score(ctx context.Context, in domain.MetricsInput) (*domain.WellnessResult, error) {
	metrics, verr := Validate(in, e.cfg)
	if verr != nil {
		return nil, verr
	}

	categories := ScoreCategories(metrics, e.cfg)
	avg := categoryAverage(categories)

	final := avg
	fallback := true
	if e.predictor != nil {
		if raw, err := e.predictor.Predict(ctx, metrics); err == nil {
			final = e.cfg.ModelWeight*raw + (1-e.cfg.ModelWeight)*avg
			fallback = false
		}
	}
	final = round1(clamp(final, 0, 100))

	byName := make(map[domain.CategoryName]domain.CategoryDetail, len(categories))
	for _, c := range categories {
		byName[c.Name] = domain.CategoryDetail{Score: c.Score, Status: c.Status}
	}

	return &domain.WellnessResult{
		WellnessScore:   final,
		Categories:      byName,
		Recommendations: Recommend(metrics, categories),
		ModelFallback:   fallback,
		Metrics:         metrics,
		Ordered:         categories,
	}, nil
}

func categoryAverage(categories []domain.CategoryScore) float64 {
	if len(categories) == 0 {
		return 0
	}
	var sum float64
	for _, c := range categories {
		sum += float64(c.Score)
	}
	return sum / float64(len(categories))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
