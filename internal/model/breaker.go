package model

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"github.com/mstolarz/wellness-tracker/internal/domain"
)

// Predictor is the prediction capability this package provides.
type Predictor interface {
	Predict(ctx context.Context, m domain.RawMetrics) (float64, error)
}

// BreakerPredictor wraps a Predictor in a circuit breaker so a persistently
// failing model stops being called for a cooldown period. While the breaker
// is open, Predict fails fast and the scoring engine falls back to category
// averages.
type BreakerPredictor struct {
	inner   Predictor
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerPredictor wraps inner with the standard breaker settings.
func NewBreakerPredictor(inner Predictor) *BreakerPredictor {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wellness-model",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
	return &BreakerPredictor{inner: inner, breaker: cb}
}

func (b *BreakerPredictor) Predict(ctx context.Context, m domain.RawMetrics) (float64, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.Predict(ctx, m)
	})
	if err != nil {
		return 0, err
	}
	return result.(float64), nil
}
