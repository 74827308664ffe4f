package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/model"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
)

// ErrNoModel is returned by model administration calls when the service runs
// without a model artifact.
var ErrNoModel = errors.New("no model configured")

// ModelAdmin is the reload/introspection side of the regression model,
// implemented by model.LinearPredictor.
type ModelAdmin interface {
	Reload() error
	Info() model.Info
}

type WellnessService interface {
	// Score computes a wellness result without persisting anything.
	Score(ctx context.Context, in domain.MetricsInput) (*domain.WellnessResult, error)
	ModelInfo(ctx context.Context) (*model.Info, error)
	ReloadModel(ctx context.Context) (*model.Info, error)
}

type wellnessService struct {
	engine     *wellness.Engine
	modelAdmin ModelAdmin
}

// NewWellnessService creates a WellnessService. modelAdmin may be nil when no
// model artifact is configured; scoring then always uses the category-average
// fallback.
func NewWellnessService(engine *wellness.Engine, modelAdmin ModelAdmin) WellnessService {
	return &wellnessService{
		engine:     engine,
		modelAdmin: modelAdmin,
	}
}

func (s *wellnessService) Score(ctx context.Context, in domain.MetricsInput) (*domain.WellnessResult, error) {
	tracer := otel.Tracer("wellness-tracker-api/scoring")
	ctx, span := tracer.Start(ctx, "WellnessService.Score")
	defer span.End()

	result, err := s.engine.Score(ctx, in)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Float64("wellness.score", result.WellnessScore),
		attribute.Bool("wellness.model_fallback", result.ModelFallback),
	)
	return result, nil
}

func (s *wellnessService) ModelInfo(_ context.Context) (*model.Info, error) {
	if s.modelAdmin == nil {
		return nil, ErrNoModel
	}
	info := s.modelAdmin.Info()
	return &info, nil
}

func (s *wellnessService) ReloadModel(_ context.Context) (*model.Info, error) {
	if s.modelAdmin == nil {
		return nil, ErrNoModel
	}
	if err := s.modelAdmin.Reload(); err != nil {
		return nil, err
	}
	info := s.modelAdmin.Info()
	return &info, nil
}
