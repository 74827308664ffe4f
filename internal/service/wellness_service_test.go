package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/model"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
)

type stubModelAdmin struct {
	info      model.Info
	reloadErr error
	reloads   int
}

func (s *stubModelAdmin) Reload() error {
	s.reloads++
	return s.reloadErr
}

func (s *stubModelAdmin) Info() model.Info {
	return s.info
}

func metricsInput() domain.MetricsInput {
	return domain.MetricsInput{
		SleepHours:  floatPtr(7.5),
		Calories:    floatPtr(2000),
		Steps:       intPtr(8500),
		WaterIntake: floatPtr(2.5),
		ScreenTime:  floatPtr(3),
		StressLevel: intPtr(4),
	}
}

func TestWellnessServiceScore(t *testing.T) {
	engine := wellness.NewEngine(wellness.DefaultConfig(), &stubModel{score: 70})
	svc := NewWellnessService(engine, nil)

	result, err := svc.Score(context.Background(), metricsInput())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if result.ModelFallback {
		t.Error("ModelFallback = true with a working model, want false")
	}
	if len(result.Categories) != 4 {
		t.Errorf("got %d categories, want 4", len(result.Categories))
	}
}

func TestWellnessServiceScoreFallback(t *testing.T) {
	engine := wellness.NewEngine(wellness.DefaultConfig(), &stubModel{err: errors.New("down")})
	svc := NewWellnessService(engine, nil)

	result, err := svc.Score(context.Background(), metricsInput())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if !result.ModelFallback {
		t.Error("ModelFallback = false with a failing model, want true")
	}
}

func TestWellnessServiceModelAdmin(t *testing.T) {
	engine := wellness.NewEngine(wellness.DefaultConfig(), nil)
	admin := &stubModelAdmin{info: model.Info{ModelName: "ridge-regression", Loaded: true}}
	svc := NewWellnessService(engine, admin)

	info, err := svc.ModelInfo(context.Background())
	if err != nil {
		t.Fatalf("ModelInfo() error = %v", err)
	}
	if info.ModelName != "ridge-regression" || !info.Loaded {
		t.Errorf("ModelInfo() = %+v", info)
	}

	if _, err := svc.ReloadModel(context.Background()); err != nil {
		t.Fatalf("ReloadModel() error = %v", err)
	}
	if admin.reloads != 1 {
		t.Errorf("reloads = %d, want 1", admin.reloads)
	}
}

func TestWellnessServiceNoModelConfigured(t *testing.T) {
	engine := wellness.NewEngine(wellness.DefaultConfig(), nil)
	svc := NewWellnessService(engine, nil)

	if _, err := svc.ModelInfo(context.Background()); !errors.Is(err, ErrNoModel) {
		t.Errorf("ModelInfo() error = %v, want ErrNoModel", err)
	}
	if _, err := svc.ReloadModel(context.Background()); !errors.Is(err, ErrNoModel) {
		t.Errorf("ReloadModel() error = %v, want ErrNoModel", err)
	}
}

func TestWellnessServiceReloadFailure(t *testing.T) {
	engine := wellness.NewEngine(wellness.DefaultConfig(), nil)
	admin := &stubModelAdmin{reloadErr: errors.New("corrupt artifact")}
	svc := NewWellnessService(engine, admin)

	if _, err := svc.ReloadModel(context.Background()); err == nil {
		t.Error("ReloadModel() error = nil, want reload failure")
	}
}
