package wellness

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mstolarz/wellness-tracker/internal/domain"
)

type stubPredictor struct {
	score float64
	err   error
	calls int
}

func (s *stubPredictor) Predict(_ context.Context, _ domain.RawMetrics) (float64, error) {
	s.calls++
	return s.score, s.err
}

func TestEngineScoreBlendsModelAndCategories(t *testing.T) {
	cfg := DefaultConfig()
	predictor := &stubPredictor{score: 70}
	engine := NewEngine(cfg, predictor)

	result, err := engine.Score(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	// Categories: Sleep 100, Activity 85, Hydration 83, Nutrition 100 → avg 92.
	want := math.Round((0.6*70+0.4*92)*10) / 10
	if result.WellnessScore != want {
		t.Errorf("WellnessScore = %g, want %g", result.WellnessScore, want)
	}
	if result.ModelFallback {
		t.Error("ModelFallback = true, want false")
	}
	if predictor.calls != 1 {
		t.Errorf("predictor called %d times, want 1", predictor.calls)
	}
}

func TestEngineScoreFallsBackOnModelError(t *testing.T) {
	engine := NewEngine(DefaultConfig(), &stubPredictor{err: errors.New("model down")})

	result, err := engine.Score(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if !result.ModelFallback {
		t.Error("ModelFallback = false, want true")
	}
	if result.WellnessScore != 92 {
		t.Errorf("WellnessScore = %g, want category average 92", result.WellnessScore)
	}
}

func TestEngineScoreWithoutPredictor(t *testing.T) {
	engine := NewEngine(DefaultConfig(), nil)

	result, err := engine.Score(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if !result.ModelFallback {
		t.Error("ModelFallback = false, want true")
	}
	if result.WellnessScore != 92 {
		t.Errorf("WellnessScore = %g, want category average 92", result.WellnessScore)
	}
}

func TestEngineScoreRejectsInvalidInput(t *testing.T) {
	predictor := &stubPredictor{score: 70}
	engine := NewEngine(DefaultConfig(), predictor)

	in := validInput()
	in.SleepHours = nil

	_, err := engine.Score(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Score() error = %v, want *ValidationError", err)
	}
	if predictor.calls != 0 {
		t.Errorf("predictor called %d times on invalid input, want 0", predictor.calls)
	}
}

func TestEngineScoreIsDeterministicAndBounded(t *testing.T) {
	engine := NewEngine(DefaultConfig(), &stubPredictor{score: 55})

	inputs := []domain.MetricsInput{
		validInput(),
		{SleepHours: fptr(0), Calories: fptr(1000), Steps: iptr(0), WaterIntake: fptr(0), ScreenTime: fptr(24), StressLevel: iptr(10)},
		{SleepHours: fptr(12), Calories: fptr(4000), Steps: iptr(30000), WaterIntake: fptr(5)},
	}
	for _, in := range inputs {
		first, err := engine.Score(context.Background(), in)
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		if first.WellnessScore < 0 || first.WellnessScore > 100 {
			t.Errorf("WellnessScore = %g, want within [0, 100]", first.WellnessScore)
		}
		if got := math.Round(first.WellnessScore*10) / 10; got != first.WellnessScore {
			t.Errorf("WellnessScore = %g, want one decimal place", first.WellnessScore)
		}

		second, err := engine.Score(context.Background(), in)
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		if first.WellnessScore != second.WellnessScore {
			t.Errorf("same input scored %g then %g", first.WellnessScore, second.WellnessScore)
		}
	}
}

func TestEngineScoreClampsDegenerateModel(t *testing.T) {
	engine := NewEngine(DefaultConfig(), &stubPredictor{score: 500})

	result, err := engine.Score(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if result.WellnessScore > 100 {
		t.Errorf("WellnessScore = %g, want clamped to 100", result.WellnessScore)
	}
}

func TestEngineScoreCategoriesMatchOrdered(t *testing.T) {
	engine := NewEngine(DefaultConfig(), nil)

	result, err := engine.Score(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if len(result.Categories) != len(result.Ordered) {
		t.Fatalf("Categories has %d entries, Ordered has %d", len(result.Categories), len(result.Ordered))
	}
	for _, c := range result.Ordered {
		detail, ok := result.Categories[c.Name]
		if !ok {
			t.Errorf("category %q missing from map", c.Name)
			continue
		}
		if detail.Score != c.Score || detail.Status != c.Status {
			t.Errorf("category %q map entry %+v does not match ordered %+v", c.Name, detail, c)
		}
	}
}
