package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/mstolarz/wellness-tracker/internal/api/middleware"
	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/llm"
	"github.com/mstolarz/wellness-tracker/internal/model"
	"github.com/mstolarz/wellness-tracker/internal/service"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
)

func TestWellnessHandler_Score(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockWellnessService
		wantStatusCode int
	}{
		{
			name:           "valid metrics",
			body:           `{"sleepHours":7.5,"calories":2000,"steps":8500,"waterIntake":2.5,"screenTime":3,"stressLevel":4}`,
			mockService:    &MockWellnessService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON body",
			body:           `{not json`,
			mockService:    &MockWellnessService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "metrics fail validation",
			body: `{"sleepHours":15,"calories":2000,"steps":8500,"waterIntake":2.5}`,
			mockService: &MockWellnessService{
				scoreFunc: func(ctx context.Context, in domain.MetricsInput) (*domain.WellnessResult, error) {
					return nil, &wellness.ValidationError{Fields: []wellness.FieldError{
						{Field: "sleepHours", Message: "must be between 0 and 12"},
					}}
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "scoring fails",
			body: `{"sleepHours":7.5,"calories":2000,"steps":8500,"waterIntake":2.5}`,
			mockService: &MockWellnessService{
				scoreFunc: func(ctx context.Context, in domain.MetricsInput) (*domain.WellnessResult, error) {
					return nil, errors.New("boom")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewWellnessHandler(tt.mockService, &MockInsightsService{})

			req := httptest.NewRequest(http.MethodPost, "/v1/score", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.Score(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Score() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestWellnessHandler_Score_DecodesResult(t *testing.T) {
	mockService := &MockWellnessService{
		scoreFunc: func(ctx context.Context, in domain.MetricsInput) (*domain.WellnessResult, error) {
			return &domain.WellnessResult{
				WellnessScore: 78.8,
				Categories: map[domain.CategoryName]domain.CategoryDetail{
					domain.CategorySleep: {Score: 100, Status: domain.StatusExcellent},
				},
				Recommendations: domain.RecommendationSet{
					Achievements:    []string{"Excellent sleep! You're getting optimal rest."},
					Recommendations: []string{},
					Warnings:        []string{},
				},
			}, nil
		},
	}
	h := NewWellnessHandler(mockService, &MockInsightsService{})

	body := `{"sleepHours":7.5,"calories":2000,"steps":8500,"waterIntake":2.5}`
	req := httptest.NewRequest(http.MethodPost, "/v1/score", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Score(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Score() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.WellnessResult
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.WellnessScore != 78.8 {
		t.Errorf("wellness score = %v, want 78.8", resp.WellnessScore)
	}
	if got := resp.Categories[domain.CategorySleep].Status; got != domain.StatusExcellent {
		t.Errorf("sleep status = %q, want %q", got, domain.StatusExcellent)
	}
	if len(resp.Recommendations.Achievements) != 1 {
		t.Errorf("achievements = %v, want one message", resp.Recommendations.Achievements)
	}
}

func TestWellnessHandler_Insights(t *testing.T) {
	tests := []struct {
		name           string
		authenticated  bool
		mockInsights   *MockInsightsService
		wantStatusCode int
	}{
		{
			name:           "insights generated",
			authenticated:  true,
			mockInsights:   &MockInsightsService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "no identity in context",
			authenticated:  false,
			mockInsights:   &MockInsightsService{},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:          "LLM not configured",
			authenticated: true,
			mockInsights: &MockInsightsService{
				generateFunc: func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, llm.ErrOpenAIUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:          "generation fails",
			authenticated: true,
			mockInsights: &MockInsightsService{
				generateFunc: func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, errors.New("boom")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewWellnessHandler(&MockWellnessService{}, tt.mockInsights)

			req := httptest.NewRequest(http.MethodGet, "/v1/insights", nil)
			if tt.authenticated {
				req = req.WithContext(middleware.WithUser(req.Context(), uuid.New(), false))
			}
			rec := httptest.NewRecorder()

			h.Insights(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Insights() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestWellnessHandler_ModelInfo(t *testing.T) {
	tests := []struct {
		name           string
		mockService    *MockWellnessService
		wantStatusCode int
	}{
		{
			name: "model loaded",
			mockService: &MockWellnessService{
				infoFunc: func(ctx context.Context) (*model.Info, error) {
					return &model.Info{ModelName: "wellness_lr_v1", Loaded: true}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "no model configured",
			mockService: &MockWellnessService{
				infoFunc: func(ctx context.Context) (*model.Info, error) {
					return nil, service.ErrNoModel
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewWellnessHandler(tt.mockService, &MockInsightsService{})

			req := httptest.NewRequest(http.MethodGet, "/v1/admin/model", nil)
			req = req.WithContext(middleware.WithUser(req.Context(), uuid.New(), true))
			rec := httptest.NewRecorder()

			h.ModelInfo(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("ModelInfo() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var resp model.Info
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.ModelName != "wellness_lr_v1" {
					t.Errorf("model name = %q, want %q", resp.ModelName, "wellness_lr_v1")
				}
			}
		})
	}
}

func TestWellnessHandler_ReloadModel(t *testing.T) {
	tests := []struct {
		name           string
		mockService    *MockWellnessService
		wantStatusCode int
	}{
		{
			name:           "reload succeeds",
			mockService:    &MockWellnessService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "no model configured",
			mockService: &MockWellnessService{
				reloadFunc: func(ctx context.Context) (*model.Info, error) {
					return nil, service.ErrNoModel
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name: "artifact unreadable",
			mockService: &MockWellnessService{
				reloadFunc: func(ctx context.Context) (*model.Info, error) {
					return nil, errors.New("reading model artifact: no such file")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewWellnessHandler(tt.mockService, &MockInsightsService{})

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/model/reload", nil)
			req = req.WithContext(middleware.WithUser(req.Context(), uuid.New(), true))
			rec := httptest.NewRecorder()

			h.ReloadModel(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("ReloadModel() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
