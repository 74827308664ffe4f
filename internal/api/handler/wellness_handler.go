package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstolarz/wellness-tracker/internal/api/middleware"
	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/llm"
	"github.com/mstolarz/wellness-tracker/internal/service"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
	"github.com/mstolarz/wellness-tracker/pkg/problem"
)

type WellnessHandler struct {
	service         service.WellnessService
	insightsService service.InsightsService
}

func NewWellnessHandler(service service.WellnessService, insightsService service.InsightsService) *WellnessHandler {
	return &WellnessHandler{
		service:         service,
		insightsService: insightsService,
	}
}

// Score handles POST /v1/score
// @Summary Score metrics
// @Description Compute a wellness score, category breakdown and feedback for six daily metrics. Nothing is persisted.
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body domain.MetricsInput true "Daily metrics"
// @Success 200 {object} domain.WellnessResult "Wellness result"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Metrics failed validation"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /score [post]
func (h *WellnessHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req domain.MetricsInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	result, err := h.service.Score(r.Context(), req)
	if err != nil {
		var verr *wellness.ValidationError
		if errors.As(err, &verr) {
			problem.ValidationError("Metrics failed validation", metricFieldErrors(verr)).Write(w)
			return
		}
		problem.InternalError("Failed to score metrics").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Insights handles GET /v1/insights
// @Summary Wellness insights
// @Description LLM-generated summary, observations and guidance derived from the caller's recent statistics.
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.InsightsResponse "Insights"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "Insights generation unavailable"
// @Router /insights [get]
func (h *WellnessHandler) Insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	response, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("Insights generation is not available").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// ModelInfo handles GET /v1/admin/model
// @Summary Model info
// @Description Loaded regression model metadata: name, features, coefficients and training metrics. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Info "Model metadata"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 403 {object} problem.Problem "Admin access required"
// @Failure 503 {object} problem.Problem "No model configured"
// @Router /admin/model [get]
func (h *WellnessHandler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.ModelInfo(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoModel) {
			problem.ServiceUnavailable("No model configured").Write(w)
			return
		}
		problem.InternalError("Failed to load model info").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// ReloadModel handles POST /v1/admin/model/reload
// @Summary Reload model
// @Description Re-read the model artifact from disk and swap it in atomically. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Info "Reloaded model metadata"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 403 {object} problem.Problem "Admin access required"
// @Failure 500 {object} problem.Problem "Reload failed"
// @Failure 503 {object} problem.Problem "No model configured"
// @Router /admin/model/reload [post]
func (h *WellnessHandler) ReloadModel(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.ReloadModel(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoModel) {
			problem.ServiceUnavailable("No model configured").Write(w)
			return
		}
		problem.InternalError("Failed to reload model").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, info)
}
