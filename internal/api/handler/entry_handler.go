package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mstolarz/wellness-tracker/internal/api/middleware"
	"github.com/mstolarz/wellness-tracker/internal/api/validation"
	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/service"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
	"github.com/mstolarz/wellness-tracker/pkg/problem"
)

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Create handles POST /v1/entries
// @Summary Log a day's metrics
// @Description Score the six daily metrics and store them for the given date. Posting the same date again replaces that day's entry: returns 200 on replace, 201 on create.
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateEntryRequest true "Date and metrics"
// @Success 201 {object} domain.EntryResponse "Entry created"
// @Success 200 {object} domain.EntryResponse "Existing entry for the date replaced"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 422 {object} problem.Problem "Metrics failed validation"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries [post]
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	var req domain.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, isExisting, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		var verr *wellness.ValidationError
		if errors.As(err, &verr) {
			problem.ValidationError("Metrics failed validation", metricFieldErrors(verr)).Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid entry date").Write(w)
			return
		}
		problem.InternalError("Failed to store entry").Write(w)
		return
	}

	status := http.StatusCreated
	if isExisting {
		status = http.StatusOK
	}
	writeJSON(w, status, entry)
}

// List handles GET /v1/entries
// @Summary List entries
// @Description Fetch paginated entry history, newest first. Filter by date range.
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)" format(date) example(2024-03-01)
// @Param to query string false "End date (YYYY-MM-DD)" format(date) example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.EntryListResponse "Entries with pagination"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries [get]
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	filter, fieldErrors := parseEntryFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		problem.InternalError("Failed to list entries").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Latest handles GET /v1/entries/latest
// @Summary Latest entry
// @Description Return the most recently dated entry.
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.EntryListItem "Latest entry"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 404 {object} problem.Problem "No entries logged yet"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries/latest [get]
func (h *EntryHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	entry, err := h.service.Latest(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No entries logged yet").Write(w)
			return
		}
		problem.InternalError("Failed to load latest entry").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /v1/entries/{entryId}
// @Summary Delete entry
// @Description Delete one of the caller's entries.
// @Tags entries
// @Security BearerAuth
// @Param entryId path string true "Entry UUID" format(uuid)
// @Success 204 "Deleted"
// @Failure 400 {object} problem.Problem "Invalid entry ID"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 404 {object} problem.Problem "Entry not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries/{entryId} [delete]
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "entryId"))
	if err != nil {
		problem.BadRequest("Invalid entry ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Entry not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete entry").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Statistics handles GET /v1/statistics
// @Summary Period statistics
// @Description Averages per metric plus a trend per category over the trailing window.
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param period_days query integer false "Trailing window in days (1-365)" default(30)
// @Success 200 {object} domain.StatisticsResponse "Statistics"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /statistics [get]
func (h *EntryHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	periodDays := 0
	if raw := r.URL.Query().Get("period_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "period_days", Message: "must be a positive integer"},
			}).Write(w)
			return
		}
		periodDays = parsed
	}

	response, err := h.service.Statistics(r.Context(), userID, periodDays)
	if err != nil {
		problem.InternalError("Failed to compute statistics").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseEntryFilter(r *http.Request) (domain.EntryFilter, []problem.FieldError) {
	var filter domain.EntryFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.ParseInLocation("2006-01-02", fromStr, time.UTC)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.ParseInLocation("2006-01-02", toStr, time.UTC)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}

func metricFieldErrors(verr *wellness.ValidationError) []problem.FieldError {
	fieldErrors := make([]problem.FieldError, len(verr.Fields))
	for i, fe := range verr.Fields {
		fieldErrors[i] = problem.FieldError{Field: fe.Field, Message: fe.Message}
	}
	return fieldErrors
}
