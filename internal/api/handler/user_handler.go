package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mstolarz/wellness-tracker/internal/api/middleware"
	"github.com/mstolarz/wellness-tracker/internal/api/validation"
	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/service"
	"github.com/mstolarz/wellness-tracker/pkg/problem"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /v1/auth/register
// @Summary Register account
// @Description Create a user account and return a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "Account data"
// @Success 201 {object} domain.AuthResponse "Account created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 409 {object} problem.Problem "Email already registered"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /auth/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			problem.Conflict("Email is already registered").Write(w)
			return
		}
		problem.InternalError("Failed to register user").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /v1/auth/login
// @Summary Log in
// @Description Exchange email and password for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.AuthResponse "Authenticated"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Invalid credentials"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /auth/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			problem.Unauthorized("Invalid email or password").Write(w)
			return
		}
		problem.InternalError("Failed to log in").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Me handles GET /v1/me
// @Summary Current user
// @Description Return the authenticated user's profile.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.UserResponse "Profile"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 404 {object} problem.Problem "User no longer exists"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to load user").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, user.ToResponse())
}

// ListUsers handles GET /v1/admin/users
// @Summary List users
// @Description List all registered users. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.UserResponse "Users"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 403 {object} problem.Problem "Admin access required"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		problem.InternalError("Failed to list users").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// DeleteUser handles DELETE /v1/admin/users/{userId}
// @Summary Delete user
// @Description Delete a user account and their entries. Admins cannot delete themselves.
// @Tags admin
// @Param userId path string true "User UUID" format(uuid)
// @Security BearerAuth
// @Success 204 "Deleted"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 403 {object} problem.Problem "Cannot delete own account"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /admin/users/{userId} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), adminID, userID); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			problem.Forbidden("Admins cannot delete their own account").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete user").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SystemStatistics handles GET /v1/admin/statistics
// @Summary System statistics
// @Description Service-wide counts and global average wellness score. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.SystemStatistics "Statistics"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 403 {object} problem.Problem "Admin access required"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /admin/statistics [get]
func (h *UserHandler) SystemStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.SystemStatistics(r.Context())
	if err != nil {
		problem.InternalError("Failed to compute system statistics").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
