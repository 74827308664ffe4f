package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mstolarz/wellness-tracker/internal/auth"
	"github.com/mstolarz/wellness-tracker/pkg/problem"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isAdminKey contextKey = "isAdmin"
)

// Auth validates bearer tokens and stores the caller's identity in the
// request context.
type Auth struct {
	tokens *auth.Manager
}

func NewAuth(tokens *auth.Manager) *Auth {
	return &Auth{tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			problem.Unauthorized("Missing Authorization header").Write(w)
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			problem.Unauthorized("Authorization header must be a bearer token").Write(w)
			return
		}

		claims, err := a.tokens.Verify(tokenString)
		if err != nil {
			problem.Unauthorized("Invalid or expired token").Write(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, isAdminKey, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects authenticated requests from non-admin users. Must run
// after RequireAuth.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			problem.Forbidden("Admin access required").Write(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser returns a context carrying the given identity, as RequireAuth
// would set it.
func WithUser(ctx context.Context, userID uuid.UUID, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

// GetUserID extracts the authenticated user's ID from the request context.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// IsAdmin reports whether the authenticated user is an admin.
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(isAdminKey).(bool)
	return ok && isAdmin
}
