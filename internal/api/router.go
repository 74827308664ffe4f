package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/mstolarz/wellness-tracker/docs"
	"github.com/mstolarz/wellness-tracker/internal/api/handler"
	"github.com/mstolarz/wellness-tracker/internal/api/middleware"
)

type Router struct {
	auth            *middleware.Auth
	userHandler     *handler.UserHandler
	entryHandler    *handler.EntryHandler
	wellnessHandler *handler.WellnessHandler
}

func NewRouter(
	auth *middleware.Auth,
	userHandler *handler.UserHandler,
	entryHandler *handler.EntryHandler,
	wellnessHandler *handler.WellnessHandler,
) *Router {
	return &Router{
		auth:            auth,
		userHandler:     userHandler,
		entryHandler:    entryHandler,
		wellnessHandler: wellnessHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Public
		r.Post("/auth/register", rt.userHandler.Register)
		r.Post("/auth/login", rt.userHandler.Login)
		r.Post("/score", rt.wellnessHandler.Score)

		// Authenticated
		r.Group(func(r chi.Router) {
			r.Use(rt.auth.RequireAuth)

			r.Get("/me", rt.userHandler.Me)

			r.Route("/entries", func(r chi.Router) {
				r.Post("/", rt.entryHandler.Create)
				r.Get("/", rt.entryHandler.List)
				r.Get("/latest", rt.entryHandler.Latest)
				r.Delete("/{entryId}", rt.entryHandler.Delete)
			})

			r.Get("/statistics", rt.entryHandler.Statistics)
			r.Get("/insights", rt.wellnessHandler.Insights)

			// Admin
			r.Group(func(r chi.Router) {
				r.Use(rt.auth.RequireAdmin)

				r.Get("/admin/users", rt.userHandler.ListUsers)
				r.Delete("/admin/users/{userId}", rt.userHandler.DeleteUser)
				r.Get("/admin/statistics", rt.userHandler.SystemStatistics)
				r.Get("/admin/model", rt.wellnessHandler.ModelInfo)
				r.Post("/admin/model/reload", rt.wellnessHandler.ReloadModel)
			})
		})
	})

	return r
}
