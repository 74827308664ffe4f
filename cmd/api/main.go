// Wellness Tracker API
//
// REST API for scoring and tracking daily wellness metrics.
//
//	@title			Wellness Tracker API
//	@version		1.0
//	@description	Score six daily health metrics into a 0-100 wellness score with category breakdowns, recommendations, history and trends.
//
//	@BasePath	/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token from /auth/register or /auth/login.
//
//	@tag.name			auth
//	@tag.description	Registration and login endpoints
//
//	@tag.name			scoring
//	@tag.description	Stateless wellness scoring
//
//	@tag.name			entries
//	@tag.description	Daily health entry endpoints
//
//	@tag.name			statistics
//	@tag.description	History statistics and trends
//
//	@tag.name			insights
//	@tag.description	LLM-generated wellness insights
//
//	@tag.name			admin
//	@tag.description	Admin-only endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/mstolarz/wellness-tracker/internal/api"
	"github.com/mstolarz/wellness-tracker/internal/api/handler"
	"github.com/mstolarz/wellness-tracker/internal/api/middleware"
	"github.com/mstolarz/wellness-tracker/internal/auth"
	"github.com/mstolarz/wellness-tracker/internal/config"
	"github.com/mstolarz/wellness-tracker/internal/llm"
	"github.com/mstolarz/wellness-tracker/internal/model"
	"github.com/mstolarz/wellness-tracker/internal/repository"
	"github.com/mstolarz/wellness-tracker/internal/seed"
	"github.com/mstolarz/wellness-tracker/internal/service"
	"github.com/mstolarz/wellness-tracker/internal/telemetry"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when OTLP_ENDPOINT is unset)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "wellness-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Load the regression model (scoring falls back to category averages
	// when the artifact is missing)
	var modelAdmin service.ModelAdmin
	var predictor wellness.Predictor
	linearPredictor, err := model.NewLinearPredictor(cfg.ModelPath)
	if err != nil {
		log.Printf("Warning: model artifact not loaded (%v), scoring will use category averages", err)
	} else {
		modelAdmin = linearPredictor
		predictor = model.NewBreakerPredictor(linearPredictor)
		log.Printf("Loaded model %q from %s", linearPredictor.Info().ModelName, cfg.ModelPath)
	}

	engine := wellness.NewEngine(wellness.DefaultConfig(), predictor)

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db, engine); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	// Initialize auth
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authMiddleware := middleware.NewAuth(tokens)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize services
	userService := service.NewUserService(userRepo, entryRepo, tokens)
	entryService := service.NewEntryService(entryRepo, engine)
	wellnessService := service.NewWellnessService(engine, modelAdmin)
	insightsService := service.NewInsightsService(entryRepo, engine, openaiClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	entryHandler := handler.NewEntryHandler(entryService)
	wellnessHandler := handler.NewWellnessHandler(wellnessService, insightsService)

	// Setup router
	router := api.NewRouter(authMiddleware, userHandler, entryHandler, wellnessHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
