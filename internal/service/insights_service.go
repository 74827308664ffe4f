package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/llm"
	"github.com/mstolarz/wellness-tracker/internal/repository"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
)

const (
	// Window sizes for insights
	HistoryWindowDays = 30
	RecentWindowDays  = 7
)

// InsightsService generates LLM-backed wellness insights.
type InsightsService interface {
	// Generate creates wellness insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	entryRepo repository.EntryRepository
	engine    *wellness.Engine
	llmClient llm.InsightsLLM
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(entryRepo repository.EntryRepository, engine *wellness.Engine, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		entryRepo: entryRepo,
		engine:    engine,
		llmClient: llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	now := time.Now().UTC()

	// Compute history statistics (~30 days)
	history, err := s.summarizeWindow(ctx, userID, HistoryWindowDays, now)
	if err != nil {
		return nil, err
	}

	// Compute recent statistics (~7 days)
	recent, err := s.summarizeWindow(ctx, userID, RecentWindowDays, now)
	if err != nil {
		return nil, err
	}

	// Most recent entry, if any
	var latest *domain.EntryListItem
	entry, err := s.entryRepo.Latest(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if entry != nil {
		item := entry.ToListItem()
		latest = &item
	}

	insightsCtx := &domain.InsightsContext{
		History: history,
		Recent:  recent,
		Latest:  latest,
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.InsightsResponse{
		Latest:   latest,
		Insights: *llmOutput,
	}
	response.Statistics.History = history
	response.Statistics.Recent = recent

	return response, nil
}

func (s *insightsService) summarizeWindow(ctx context.Context, userID uuid.UUID, periodDays int, now time.Time) (domain.StatisticsSummary, error) {
	entries, err := s.entryRepo.ListSince(ctx, userID, now.AddDate(0, 0, -periodDays))
	if err != nil {
		return domain.StatisticsSummary{}, err
	}
	return wellness.Summarize(entries, periodDays, now, s.engine.Config()), nil
}
