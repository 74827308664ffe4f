package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/repository"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
	"github.com/mstolarz/wellness-tracker/pkg/pagination"
)

const (
	DefaultStatisticsPeriodDays = 30
	MaxStatisticsPeriodDays     = 365
)

type EntryService interface {
	// Upsert scores and stores a day's metrics.
	// Returns (entry, isExisting, error) - isExisting is true when the
	// request replaced an already-logged entry for the same date.
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.CreateEntryRequest) (*domain.EntryResponse, bool, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error)
	Latest(ctx context.Context, userID uuid.UUID) (*domain.EntryListItem, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	Statistics(ctx context.Context, userID uuid.UUID, periodDays int) (*domain.StatisticsResponse, error)
}

type entryService struct {
	repo   repository.EntryRepository
	engine *wellness.Engine
}

func NewEntryService(repo repository.EntryRepository, engine *wellness.Engine) EntryService {
	return &entryService{
		repo:   repo,
		engine: engine,
	}
}

func (s *entryService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.CreateEntryRequest) (*domain.EntryResponse, bool, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, false, domain.ErrInvalidInput
	}

	result, err := s.engine.Score(ctx, req.MetricsInput)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, false, err
	}

	entry := existing
	isExisting := existing != nil
	if isExisting {
		applyMetrics(entry, result)
		if err := s.repo.Save(ctx, entry); err != nil {
			return nil, false, err
		}
	} else {
		entry = &domain.HealthEntry{
			UserID: userID,
			Date:   date,
		}
		applyMetrics(entry, result)
		if err := s.repo.Create(ctx, entry); err != nil {
			return nil, false, err
		}
	}

	response := &domain.EntryResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Date:      entry.Date.Format("2006-01-02"),
		Metrics:   result.Metrics,
		Wellness:  *result,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
	return response, isExisting, nil
}

func applyMetrics(entry *domain.HealthEntry, result *domain.WellnessResult) {
	entry.SleepHours = result.Metrics.SleepHours
	entry.Calories = result.Metrics.Calories
	entry.Steps = result.Metrics.Steps
	entry.WaterIntake = result.Metrics.WaterIntake
	entry.ScreenTime = result.Metrics.ScreenTime
	entry.StressLevel = result.Metrics.StressLevel
	entry.WellnessScore = result.WellnessScore
}

func (s *entryService) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit

	// Trim to actual limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.EntryListResponse{
		Data: make([]domain.EntryListItem, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, entry := range entries {
		response.Data[i] = entry.ToListItem()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *entryService) Latest(ctx context.Context, userID uuid.UUID) (*domain.EntryListItem, error) {
	entry, err := s.repo.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	item := entry.ToListItem()
	return &item, nil
}

func (s *entryService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	// Ownership check; other users' entries look like they don't exist.
	if entry.UserID != userID {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, entryID)
}

func (s *entryService) Statistics(ctx context.Context, userID uuid.UUID, periodDays int) (*domain.StatisticsResponse, error) {
	if periodDays <= 0 {
		periodDays = DefaultStatisticsPeriodDays
	}
	if periodDays > MaxStatisticsPeriodDays {
		periodDays = MaxStatisticsPeriodDays
	}

	tracer := otel.Tracer("wellness-tracker-api/statistics")
	ctx, span := tracer.Start(ctx, "EntryService.Statistics",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("period.days", periodDays),
		),
	)
	defer span.End()

	now := time.Now().UTC()
	entries, err := s.repo.ListSince(ctx, userID, now.AddDate(0, 0, -periodDays))
	if err != nil {
		return nil, err
	}

	summary := wellness.Summarize(entries, periodDays, now, s.engine.Config())
	span.SetAttributes(attribute.Int("entries.count", summary.TotalEntries))

	return &domain.StatisticsResponse{
		PeriodDays: periodDays,
		Statistics: summary,
	}, nil
}
