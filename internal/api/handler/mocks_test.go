package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/model"
)

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	registerFunc func(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	loginFunc    func(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	getByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	listFunc     func(ctx context.Context) ([]domain.UserResponse, error)
	deleteFunc   func(ctx context.Context, adminID, userID uuid.UUID) error
	statsFunc    func(ctx context.Context) (*domain.SystemStatistics, error)
}

func (m *MockUserService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return &domain.AuthResponse{Token: "token", User: domain.UserResponse{ID: uuid.New(), Email: req.Email}}, nil
}

func (m *MockUserService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return &domain.AuthResponse{Token: "token", User: domain.UserResponse{ID: uuid.New(), Email: req.Email}}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.User{ID: id, Email: "jan@example.com"}, nil
}

func (m *MockUserService) List(ctx context.Context) ([]domain.UserResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []domain.UserResponse{}, nil
}

func (m *MockUserService) Delete(ctx context.Context, adminID, userID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, adminID, userID)
	}
	return nil
}

func (m *MockUserService) SystemStatistics(ctx context.Context) (*domain.SystemStatistics, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &domain.SystemStatistics{}, nil
}

// MockEntryService is a mock implementation of service.EntryService
type MockEntryService struct {
	upsertFunc     func(ctx context.Context, userID uuid.UUID, req *domain.CreateEntryRequest) (*domain.EntryResponse, bool, error)
	listFunc       func(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error)
	latestFunc     func(ctx context.Context, userID uuid.UUID) (*domain.EntryListItem, error)
	deleteFunc     func(ctx context.Context, userID, entryID uuid.UUID) error
	statisticsFunc func(ctx context.Context, userID uuid.UUID, periodDays int) (*domain.StatisticsResponse, error)
}

func (m *MockEntryService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.CreateEntryRequest) (*domain.EntryResponse, bool, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	return &domain.EntryResponse{ID: uuid.New(), UserID: userID, Date: req.Date}, false, nil
}

func (m *MockEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.EntryListResponse{Data: []domain.EntryListItem{}}, nil
}

func (m *MockEntryService) Latest(ctx context.Context, userID uuid.UUID) (*domain.EntryListItem, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, userID)
	}
	return &domain.EntryListItem{ID: uuid.New()}, nil
}

func (m *MockEntryService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, entryID)
	}
	return nil
}

func (m *MockEntryService) Statistics(ctx context.Context, userID uuid.UUID, periodDays int) (*domain.StatisticsResponse, error) {
	if m.statisticsFunc != nil {
		return m.statisticsFunc(ctx, userID, periodDays)
	}
	return &domain.StatisticsResponse{PeriodDays: periodDays}, nil
}

// MockWellnessService is a mock implementation of service.WellnessService
type MockWellnessService struct {
	scoreFunc  func(ctx context.Context, in domain.MetricsInput) (*domain.WellnessResult, error)
	infoFunc   func(ctx context.Context) (*model.Info, error)
	reloadFunc func(ctx context.Context) (*model.Info, error)
}

func (m *MockWellnessService) Score(ctx context.Context, in domain.MetricsInput) (*domain.WellnessResult, error) {
	if m.scoreFunc != nil {
		return m.scoreFunc(ctx, in)
	}
	return &domain.WellnessResult{WellnessScore: 75}, nil
}

func (m *MockWellnessService) ModelInfo(ctx context.Context) (*model.Info, error) {
	if m.infoFunc != nil {
		return m.infoFunc(ctx)
	}
	return &model.Info{Loaded: true}, nil
}

func (m *MockWellnessService) ReloadModel(ctx context.Context) (*model.Info, error) {
	if m.reloadFunc != nil {
		return m.reloadFunc(ctx)
	}
	return &model.Info{Loaded: true}, nil
}

// MockInsightsService is a mock implementation of service.InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{}, nil
}
