package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mstolarz/wellness-tracker/internal/domain"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.LastLoginAt = &at
	return nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.User
	for _, user := range m.users {
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.users)), nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockEntryRepository is a mock implementation of repository.EntryRepository
type MockEntryRepository struct {
	entries map[uuid.UUID]*domain.HealthEntry
	err     error
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[uuid.UUID]*domain.HealthEntry),
	}
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *domain.HealthEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) Save(ctx context.Context, entry *domain.HealthEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.UpdatedAt = time.Now()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockEntryRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, entry := range m.entries {
		if entry.UserID == userID && entry.Date.Equal(date) {
			return entry, nil
		}
	}
	return nil, nil
}

func (m *MockEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.HealthEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HealthEntry
	for _, entry := range m.entries {
		if entry.UserID != userID {
			continue
		}
		if filter.From != nil && entry.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && entry.Date.After(*filter.To) {
			continue
		}
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (m *MockEntryRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.HealthEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HealthEntry
	for _, entry := range m.entries {
		if entry.UserID == userID && !entry.Date.Before(since) {
			result = append(result, *entry)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *MockEntryRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.HealthEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.HealthEntry
	for _, entry := range m.entries {
		if entry.UserID != userID {
			continue
		}
		if latest == nil || entry.Date.After(latest.Date) {
			latest = entry
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockEntryRepository) Count(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.entries)), nil
}

func (m *MockEntryRepository) GlobalAverageScore(ctx context.Context) (*float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.entries) == 0 {
		return nil, nil
	}
	var sum float64
	for _, entry := range m.entries {
		sum += entry.WellnessScore
	}
	avg := sum / float64(len(m.entries))
	return &avg, nil
}

func (m *MockEntryRepository) SetError(err error) {
	m.err = err
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output  *domain.LLMInsightsOutput
	err     error
	lastCtx *domain.InsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.lastCtx = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// stubModel is a fixed-score predictor for engine wiring in tests
type stubModel struct {
	score float64
	err   error
}

func (s *stubModel) Predict(ctx context.Context, m domain.RawMetrics) (float64, error) {
	return s.score, s.err
}

// Helper functions
func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
