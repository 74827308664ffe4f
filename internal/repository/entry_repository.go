package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/pkg/pagination"
)

type EntryRepository interface {
	Create(ctx context.Context, entry *domain.HealthEntry) error
	Save(ctx context.Context, entry *domain.HealthEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthEntry, error)
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.HealthEntry, error)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.HealthEntry, error)
	Latest(ctx context.Context, userID uuid.UUID) (*domain.HealthEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	GlobalAverageScore(ctx context.Context) (*float64, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *domain.HealthEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) Save(ctx context.Context, entry *domain.HealthEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *entryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthEntry, error) {
	var entry domain.HealthEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthEntry, error) {
	var entry domain.HealthEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // absence drives the upsert decision, not an error
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.HealthEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC")

	if filter.From != nil {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records before the cursor date, or same date
			// with a smaller id.
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.HealthEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.HealthEntry, error) {
	var entries []domain.HealthEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.HealthEntry, error) {
	var entry domain.HealthEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.HealthEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *entryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.HealthEntry{}).Count(&count).Error
	return count, err
}

func (r *entryRepository) GlobalAverageScore(ctx context.Context) (*float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&domain.HealthEntry{}).
		Select("AVG(wellness_score)").
		Scan(&avg).Error
	return avg, err
}
