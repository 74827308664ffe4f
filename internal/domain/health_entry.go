package domain

import (
	"time"

	"github.com/google/uuid"
)

// HealthEntry is one day's persisted metrics plus the score computed for
// them. There is at most one entry per (user, date).
type HealthEntry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entries_user_date" json:"user_id"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_entries_user_date" json:"date"`
	SleepHours    float64   `gorm:"not null" json:"sleepHours"`
	Calories      float64   `gorm:"not null" json:"calories"`
	Steps         int       `gorm:"not null" json:"steps"`
	WaterIntake   float64   `gorm:"not null" json:"waterIntake"`
	ScreenTime    float64   `gorm:"not null;default:0" json:"screenTime"`
	StressLevel   int       `gorm:"not null;default:5" json:"stressLevel"`
	WellnessScore float64   `gorm:"not null" json:"wellnessScore"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthEntry) TableName() string {
	return "health_entries"
}

// Metrics extracts the raw metrics stored on the entry.
func (e *HealthEntry) Metrics() RawMetrics {
	return RawMetrics{
		SleepHours:  e.SleepHours,
		Calories:    e.Calories,
		Steps:       e.Steps,
		WaterIntake: e.WaterIntake,
		ScreenTime:  e.ScreenTime,
		StressLevel: e.StressLevel,
	}
}

// CreateEntryRequest is the request body for logging a day's metrics.
// @Description Daily health entry. Posting the same date again replaces that day's metrics.
type CreateEntryRequest struct {
	// Entry date in YYYY-MM-DD format
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	MetricsInput
}

// EntryResponse is the response body for entry endpoints.
// @Description Persisted entry together with its computed wellness result.
type EntryResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      string    `json:"date" example:"2024-03-01"`
	Metrics   RawMetrics `json:"metrics"`
	Wellness  WellnessResult `json:"wellness"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryListItem is a single stored entry in a history listing. The full
// wellness breakdown is not persisted, only the final score.
type EntryListItem struct {
	ID            uuid.UUID  `json:"id"`
	Date          string     `json:"date" example:"2024-03-01"`
	Metrics       RawMetrics `json:"metrics"`
	WellnessScore float64    `json:"wellnessScore"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (e *HealthEntry) ToListItem() EntryListItem {
	return EntryListItem{
		ID:            e.ID,
		Date:          e.Date.Format("2006-01-02"),
		Metrics:       e.Metrics(),
		WellnessScore: e.WellnessScore,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// EntryListResponse is the response body for listing entries.
// @Description Paginated list of health entries, newest first.
type EntryListResponse struct {
	Data       []EntryListItem    `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more"`
}

// EntryFilter contains filter parameters for listing entries.
type EntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
