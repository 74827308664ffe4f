package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
)

const seededDays = 40

// Run seeds the database with sample users and health entries. Safe to call
// multiple times.
func Run(db *gorm.DB, engine *wellness.Engine) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.HealthEntry{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("wellness-demo"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Email: "admin@example.com", FullName: "Demo Admin", IsAdmin: true},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Email: "anna@example.com", FullName: "Anna Kowalska"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Email: "jan@example.com", FullName: "Jan Nowak"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Email: "maria@example.com", FullName: "Maria Wiśniewska"},
	}

	for i := range users {
		users[i].PasswordHash = string(passwordHash)
		if err := db.Where("id = ?", users[i].ID).FirstOrCreate(&users[i]).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", users[i].ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedEntriesForUser(db, engine, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedEntriesForUser(db *gorm.DB, engine *wellness.Engine, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		day := now.AddDate(0, 0, -i)
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

		sleepHours := 5.5 + rng.Float64()*3.5
		calories := 1600 + rng.Float64()*1200
		steps := 3000 + rng.Intn(10000)
		waterIntake := 1.0 + rng.Float64()*2.5
		screenTime := 1.0 + rng.Float64()*6
		stressLevel := 2 + rng.Intn(7)

		result, err := engine.Score(context.Background(), domain.MetricsInput{
			SleepHours:  &sleepHours,
			Calories:    &calories,
			Steps:       &steps,
			WaterIntake: &waterIntake,
			ScreenTime:  &screenTime,
			StressLevel: &stressLevel,
		})
		if err != nil {
			return fmt.Errorf("failed to score seed metrics: %w", err)
		}

		entry := domain.HealthEntry{
			UserID:        user.ID,
			Date:          date,
			SleepHours:    result.Metrics.SleepHours,
			Calories:      result.Metrics.Calories,
			Steps:         result.Metrics.Steps,
			WaterIntake:   result.Metrics.WaterIntake,
			ScreenTime:    result.Metrics.ScreenTime,
			StressLevel:   result.Metrics.StressLevel,
			WellnessScore: result.WellnessScore,
		}

		if err := db.Where("user_id = ? AND date = ?", user.ID, date).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to create health entry: %w", err)
		}
	}
	return nil
}
