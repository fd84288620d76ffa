package database

import (
	"fmt"
	"time"

	"github.com/taskify-app/taskify-api/internal/auth"
	"github.com/taskify-app/taskify-api/internal/models"
	"gorm.io/gorm"
)

// Seed inserts a demo account with a handful of tasks when the database is
// empty. Intended for local development only.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.NewPasswordManager().Hash("Demo123!")
	if err != nil {
		return err
	}

	firstName := "Demo"
	lastName := "User"
	user := models.User{
		Username:     "demo",
		Email:        "demo@taskify.local",
		PasswordHash: hash,
		FirstName:    &firstName,
		LastName:     &lastName,
		Role:         "User",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed demo user: %w", err)
		}

		now := time.Now().UTC()
		tasks := []models.Task{
			{
				Title:       "Review project proposal",
				Description: "Go through the draft and leave comments",
				DueDate:     now.Add(48 * time.Hour),
				Priority:    models.PriorityHigh,
				Status:      models.StatusPending,
				UserID:      user.ID,
				CreatedAt:   now,
			},
			{
				Title:       "Book dentist appointment",
				DueDate:     now.Add(7 * 24 * time.Hour),
				Priority:    models.PriorityLow,
				Status:      models.StatusPending,
				UserID:      user.ID,
				CreatedAt:   now,
			},
			{
				Title:       "Prepare sprint demo",
				Description: "Slides plus a short live walkthrough",
				DueDate:     now.Add(72 * time.Hour),
				Priority:    models.PriorityMedium,
				Status:      models.StatusPending,
				UserID:      user.ID,
				CreatedAt:   now,
			},
			{
				Title:       "Submit expense report",
				DueDate:     now.Add(-24 * time.Hour),
				Priority:    models.PriorityMedium,
				Status:      models.StatusCompleted,
				UserID:      user.ID,
				CreatedAt:   now,
			},
		}

		if err := tx.Create(&tasks).Error; err != nil {
			return fmt.Errorf("failed to seed demo tasks: %w", err)
		}

		return nil
	})
}
