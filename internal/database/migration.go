package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
)

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Question{},
		&models.Answer{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
