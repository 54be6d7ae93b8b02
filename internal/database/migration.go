package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vladimirreshete-del/gde-dengi/internal/models"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Expense{},
		&models.Goal{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
