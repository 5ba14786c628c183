package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
