package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// SeedIfEmpty seeds the database only when restaurants, pizzas and
// restaurant pizzas are all empty, so rows removed through the API stay removed.
// It reports whether seeding happened.
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	for _, model := range models.All() {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to count rows: %w", err)
		}
		if count > 0 {
			log.Info("Database already holds data, skipping seed")
			return false, nil
		}
	}
	log.Info("Database is empty, seeding initial data")
	return true, Seed(db)
}

// Reset deletes every row, children first
func Reset(db *gorm.DB) error {
	log.Warn("Clearing all restaurant and pizza data")
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Seed inserts the sample restaurants, pizzas and offerings in a single transaction
func Seed(db *gorm.DB) error {
	log.Info("Seeding database with initial data")

	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	pizzas := []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}
		offerings := []models.RestaurantPizza{
			{RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID, Price: 1},
			{RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID, Price: 4},
			{RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID, Price: 5},
		}
		return tx.Create(&offerings).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	log.Info("Database seeded successfully")
	return nil
}
