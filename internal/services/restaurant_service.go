package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant table
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their offerings
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its offerings and their pizzas
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and its offerings in one transaction
	DeleteRestaurant(ctx context.Context, id uint) error
}

// restaurantService is the implementation of the RestaurantService interface
type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	db := s.db.WithContext(ctx)

	var restaurant models.Restaurant
	err := db.First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to get restaurant %d: %w", id, err)
	}

	restaurant.RestaurantPizzas = []models.RestaurantPizza{}
	err = db.Preload("Pizza").
		Where("restaurant_id = ?", restaurant.ID).
		Order("id").
		Find(&restaurant.RestaurantPizzas).Error
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to get offerings of restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Offerings are removed explicitly, not every store enforces ON DELETE CASCADE
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("failed to delete offerings of restaurant %d: %w", id, err)
		}

		result := tx.Delete(&models.Restaurant{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete restaurant %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRestaurantNotFound
		}
		return nil
	})
}
