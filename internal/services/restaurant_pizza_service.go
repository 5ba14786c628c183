package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService provides methods to manage the pizzas offered by restaurants
type RestaurantPizzaService interface {
	// CreateRestaurantPizza persists a new offering and returns it with its pizza and restaurant loaded.
	// A *ConstraintError is returned when the store rejects the row.
	CreateRestaurantPizza(ctx context.Context, restaurantPizza models.RestaurantPizza) (models.RestaurantPizza, error)
	// GetRestaurantPizzaByID retrieves an offering with its pizza and restaurant loaded
	GetRestaurantPizzaByID(ctx context.Context, id uint) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, restaurantPizza models.RestaurantPizza) (models.RestaurantPizza, error) {
	// Never cascade-create the referenced rows
	restaurantPizza.ID = 0
	restaurantPizza.Restaurant = models.Restaurant{}
	restaurantPizza.Pizza = models.Pizza{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return classifyWriteError(tx, tx.Omit("Restaurant", "Pizza").Create(&restaurantPizza).Error)
	})
	if err != nil {
		var constraintErr *ConstraintError
		if errors.As(err, &constraintErr) {
			return models.RestaurantPizza{}, err
		}
		return models.RestaurantPizza{}, fmt.Errorf("failed to create restaurant pizza: %w", err)
	}
	return s.GetRestaurantPizzaByID(ctx, restaurantPizza.ID)
}

func (s *restaurantPizzaService) GetRestaurantPizzaByID(ctx context.Context, id uint) (models.RestaurantPizza, error) {
	var restaurantPizza models.RestaurantPizza
	if err := loadRestaurantPizza(s.db.WithContext(ctx), id, &restaurantPizza); err != nil {
		return models.RestaurantPizza{}, err
	}
	return restaurantPizza, nil
}

func loadRestaurantPizza(db *gorm.DB, id uint, dest *models.RestaurantPizza) error {
	err := db.Preload("Pizza").Preload("Restaurant").First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRestaurantPizzaNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load restaurant pizza %d: %w", id, err)
	}
	return nil
}
