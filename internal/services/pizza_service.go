package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza table
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
}

type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("failed to list pizzas: %w", err)
	}
	return pizzas, nil
}
