package models

// Restaurant represents a restaurant that offers pizzas at its own prices
type Restaurant struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Address string `json:"address"`

	// Loaded on demand, the foreign key lives on RestaurantPizza
	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
