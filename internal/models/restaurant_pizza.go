package models

const (
	// MinPrice and MaxPrice bound the price of a restaurant pizza, inclusive
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza is a pizza offered by a restaurant at a given price
type RestaurantPizza struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Price        float64 `json:"price" gorm:"not null;check:price >= 1 AND price <= 30"`
	RestaurantID uint    `json:"restaurant_id" gorm:"not null;index"`
	PizzaID      uint    `json:"pizza_id" gorm:"not null;index"`

	// Deleting a restaurant removes its offerings
	Restaurant Restaurant `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Pizza      Pizza      `json:"-" gorm:"constraint:OnUpdate:CASCADE;"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{&Restaurant{}, &Pizza{}, &RestaurantPizza{}}
}
