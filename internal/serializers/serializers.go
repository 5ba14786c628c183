// Package serializers turns the restaurant/pizza entity graph into response
// payloads.
//
// Restaurant, RestaurantPizza and Pizza reference each other, so a generic
// recursive encoder would never terminate. Every endpoint instead declares the
// exact shape it returns as its own type, and nested types carry no further
// relations:
//
//	restaurant list     {id, name, address}
//	restaurant detail   {id, name, address, restaurant_pizzas: [{id, pizza_id, restaurant_id, price, pizza}]}
//	pizza list          {id, name, ingredients}
//	created offering    {id, price, pizza_id, restaurant_id, pizza, restaurant}
//
// The functions here are pure. Callers load the relations a shape needs
// before shaping it.
package serializers

import "github.com/franciscosanchezn/restaurant-pizza-api/internal/models"

// Restaurant is a restaurant without its offerings
type Restaurant struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Pizza is a pizza without the restaurants offering it
type Pizza struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizza is an offering nested under its restaurant
type RestaurantPizza struct {
	ID           uint    `json:"id"`
	PizzaID      uint    `json:"pizza_id"`
	RestaurantID uint    `json:"restaurant_id"`
	Price        float64 `json:"price"`
	Pizza        Pizza   `json:"pizza"`
}

// RestaurantDetail is a restaurant with its offerings and their pizzas
type RestaurantDetail struct {
	ID               uint              `json:"id"`
	Name             string            `json:"name"`
	Address          string            `json:"address"`
	RestaurantPizzas []RestaurantPizza `json:"restaurant_pizzas"`
}

// CreatedRestaurantPizza is a newly created offering with both ends of the relation
type CreatedRestaurantPizza struct {
	ID           uint       `json:"id"`
	Price        float64    `json:"price"`
	PizzaID      uint       `json:"pizza_id"`
	RestaurantID uint       `json:"restaurant_id"`
	Pizza        Pizza      `json:"pizza"`
	Restaurant   Restaurant `json:"restaurant"`
}

// NewRestaurant shapes a restaurant for the list view
func NewRestaurant(r models.Restaurant) Restaurant {
	return Restaurant{ID: r.ID, Name: r.Name, Address: r.Address}
}

// NewRestaurants shapes every restaurant for the list view
func NewRestaurants(restaurants []models.Restaurant) []Restaurant {
	shaped := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		shaped = append(shaped, NewRestaurant(r))
	}
	return shaped
}

// NewPizza shapes a pizza without its restaurants
func NewPizza(p models.Pizza) Pizza {
	return Pizza{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewPizzas shapes every pizza for the list view
func NewPizzas(pizzas []models.Pizza) []Pizza {
	shaped := make([]Pizza, 0, len(pizzas))
	for _, p := range pizzas {
		shaped = append(shaped, NewPizza(p))
	}
	return shaped
}

// NewRestaurantPizza shapes an offering for the restaurant detail view.
// The offering's Pizza must be loaded.
func NewRestaurantPizza(rp models.RestaurantPizza) RestaurantPizza {
	return RestaurantPizza{
		ID:           rp.ID,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Price:        rp.Price,
		Pizza:        NewPizza(rp.Pizza),
	}
}

// NewRestaurantDetail shapes a restaurant for the detail view.
// RestaurantPizzas and their Pizza must be loaded.
func NewRestaurantDetail(r models.Restaurant) RestaurantDetail {
	offerings := make([]RestaurantPizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		offerings = append(offerings, NewRestaurantPizza(rp))
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: offerings,
	}
}

// NewCreatedRestaurantPizza shapes an offering returned by the create endpoint.
// Pizza and Restaurant must be loaded.
func NewCreatedRestaurantPizza(rp models.RestaurantPizza) CreatedRestaurantPizza {
	return CreatedRestaurantPizza{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        NewPizza(rp.Pizza),
		Restaurant:   NewRestaurant(rp.Restaurant),
	}
}
