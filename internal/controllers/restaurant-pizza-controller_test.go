package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurantPizzaRouter(service *stubRestaurantPizzaService) *gin.Engine {
	router := newTestEngine()
	router.POST("/restaurant_pizzas", NewRestaurantPizzaController(service).CreateRestaurantPizza)
	return router
}

func TestCreateRestaurantPizzaPassesRequestToService(t *testing.T) {
	service := &stubRestaurantPizzaService{created: models.RestaurantPizza{
		ID: 4, Price: 5, PizzaID: 1, RestaurantID: 3,
		Pizza:      models.Pizza{ID: 1, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		Restaurant: models.Restaurant{ID: 3, Name: "Kiki's Pizza", Address: "address3"},
	}}

	w := perform(newRestaurantPizzaRouter(service), http.MethodPost, "/restaurant_pizzas",
		`{"price": 5, "pizza_id": 1, "restaurant_id": 3, "id": 99}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotNil(t, service.received)
	assert.Equal(t, models.RestaurantPizza{Price: 5, PizzaID: 1, RestaurantID: 3}, *service.received)
	assert.JSONEq(t, `{
		"id": 4,
		"price": 5,
		"pizza_id": 1,
		"restaurant_id": 3,
		"pizza": {"id": 1, "name": "Emma", "ingredients": "Dough, Tomato Sauce, Cheese"},
		"restaurant": {"id": 3, "name": "Kiki's Pizza", "address": "address3"}
	}`, w.Body.String())
}

func TestCreateRestaurantPizzaRejectsBeforeService(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "malformed json", body: `{"price": `, message: models.MsgInvalidRequestBody},
		{name: "wrong type", body: `{"price": "five", "pizza_id": 1, "restaurant_id": 3}`, message: models.MsgInvalidRequestBody},
		{name: "missing price", body: `{"pizza_id": 1, "restaurant_id": 3}`, message: models.MsgMissingFields},
		{name: "missing ids", body: `{"price": 5}`, message: models.MsgMissingFields},
		{name: "null pizza", body: `{"price": 5, "pizza_id": null, "restaurant_id": 3}`, message: models.MsgMissingFields},
		{name: "price too low", body: `{"price": 0, "pizza_id": 1, "restaurant_id": 3}`, message: models.MsgValidationErrors},
		{name: "price too high", body: `{"price": 31, "pizza_id": 1, "restaurant_id": 3}`, message: models.MsgValidationErrors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubRestaurantPizzaService{}
			w := perform(newRestaurantPizzaRouter(service), http.MethodPost, "/restaurant_pizzas", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body models.ErrorsResponse
			decode(t, w, &body)
			assert.Equal(t, []string{tt.message}, body.Errors)
			assert.Nil(t, service.received)
		})
	}
}

func TestCreateRestaurantPizzaMapsServiceErrors(t *testing.T) {
	fkErr := errors.New("FOREIGN KEY constraint failed")

	t.Run("constraint violation", func(t *testing.T) {
		service := &stubRestaurantPizzaService{err: fmt.Errorf("create: %w", &services.ConstraintError{Err: fkErr})}
		w := perform(newRestaurantPizzaRouter(service), http.MethodPost, "/restaurant_pizzas",
			`{"price": 5, "pizza_id": 99, "restaurant_id": 3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body models.ErrorsResponse
		decode(t, w, &body)
		assert.Equal(t, []string{fkErr.Error()}, body.Errors)
	})

	t.Run("store failure", func(t *testing.T) {
		service := &stubRestaurantPizzaService{err: errStoreDown}
		w := perform(newRestaurantPizzaRouter(service), http.MethodPost, "/restaurant_pizzas",
			`{"price": 5, "pizza_id": 1, "restaurant_id": 3}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"errors": ["Internal server error"]}`, w.Body.String())
	})
}

func TestBindErrorMessage(t *testing.T) {
	assert.Equal(t, models.MsgInvalidRequestBody, bindErrorMessage(errors.New("unexpected EOF")))
}
