package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("database is locked")

type stubRestaurantService struct {
	restaurants []models.Restaurant
	restaurant  models.Restaurant
	err         error
	deletedID   uint
}

func (s *stubRestaurantService) GetAllRestaurants(_ context.Context) ([]models.Restaurant, error) {
	return s.restaurants, s.err
}

func (s *stubRestaurantService) GetRestaurantByID(_ context.Context, _ uint) (models.Restaurant, error) {
	return s.restaurant, s.err
}

func (s *stubRestaurantService) DeleteRestaurant(_ context.Context, id uint) error {
	s.deletedID = id
	return s.err
}

type stubPizzaService struct {
	pizzas []models.Pizza
	err    error
}

func (s *stubPizzaService) GetAllPizzas(_ context.Context) ([]models.Pizza, error) {
	return s.pizzas, s.err
}

type stubRestaurantPizzaService struct {
	created  models.RestaurantPizza
	err      error
	received *models.RestaurantPizza
}

func (s *stubRestaurantPizzaService) CreateRestaurantPizza(_ context.Context, rp models.RestaurantPizza) (models.RestaurantPizza, error) {
	s.received = &rp
	return s.created, s.err
}

func (s *stubRestaurantPizzaService) GetRestaurantPizzaByID(_ context.Context, _ uint) (models.RestaurantPizza, error) {
	return s.created, s.err
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}
