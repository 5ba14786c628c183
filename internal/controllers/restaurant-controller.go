package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/serializers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with the pizzas it offers
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its offerings
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) *restaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants, without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} serializers.Restaurant
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		middleware.Logger(ctx).WithError(err).Error("Failed to retrieve restaurants")
		ctx.IndentedJSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}
	ctx.IndentedJSON(http.StatusOK, serializers.NewRestaurants(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with its restaurant_pizzas and their pizzas
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} serializers.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	restaurantID, ok := parseID(ctx.Param("id"))
	if !ok {
		respondRestaurantNotFound(ctx)
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), restaurantID)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		respondRestaurantNotFound(ctx)
		return
	}
	if err != nil {
		middleware.Logger(ctx).WithError(err).Error("Failed to retrieve restaurant")
		ctx.IndentedJSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant"))
		return
	}
	ctx.IndentedJSON(http.StatusOK, serializers.NewRestaurantDetail(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant by its ID, together with its restaurant_pizzas
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	restaurantID, ok := parseID(ctx.Param("id"))
	if !ok {
		respondRestaurantNotFound(ctx)
		return
	}

	err := c.service.DeleteRestaurant(ctx.Request.Context(), restaurantID)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		respondRestaurantNotFound(ctx)
		return
	}
	if err != nil {
		middleware.Logger(ctx).WithError(err).Error("Failed to delete restaurant")
		ctx.IndentedJSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete restaurant"))
		return
	}

	middleware.Logger(ctx).WithField("restaurant_id", restaurantID).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}

// parseID parses a positive integer path parameter.
// Anything else cannot name a row, so callers answer 404.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func respondRestaurantNotFound(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
}
