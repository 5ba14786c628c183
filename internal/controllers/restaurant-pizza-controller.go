package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/serializers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// RestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas.
// Pointers tell a missing field apart from a zero value.
type RestaurantPizzaRequest struct {
	Price        *float64 `json:"price" binding:"required,min=1,max=30" example:"5"`
	PizzaID      *uint    `json:"pizza_id" binding:"required" example:"1"`
	RestaurantID *uint    `json:"restaurant_id" binding:"required" example:"3"`
}

// ToModel converts a validated request into a RestaurantPizza
func (r RestaurantPizzaRequest) ToModel() models.RestaurantPizza {
	return models.RestaurantPizza{
		Price:        *r.Price,
		PizzaID:      *r.PizzaID,
		RestaurantID: *r.RestaurantID,
	}
}

// RestaurantPizzaController handles HTTP requests related to the pizzas offered by restaurants
type RestaurantPizzaController interface {
	// CreateRestaurantPizza offers a pizza at a restaurant for a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) *restaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant. Price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body RestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} serializers.CreatedRestaurantPizza
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorsResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req RestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.IndentedJSON(http.StatusBadRequest, models.NewErrorsResponse(bindErrorMessage(err)))
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), req.ToModel())
	if err != nil {
		var constraintErr *services.ConstraintError
		if errors.As(err, &constraintErr) {
			middleware.Logger(ctx).WithError(err).Info("Restaurant pizza rejected by the store")
			ctx.IndentedJSON(http.StatusBadRequest, models.NewErrorsResponse(constraintErr.Error()))
			return
		}
		middleware.Logger(ctx).WithError(err).Error("Failed to create restaurant pizza")
		ctx.IndentedJSON(http.StatusInternalServerError, models.NewErrorsResponse(models.MsgInternalServerError))
		return
	}

	middleware.Logger(ctx).WithFields(logrus.Fields{
		"restaurant_pizza_id": created.ID,
		"restaurant_id":       created.RestaurantID,
		"pizza_id":            created.PizzaID,
	}).Info("Restaurant pizza created")
	ctx.IndentedJSON(http.StatusCreated, serializers.NewCreatedRestaurantPizza(created))
}

// bindErrorMessage maps a binding failure to the message returned to the client.
// Missing fields win over out-of-range values.
func bindErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return models.MsgInvalidRequestBody
	}
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			return models.MsgMissingFields
		}
	}
	return models.MsgValidationErrors
}
