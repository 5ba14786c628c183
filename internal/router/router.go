package router

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/restaurant-pizza-api/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const indexPage = "<h1>Code challenge</h1>"

// Options tunes the router
type Options struct {
	// AllowedOrigins lists the CORS origins, "*" allows any
	AllowedOrigins []string
	// Logger receives request logs, the standard logrus logger when nil
	Logger *logrus.Logger
}

// New builds the services and controllers on top of db and returns the configured router
func New(db *gorm.DB, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.CORS(opts.AllowedOrigins),
	)

	setupRoutes(router, db)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, db *gorm.DB) {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler(db))
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// indexHandler serves the landing page
// @Summary Landing page
// @Tags health
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := ping(c, db); err != nil {
			middleware.Logger(c).WithError(err).Warn("Database ping failed")
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "restaurant-pizza-api",
		})
	}
}

func ping(c *gin.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request.Context())
}
