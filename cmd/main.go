package main

import (
	"context"
	"os"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants offer them at
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("Command failed")
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter.
// LOG_LEVEL wins over the level derived from APP_ENV.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development"))
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := log.ParseLevel(raw); err == nil {
			level = parsed
		} else {
			log.WithError(err).Warn("Ignoring invalid LOG_LEVEL")
		}
	}
	log.SetLevel(level)
	config.SetLogLevel(level)
	database.SetLogLevel(level)
}
