package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/router"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

const appName = "restaurant-pizza-api"

// newApp builds the command tree. Running without a subcommand serves the API.
func newApp() *cli.Command {
	return &cli.Command{
		Name:   appName,
		Usage:  "Restaurants, pizzas and restaurant pizzas over HTTP",
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Migrate, seed an empty database and start the HTTP server",
				Action: serveAction,
			},
			{
				Name:   "migrate",
				Usage:  "Create or update the database schema",
				Action: migrateAction,
			},
			{
				Name:  "seed",
				Usage: "Insert the sample restaurants, pizzas and restaurant pizzas",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "delete existing rows before seeding",
					},
				},
				Action: seedAction,
			},
		},
	}
}

// openDatabase loads the configuration, connects and migrates
func openDatabase() (*config.Config, *gorm.DB, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	dbConfig, err := database.ParseDatabaseURI(conf.DatabaseURI)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}
	return conf, db, nil
}

func migrateAction(_ context.Context, _ *cli.Command) error {
	_, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	log.Info("Database schema is up to date")
	return nil
}

func seedAction(_ context.Context, cmd *cli.Command) error {
	_, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if !cmd.Bool("force") {
		_, err := database.SeedIfEmpty(db)
		return err
	}

	if err := database.Reset(db); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	return database.Seed(db)
}

func serveAction(ctx context.Context, _ *cli.Command) error {
	conf, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if _, err := database.SeedIfEmpty(db); err != nil {
		return err
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:    conf.Address(),
		Handler: router.New(db, router.Options{AllowedOrigins: conf.AllowedOrigins, Logger: log.StandardLogger()}),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", conf.Address())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

func closeDatabase(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}
}
