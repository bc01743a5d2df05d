package main

import (
	"context"
	"log"

	"github.com/anonto42/notifly/backend/internal/router"
	"github.com/anonto42/notifly/backend/pkg/config"
	"github.com/anonto42/notifly/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes, seed the directory and build the dispatch pipeline
	dispatcher := router.SetupRoutes(e, db.Postgres, db.Mongo, cfg)

	// Start the dispatcher; it runs until the process exits
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dispatcher.Start(ctx)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
