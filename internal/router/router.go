package router

import (
	"log"

	"github.com/anonto42/notifly/backend/internal/dispatch"
	"github.com/anonto42/notifly/backend/internal/handlers"
	"github.com/anonto42/notifly/backend/internal/models"
	"github.com/anonto42/notifly/backend/internal/repositories"
	"github.com/anonto42/notifly/backend/internal/seed"
	"github.com/anonto42/notifly/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes, seeds the user directory
// and wires the dispatch pipeline. The returned dispatcher is not yet
// running; the caller starts it.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, cfg *config.Config) *dispatch.Dispatcher {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "App is working"})
	})

	// --- Initialize Repositories ---
	mongoDB := mgClient.Database("notifly")
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	eventRepo := repositories.NewMongoEventRepository(mongoDB)
	notificationRepo := repositories.NewMongoNotificationRepository(mongoDB)

	// Seed the user directory before any event can be dispatched
	if err := seed.Users(userRepo); err != nil {
		log.Fatalf("Failed to seed user directory: %v", err)
	}

	// --- Dispatch pipeline ---
	queue := dispatch.NewQueue()
	dispatcher := dispatch.NewDispatcher(queue, userRepo, notificationRepo, cfg.DispatchInterval, cfg.ContentTemplate)

	api := e.Group("")

	// Event intake routes
	eventHandler := handlers.NewEventHandler(eventRepo, queue)
	eventHandler.RegisterEventRoutes(api)
	log.Println("Event routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
	return dispatcher
}
