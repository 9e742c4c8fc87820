package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/strakotou/travel-backend/config"
	"github.com/strakotou/travel-backend/internal/auth"
	"github.com/strakotou/travel-backend/internal/email"
	"github.com/strakotou/travel-backend/internal/handler"
	"github.com/strakotou/travel-backend/internal/middleware"
	"github.com/strakotou/travel-backend/internal/repository"
	"github.com/strakotou/travel-backend/internal/service"
	"github.com/strakotou/travel-backend/internal/storage"
	"github.com/strakotou/travel-backend/pkg/database"
	"github.com/strakotou/travel-backend/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is optional: without a URL, booking audit events are skipped.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	packageRepo := repository.NewPackageRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	newsRepo := repository.NewNewsRepository(db)

	// External collaborators
	sender := email.NewResendSender(cfg.ResendAPIKey)
	store := storage.NewHTTPStore(cfg.StorageURL, cfg.StorageBucket, cfg.StorageAPIKey)
	sessions := auth.NewHTTPSessions(cfg.AuthURL, cfg.AuthAPIKey)

	// Services
	catalogSvc := service.NewCatalogService(packageRepo, ticketRepo, newsRepo)
	notifySvc := service.NewNotificationService(sender, publisher, cfg.EmailFrom, cfg.AgencyInbox)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "travel-backend"})
	})

	handler.NewCatalogHandler(catalogSvc, store).RegisterRoutes(e)
	handler.NewBookingHandler(notifySvc).RegisterRoutes(e)

	admin := e.Group("/api/v1/admin", middleware.RequireAdmin(sessions))
	handler.NewAdminHandler(catalogSvc, store).RegisterRoutes(admin)

	log.Printf("Travel backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
