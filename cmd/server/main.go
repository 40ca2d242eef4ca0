package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/davidmokos/coolify/internal/api"
	"github.com/davidmokos/coolify/internal/api/handlers"
	"github.com/davidmokos/coolify/internal/api/middleware"
	"github.com/davidmokos/coolify/internal/engine/delivery"
	"github.com/davidmokos/coolify/internal/engine/notifications"
	"github.com/davidmokos/coolify/internal/pkg/logger"
	"github.com/davidmokos/coolify/internal/platform/auth"
	"github.com/davidmokos/coolify/internal/platform/config"
	"github.com/davidmokos/coolify/internal/platform/database"
	"github.com/davidmokos/coolify/internal/platform/repositories"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Logging)

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Repositories
	teamRepo := repositories.NewTeamRepository(db)
	userRepo := repositories.NewUserRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	deploymentRepo := repositories.NewDeploymentRepository(db)

	// Delivery worker pool
	queue := delivery.NewQueue(cfg.Notifications)
	queue.Start(cfg.Notifications.WorkerCount)
	defer queue.Stop()

	// Notification pipeline
	source := notifications.Source(cfg.Instance)
	renderer := notifications.NewWebhookRenderer(deploymentRepo, cfg.Instance.BaseURL)
	resolver := notifications.NewResolver(settingsRepo)
	notifier := notifications.NewNotifier(resolver,
		notifications.NewEmailChannel(settingsRepo, nil),
		notifications.NewDiscordChannel(settingsRepo, queue),
		notifications.NewTelegramChannel(settingsRepo, queue),
		notifications.NewSlackChannel(settingsRepo, queue),
		notifications.NewPushoverChannel(settingsRepo, queue),
		notifications.NewWebhookChannel(settingsRepo, queue, renderer, source),
	)

	// Services
	tokenSvc := auth.NewTokenService(cfg.JWT)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, teamRepo, settingsRepo, tokenSvc)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo, notifier)
	eventsHandler := handlers.NewEventsHandler(notifier)
	healthHandler := handlers.NewHealthHandler(db, queue)
	metricsHandler := handlers.NewMetricsHandler()

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)
	teamMiddleware := middleware.NewTeamMiddleware(teamRepo)

	deps := &api.Dependencies{
		AuthHandler:     authHandler,
		SettingsHandler: settingsHandler,
		EventsHandler:   eventsHandler,
		HealthHandler:   healthHandler,
		MetricsHandler:  metricsHandler,
		AuthMiddleware:  authMiddleware,
		TeamMiddleware:  teamMiddleware,
	}
	router := api.NewRouter(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Printf("Server starting on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
