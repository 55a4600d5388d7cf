package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sentagsite/internal/backend"
	"sentagsite/internal/config"
	"sentagsite/internal/database"
	"sentagsite/internal/domain/admin"
	"sentagsite/internal/domain/content"
	"sentagsite/internal/domain/documents"
	"sentagsite/internal/domain/intake"
	"sentagsite/internal/domain/requests"
	"sentagsite/internal/domain/settings"
	"sentagsite/internal/domain/stats"
	"sentagsite/internal/domain/tracking"
	"sentagsite/internal/middleware"
	"sentagsite/internal/pkg/logger"
	"sentagsite/internal/pkg/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("logs/sentagsite.log", logger.INFO)
		logger.Errorf("config: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogPath, logger.ParseLogLevel(cfg.LogLevel))

	db, err := database.Connect(cfg.CacheDSN)
	if err != nil {
		logger.Errorf("database: %v", err)
		os.Exit(1)
	}

	api := backend.NewClient(cfg.Backend, cfg.BackendTimeout)

	tokens := token.New(cfg.IntakeSessionSecret, cfg.IntakeSessionTTL)
	registry := intake.NewRegistry(api, cfg.IntakeSessionTTL)
	intakeHandler := intake.NewHandler(registry, tokens)

	settingsCache, err := settings.NewCache(db, cfg.SettingsCacheTTL)
	if err != nil {
		logger.Errorf("settings cache: %v", err)
		os.Exit(1)
	}
	settingsService := settings.NewService(api, settingsCache)
	settingsHub := settings.NewHub()
	settingsHandler := settings.NewHandler(settingsService, settingsHub)

	startup, cancelStartup := context.WithTimeout(context.Background(), cfg.BackendTimeout)
	settingsService.Refresh(startup)
	cancelStartup()

	trackingService, err := tracking.NewService(api, db, cfg.TrackQueueDepth, cfg.BackendTimeout)
	if err != nil {
		logger.Errorf("tracking: %v", err)
		os.Exit(1)
	}
	trackingHandler := tracking.NewHandler(trackingService)

	adminHandler := admin.NewHandler(api)
	requestsHandler := requests.NewHandler(api)
	documentsHandler := documents.NewHandler(api, settingsService)
	statsHandler := stats.NewHandler(api)
	contentHandler := content.NewHandler(settingsService)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		intake.RegisterRoutes(v1, intakeHandler)
		settings.RegisterRoutes(v1, settingsHandler)
		documents.RegisterRoutes(v1, documentsHandler)
		content.RegisterRoutes(v1, contentHandler)
		tracking.RegisterRoutes(v1, trackingHandler)

		// protected back office
		protected := v1.Group("/admin")
		protected.Use(middleware.AdminAuth(api))
		{
			settings.RegisterAdminRoutes(protected, settingsHandler)
			documents.RegisterAdminRoutes(protected, documentsHandler)
			requests.RegisterRoutes(protected, requestsHandler)
			stats.RegisterRoutes(protected, statsHandler)
		}

		admin.RegisterRoutes(v1, protected, adminHandler)
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		logger.Infof("listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		logger.Warnf("shutdown: %v", err)
	}

	registry.Close()
	trackingService.Close()
}
