package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"widget-admin-backend/internal/api/routes"
	"widget-admin-backend/internal/cache"
	"widget-admin-backend/internal/config"
	"widget-admin-backend/internal/database"
	"widget-admin-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "widget-admin-backend/docs" // This is needed for swag
)

//	@title			Widget Admin API
//	@version		1.0
//	@description	Backend API for the chat widget admin console: organizations, members, invitations, widgets, link rules, webhooks, knowledge base, audit log and billing.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const (
	shutdownTimeout   = 30 * time.Second
	janitorInterval   = 15 * time.Minute
	readHeaderTimeout = 10 * time.Second
)

func main() {
	log := logger.Named("server")

	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to redis")
		}
		defer rdb.Close()
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := routes.SetupRoutes(db, cfg, rdb)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize routes")
	}
	server.Services.Start()

	go runJanitor(ctx, server)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           server.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.WithField("port", port).Info("Starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown")
	}
	if err := server.Services.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Worker shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// runJanitor expires stale invitations and refresh tokens until ctx is done
func runJanitor(ctx context.Context, server *routes.Server) {
	log := logger.Named("janitor")
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			expired, err := server.Services.Invitations.ExpireStale()
			if err != nil {
				log.WithError(err).Warn("Failed to expire invitations")
			}
			purged := server.Auth.PurgeExpired()
			if expired > 0 || purged > 0 {
				log.WithFields(map[string]interface{}{
					"invitations_expired": expired,
					"refresh_tokens":      purged,
				}).Info("Janitor run")
			}
		}
	}
}
