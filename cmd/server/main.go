package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Pranav212nair/xeno/internal/api"
	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/cache"
	"github.com/Pranav212nair/xeno/internal/config"
	"github.com/Pranav212nair/xeno/internal/metrics"
	"github.com/Pranav212nair/xeno/internal/storage"
	"github.com/Pranav212nair/xeno/internal/sync"
)

// @title Xeno Marketing Platform API
// @version 2.0
// @description Multi-tenant marketing analytics backend
// @BasePath /
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	// Init Metrics
	metrics.Init()

	// Load Configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logrus.Info("Configuration loaded")

	// Init PostgreSQL
	db, err := storage.NewStorage(cfg.Database.URL)
	if err != nil {
		logrus.Fatalf("Failed to init DB: %v", err)
	}
	defer db.Close()
	if err := db.EnsureSchema(context.Background()); err != nil {
		logrus.Fatalf("Failed to ensure schema: %v", err)
	}
	logrus.Info("PostgreSQL connected")

	// Token issuer gets the secret explicitly; nothing reads it ambiently.
	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL))

	// Optional Redis response cache
	var responseCache *cache.Cache
	if cfg.Redis.Addr != "" {
		responseCache, err = cache.New(cfg.Redis.Addr)
		if err != nil {
			logrus.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer responseCache.Close()
		logrus.Info("Redis connected")
	}

	// Sync provider: noop by default, amqp when a queue is configured.
	var provider sync.Provider = &sync.NoOpProvider{Storage: db}
	var syncWorker *sync.Worker
	if cfg.Sync.Provider == "amqp" {
		client, err := sync.NewAMQPClient(cfg.RabbitMQ.URL)
		if err != nil {
			logrus.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer client.Close()
		provider = &sync.AMQPProvider{Storage: db, Client: client}

		syncWorker = sync.NewWorker(db, client)
		if err := syncWorker.Start(); err != nil {
			logrus.Fatalf("Failed to start sync worker: %v", err)
		}
		logrus.Info("RabbitMQ connected, sync worker running")
	}

	// Init API
	apiHandler := api.NewAPI(db, issuer, responseCache, provider, cfg)
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: apiHandler.Router(),
	}

	// Graceful Shutdown Setup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Starting API server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done() // Wait for interrupt signal
	logrus.Info("Shutdown initiated...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("HTTP shutdown error: %v", err)
	}

	if syncWorker != nil {
		syncWorker.Stop()
	}

	logrus.Info("Graceful shutdown complete")
}
