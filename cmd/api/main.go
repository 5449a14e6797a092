package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"order-support-service/config"
	_ "order-support-service/docs" // Swagger docs
	"order-support-service/internal/httpserver"
	"order-support-service/pkg/log"
	"order-support-service/pkg/zeroshot"
)

// @title       Order Support API
// @description Customer intent detection backed by a zero-shot classification model, plus order status lookup and fix-dates operations via stored routines.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Order Support Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sql.Open("pgx", cfg.Database.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warnf(ctx, "Database not reachable at startup (lookups will fail until it is): %v", err)
	}

	// 4. Zero-shot classifier — created once and shared across all requests.
	classifier := zeroshot.NewClient(cfg.Classifier.APIKey)
	if cfg.Classifier.APIURL != "" {
		classifier.SetAPIURL(cfg.Classifier.APIURL)
	}
	if cfg.Classifier.Model != "" {
		classifier.SetModel(cfg.Classifier.Model)
	}
	logger.Infof(ctx, "Classifier model: %s", classifier.Model())

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Classifier:  classifier,
		ServiceUser: cfg.Orders.ServiceUser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
