// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie-reviews/cmd"
	"movie-reviews/internal/notify"
	"movie-reviews/internal/wire"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the data store
	store, err := database.InitStore(config.Store)
	if err != nil {
		logger.Fatal("Failed to init data store", zap.Error(err))
	}
	if err := store.Ping(ctx); err != nil {
		// Pages render their error views until the store comes up.
		logger.Warn("Data store unreachable", zap.Error(err))
	} else {
		logger.Info("Data store reachable")
	}

	center := notify.NewCenter(config.Notify, logger)
	hub := notify.NewHub(logger)
	go hub.Run(ctx)
	go center.Run(ctx, hub.Deliver)

	// Wire all dependencies
	app, err := wire.Wiring(wire.Deps{Store: store, Center: center, Hub: hub}, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
	center.Close()
}
