package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sunainscent-api/cmd"
	"sunainscent-api/internal/data/repository"
	"sunainscent-api/internal/wire"
	"sunainscent-api/pkg/database"
	"sunainscent-api/pkg/utils"

	"go.uber.org/zap"
)

const migrateTimeout = 30 * time.Second

func main() {
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using default production logger.", err)
		logger, _ = zap.NewProduction()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The API still serves when the store is down; store-backed calls answer 503.
	var store database.PgxIface
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Warn("Database unavailable, starting in degraded mode", zap.Error(err))
		store = database.NewUnavailable(err)
	} else {
		defer db.Close()
		store = db
		logger.Info("Database connected successfully")

		if config.Database.AutoMigrate {
			migrateCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
			err := database.Migrate(migrateCtx, db)
			cancel()
			if err != nil {
				logger.Fatal("Failed to apply migrations", zap.Error(err))
			}
			logger.Info("Database migrations applied")
		}
	}

	repos := repository.NewRepository(store, logger)

	app, err := wire.Wiring(repos, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
