package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storemgmt/store-api/internal/api"
	"github.com/storemgmt/store-api/internal/core/service"
	"github.com/storemgmt/store-api/internal/infrastructure/config"
	storemongo "github.com/storemgmt/store-api/internal/infrastructure/db/mongo"
	storeredis "github.com/storemgmt/store-api/internal/infrastructure/db/redis"
	"github.com/storemgmt/store-api/internal/infrastructure/queue"
	"github.com/storemgmt/store-api/pkg/logger"
)

// @title           Store Management API
// @version         1.0
// @description     Store management backend: user authentication with role-based
// @description     access and a product catalog with stock-quantity tracking.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := storemongo.Connect(ctx, storemongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := storeredis.Connect(ctx, storeredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// The unique username index is what rejects duplicate registrations that
	// race past the service-level pre-check.
	if err := storemongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
	}

	restockService := service.NewRestockService(
		storemongo.NewRestockRepository(db),
		storeredis.NewDedupChecker(rdb),
		log,
	)
	dispatcher := queue.NewDispatcher(cfg.RestockWorkers, restockService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
