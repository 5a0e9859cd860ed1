package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/api"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/service"
	mongodb "github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/infrastructure/db/mongo"
	redisdb "github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/infrastructure/db/redis"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/pkg/config"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/pkg/logger"
)

// @title           NKiosk SuperApp API
// @version         1.0
// @description     Multi-role business portal backend: authentication, role-gated dashboards and platform analytics.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; write straight to stderr and bail.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	credentials := mongodb.NewCredentialRepository(db)
	if err := credentials.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	if cfg.SeedDemoUsers {
		hasher := service.NewBcryptHasher(cfg.BcryptCost)
		if err := mongodb.SeedDemoUsers(ctx, credentials, hasher, log); err != nil {
			log.Fatal().Err(err).Msg("demo user seeding failed")
		}
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
