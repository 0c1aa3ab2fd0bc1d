package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OpeyemiAdeniji/fatouapi/internal/api"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
	"github.com/OpeyemiAdeniji/fatouapi/internal/infrastructure/config"
	mongodb "github.com/OpeyemiAdeniji/fatouapi/internal/infrastructure/db/mongo"
	redisdb "github.com/OpeyemiAdeniji/fatouapi/internal/infrastructure/db/redis"
	"github.com/OpeyemiAdeniji/fatouapi/internal/infrastructure/notify"
	"github.com/OpeyemiAdeniji/fatouapi/internal/infrastructure/queue"
	"github.com/OpeyemiAdeniji/fatouapi/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := mongodb.NewRoleRepository(db).Seed(ctx, domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	dispatcher := queue.NewDispatcher(
		cfg.NotifyWorkers,
		notify.NewLogNotifier(log),
		redisdb.NewDedupChecker(rdb),
		log,
	)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("identity api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
