package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vgrigoryan/pr-review-assigner/internal/config"
	"github.com/vgrigoryan/pr-review-assigner/internal/db"
	"github.com/vgrigoryan/pr-review-assigner/internal/handler"
	"github.com/vgrigoryan/pr-review-assigner/internal/handler/server"
	"github.com/vgrigoryan/pr-review-assigner/internal/repository/postgres"
	"github.com/vgrigoryan/pr-review-assigner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := mustMakeLogger(cfg.LogLevel)
	defer logger.Sync()

	database, err := db.NewPostgres(ctx, cfg)
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close()
	logger.Info("connected to database")

	if err := db.Migrate(database); err != nil {
		logger.Fatalw("failed to migrate database", "error", err)
	}

	teamRepo := postgres.NewTeamRepository(database)
	userRepo := postgres.NewUserRepository(database)
	pullRequestRepo := postgres.NewPullRequestRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	teamService := service.NewTeamService(logger, teamRepo)
	userService := service.NewUserService(logger, userRepo, pullRequestRepo)
	pullRequestService := service.NewPullRequestService(logger, pullRequestRepo, userRepo)
	statsService := service.NewStatsService(statsRepo)

	h := handler.NewHandler(logger, teamService, userService, pullRequestService, statsService)
	srv := server.NewServer(logger, h, cfg.HTTP.Address)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("forced shutdown", "error", err)
	}
}

func mustMakeLogger(level string) *zap.SugaredLogger {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		log.Fatalf("unknown log level %q: %v", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	return logger.Sugar()
}
