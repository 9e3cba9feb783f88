// @title Rex fitness tracker API
// @description Local API for the single-user workout tracker "Workout with Rex"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/rexfit/internal/api"
	"github.com/limbo/rexfit/internal/notify"
	"github.com/limbo/rexfit/internal/repository"
	"github.com/limbo/rexfit/internal/service"
	"github.com/limbo/rexfit/pkg/cleanup"
	"github.com/limbo/rexfit/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	defer cleanup.CleanUp()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}
	repo, err := repository.Open(repository.Options{
		Driver:     cfg.StorageDriver,
		BadgerPath: cfg.BadgerPath,
		SQLitePath: cfg.SQLitePath,
		Postgres: &repository.PGCfg{
			Address:  cfg.Postgres.Address,
			Username: cfg.Postgres.Username,
			Password: cfg.Postgres.Password,
			DB:       cfg.Postgres.DB,
		},
		Logger: logger,
	})
	if err != nil {
		logger.Error("opening snapshot store failed", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		return
	}

	hub := notify.NewHub(cfg.CORSOrigins, logger)
	cleanup.Register(&cleanup.Job{Name: "closing notification hub", F: hub.Close})

	trackerService := service.NewTrackerService(repo,
		service.WithLocation(loc),
		service.WithQuota(cfg.SnapshotQuotaBytes),
		service.WithNotifier(hub),
		service.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	trackerService.Load(ctx)

	go notify.NewScheduler(trackerService, cfg.NotificationInterval, logger).Run(ctx)

	serv := api.New(&api.ServicesList{
		TrackerService: trackerService,
		Events:         hub,
		WebSocket:      hub,
		CORSOrigins:    cfg.CORSOrigins,
	})
	if err := serv.Run(ctx, cfg.APIAddress); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}
