// Command heroverse runs the HeroVerse session daemon: it keeps the owned
// hero snapshot of one account in memory, drives the pending earnings
// counter and serves the local HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/HeroVerse_Go/internal/bootstrap"
	"github.com/osse101/HeroVerse_Go/internal/config"
	"github.com/osse101/HeroVerse_Go/internal/database"
	"github.com/osse101/HeroVerse_Go/internal/logger"
	"github.com/osse101/HeroVerse_Go/internal/scheduler"
	"github.com/osse101/HeroVerse_Go/internal/server"
	"github.com/osse101/HeroVerse_Go/internal/sse"
	"github.com/osse101/HeroVerse_Go/internal/worker"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	workerQueueSize = 64
)

// @title           HeroVerse Session API
// @version         1.0
// @description     Local API of the HeroVerse session daemon.
// @BasePath        /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
func main() {
	if err := run(); err != nil {
		logger.Error("HeroVerse daemon exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg)

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		logger.Warn("Environment validation failed", "error", err)
	} else {
		for _, w := range warnings {
			logger.Warn(w)
		}
	}

	ctx := logger.WithRequestID(context.Background(), "startup")
	startCtx, cancelStart := context.WithTimeout(ctx, startupTimeout)
	defer cancelStart()

	dbPool, err := database.NewPool(startCtx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		if err := database.Migrate(startCtx, dbPool); err != nil {
			return err
		}
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	bus := bootstrap.InitializeEventSystem(ctx)
	svcs := bootstrap.InitializeServices(cfg, repos, bus)

	hub := sse.NewHub()
	hub.Start()

	bootstrap.RegisterEventHandlers(ctx, bootstrap.EventHandlerDeps{
		Bus:         bus,
		SSEHub:      hub,
		Leaderboard: svcs.Leaderboard,
	})

	// Not fatal: the resync job retries.
	if err := svcs.Game.Refresh(startCtx); err != nil {
		logger.Warn("Initial refresh failed", "error", err)
	}

	pool := worker.NewPool(cfg.WorkerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.PendingTickInterval, &worker.PendingTickJob{Publisher: svcs.Game})
	sched.Schedule(cfg.ResyncInterval, &worker.ResyncJob{Refresher: svcs.Game})
	sched.RunNow(&worker.PendingTickJob{Publisher: svcs.Game})
	logger.Info(bootstrap.LogMsgSchedulerReady,
		"pending_tick", cfg.PendingTickInterval,
		"resync", cfg.ResyncInterval)

	wheelWorker := worker.NewWheelResetWorker(bus)
	wheelWorker.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Services{
		DBPool:      dbPool,
		Game:        svcs.Game,
		Economy:     svcs.Economy,
		Leaderboard: svcs.Leaderboard,
		Wheel:       svcs.Wheel,
		SSEHub:      hub,
		Clock:       svcs.Clock,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:           srv,
		Scheduler:        sched,
		WorkerPool:       pool,
		WheelResetWorker: wheelWorker,
		GameService:      svcs.Game,
		SSEHub:           hub,
	})

	return runErr
}
