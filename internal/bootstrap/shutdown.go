package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/HeroVerse_Go/internal/game"
	"github.com/osse101/HeroVerse_Go/internal/scheduler"
	"github.com/osse101/HeroVerse_Go/internal/server"
	"github.com/osse101/HeroVerse_Go/internal/sse"
	"github.com/osse101/HeroVerse_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server           *server.Server
	Scheduler        *scheduler.Scheduler
	WorkerPool       *worker.Pool
	WheelResetWorker *worker.WheelResetWorker
	GameService      game.Service
	SSEHub           *sse.Hub
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new commands)
// 2. Scheduler and worker pool (no more ticks or resyncs)
// 3. Wheel reset timer
// 4. Game service (wait for in-flight commands)
// 5. SSE hub (disconnect clients)
//
// Errors are logged and do not stop the sequence. Nil components are skipped.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.WheelResetWorker != nil {
		if err := components.WheelResetWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if components.GameService != nil {
		shutdownService(ctx, ServiceNameGame, components.GameService)
	}

	if components.SSEHub != nil {
		components.SSEHub.Stop()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+" "+LogMsgServiceShutdownFail, "error", err)
	}
}
