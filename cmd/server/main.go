package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-api/internal/clients/mongo"
	"weather-api/internal/config"
	"weather-api/internal/logger"

	"github.com/grafana/pyroscope-go"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 25 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Create bootstrap logger for early errors
	bootstrapLog := log.New(os.Stderr, "bootstrap: ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		bootstrapLog.Printf("config load failed: %v", err)
		os.Exit(1)
	}

	logg, err := logger.Init(cfg)
	if err != nil {
		bootstrapLog.Printf("logger init failed: %v", err)
		os.Exit(1)
	}

	if profiler := startProfiler(cfg, logg); profiler != nil {
		defer func() {
			if err := profiler.Stop(); err != nil {
				logg.Warn("profiler stop", "err", err)
			}
		}()
	}

	client, err := mongo.Connect(ctx, cfg, logg)
	if err != nil {
		logg.Error("mongo connect", "err", err)
		os.Exit(1)
	}
	logg.Info("connected to mongo", "db", client.DB().Name())

	app, err := setupRouter(ctx, cfg, client)
	if err != nil {
		logg.Error("router setup", "err", err)
		_ = client.Disconnect(context.Background())
		os.Exit(1)
	}

	logg.Info("starting Weather API", "port", cfg.AppPort)
	portStr := fmt.Sprintf(":%d", cfg.AppPort)

	g.Go(func() error {
		err := app.Listen(portStr)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	// Graceful shutdown
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}
		return client.Disconnect(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error("fatal", "err", err)
		os.Exit(1)
	}
	logg.Info("graceful shutdown complete")
}

// startProfiler pushes continuous profiles when PYROSCOPE_SERVER_ADDRESS is set.
// A profiler that fails to start is logged and skipped.
func startProfiler(cfg config.Config, logg *slog.Logger) *pyroscope.Profiler {
	if cfg.PyroscopeAddress == "" {
		return nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: "weather-api",
		ServerAddress:   cfg.PyroscopeAddress,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		logg.Warn("profiler disabled", "err", err)
		return nil
	}
	logg.Info("continuous profiling enabled", "server", cfg.PyroscopeAddress)
	return profiler
}
