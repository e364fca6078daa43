package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catering/cmd"
	"catering/internal/pkg/logging"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, config, logging.New(config.LogLevel))
	stop()
	os.Exit(code)
}

// run serves until ctx is cancelled, then shuts down and returns the process exit
// code: 0 after a clean shutdown, 1 when bootstrap or the final save failed.
func run(ctx context.Context, config cmd.Config, logger *slog.Logger) int {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, config, nil, logger)
	if err != nil {
		log.Errorf("Error building application: %v", err)
		return 1
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Errorf("Error starting jobs: %v", err)
		closeApp(app, config, logger)
		return 1
	}

	router, err := app.CreateRouter(ctx)
	if err != nil {
		log.Errorf("Error building HTTP router: %v", err)
		jobManager.StopAll()
		closeApp(app, config, logger)
		return 1
	}

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("http server listening", "addr", addr)
		if err := router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	jobManager.StopAll()
	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	if err := app.Close(shutdownCtx); err != nil {
		logger.Error("final save failed", "error", err)
		return 1
	}
	logger.Info("shutdown complete")
	return 0
}

func closeApp(app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := app.Close(ctx); err != nil {
		logger.Error("final save failed", "error", err)
	}
}
