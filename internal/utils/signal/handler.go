package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"WebDev/internal/api/router"
	"WebDev/internal/app"
	"WebDev/internal/pkg/logger"
)

// HandleSignals blocks until SIGINT or SIGTERM, or until the server fails,
// then shuts the server and the application down
func HandleSignals(application *app.Application, builder *router.Builder, serverErr <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case sig := <-sigChan:
		logger.Info("Received termination signal, shutting down...",
			logger.String("signal", sig.String()))
	case runErr = <-serverErr:
		if runErr != nil {
			logger.Error("HTTP server stopped unexpectedly", logger.Err(runErr))
		}
	}

	timeout := time.Duration(application.GetConfig().Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := builder.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", logger.Err(err))
	}
	application.Shutdown()

	return runErr
}
