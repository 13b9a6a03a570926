package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

// startHTTPServer starts the HTTP server with graceful shutdown support.
// It returns when ctx is canceled, a shutdown signal arrives, or the listener fails.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	serverCfg := app.config.Server
	server := &http.Server{
		Addr:              net.JoinHostPort(serverCfg.Host, strconv.Itoa(serverCfg.Port)),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(serverCfg.ReadTimeoutSeconds) * time.Second,
		ReadTimeout:       time.Duration(serverCfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(serverCfg.WriteTimeoutSeconds) * time.Second,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("Server failed", "error", err)
			serveErr <- err
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(serverCfg.ShutdownTimeoutSeconds)*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	default:
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
