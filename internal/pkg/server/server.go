package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/takerapp/taker-go/internal/pkg/logger"
)

// GracefulServer wraps an Echo server with graceful shutdown handling
type GracefulServer struct {
	echo            *echo.Echo
	port            int
	shutdownTimeout time.Duration
	shutdown        *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, port, shutdownTimeoutSec int, sm *ShutdownManager) *GracefulServer {
	if shutdownTimeoutSec <= 0 {
		shutdownTimeoutSec = 10
	}
	return &GracefulServer{
		echo:            e,
		port:            port,
		shutdownTimeout: time.Duration(shutdownTimeoutSec) * time.Second,
		shutdown:        sm,
	}
}

// Start runs the server and blocks until an interrupt or SIGTERM
// arrives, then shuts everything down.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Stop()
}

// Stop shuts down the HTTP server and all registered components
func (s *GracefulServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}

	if s.shutdown != nil {
		return s.shutdown.Shutdown(ctx)
	}
	return nil
}

// ShutdownManager collects cleanup functions to run during shutdown
type ShutdownManager struct {
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{functions: make([]func(context.Context) error, 0)}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions.
// A failing component does not stop the remaining ones.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down components", logger.Int("components", len(sm.functions)))

	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
		}
	}

	logger.Info("All components shutdown completed")
	return nil
}
