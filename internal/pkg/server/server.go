package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
)

// GracefulServer runs echo until SIGINT/SIGTERM and then drains in-flight requests
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
	shutdown        *ShutdownManager
}

func NewGracefulServer(e *echo.Echo, l *logger.ZapLogger, cfg models.ServerConfig, shutdown *ShutdownManager) *GracefulServer {
	e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second

	timeout := time.Duration(cfg.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GracefulServer{
		echo:            e,
		logger:          l,
		addr:            fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		shutdownTimeout: timeout,
		shutdown:        shutdown,
	}
}

// Start blocks until a shutdown signal arrives or the listener fails
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		s.logger.Error("HTTP server failed", logger.Err(err))
		s.runShutdownManager()
		return err
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and releases components
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}
	s.runShutdownManager()
	s.logger.Info("Server shutdown completed")
	return err
}

func (s *GracefulServer) runShutdownManager() {
	if s.shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	s.shutdown.Shutdown(ctx)
}

// ShutdownManager closes registered components in reverse registration order
type ShutdownManager struct {
	logger *logger.ZapLogger
	names  []string
	fns    []func(context.Context) error
}

func NewShutdownManager(l *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: l}
}

func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.names = append(sm.names, name)
	sm.fns = append(sm.fns, fn)
}

// Shutdown runs every cleanup function, continuing past failures, and returns the first error
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	var first error
	for i := len(sm.fns) - 1; i >= 0; i-- {
		if err := sm.fns[i](ctx); err != nil {
			sm.logger.Error("Error during component shutdown", logger.String("component", sm.names[i]), logger.Err(err))
			if first == nil {
				first = err
			}
		}
	}
	return first
}
