// Package server exposes the compiler over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/xiam/churchc"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg *churchc.Config
}

func New(e *echo.Echo, cfg *churchc.Config) *Server {
	s := &Server{
		Echo: e,
		cfg:  cfg,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.Echo.Use(Logger())
	s.Echo.Use(middleware.Recover())
}

func (s *Server) setupRoutes() {
	h := &handler{cfg: s.cfg}

	s.Echo.GET("/health", h.health)
	s.Echo.POST("/translate", h.translate)
	s.Echo.POST("/parse", h.parse)
}

// Start serves until the process receives an interrupt, then shuts down
// gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(ctx)
}
