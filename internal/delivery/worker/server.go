// Package worker exposes the Pub/Sub push subscription endpoint as a small
// HTTP server, separate from the main API process.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"cotiza/config"
	"cotiza/internal/delivery"
	"cotiza/internal/delivery/middleware"
	"cotiza/internal/delivery/worker/handler"
	"cotiza/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker HTTP server. It serves exactly two routes:
// the Pub/Sub push endpoint and a health probe.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Recover first so a panicking handler still produces a response,
	// then correlation before access logging so the ID shows up in lines.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestID(params.Logger).Middleware)
	e.Use(middleware.NewAccessLog(params.Logger, params.Cfg).Middleware)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve blocks on the listener until shutdown.
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting notification worker", slog.String("hostPort", hostPort))
	if err := s.echo.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down notification worker")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
