package middleware

import (
	"context"
	"log/slog"
	"time"

	"cotiza/config"
	deliverycontext "cotiza/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLog emits one structured line per request. The line is only written
// when debug logging is enabled; push endpoints are hit once per event and
// would otherwise drown the worker logs.
type AccessLog struct {
	logger  *slog.Logger
	enabled bool
}

// NewAccessLog creates the access log middleware.
func NewAccessLog(logger *slog.Logger, cfg *config.Config) *AccessLog {
	return &AccessLog{
		logger:  logger,
		enabled: cfg.Env.Debug,
	}
}

// Middleware wraps next and records method, path, status and latency.
func (m *AccessLog) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.write(c, start, err)

		return err
	}
}

func (m *AccessLog) write(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status

	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if query := req.URL.RawQuery; query != "" {
		attrs = append(attrs, slog.String("query", query))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), level, "HTTP Request", attrs...)
}
