// Package middleware holds the echo middlewares shared by the worker server.
package middleware

import (
	"log/slog"

	deliverycontext "cotiza/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID tags every request with a correlation ID and stores a logger
// carrying that ID on the request context. Pub/Sub deliveries that already
// carry an X-Request-Id header keep their ID so the worker log lines can be
// joined with the publisher's.
type RequestID struct {
	logger *slog.Logger
}

// NewRequestID creates the correlation middleware.
func NewRequestID(logger *slog.Logger) *RequestID {
	return &RequestID{logger: logger}
}

// Middleware resolves the request ID, echoes it back on the response, and
// threads the tagged logger through context.Context for the layers below.
func (m *RequestID) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
