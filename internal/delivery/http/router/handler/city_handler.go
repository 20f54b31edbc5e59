package handler

import (
	"log/slog"
	"net/http"

	"cotiza/internal/delivery/http/response"
	"cotiza/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CityHandler holds dependencies for city-directory handlers
type CityHandler struct {
	uc     usecase.CityUsecase
	logger *slog.Logger
}

// NewCityHandler is the constructor for CityHandler
func NewCityHandler(uc usecase.CityUsecase, logger *slog.Logger) *CityHandler {
	return &CityHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListActive handles retrieving the active cities ordered by name
func (h *CityHandler) ListActive(c echo.Context) error {
	cities, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, cities, "")
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
