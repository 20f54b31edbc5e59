package handler

import (
	"log/slog"
	"net/http"

	"cotiza/internal/delivery/http/response"
	"cotiza/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SolicitudHandler holds dependencies for solicitud-related handlers
type SolicitudHandler struct {
	uc     usecase.SolicitudUsecase
	logger *slog.Logger
}

// NewSolicitudHandler is the constructor for SolicitudHandler
func NewSolicitudHandler(uc usecase.SolicitudUsecase, logger *slog.Logger) *SolicitudHandler {
	return &SolicitudHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles publishing a new solicitud
func (h *SolicitudHandler) Create(c echo.Context) error {
	var req usecase.CreateSolicitudInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid solicitud input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	solicitud, err := h.uc.CreateSolicitud(c.Request().Context(), &req)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Created(c, solicitud, "Solicitud created successfully")
}

// Get handles retrieving one solicitud with its items
func (h *SolicitudHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	solicitud, err := h.uc.GetSolicitud(c.Request().Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, solicitud, "")
}
