package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cotiza/internal/delivery/http/response"
	"cotiza/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification-feed handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListByUser handles retrieving a user's notifications, newest first
func (h *NotificationHandler) ListByUser(c echo.Context) error {
	usuarioID := c.Param("usuarioId")
	if usuarioID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "usuarioId is required")
	}

	limit := 0
	offset := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	notifications, err := h.uc.ListByUser(c.Request().Context(), usuarioID, limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// UnreadCount handles retrieving the number of unread notifications
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	usuarioID := c.Param("usuarioId")
	if usuarioID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "usuarioId is required")
	}

	count, err := h.uc.UnreadCount(c.Request().Context(), usuarioID)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "")
}

// MarkRead handles flagging one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), id); err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead handles flagging every unread notification of a user as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	usuarioID := c.Param("usuarioId")
	if usuarioID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "usuarioId is required")
	}

	updated, err := h.uc.MarkAllRead(c.Request().Context(), usuarioID)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated}, "Notifications marked as read")
}
