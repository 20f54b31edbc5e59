package handler

import (
	"cotiza/internal/delivery/http/response"
	domainerrors "cotiza/internal/domain/errors"
	"cotiza/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// handleDomainError translates domain and repository errors into API
// responses. Anything unmapped bubbles up to the central error handler.
func handleDomainError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	switch {
	case errors.Is(err, repository.ErrProposalNotFound):
		return response.NotFound(c, "PROPOSAL_NOT_FOUND", "La cotización no existe")
	case errors.Is(err, repository.ErrSolicitudNotFound):
		return response.NotFound(c, "SOLICITUD_NOT_FOUND", "La solicitud no existe")
	case errors.Is(err, repository.ErrDuplicateProposal):
		return response.Conflict(c, "DUPLICATE_PROPOSAL", "La empresa ya envió una cotización para esta solicitud")
	case errors.Is(err, repository.ErrNotificationNotFound):
		return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "La notificación no existe")
	case errors.Is(err, repository.ErrCityNotFound):
		return response.NotFound(c, "CITY_NOT_FOUND", "La ciudad no existe")
	}

	return errors.WithStack(err)
}
