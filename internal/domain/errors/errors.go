// Package errors defines the application-level error taxonomy.
package errors

import (
	"net/http"

	"cotiza/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Proposal-related errors
	ErrProposalNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPOSAL_NOT_FOUND",
		"No se encontró la propuesta",
		"",
	)

	ErrDuplicateProposal = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_PROPOSAL",
		"Ya existe una propuesta de esta empresa para esta solicitud",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"La propuesta ya está en un estado final",
		"",
	)

	ErrInvalidProposalStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PROPOSAL_STATUS",
		"Estado de propuesta desconocido",
		"",
	)

	// Solicitud-related errors
	ErrSolicitudNotFound = NewBaseError(
		http.StatusNotFound,
		"SOLICITUD_NOT_FOUND",
		"No se encontró la solicitud",
		"",
	)

	ErrSolicitudClosed = NewBaseError(
		http.StatusConflict,
		"SOLICITUD_CLOSED",
		"La solicitud ya no acepta cotizaciones",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"No se encontró la notificación",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos de entrada no son válidos",
		"",
	)

	// Storage-related errors
	ErrStoreFailure = NewBaseError(
		http.StatusInternalServerError,
		"STORE_FAILURE",
		"Error de base de datos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)

// NewDatabaseExecuteError creates a storage error preserving the cause chain.
func NewDatabaseExecuteError(cause error, message string) error {
	return errors.Wrap(ErrStoreFailure, message+": "+cause.Error())
}
