package repository

import (
	"context"
	"errors"

	"cotiza/internal/domain/entity"
)

// ErrSolicitudNotFound is returned when a solicitud is not found.
var ErrSolicitudNotFound = errors.New("solicitud not found")

// SolicitudRepository defines the interface for service-request storage.
// The request store is an external collaborator of the proposal pipeline;
// only the operations the pipeline needs are modeled here.
type SolicitudRepository interface {
	// Create persists a new solicitud with its items.
	Create(ctx context.Context, solicitud *entity.Solicitud) error

	// FindByID retrieves a solicitud with its items.
	FindByID(ctx context.Context, id int64) (*entity.Solicitud, error)

	// UpdateEstado sets the solicitud lifecycle state.
	UpdateEstado(ctx context.Context, id int64, estado entity.SolicitudStatus) error
}
