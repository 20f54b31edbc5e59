package usecase

import (
	"context"

	"cotiza/internal/domain/entity"
)

// SolicitudItemInput is one requested line of a new solicitud.
type SolicitudItemInput struct {
	Nombre      string `json:"nombre" validate:"required"`
	Cantidad    int    `json:"cantidad" validate:"required,gt=0"`
	Comentarios string `json:"comentarios"`
}

// CreateSolicitudInput carries everything needed to publish a request.
type CreateSolicitudInput struct {
	UsuarioID     string               `json:"usuario_id" validate:"required"`
	UsuarioNombre string               `json:"usuario_nombre" validate:"required"`
	Titulo        string               `json:"titulo" validate:"required"`
	Profesion     string               `json:"profesion"`
	Ubicacion     string               `json:"ubicacion"`
	Presupuesto   *int64               `json:"presupuesto" validate:"omitempty,gte=0"`
	Items         []SolicitudItemInput `json:"items" validate:"required,min=1,dive"`
}

// SolicitudUsecase defines the interface for solicitud management use cases
type SolicitudUsecase interface {
	// CreateSolicitud publishes a new request and registers its location in
	// the city directory.
	CreateSolicitud(ctx context.Context, input *CreateSolicitudInput) (*entity.Solicitud, error)

	// GetSolicitud retrieves a solicitud with its items.
	GetSolicitud(ctx context.Context, id int64) (*entity.Solicitud, error)
}
