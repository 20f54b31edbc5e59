package impl

import (
	"context"
	"fmt"
	"log/slog"

	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/repository"
	"cotiza/internal/usecase"
)

type solicitudService struct {
	solicitudRepo repository.SolicitudRepository
	cityUsecase   usecase.CityUsecase
	logger        *slog.Logger
}

// NewSolicitudService creates a new solicitud service instance
func NewSolicitudService(
	logger *slog.Logger,
	solicitudRepo repository.SolicitudRepository,
	cityUsecase usecase.CityUsecase,
) usecase.SolicitudUsecase {
	return &solicitudService{
		solicitudRepo: solicitudRepo,
		cityUsecase:   cityUsecase,
		logger:        logger,
	}
}

// CreateSolicitud publishes a new request. The city directory update is
// best effort: a failure there is logged and never loses the request.
func (s *solicitudService) CreateSolicitud(ctx context.Context, input *usecase.CreateSolicitudInput) (*entity.Solicitud, error) {
	items := make([]entity.SolicitudItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.SolicitudItem{
			Nombre:      item.Nombre,
			Cantidad:    item.Cantidad,
			Comentarios: item.Comentarios,
		})
	}

	solicitud := &entity.Solicitud{
		UsuarioID:     input.UsuarioID,
		UsuarioNombre: input.UsuarioNombre,
		Titulo:        input.Titulo,
		Profesion:     input.Profesion,
		Ubicacion:     input.Ubicacion,
		Presupuesto:   input.Presupuesto,
		Estado:        entity.SolicitudStatusPending,
		Items:         items,
	}

	if err := s.solicitudRepo.Create(ctx, solicitud); err != nil {
		return nil, fmt.Errorf("failed to create solicitud: %w", err)
	}

	if _, err := s.cityUsecase.RecordSolicitudCreated(ctx, input.Ubicacion); err != nil {
		s.logger.Warn("Failed to register solicitud city",
			slog.Int64("solicitud_id", solicitud.ID),
			slog.String("ubicacion", input.Ubicacion),
			slog.Any("error", err),
		)
	}

	return solicitud, nil
}

// GetSolicitud retrieves a solicitud with its items.
func (s *solicitudService) GetSolicitud(ctx context.Context, id int64) (*entity.Solicitud, error) {
	return s.solicitudRepo.FindByID(ctx, id)
}
