package postgres

import (
	"context"

	"cotiza/internal/domain/entity"
	domainerrors "cotiza/internal/domain/errors"
	"cotiza/internal/domain/repository"
	"cotiza/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// solicitudRepository implements the repository.SolicitudRepository interface.
type solicitudRepository struct {
	db *gorm.DB
}

// NewSolicitudRepository is the constructor for solicitudRepository.
func NewSolicitudRepository(db *gorm.DB) repository.SolicitudRepository {
	return &solicitudRepository{
		db: db,
	}
}

// Create persists a new solicitud with its items.
func (repo *solicitudRepository) Create(ctx context.Context, solicitud *entity.Solicitud) error {
	solicitudM := fromSolicitudDomain(solicitud)

	if err := repo.db.WithContext(ctx).Create(solicitudM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create solicitud")
	}

	// Update the entity with generated values
	solicitud.ID = solicitudM.ID
	solicitud.CreatedAt = solicitudM.CreatedAt
	for i := range solicitudM.Items {
		solicitud.Items[i].ID = solicitudM.Items[i].ID
		solicitud.Items[i].SolicitudID = solicitudM.ID
	}

	return nil
}

// FindByID retrieves a solicitud by its unique ID with items eagerly loaded.
func (repo *solicitudRepository) FindByID(ctx context.Context, id int64) (*entity.Solicitud, error) {
	var solicitudM model.SolicitudModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&solicitudM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSolicitudNotFound
		}

		return nil, errors.Wrap(err, "failed to find solicitud by ID")
	}

	return toSolicitudDomain(&solicitudM), nil
}

// UpdateEstado sets the solicitud lifecycle state.
func (repo *solicitudRepository) UpdateEstado(ctx context.Context, id int64, estado entity.SolicitudStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SolicitudModel{}).
		Where("id = ?", id).
		Update("estado", string(estado))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update solicitud estado")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSolicitudNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSolicitudDomain converts a GORM SolicitudModel to a domain Solicitud entity.
func toSolicitudDomain(data *model.SolicitudModel) *entity.Solicitud {
	if data == nil {
		return nil
	}

	items := make([]entity.SolicitudItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.SolicitudItem{
			ID:          itemM.ID,
			SolicitudID: itemM.SolicitudID,
			Nombre:      itemM.Nombre,
			Cantidad:    itemM.Cantidad,
			Comentarios: itemM.Comentarios,
		})
	}

	return &entity.Solicitud{
		ID:            data.ID,
		UsuarioID:     data.UsuarioID,
		UsuarioNombre: data.UsuarioNombre,
		Titulo:        data.Titulo,
		Profesion:     data.Profesion,
		Ubicacion:     data.Ubicacion,
		Presupuesto:   data.Presupuesto,
		Estado:        entity.SolicitudStatus(data.Estado),
		CreatedAt:     data.CreatedAt,
		Items:         items,
	}
}

// fromSolicitudDomain converts a domain Solicitud entity to a GORM SolicitudModel.
func fromSolicitudDomain(data *entity.Solicitud) *model.SolicitudModel {
	if data == nil {
		return nil
	}

	items := make([]model.SolicitudItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.SolicitudItemModel{
			ID:          item.ID,
			SolicitudID: item.SolicitudID,
			Nombre:      item.Nombre,
			Cantidad:    item.Cantidad,
			Comentarios: item.Comentarios,
		})
	}

	return &model.SolicitudModel{
		ID:            data.ID,
		UsuarioID:     data.UsuarioID,
		UsuarioNombre: data.UsuarioNombre,
		Titulo:        data.Titulo,
		Profesion:     data.Profesion,
		Ubicacion:     data.Ubicacion,
		Presupuesto:   data.Presupuesto,
		Estado:        string(data.Estado),
		CreatedAt:     data.CreatedAt,
		Items:         items,
	}
}
