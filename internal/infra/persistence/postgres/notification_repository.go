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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a notification row.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByUsuario retrieves notifications for a user, newest first, paginated.
func (repo *notificationRepository) FindByUsuario(ctx context.Context, usuarioID string, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by usuario")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread returns the number of unread notifications for a user.
func (repo *notificationRepository) CountUnread(ctx context.Context, usuarioID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("usuario_id = ? AND leida = ?", usuarioID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags a single notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("leida", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flags every unread notification of a user as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, usuarioID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("usuario_id = ? AND leida = ?", usuarioID, false).
		Update("leida", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark notifications as read")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:           data.ID,
		UsuarioID:    data.UsuarioID,
		Tipo:         entity.NotificationType(data.Tipo),
		ReferenciaID: data.ReferenciaID,
		Titulo:       data.Titulo,
		Mensaje:      data.Mensaje,
		Payload:      data.Payload,
		Leida:        data.Leida,
		CreatedAt:    data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:           data.ID,
		UsuarioID:    data.UsuarioID,
		Tipo:         string(data.Tipo),
		ReferenciaID: data.ReferenciaID,
		Titulo:       data.Titulo,
		Mensaje:      data.Mensaje,
		Payload:      data.Payload,
		Leida:        data.Leida,
		CreatedAt:    data.CreatedAt,
	}
}
