package repository

import (
	"context"
	"errors"

	"cotiza/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification persistence.
// Rows are only ever created by the dispatcher (inline path) or the event-bus
// worker; reads and read-flag updates are driven from outside the pipeline.
type NotificationRepository interface {
	// Create persists a notification row.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUsuario retrieves notifications for a user, newest first, paginated.
	FindByUsuario(ctx context.Context, usuarioID string, limit, offset int) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, usuarioID string) (int64, error)

	// MarkRead flags a single notification as read.
	MarkRead(ctx context.Context, id int64) error

	// MarkAllRead flags every unread notification of a user as read and
	// returns how many rows were updated.
	MarkAllRead(ctx context.Context, usuarioID string) (int64, error)
}
