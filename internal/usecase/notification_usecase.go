package usecase

import (
	"context"

	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/service"
)

// NotificationDispatcher fans a proposal event out over the delivery
// channels: durable row first, then realtime push, event bus and email.
// Later channels are best effort; only a failure to persist the row fails
// the dispatch.
type NotificationDispatcher interface {
	// Dispatch runs the fan-out for one event.
	Dispatch(ctx context.Context, event *service.ProposalEvent) (*entity.Notification, error)
}

// NotificationUsecase defines the read side of the notification feed.
type NotificationUsecase interface {
	// ListByUser retrieves a user's notifications, newest first, paginated.
	ListByUser(ctx context.Context, usuarioID string, limit, offset int) ([]*entity.Notification, error)

	// UnreadCount returns the number of unread notifications for a user.
	UnreadCount(ctx context.Context, usuarioID string) (int64, error)

	// MarkRead flags a single notification as read.
	MarkRead(ctx context.Context, id int64) error

	// MarkAllRead flags every unread notification of a user as read and
	// returns how many were updated.
	MarkAllRead(ctx context.Context, usuarioID string) (int64, error)
}
