// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"

	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/repository"
	"cotiza/internal/usecase"
)

const defaultNotificationPageSize = 20

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates the read side of the notification feed.
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// ListByUser retrieves a user's notifications, newest first, paginated.
func (s *notificationService) ListByUser(ctx context.Context, usuarioID string, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return s.notificationRepo.FindByUsuario(ctx, usuarioID, limit, offset)
}

// UnreadCount returns the number of unread notifications for a user.
func (s *notificationService) UnreadCount(ctx context.Context, usuarioID string) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, usuarioID)
}

// MarkRead flags a single notification as read.
func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	return s.notificationRepo.MarkRead(ctx, id)
}

// MarkAllRead flags every unread notification of a user as read.
func (s *notificationService) MarkAllRead(ctx context.Context, usuarioID string) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, usuarioID)
}
