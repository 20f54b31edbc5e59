package impl

import (
	"context"
	"testing"

	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/repository"
	mockRepo "cotiza/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListByUser_DefaultsPageSize(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByUsuario(ctx, "cliente-1", 20, 0).Return([]*entity.Notification{
		{ID: 2, UsuarioID: "cliente-1"},
		{ID: 1, UsuarioID: "cliente-1"},
	}, nil)

	notifications, err := svc.ListByUser(ctx, "cliente-1", 0, 0)

	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestNotificationService_ListByUser_PassesPagination(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByUsuario(ctx, "cliente-1", 10, 30).Return([]*entity.Notification{}, nil)

	notifications, err := svc.ListByUser(ctx, "cliente-1", 10, 30)

	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)

	ctx := context.Background()
	notificationRepo.EXPECT().CountUnread(ctx, "cliente-1").Return(int64(3), nil)

	count, err := svc.UnreadCount(ctx, "cliente-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)

	ctx := context.Background()
	notificationRepo.EXPECT().MarkRead(ctx, int64(99)).Return(repository.ErrNotificationNotFound)

	err := svc.MarkRead(ctx, 99)

	require.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)

	ctx := context.Background()
	notificationRepo.EXPECT().MarkAllRead(ctx, "cliente-1").Return(int64(5), nil)

	updated, err := svc.MarkAllRead(ctx, "cliente-1")

	require.NoError(t, err)
	assert.Equal(t, int64(5), updated)
}
