package service

import (
	"context"

	"cotiza/internal/domain/entity"
)

// RealtimePublisher pushes a persisted notification over the per-recipient
// realtime channel. Delivery is best effort: absence of a connected
// subscriber is not an error, and failures never affect the persisted row.
type RealtimePublisher interface {
	// PushToUser publishes the notification on the recipient's channel.
	PushToUser(ctx context.Context, usuarioID string, notification *entity.Notification) error

	// Close releases any resources held by the publisher.
	Close() error
}
