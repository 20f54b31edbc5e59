// Package realtime pushes persisted notifications to connected clients.
package realtime

import (
	"context"
	"fmt"
	"log/slog"

	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// userTopic derives the per-recipient FCM topic. Clients subscribe to their
// own topic on login, so a push reaches every device of the user.
func userTopic(usuarioID string) string {
	return "notifications-" + usuarioID
}

type firebasePublisher struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebasePublisher creates a RealtimePublisher backed by FCM topics.
func NewFirebasePublisher(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.RealtimePublisher, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebasePublisher{
		client: client,
		logger: logger,
	}, nil
}

// PushToUser publishes the notification on the recipient's topic.
func (p *firebasePublisher) PushToUser(ctx context.Context, usuarioID string, notification *entity.Notification) error {
	data := map[string]string{
		"tipo": string(notification.Tipo),
	}
	if notification.ReferenciaID != "" {
		data["referencia_id"] = notification.ReferenciaID
	}
	if len(notification.Payload) != 0 {
		data["payload"] = string(notification.Payload)
	}

	message := &messaging.Message{
		Topic: userTopic(usuarioID),
		Notification: &messaging.Notification{
			Title: notification.Titulo,
			Body:  notification.Mensaje,
		},
		Data: data,
	}

	if _, err := p.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send realtime push: %w", err)
	}

	p.logger.Debug("[Firebase] Notification pushed",
		slog.String("usuario_id", usuarioID),
		slog.String("tipo", string(notification.Tipo)),
	)

	return nil
}

// Close releases resources (nothing to release for the messaging client).
func (p *firebasePublisher) Close() error {
	return nil
}
