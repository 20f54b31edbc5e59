package realtime

import (
	"context"
	"log/slog"
	"testing"

	"cotiza/config"
	"cotiza/internal/domain/constants"
	"cotiza/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderParams(firebase *config.FirebaseConfig) PublisherParams {
	cfg := &config.Config{Firebase: firebase}

	return PublisherParams{
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
	}
}

func TestNewRealtimePublisher_UnconfiguredFallsBackToNoop(t *testing.T) {
	for _, firebase := range []*config.FirebaseConfig{
		nil,
		{},
		{Provider: constants.RealtimeProviderNoop},
	} {
		pub, err := NewRealtimePublisher(newProviderParams(firebase))
		require.NoError(t, err)

		notification := &entity.Notification{
			UsuarioID: "cliente-1",
			Tipo:      entity.NotificationProposalCreated,
		}
		assert.NoError(t, pub.PushToUser(context.Background(), "cliente-1", notification))
	}
}

func TestNewRealtimePublisher_UnknownProviderFails(t *testing.T) {
	_, err := NewRealtimePublisher(newProviderParams(&config.FirebaseConfig{Provider: "stomp"}))

	require.ErrorContains(t, err, "unknown realtime provider")
}

func TestNewRealtimePublisher_FirebaseRequiresCredentials(t *testing.T) {
	firebase := &config.FirebaseConfig{Provider: constants.RealtimeProviderFirebase}

	_, err := NewRealtimePublisher(newProviderParams(firebase))

	require.ErrorContains(t, err, "credentials path is required")
}
