package realtime

import (
	"context"
	"log/slog"

	"cotiza/config"
	"cotiza/internal/domain/constants"
	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is used when Firebase is not configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PushToUser(ctx context.Context, usuarioID string, notification *entity.Notification) error {
	p.logger.Debug("[NoopRealtime] Push disabled, skipping",
		slog.String("usuario_id", usuarioID),
		slog.String("tipo", string(notification.Tipo)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for RealtimePublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRealtimePublisher creates a RealtimePublisher based on configuration.
// Firebase is optional; without it the realtime channel degrades to a
// no-op and notifications remain reachable through the read API.
func NewRealtimePublisher(params PublisherParams) (service.RealtimePublisher, error) {
	cfg := params.Config.Firebase
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.RealtimeProviderNoop {
		logger.Info("Realtime push not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	if cfg.Provider != constants.RealtimeProviderFirebase {
		return nil, errors.Errorf("unknown realtime provider: %s", cfg.Provider)
	}
	if cfg.CredentialsPath == "" {
		return nil, errors.New("credentials path is required for firebase provider")
	}

	publisher, err := NewFirebasePublisher(params.Ctx, cfg.CredentialsPath, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing RealtimePublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
