package async

import (
	"context"
	"log/slog"

	"cotiza/config"

	"go.uber.org/fx"
)

const (
	defaultWorkers   = 3
	defaultQueueSize = 64
)

// PoolParams holds dependencies for the pool, injected by Fx
type PoolParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewMailPool builds the bounded pool draining asynchronous email jobs.
func NewMailPool(params PoolParams) *Pool {
	workers := defaultWorkers
	queueSize := defaultQueueSize
	if cfg := params.Config.Dispatch; cfg != nil {
		if cfg.Workers > 0 {
			workers = cfg.Workers
		}
		if cfg.QueueSize > 0 {
			queueSize = cfg.QueueSize
		}
	}

	pool := NewPool(params.Logger, workers, queueSize)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pool.Close()

			return nil
		},
	})

	return pool
}
