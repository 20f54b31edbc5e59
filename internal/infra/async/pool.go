// Package async provides a bounded worker pool for fire-and-forget jobs.
package async

import (
	"context"
	"log/slog"
	"sync"

	"cotiza/internal/errors"
)

// ErrQueueFull is returned by Submit when the queue has no free slot.
var ErrQueueFull = errors.New("async: queue full")

// Pool runs submitted jobs on a fixed number of workers. Submissions past
// the queue capacity are rejected instead of blocking the caller.
type Pool struct {
	logger *slog.Logger
	jobs   chan func(context.Context)
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool starts workers goroutines draining a queue of queueSize slots.
func NewPool(logger *slog.Logger, workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}

	p := &Pool{
		logger: logger,
		jobs:   make(chan func(context.Context), queueSize),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.logger.Error("async job panicked", slog.Any("panic", r))
				}
			}()
			job(context.Background())
		}()
	}
}

// Submit enqueues job for execution. It never blocks: when the queue is
// full or the pool is closed, the job is dropped and ErrQueueFull returned.
// The read lock orders the send before Close's channel close, so a
// submitter racing shutdown gets the error instead of a send panic.
func (p *Pool) Submit(job func(context.Context)) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrQueueFull
	}

	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits for in-flight work to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	p.wg.Wait()
}
