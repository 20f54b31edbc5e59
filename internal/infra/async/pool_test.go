package async

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := NewPool(testLogger(), 2, 8)
	defer pool.Close()

	var done atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := pool.Submit(func(context.Context) {
			defer wg.Done()
			done.Add(1)
		})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, int32(5), done.Load())
}

func TestPool_RejectsWhenQueueFull(t *testing.T) {
	pool := NewPool(testLogger(), 1, 1)
	defer pool.Close()

	block := make(chan struct{})
	started := make(chan struct{})

	require.NoError(t, pool.Submit(func(context.Context) {
		close(started)
		<-block
	}))
	<-started

	// One slot in the queue, then the pool must start rejecting.
	require.NoError(t, pool.Submit(func(context.Context) {}))

	err := pool.Submit(func(context.Context) {})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(block)
}

func TestPool_CloseWaitsForInFlightJobs(t *testing.T) {
	pool := NewPool(testLogger(), 2, 4)

	var done atomic.Int32
	require.NoError(t, pool.Submit(func(context.Context) {
		time.Sleep(20 * time.Millisecond)
		done.Add(1)
	}))

	pool.Close()
	assert.Equal(t, int32(1), done.Load())

	assert.ErrorIs(t, pool.Submit(func(context.Context) {}), ErrQueueFull)
}

func TestPool_SubmitRacingCloseNeverPanics(t *testing.T) {
	pool := NewPool(testLogger(), 2, 4)

	const submitters = 8
	start := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(submitters)
	for i := 0; i < submitters; i++ {
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 200; j++ {
				// A submitter losing the race against Close must see a
				// rejected job, never a send on a closed channel.
				if err := pool.Submit(func(context.Context) {}); err != nil {
					assert.ErrorIs(t, err, ErrQueueFull)
				}
			}
		}()
	}

	close(start)
	pool.Close()
	wg.Wait()

	assert.ErrorIs(t, pool.Submit(func(context.Context) {}), ErrQueueFull)
}

func TestPool_RecoversFromPanickingJob(t *testing.T) {
	pool := NewPool(testLogger(), 1, 2)
	defer pool.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	require.NoError(t, pool.Submit(func(context.Context) {
		defer wg.Done()
		panic("boom")
	}))
	require.NoError(t, pool.Submit(func(context.Context) {
		defer wg.Done()
	}))

	wg.Wait()
}
