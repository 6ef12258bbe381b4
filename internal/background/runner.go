// Package background runs fire-and-forget tasks that must outlive the HTTP
// response that scheduled them, such as analytics writes and notification
// emails.
package background

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultTaskTimeout bounds a single background task.
const DefaultTaskTimeout = 30 * time.Second

// Runner executes detached tasks. Callers never observe task completion or
// failure; errors and panics are logged and discarded. Wait drains pending
// tasks on shutdown so scheduled writes still complete.
type Runner struct {
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
	drain   sync.Once
	done    chan struct{}
}

// NewRunner returns a Runner that logs task failures to logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger, timeout: DefaultTaskTimeout, done: make(chan struct{})}
}

// Go schedules fn on its own goroutine and returns immediately. The name is
// used only for logging.
func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("background task panicked", "task", name, "panic", rec)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			r.logger.Error("background task failed", "task", name, "err", err)
		}
	}()
}

// Wait blocks until all scheduled tasks finish or ctx is done, whichever
// comes first. The drain goroutine is shared across calls, so a Wait that
// times out does not strand an extra goroutine per call.
func (r *Runner) Wait(ctx context.Context) error {
	r.drain.Do(func() {
		go func() {
			r.wg.Wait()
			close(r.done)
		}()
	})
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
