package domain

import "context"

// TaskRunner schedules fire-and-forget work that continues after the HTTP
// response has been sent. Implementations log and discard failures; callers
// get no completion signal.
type TaskRunner interface {
	Go(name string, fn func(ctx context.Context) error)
}
