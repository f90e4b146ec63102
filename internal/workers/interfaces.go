// Package workers runs the long-lived goroutines of the client as one
// group: the first worker to fail cancels the others.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is done or the work
// ends on its own.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run implements [Worker].
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
