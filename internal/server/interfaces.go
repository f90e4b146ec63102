package server

import "context"

// Server defines the lifecycle contract of the servers managed by this
// package.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns nil after a clean shutdown.
	Run(ctx context.Context) error
}
