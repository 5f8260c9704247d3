package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until a termination
	// signal arrives and shutdown completes, or until serving fails.
	RunServer() error

	// Run is RunServer driven by ctx instead of process signals.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
