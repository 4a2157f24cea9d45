package server

import "context"

// Server defines the lifecycle contract of the taskflow server.
//
// RunServer blocks until a stop signal arrives, then shuts everything down.
// Shutdown stops the transport and frees associated resources.
type Server interface {
	RunServer()
	Shutdown()
}

// BackgroundWorkers is started with the server context and awaited after the
// transport has stopped. *workers.Workers satisfies it.
type BackgroundWorkers interface {
	Run(ctx context.Context)
	Wait()
}
