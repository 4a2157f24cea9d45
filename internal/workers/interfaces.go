// Package workers runs the background jobs of the taskflow server.
// It defines the Worker interface and a Workers aggregate that starts all
// registered workers with one context and waits for them on shutdown.
package workers

import "context"

// Worker is a background job started with the server context.
//
// Run must not block: implementations start their own goroutine and stop it
// when ctx is cancelled. Wait blocks until that goroutine has returned.
type Worker interface {
	Run(ctx context.Context)
	Wait()
}

// SessionSweeper removes expired sessions and reports how many were deleted.
// service.AuthService satisfies it.
type SessionSweeper interface {
	CleanupSessions(ctx context.Context) (int64, error)
}
