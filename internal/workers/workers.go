package workers

import (
	"context"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers registers the server background jobs.
func NewWorkers(sweeper SessionSweeper, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionCleaner(sweeper, cfg.SessionCleanupInterval, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

func (w *Workers) Wait() {
	for _, worker := range w.workers {
		worker.Wait()
	}
}
