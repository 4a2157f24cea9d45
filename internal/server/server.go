package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/handler"
	"github.com/MKhiriev/go-taskflow/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    BackgroundWorkers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers BackgroundWorkers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done, then stops the transport and waits for the
// workers, which share ctx.
func (s *server) run(ctx context.Context) {
	idleConnectionsClosed := make(chan struct{})

	if s.workers != nil {
		s.workers.Run(ctx)
	}

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	if s.workers != nil {
		s.workers.Wait()
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}
