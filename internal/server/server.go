package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fleet-dispatch/internal/config"
	"github.com/MKhiriev/fleet-dispatch/internal/handler"
	"github.com/MKhiriev/fleet-dispatch/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until one of SIGTERM, SIGINT or SIGQUIT arrives.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run blocks until ctx is done and the HTTP server has drained.
func (s *server) run(ctx context.Context) error {
	served := make(chan struct{})

	s.logger.Info().Str("addr", s.httpServer.server.Addr).Msg("launching HTTP server")
	go func() {
		s.httpServer.RunServer()
		close(served)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
		s.logger.Info().Msg("server shut down gracefully")
		return nil
	case <-served:
		return errStoppedUnexpectedly
	}
}
