package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/quietpage/quietpage/internal/config"
	"github.com/quietpage/quietpage/internal/handler"
	"github.com/quietpage/quietpage/internal/logger"
)

// server owns the vault's HTTP listener and its graceful shutdown.
type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	s := new(server)
	if cfg.HTTPAddress != "" {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if s.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	s.logger = logger
	return s, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v", err)
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run blocks until SIGTERM, SIGINT, or SIGQUIT, then drains in-flight vault
// requests before returning.
func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
