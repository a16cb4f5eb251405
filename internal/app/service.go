package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"client-service/internal/config"
	"client-service/internal/http"
	"client-service/internal/repository/postgres"

	"go.uber.org/zap"
)

const (
	errFailedLoadConfigFmt   = "failed to load config: %w"
	errFailedConnectDBFmt    = "failed to connect to database: %w"
	errFailedEnsureSchemaFmt = "failed to ensure schema: %w"
)

// Service owns the long-lived resources: config, the connection pool,
// and the HTTP server. The pool is acquired once at startup and
// released exactly once at shutdown.
type Service struct {
	config *config.Config
	db     *postgres.DB
	server *http.Server
	logger *zap.Logger
}

func NewService(logger *zap.Logger) (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf(errFailedLoadConfigFmt, err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf(errFailedConnectDBFmt, err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf(errFailedEnsureSchemaFmt, err)
	}

	directory := NewDirectory(
		postgres.NewClientRepository(db),
		postgres.NewPhoneRepository(db),
		logger,
	)

	server := http.NewServer(&http.ServerDependencies{
		Config:    cfg,
		Directory: directory,
		Logger:    logger,
	})

	return &Service{
		config: cfg,
		db:     db,
		server: server,
		logger: logger,
	}, nil
}

// Start serves HTTP until SIGINT or SIGTERM, then drains in-flight
// requests within the configured shutdown timeout and closes the pool.
func (s *Service) Start() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Start(":" + s.config.Server.Port)
	}()

	s.logger.Info("client service started", zap.String("port", s.config.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.db.Close()
		return err
	case sig := <-quit:
		s.logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.db.Close()
	return err
}
