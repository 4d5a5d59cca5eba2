package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Start runs the HTTP server until an interrupt or terminate signal arrives,
// then shuts the modules and the server down.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", s.Cfg.GetAddr())
		if err := s.E.Start(s.Cfg.GetAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-waitForShutdown():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops every module and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, m := range s.Modules {
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
