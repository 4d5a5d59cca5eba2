package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/empireos/internal/handlers"
)

// RegisterRoutes sets up all the application routes and boots every module.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	s.E.GET("/health", handlers.HealthGet)

	root := s.E.Group("")
	for _, m := range s.Modules {
		if err := m.Boot(ctx, root); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Info("module booted", "module", m.Name())
	}
	return nil
}
