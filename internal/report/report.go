// Package report composes hair test readings into the seven-stage Korean
// narrative. The subpackages split the work: corpus parses and indexes the
// authored note fragments, engine resolves conditions and assembles the
// stages, service validates input and renders the flat form, and handler
// exposes the HTTP surface.
package report

import (
	"log/slog"

	"hairnote/internal/report/corpus"
	"hairnote/internal/report/engine"
	"hairnote/internal/report/handler"
	"hairnote/internal/report/metrics"
	"hairnote/internal/report/service"
)

// Service exposes analysis orchestration.
type Service = service.Service

// Handler wires HTTP endpoints to the report service.
type Handler = handler.Handler

// Metrics holds the module's Prometheus instruments.
type Metrics = metrics.Metrics

// NewService constructs the report service over a built corpus.
func NewService(c *corpus.Corpus, logger *slog.Logger, m *Metrics, engineOpts ...engine.Option) *Service {
	opts := append([]engine.Option{engine.WithLogger(logger)}, engineOpts...)
	eng := engine.New(c, opts...)
	return service.New(eng, service.WithLogger(logger), service.WithMetrics(m))
}

// NewHandler constructs the HTTP handler for analysis routes.
func NewHandler(s *Service, logger *slog.Logger, m *Metrics) *Handler {
	return handler.New(s, logger, m)
}
