package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hairnote/internal/report/metrics"
	"hairnote/internal/report/models"
	"hairnote/pkg/platform/httputil"
	"hairnote/pkg/requestcontext"
)

// Service defines the interface for analysis operations.
type Service interface {
	Analyze(ctx context.Context, in *models.Input) (models.Report, error)
	AnalyzeFlat(ctx context.Context, in *models.Input) (models.FlatReport, error)
	TestData() *models.Input
	NoteCount() int
}

// Handler wires analysis endpoints to the report service.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a report handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts analysis endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/analyze", h.HandleAnalyze)
	r.Post("/analyze/flat", h.HandleAnalyzeFlat)
	r.Get("/test-data", h.HandleTestData)
	r.Get("/health", h.HandleHealth)
}

// HandleAnalyze handles POST /analyze requests.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[AnalyzeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.ObserveFailure("validation_failed")
		return
	}

	report, err := h.service.Analyze(ctx, &req.Input)
	if err != nil {
		h.logger.ErrorContext(ctx, "analysis failed",
			"request_id", requestID,
			"error", err,
		)
		h.metrics.ObserveFailure("error")
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "analysis completed",
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, httputil.OK(analysisSuccessMessage, report))
}

// HandleAnalyzeFlat handles POST /analyze/flat requests.
func (h *Handler) HandleAnalyzeFlat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[AnalyzeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.ObserveFailure("validation_failed")
		return
	}

	flat, err := h.service.AnalyzeFlat(ctx, &req.Input)
	if err != nil {
		h.logger.ErrorContext(ctx, "flat analysis failed",
			"request_id", requestID,
			"error", err,
		)
		h.metrics.ObserveFailure("error")
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "flat analysis completed",
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, httputil.OK(analysisSuccessMessage, flat))
}

// HandleTestData handles GET /test-data requests. It returns a sample input
// that can be posted back to /analyze unchanged.
func (h *Handler) HandleTestData(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.TestData())
}

// HandleHealth handles GET /health requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		Message:     "API is running normally",
		NotesLoaded: h.service.NoteCount(),
	})
}
