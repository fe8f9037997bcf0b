package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hairnote/internal/platform/config"
	"hairnote/internal/platform/httpserver"
	"hairnote/internal/platform/logger"
	"hairnote/internal/platform/objstore"
	platformredis "hairnote/internal/platform/redis"
	"hairnote/internal/report"
	"hairnote/internal/report/corpus"
	"hairnote/internal/report/corpus/loader"
	"hairnote/internal/report/engine"
	"hairnote/internal/report/metrics"
	"hairnote/pkg/platform/middleware/cors"
	"hairnote/pkg/platform/middleware/metadata"
	"hairnote/pkg/platform/middleware/reqlog"
	"hairnote/pkg/platform/middleware/requestid"
	"hairnote/pkg/platform/middleware/requesttime"
)

// main wires configuration, the note corpus, and the HTTP surface. The
// corpus is built once at startup; a malformed note set aborts the process
// rather than serving partial reports.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	c, cleanup, err := buildCorpus(context.Background(), cfg, log)
	if err != nil {
		log.Error("corpus startup failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	m := metrics.New()

	var engineOpts []engine.Option
	if !cfg.Report.CombineNormalSentence {
		engineOpts = append(engineOpts, engine.WithCombinedNormalSentence(false))
	}
	svc := report.NewService(c, log, m, engineOpts...)
	h := report.NewHandler(svc, log, m)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(reqlog.Middleware(log))
	r.Use(cors.Middleware(cfg.CORSOrigins))
	r.Use(chimiddleware.AllowContentType("application/json"))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	h.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, r)

	log.Info("starting hairnote", "addr", cfg.Addr, "notes", c.NoteCount())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// buildCorpus assembles the note source chain, loads the raw notes, and
// parses them into the fragment corpus. The returned cleanup closes any
// clients opened for loading.
func buildCorpus(ctx context.Context, cfg config.Config, log *slog.Logger) (*corpus.Corpus, func(), error) {
	cleanup := func() {}
	sources := []loader.Source{loader.NewEnvSource()}

	rdb, err := platformredis.New(cfg.Redis)
	if err != nil {
		// A dead Redis only removes one source; the chain may still succeed.
		log.Warn("redis unavailable, skipping note source", "error", err)
	} else if rdb != nil {
		sources = append(sources, loader.NewRedisSource(rdb, cfg.Redis.KeyPrefix))
		cleanup = func() { _ = rdb.Close() }
	}

	store, err := objstore.New(cfg.Bucket)
	if err != nil {
		log.Warn("object store unavailable, skipping note source", "error", err)
	} else if store != nil {
		sources = append(sources, loader.NewBucketSource(store, cfg.Bucket.Bucket))
	}

	sources = append(sources, loader.NewLocalSource(cfg.Notes.Dir))

	notes, err := loader.NewChain(log, sources...).Load(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	c, err := corpus.Build(notes)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return c, cleanup, nil
}
