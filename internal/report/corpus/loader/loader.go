// Package loader fetches the authored notes from one of several sources.
// Sources are tried in priority order; the first one that can produce the
// complete note set wins. Serving from a partial corpus is never allowed.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hairnote/internal/report/corpus"
)

// Source supplies note contents from one backing store. A source may return
// a partial map; the chain decides whether that disqualifies it.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (map[corpus.NoteID]string, error)
}

// Chain tries sources in the order given.
type Chain struct {
	sources []Source
	logger  *slog.Logger
}

func NewChain(logger *slog.Logger, sources ...Source) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{sources: sources, logger: logger}
}

// Load returns the first complete note set. A source that errors or comes
// back incomplete is logged and skipped; exhausting every source is fatal to
// the caller, which is expected to abort startup.
func (c *Chain) Load(ctx context.Context) (map[corpus.NoteID]string, error) {
	for _, src := range c.sources {
		notes, err := src.Fetch(ctx)
		if err != nil {
			c.logger.Warn("note source failed", "source", src.Name(), "error", err)
			continue
		}
		if missing := missingNotes(notes); len(missing) > 0 {
			if len(notes) > 0 {
				c.logger.Warn("note source incomplete",
					"source", src.Name(), "missing", missing)
			}
			continue
		}
		c.logger.Info("notes loaded", "source", src.Name())
		return notes, nil
	}
	return nil, fmt.Errorf("loader: no source could supply all %d notes", len(corpus.AllNotes))
}

func missingNotes(notes map[corpus.NoteID]string) []string {
	var missing []string
	for _, id := range corpus.AllNotes {
		if strings.TrimSpace(notes[id]) == "" {
			missing = append(missing, string(id))
		}
	}
	return missing
}
