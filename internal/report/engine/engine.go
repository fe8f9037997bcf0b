// Package engine turns classified readings into the seven-stage report.
// Composition is pure: all request-time work is lookups against the parsed
// corpus plus fixed sentence rules, so an input composes to the same report
// on every call.
package engine

import (
	"log/slog"

	"hairnote/internal/report/corpus"
	"hairnote/internal/report/models"
)

// Engine composes reports against one immutable corpus. Safe for concurrent
// use.
type Engine struct {
	corpus *corpus.Corpus
	logger *slog.Logger

	combineNormalSentence bool
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCombinedNormalSentence controls whether fully normal heavy-metal and
// mineral panels merge into a single opening sentence.
func WithCombinedNormalSentence(on bool) Option {
	return func(e *Engine) {
		e.combineNormalSentence = on
	}
}

func New(c *corpus.Corpus, opts ...Option) *Engine {
	e := &Engine{
		corpus:                c,
		logger:                slog.Default(),
		combineNormalSentence: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NoteCount reports how many notes back the corpus, for health reporting.
func (e *Engine) NoteCount() int { return e.corpus.NoteCount() }

// Compose runs the full pipeline over a validated input. Narrative stages are
// finished (name substitution, particle and whitespace normalization) before
// the summary stage reads them, so food and supplement extraction sees the
// text the client will see.
func (e *Engine) Compose(in *models.Input) models.Report {
	name := in.PersonalInfo.Name

	narrative := models.Narrative{
		Opening:     e.opening(in),
		HeavyMetals: e.metalsNarrative(in),
		Minerals:    e.mineralsNarrative(in),
		Health:      e.healthNarrative(in),
	}
	narrative.Opening = Finish(narrative.Opening, name)
	narrative.HeavyMetals = Finish(narrative.HeavyMetals, name)
	narrative.Minerals = Finish(narrative.Minerals, name)
	narrative.Health = Finish(narrative.Health, name)

	summary := e.summarize(in, narrative)
	summary.Title = Finish(summary.Title, name)
	summary.Supplement = Finish(summary.Supplement, name)
	summary.ReexamGuidance = Finish(summary.ReexamGuidance, name)

	return models.Report{
		Personal:   Classify(in),
		Narrative:  narrative,
		Summary:    summary,
		Statistics: statistics(narrative),
		Synopsis:   e.synopsis(in, narrative),
	}
}
