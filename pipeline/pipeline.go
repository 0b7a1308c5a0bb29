package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/c360/owldoc/config"
	"github.com/c360/owldoc/errors"
	"github.com/c360/owldoc/extract"
	"github.com/c360/owldoc/graphstore"
	"github.com/c360/owldoc/metric"
	"github.com/c360/owldoc/model"
)

// Reasoner materializes inferred triples before extraction. Implementations
// must return a new or unchanged store; the input store is never mutated.
type Reasoner interface {
	Materialize(ctx context.Context, store graphstore.Store) (graphstore.Store, error)
}

// Pipeline runs extractions with shared logging, metrics, and an optional
// reasoner.
type Pipeline struct {
	reasoner Reasoner
	logger   *slog.Logger
	metrics  *metric.Metrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithReasoner installs the reasoning hook used when config enables
// reasoning.
func WithReasoner(r Reasoner) Option {
	return func(p *Pipeline) { p.reasoner = r }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics replaces the default unregistered metrics set.
func WithMetrics(m *metric.Metrics) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.metrics = m
		}
	}
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:  slog.Default(),
		metrics: metric.NewMetrics(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run performs one extraction over the store with the given settings.
func (p *Pipeline) Run(ctx context.Context, store graphstore.Store, cfg config.Config) (*model.Document, error) {
	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID)

	if store == nil {
		return nil, errors.WrapInvalid(errors.ErrNilStore, "pipeline", "Run", "check store")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := p.maybeReason(ctx, store, cfg, logger)
	if err != nil {
		return nil, err
	}

	return p.extract(store, cfg, cfg.PrimaryLanguage, logger)
}

// RunLanguages extracts one document per language over the same store. The
// primary language from cfg is used when langs is empty.
func (p *Pipeline) RunLanguages(ctx context.Context, store graphstore.Store, cfg config.Config, langs []string) (map[string]*model.Document, error) {
	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID)

	if store == nil {
		return nil, errors.WrapInvalid(errors.ErrNilStore, "pipeline", "RunLanguages", "check store")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(langs) == 0 {
		langs = []string{cfg.PrimaryLanguage}
	}

	store, err := p.maybeReason(ctx, store, cfg, logger)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	docs := make(map[string]*model.Document, len(langs))
	g, _ := errgroup.WithContext(ctx)
	for _, lang := range langs {
		lang := lang
		g.Go(func() error {
			doc, err := p.extract(store, cfg, lang, logger.With("language", lang))
			if err != nil {
				return err
			}
			mu.Lock()
			docs[lang] = doc
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (p *Pipeline) maybeReason(ctx context.Context, store graphstore.Store, cfg config.Config, logger *slog.Logger) (graphstore.Store, error) {
	if !cfg.Reasoning || p.reasoner == nil {
		return store, nil
	}
	start := time.Now()
	reasoned, err := p.reasoner.Materialize(ctx, store)
	if err != nil {
		p.metrics.RecordError("pipeline", errors.ErrorFatal.String())
		return nil, errors.WrapFatal(err, "pipeline", "maybeReason", "materialize inferences")
	}
	p.metrics.RecordDuration("reasoning", time.Since(start))
	logger.Info("reasoning complete", "duration", time.Since(start))
	return reasoned, nil
}

func (p *Pipeline) extract(store graphstore.Store, cfg config.Config, lang string, logger *slog.Logger) (*model.Document, error) {
	opts := extract.OptionsFromConfig(cfg)
	opts.PrimaryLanguage = lang
	extractor, err := extract.New(store, opts, logger, p.metrics)
	if err != nil {
		return nil, err
	}
	return extractor.Extract(), nil
}
