package extract

import (
	"log/slog"
	"strings"
	"time"

	"github.com/c360/owldoc/config"
	"github.com/c360/owldoc/errors"
	"github.com/c360/owldoc/graphstore"
	"github.com/c360/owldoc/metric"
	"github.com/c360/owldoc/model"
	"github.com/c360/owldoc/rdf"
)

// Options tunes one extraction run.
type Options struct {
	// PrimaryLanguage is preferred when several language-tagged literals
	// compete for the same slot.
	PrimaryLanguage string

	// LabelPredicates are probed in order for display labels.
	LabelPredicates []rdf.IRI

	// CommentPredicates are probed in order for descriptions.
	CommentPredicates []rdf.IRI

	// MaxListNodes bounds RDF list traversal.
	MaxListNodes int
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig converts loaded settings into extraction options.
func OptionsFromConfig(cfg config.Config) Options {
	opts := Options{
		PrimaryLanguage: cfg.PrimaryLanguage,
		MaxListNodes:    cfg.MaxListNodes,
	}
	for _, p := range cfg.LabelPredicates {
		opts.LabelPredicates = append(opts.LabelPredicates, rdf.IRI(p))
	}
	for _, p := range cfg.CommentPredicates {
		opts.CommentPredicates = append(opts.CommentPredicates, rdf.IRI(p))
	}
	return opts
}

// Extractor reads one store and builds documentation models from it.
type Extractor struct {
	store   graphstore.Store
	opts    Options
	logger  *slog.Logger
	metrics *metric.Metrics
}

// New creates an Extractor over the store. A nil logger falls back to
// slog.Default; nil metrics get a throwaway unregistered set.
func New(store graphstore.Store, opts Options, logger *slog.Logger, metrics *metric.Metrics) (*Extractor, error) {
	if store == nil {
		return nil, errors.WrapInvalid(errors.ErrNilStore, "extract", "New", "check store")
	}
	if opts.PrimaryLanguage == "" {
		opts.PrimaryLanguage = "en"
	}
	if opts.MaxListNodes < 1 {
		opts.MaxListNodes = config.Default().MaxListNodes
	}
	if len(opts.LabelPredicates) == 0 {
		opts.LabelPredicates = DefaultOptions().LabelPredicates
	}
	if len(opts.CommentPredicates) == 0 {
		opts.CommentPredicates = DefaultOptions().CommentPredicates
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = metric.NewMetrics()
	}
	return &Extractor{store: store, opts: opts, logger: logger, metrics: metrics}, nil
}

// Extract walks the store and assembles the full documentation model.
func (e *Extractor) Extract() *model.Document {
	start := time.Now()
	doc := model.NewDocument()

	doc.Meta = e.ExtractMetadata()
	e.extractClasses(doc)
	e.extractProperties(doc)
	e.extractIndividuals(doc)

	for _, b := range e.store.Namespaces() {
		doc.Namespaces[b.Prefix] = b.Namespace
	}

	local := e.localURIs(doc)
	e.applyDisplayURLs(doc, local)

	doc.UniqueLabels = ResolveUniqueLabels(doc, e.store.Namespaces())
	e.metrics.RecordLabelCollisions(collisionGroups(doc))
	e.metrics.RecordDuration("extract", time.Since(start))

	e.logger.Info("extraction complete",
		"classes", len(doc.Classes),
		"object_properties", len(doc.ObjectProperties),
		"data_properties", len(doc.DataProperties),
		"annotation_properties", len(doc.AnnotationProperties),
		"individuals", len(doc.Individuals),
		"duration", time.Since(start))
	return doc
}

// localURIs collects every URI documented in this model.
func (e *Extractor) localURIs(doc *model.Document) map[string]bool {
	local := make(map[string]bool, doc.EntityCount())
	for uri := range doc.Classes {
		local[uri] = true
	}
	for uri := range doc.ObjectProperties {
		local[uri] = true
	}
	for uri := range doc.DataProperties {
		local[uri] = true
	}
	for uri := range doc.AnnotationProperties {
		local[uri] = true
	}
	for uri := range doc.Individuals {
		local[uri] = true
	}
	return local
}

func (e *Extractor) applyDisplayURLs(doc *model.Document, local map[string]bool) {
	for _, c := range doc.Classes {
		c.DisplayURL = model.DisplayURL(c.URI, local)
	}
	for _, p := range doc.ObjectProperties {
		p.DisplayURL = model.DisplayURL(p.URI, local)
	}
	for _, p := range doc.DataProperties {
		p.DisplayURL = model.DisplayURL(p.URI, local)
	}
	for _, p := range doc.AnnotationProperties {
		p.DisplayURL = model.DisplayURL(p.URI, local)
	}
	for _, ind := range doc.Individuals {
		ind.DisplayURL = model.DisplayURL(ind.URI, local)
	}
}

// collisionGroups counts display names shared by more than one entity.
func collisionGroups(doc *model.Document) int {
	counts := make(map[string]int)
	add := func(label, uri string) {
		name := label
		if name == "" {
			name = localNameOf(uri)
		}
		counts[strings.ToLower(name)]++
	}
	for uri, c := range doc.Classes {
		add(c.Label, uri)
	}
	for uri, p := range doc.ObjectProperties {
		add(p.Label, uri)
	}
	for uri, p := range doc.DataProperties {
		add(p.Label, uri)
	}
	for uri, p := range doc.AnnotationProperties {
		add(p.Label, uri)
	}
	for uri, ind := range doc.Individuals {
		add(ind.Label, uri)
	}
	groups := 0
	for _, n := range counts {
		if n > 1 {
			groups++
		}
	}
	return groups
}
