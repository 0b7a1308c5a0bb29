package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/owldoc/errors"
)

const namespace = "owldoc"

// Metrics bundles the extraction engine's instruments.
type Metrics struct {
	EntitiesExtracted  *prometheus.CounterVec
	ExpressionsDecoded *prometheus.CounterVec
	ListTruncations    prometheus.Counter
	LabelCollisions    prometheus.Gauge
	ExtractionDuration *prometheus.HistogramVec
	ErrorsTotal        *prometheus.CounterVec
}

// NewMetrics creates the instruments without registering them.
func NewMetrics() *Metrics {
	return &Metrics{
		EntitiesExtracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_extracted_total",
			Help:      "Entities extracted, by documentation kind.",
		}, []string{"kind"}),
		ExpressionsDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expressions_decoded_total",
			Help:      "Anonymous class expressions decoded, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		ListTruncations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_truncations_total",
			Help:      "RDF list traversals cut short by the node budget or a cycle.",
		}),
		LabelCollisions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "label_collisions",
			Help:      "Label collision groups found in the last extraction.",
		}),
		ExtractionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Time spent per extraction stage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		ErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Errors encountered, by component and class.",
		}, []string{"component", "class"}),
	}
}

// Register adds every instrument to the registry.
func (m *Metrics) Register(reg *prometheus.Registry) error {
	collectors := []prometheus.Collector{
		m.EntitiesExtracted,
		m.ExpressionsDecoded,
		m.ListTruncations,
		m.LabelCollisions,
		m.ExtractionDuration,
		m.ErrorsTotal,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return errors.WrapFatal(err, "metric", "Register", "register collector")
		}
	}
	return nil
}

// RecordEntity counts one extracted entity of the given kind.
func (m *Metrics) RecordEntity(kind string) {
	m.EntitiesExtracted.WithLabelValues(kind).Inc()
}

// RecordExpression counts one expression decode attempt.
func (m *Metrics) RecordExpression(kind, outcome string) {
	m.ExpressionsDecoded.WithLabelValues(kind, outcome).Inc()
}

// RecordListTruncation counts one bounded or cyclic list traversal.
func (m *Metrics) RecordListTruncation() {
	m.ListTruncations.Inc()
}

// RecordLabelCollisions sets the collision-group gauge for a run.
func (m *Metrics) RecordLabelCollisions(groups int) {
	m.LabelCollisions.Set(float64(groups))
}

// RecordDuration observes the elapsed time of one stage.
func (m *Metrics) RecordDuration(stage string, d time.Duration) {
	m.ExtractionDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordError counts one classified error.
func (m *Metrics) RecordError(component, class string) {
	m.ErrorsTotal.WithLabelValues(component, class).Inc()
}
