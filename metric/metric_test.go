package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	// Double registration is an error, not a panic.
	assert.Error(t, m.Register(reg))
}

func TestRecorders(t *testing.T) {
	m := NewMetrics()

	m.RecordEntity("class")
	m.RecordEntity("class")
	m.RecordEntity("individual")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntitiesExtracted.WithLabelValues("class")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntitiesExtracted.WithLabelValues("individual")))

	m.RecordExpression("union", "decoded")
	m.RecordExpression("restriction", "malformed")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExpressionsDecoded.WithLabelValues("union", "decoded")))

	m.RecordListTruncation()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ListTruncations))

	m.RecordLabelCollisions(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.LabelCollisions))

	m.RecordError("extract", "malformed")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("extract", "malformed")))

	// Histograms have no ToFloat64; observing must not panic.
	m.RecordDuration("extract", 25*time.Millisecond)
}
