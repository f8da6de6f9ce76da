package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveResponse(OpSubmit, 201, 0.02)
	m.ObserveResponse(OpSubmit, 200, 0.03)
	m.ObserveResponse(OpLookup, 404, 0.01)
	m.ObserveError(OpRemove, 0.5)
	m.IncrementUnsafeRemoves()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(OpSubmit, "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(OpSubmit, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(OpLookup, "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestErrorsTotal.WithLabelValues(OpRemove)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UnsafeRemovesRefused))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
