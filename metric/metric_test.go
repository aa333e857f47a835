package metric_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/metric"
)

func TestRegister(t *testing.T) {
	m := metric.NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	// Double registration must fail.
	assert.Error(t, m.Register(reg))
}

func TestObserveLoad(t *testing.T) {
	m := metric.NewMetrics()

	m.ObserveLoad(221, 98, 5*time.Millisecond, nil)
	assert.Equal(t, float64(221), testutil.ToFloat64(m.TriplesLoaded))
	assert.Equal(t, float64(98), testutil.ToFloat64(m.TermsInterned))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LoadsTotal.WithLabelValues("ok")))

	// A failed load keeps the gauges from the last good snapshot.
	m.ObserveLoad(0, 0, time.Millisecond, errors.New("syntax error"))
	assert.Equal(t, float64(221), testutil.ToFloat64(m.TriplesLoaded))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LoadsTotal.WithLabelValues("error")))
}

func TestObserveQuery(t *testing.T) {
	m := metric.NewMetrics()

	m.ObserveQuery("describe", time.Millisecond, nil)
	m.ObserveQuery("describe", time.Millisecond, errors.New("unknown resource"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.QueriesTotal.WithLabelValues("describe", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.QueriesTotal.WithLabelValues("describe", "error")))
}
