package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.Transition("liquidation")
	m.Transition("liquidation")
	m.Transition("manual")
	m.LedgerFailure("close")
	m.SkippedTick("no_price")
	m.PriceFallback("oracle")
	m.ServedFrom("coingecko")
	m.ServedFrom("mock")

	require.Equal(t, 2.0, testutil.ToFloat64(m.Transitions.WithLabelValues("liquidation")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("manual")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.LedgerFailures.WithLabelValues("close")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SkippedTicks.WithLabelValues("no_price")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.PriceFallbacks.WithLabelValues("oracle")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.PriceSource.WithLabelValues("mock")))
	require.Equal(t, 1, testutil.CollectAndCount(m.PriceSource))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.Transition("manual")
		m.LedgerFailure("open")
		m.SkippedTick("invalid_price")
		m.PriceFallback("cache")
		m.ServedFrom("mock")
	})
}

func TestServer_Handler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.Transition("stop_loss")
	s := NewServer(":0", m)

	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `trading_position_transitions_total{reason="stop_loss"} 1`))

	rec = httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
