// Package metrics prometheus collectors of the trading service
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Metrics all collectors, a nil *Metrics records nothing
type Metrics struct {
	Transitions    *prometheus.CounterVec // labels: reason
	LedgerFailures *prometheus.CounterVec // labels: operation
	SkippedTicks   *prometheus.CounterVec // labels: cause
	PriceFallbacks *prometheus.CounterVec // labels: source
	PriceSource    *prometheus.GaugeVec   // labels: source, 1 for the source of the last price

	gatherer prometheus.Gatherer
}

// NewMetrics creates collectors and registers them in reg
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trading_position_transitions_total",
			Help: "Committed position transitions by close reason",
		}, []string{"reason"}),
		LedgerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trading_ledger_failures_total",
			Help: "Ledger operations that failed, position left unchanged",
		}, []string{"operation"}),
		SkippedTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trading_skipped_ticks_total",
			Help: "Lifecycle ticks skipped",
		}, []string{"cause"}),
		PriceFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trading_price_fallbacks_total",
			Help: "Price sources that failed and were skipped",
		}, []string{"source"}),
		PriceSource: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "trading_price_source",
			Help: "Source of the last served price (1 = active)",
		}, []string{"source"}),
		gatherer: reg,
	}
	reg.MustRegister(m.Transitions, m.LedgerFailures, m.SkippedTicks, m.PriceFallbacks, m.PriceSource)
	return m
}

// Transition counts a committed transition
func (m *Metrics) Transition(reason string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(reason).Inc()
}

// LedgerFailure counts a failed ledger operation
func (m *Metrics) LedgerFailure(operation string) {
	if m == nil {
		return
	}
	m.LedgerFailures.WithLabelValues(operation).Inc()
}

// SkippedTick counts a skipped lifecycle tick
func (m *Metrics) SkippedTick(cause string) {
	if m == nil {
		return
	}
	m.SkippedTicks.WithLabelValues(cause).Inc()
}

// PriceFallback counts a failed price source
func (m *Metrics) PriceFallback(source string) {
	if m == nil {
		return
	}
	m.PriceFallbacks.WithLabelValues(source).Inc()
}

// ServedFrom marks source as the origin of the last price
func (m *Metrics) ServedFrom(source string) {
	if m == nil {
		return
	}
	m.PriceSource.Reset()
	m.PriceSource.WithLabelValues(source).Set(1)
}

// Server http server exposing /metrics and /healthz
type Server struct {
	srv *http.Server
}

// NewServer constructor
func NewServer(addr string, m *Metrics) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &Server{srv: &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}}
}

// Run serves until ctx is done
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("metrics server listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}
