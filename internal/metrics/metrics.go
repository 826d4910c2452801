// Package metrics exposes Prometheus metrics for RPCs, document store access
// and ingredient list generation.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/recipelist/internal/storage"
)

const namespace = "recipelist"

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests   *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
	storeOps      *prometheus.CounterVec
	storeDuration *prometheus.HistogramVec
	ingredients   prometheus.Histogram
}

// New creates the collectors on a fresh registry, including Go runtime and process metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Document store operations, by operation, document key and result.",
		}, []string{"op", "key", "result"}),
		storeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Document store latency by operation.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"op"}),
		ingredients: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generated_ingredient_list_size",
			Help:      "Number of distinct ingredients in generated shopping lists.",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.storeOps,
		m.storeDuration,
		m.ingredients,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRPC records one finished RPC. code is "ok" or a Connect code name.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

// ObserveIngredientList records the size of a generated ingredient list.
func (m *Metrics) ObserveIngredientList(entries int) {
	m.ingredients.Observe(float64(entries))
}

// InstrumentStore wraps s so every Get and Set is counted and timed.
func (m *Metrics) InstrumentStore(s storage.Store) storage.Store {
	return &instrumentedStore{Store: s, m: m}
}

type instrumentedStore struct {
	storage.Store
	m *Metrics
}

func (s *instrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	payload, err := s.Store.Get(ctx, key)
	s.observe("get", key, start, err)
	return payload, err
}

func (s *instrumentedStore) Set(ctx context.Context, key string, payload []byte) error {
	start := time.Now()
	err := s.Store.Set(ctx, key, payload)
	s.observe("set", key, start, err)
	return err
}

func (s *instrumentedStore) observe(op, key string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, storage.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	s.m.storeOps.WithLabelValues(op, key, result).Inc()
	s.m.storeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
