package kit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelService = "service"
	labelMethod  = "method"
	labelPath    = "path"
	labelStatus  = "status"
	labelStore   = "store"
	labelOp      = "op"
	labelOutcome = "outcome"

	defaultStatusCode = http.StatusOK
)

type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{labelService, labelMethod, labelPath, labelStatus},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP latency",
			},
			[]string{labelService, labelMethod, labelPath},
		),
	}

	reg.MustRegister(m.Requests, m.Latency)
	return m
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (m *Metrics) Middleware(service string, pathLabel func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{
				ResponseWriter: w,
				status:         defaultStatusCode,
			}

			start := time.Now()
			next.ServeHTTP(sw, r)

			path := pathLabel(r)
			m.Latency.WithLabelValues(service, r.Method, path).
				Observe(time.Since(start).Seconds())

			m.Requests.WithLabelValues(service, r.Method, path, strconv.Itoa(sw.status)).
				Inc()
		})
	}
}

// Hydration outcomes reported by the stores.
const (
	HydrationLoaded    = "loaded"
	HydrationEmpty     = "empty"
	HydrationCorrupt   = "corrupt"
	HydrationReadError = "read_error"
)

// StoreMetrics counts commerce store activity: mutations per operation
// and hydration outcomes per store. All methods are nil-safe so stores
// can run unmetered in tests.
type StoreMetrics struct {
	Mutations  *prometheus.CounterVec
	Hydrations *prometheus.CounterVec
}

func NewStoreMetrics(reg *prometheus.Registry) *StoreMetrics {
	m := &StoreMetrics{
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_mutations_total",
				Help: "Store mutations by operation",
			},
			[]string{labelStore, labelOp},
		),
		Hydrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_hydrations_total",
				Help: "Store hydration outcomes",
			},
			[]string{labelStore, labelOutcome},
		),
	}

	reg.MustRegister(m.Mutations, m.Hydrations)
	return m
}

func (m *StoreMetrics) Mutation(store, op string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(store, op).Inc()
}

func (m *StoreMetrics) Hydration(store, outcome string) {
	if m == nil {
		return
	}
	m.Hydrations.WithLabelValues(store, outcome).Inc()
}
