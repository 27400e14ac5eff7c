// Package metrics expõe os contadores Prometheus da API
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "metrics_api"

var (
	// Registry guarda os coletores da aplicação
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Requisições HTTP em andamento.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms a ~5s
		},
		[]string{"method", "path"},
	)

	transactionsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transactions",
			Name:      "recorded_total",
			Help:      "Transações registradas por tipo de aparelho.",
		},
		[]string{"device_type"},
	)

	snapshotSyncRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot_sync",
			Name:      "runs_total",
			Help:      "Execuções da sincronização de snapshots diários.",
		},
		[]string{"result"},
	)

	snapshotSyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "snapshot_sync",
			Name:      "run_duration_seconds",
			Help:      "Duração da sincronização de snapshots diários.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		transactionsRecorded,
		snapshotSyncRuns,
		snapshotSyncDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler expõe os coletores registrados
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// rótulo das requisições que não casam com nenhuma rota registrada
const unmatchedPath = "other"

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
}

// RouteMatcher resolve o padrão da rota que atende a requisição
type RouteMatcher interface {
	Match(method, path string) (string, bool)
}

// Instrument coleta contagem e duração de cada requisição. O rótulo path é o padrão
// da rota, ou "other" quando nenhuma rota casa, e o método fora da lista vira "OTHER".
func Instrument(routes RouteMatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			httpInFlight.Inc()
			defer httpInFlight.Dec()

			next.ServeHTTP(rec, r)

			method := r.Method
			if _, ok := knownMethods[method]; !ok {
				method = "OTHER"
			}
			path, ok := routes.Match(r.Method, r.URL.Path)
			if !ok {
				path = unmatchedPath
			}

			httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
			httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		})
	}
}

func RecordTransaction(deviceType string) {
	if deviceType == "" {
		deviceType = "unknown"
	}
	transactionsRecorded.WithLabelValues(deviceType).Inc()
}

func RecordSnapshotSync(duration time.Duration, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	snapshotSyncRuns.WithLabelValues(result).Inc()
	snapshotSyncDuration.Observe(duration.Seconds())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
