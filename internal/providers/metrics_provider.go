package providers

import (
	"drinkdays/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(query string)
	IncCacheMisses(query string)
	ObservePersistenceDuration(store string, duration time.Duration)
	IncPersistenceFailures(store string)
}

// JournalState is the part of the record store the gauges read.
type JournalState interface {
	Len() int
	ReadOnly() bool
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	persistenceDuration *prometheus.HistogramVec
	persistenceFailures *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(query string) {
	m.cacheHits.WithLabelValues(query).Inc()
}

func (m *MetricsProvider) IncCacheMisses(query string) {
	m.cacheMisses.WithLabelValues(query).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(store string, duration time.Duration) {
	m.persistenceDuration.WithLabelValues(store).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPersistenceFailures(store string) {
	m.persistenceFailures.WithLabelValues(store).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, journal JournalState) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "drinkdays_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "drinkdays_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "drinkdays_cache_hits_total",
			Help: "Total number of memoized query hits",
		}, []string{"query"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "drinkdays_cache_misses_total",
			Help: "Total number of memoized query misses",
		}, []string{"query"}),

		persistenceDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "drinkdays_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"store"}),

		persistenceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "drinkdays_persistence_failures_total",
			Help: "Total number of failed persistence writes",
		}, []string{"store"}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "drinkdays_records_total",
		Help: "Number of records in the journal",
	}, func() float64 {
		return float64(journal.Len())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "drinkdays_records_read_only",
		Help: "1 when the journal refused a corrupt payload and rejects writes",
	}, func() float64 {
		if journal.ReadOnly() {
			return 1
		}
		return 0
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                     {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)     {}
func (n *noopMetrics) IncCacheHits(_ string)                                {}
func (n *noopMetrics) IncCacheMisses(_ string)                              {}
func (n *noopMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncPersistenceFailures(_ string)                      {}
