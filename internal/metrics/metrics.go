package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ff_collection"

// Outcomes of a collection operation
const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// Recorder records collection operation metrics
//
//go:generate mockgen -source=metrics.go -destination=../mocks/metrics.go -package=mocks -mock_names=Recorder=MockRecorder
type Recorder interface {
	// ObserveOperation records one executed operation and its outcome
	ObserveOperation(operation string, outcome string, duration time.Duration)
	// SetSupply records the number of issued tokens and the pooled balance
	SetSupply(totalMinted uint64, pooledBalance float64)
	// IncPublishFailure records an event that could not be published
	IncPublishFailure(eventType string)
}

// Prometheus is a Recorder backed by its own prometheus registry
type Prometheus struct {
	registry        *prometheus.Registry
	operations      *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	totalMinted     prometheus.Gauge
	pooledBalance   prometheus.Gauge
	publishFailures *prometheus.CounterVec
}

// NewPrometheus creates a recorder with the collection metrics and the go runtime collectors registered
func NewPrometheus() *Prometheus {
	m := &Prometheus{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of collection operations by outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of collection operations including persistence.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		totalMinted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_minted",
			Help:      "Number of issued tokens.",
		}),
		pooledBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pooled_balance",
			Help:      "Pooled balance of the collection, approximated as a float.",
		}),
		publishFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Number of committed events that could not be published.",
		}, []string{"event_type"}),
	}

	m.registry.MustRegister(
		m.operations,
		m.duration,
		m.totalMinted,
		m.pooledBalance,
		m.publishFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Prometheus) ObserveOperation(operation string, outcome string, duration time.Duration) {
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Prometheus) SetSupply(totalMinted uint64, pooledBalance float64) {
	m.totalMinted.Set(float64(totalMinted))
	m.pooledBalance.Set(pooledBalance)
}

func (m *Prometheus) IncPublishFailure(eventType string) {
	m.publishFailures.WithLabelValues(eventType).Inc()
}

// Registry returns the underlying registry
func (m *Prometheus) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format
func (m *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Nop discards every measurement
type Nop struct{}

func (Nop) ObserveOperation(string, string, time.Duration) {}
func (Nop) SetSupply(uint64, float64)                      {}
func (Nop) IncPublishFailure(string)                       {}
