// Package metrics provides Prometheus metrics for the fittrack calculator.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default histogram layouts.
var (
	defaultLatencyBuckets  = prometheus.ExponentialBuckets(0.001, 4, 10) // 1µs .. ~262ms, in ms
	defaultDistanceBuckets = []float64{0.5, 1, 2, 5, 10, 21.1, 42.2, 100}
	defaultCaloriesBuckets = []float64{50, 100, 200, 400, 800, 1600, 3200}
)

// Manager manages all Prometheus metrics for fittrack.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Workout metrics
	workoutsProcessed  *prometheus.CounterVec
	workoutErrors      *prometheus.CounterVec
	calculationLatency prometheus.Histogram
	workoutDistance    *prometheus.HistogramVec
	workoutCalories    *prometheus.HistogramVec

	// Batch metrics
	batches           *prometheus.CounterVec
	batchDuration     prometheus.Histogram
	lastBatchPackages prometheus.Gauge
	lastBatchFailures prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fittrack",
		subsystem:        "workouts",
		histogramBuckets: defaultLatencyBuckets,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.workoutsProcessed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "processed_total",
		Help:        "Total number of workout packages turned into a summary, by training type",
		ConstLabels: m.constLabels,
	}, []string{"type"})

	m.workoutErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Total number of rejected workout packages, by error kind",
		ConstLabels: m.constLabels,
	}, []string{"kind"})

	m.calculationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "calculation_latency_milliseconds",
		Help:        "Time spent validating and calculating one package in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.workoutDistance = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "distance_km",
		Help:        "Distance covered per workout in km",
		Buckets:     defaultDistanceBuckets,
		ConstLabels: m.constLabels,
	}, []string{"type"})

	m.workoutCalories = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "calories_kcal",
		Help:        "Calories spent per workout in kcal",
		Buckets:     defaultCaloriesBuckets,
		ConstLabels: m.constLabels,
	}, []string{"type"})

	m.batches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "batch",
		Name:        "runs_total",
		Help:        "Total number of batch runs, by outcome",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.batchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "batch",
		Name:        "duration_milliseconds",
		Help:        "Batch run duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.lastBatchPackages = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "batch",
		Name:        "last_packages",
		Help:        "Number of packages in the last batch",
		ConstLabels: m.constLabels,
	})

	m.lastBatchFailures = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "batch",
		Name:        "last_failures",
		Help:        "Number of rejected packages in the last batch",
		ConstLabels: m.constLabels,
	})
}

// RecordWorkout counts one summarized workout and observes its distance and calories.
func (m *Manager) RecordWorkout(trainingType string, distanceKm, calories float64) {
	m.workoutsProcessed.WithLabelValues(trainingType).Inc()
	m.workoutDistance.WithLabelValues(trainingType).Observe(distanceKm)
	m.workoutCalories.WithLabelValues(trainingType).Observe(calories)
}

// RecordWorkoutError counts one rejected package.
func (m *Manager) RecordWorkoutError(kind string) {
	m.workoutErrors.WithLabelValues(kind).Inc()
}

// RecordCalculationLatency records per-package latency in milliseconds.
func (m *Manager) RecordCalculationLatency(latencyMs float64) {
	m.calculationLatency.Observe(latencyMs)
}

// RecordBatch records the outcome and size of a finished batch.
func (m *Manager) RecordBatch(outcome string, packages, failures int, durationMs float64) {
	m.batches.WithLabelValues(outcome).Inc()
	m.batchDuration.Observe(durationMs)
	m.lastBatchPackages.Set(float64(packages))
	m.lastBatchFailures.Set(float64(failures))
}

// RecordWorkout records on the global manager.
func RecordWorkout(trainingType string, distanceKm, calories float64) {
	globalManager.RecordWorkout(trainingType, distanceKm, calories)
}

// RecordWorkoutError records on the global manager.
func RecordWorkoutError(kind string) {
	globalManager.RecordWorkoutError(kind)
}

// RecordCalculationLatency records on the global manager.
func RecordCalculationLatency(latencyMs float64) {
	globalManager.RecordCalculationLatency(latencyMs)
}

// RecordBatch records on the global manager.
func RecordBatch(outcome string, packages, failures int, durationMs float64) {
	globalManager.RecordBatch(outcome, packages, failures, durationMs)
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the global registry in the text exposition format,
// suitable for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return WriteRegistryTextfile(path, customRegistry)
}

// WriteRegistryTextfile writes g to path atomically.
func WriteRegistryTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}
