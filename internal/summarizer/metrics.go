package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder defines the interface for recording summarization metrics.
// It abstracts the metrics backend so tests can inject a mock recorder and
// all strategy implementations share one recording surface.
type MetricsRecorder interface {
	// RecordLength records the length of a generated summary in runes.
	RecordLength(length int)

	// RecordDuration records the time taken to generate a summary.
	RecordDuration(duration time.Duration)

	// RecordFallback increments the counter for remote failures that were
	// recovered by the local strategy.
	RecordFallback()

	// RecordTokens records the token usage reported by a remote call.
	RecordTokens(usage TokenUsage)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics.
type PrometheusMetrics struct {
	lengthHistogram   prometheus.Histogram
	durationHistogram prometheus.Histogram
	fallbackCounter   prometheus.Counter
	promptTokens      prometheus.Counter
	completionTokens  prometheus.Counter
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it doesn't exist
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// NewPrometheusMetrics creates a new Prometheus-based metrics recorder.
// Uses singleton pattern to avoid duplicate metric registration in tests.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			lengthHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "summary_length_characters",
				Help:    "Distribution of summary lengths in characters (Unicode runes)",
				Buckets: []float64{50, 100, 200, 300, 500, 700, 1000, 1500},
			}),
			durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "summarization_duration_seconds",
				Help:    "Time taken to generate a summary",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}),
			fallbackCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "summarization_fallback_total",
				Help: "Total number of remote failures recovered by the local strategy",
			}),
			promptTokens: getOrCreateCounter(prometheus.CounterOpts{
				Name: "summarization_prompt_tokens_total",
				Help: "Total prompt tokens consumed by remote summarization calls",
			}),
			completionTokens: getOrCreateCounter(prometheus.CounterOpts{
				Name: "summarization_completion_tokens_total",
				Help: "Total completion tokens consumed by remote summarization calls",
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordLength implements MetricsRecorder.RecordLength
func (p *PrometheusMetrics) RecordLength(length int) {
	p.lengthHistogram.Observe(float64(length))
}

// RecordDuration implements MetricsRecorder.RecordDuration
func (p *PrometheusMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}

// RecordFallback implements MetricsRecorder.RecordFallback
func (p *PrometheusMetrics) RecordFallback() {
	p.fallbackCounter.Inc()
}

// RecordTokens implements MetricsRecorder.RecordTokens
func (p *PrometheusMetrics) RecordTokens(usage TokenUsage) {
	p.promptTokens.Add(float64(usage.PromptTokens))
	p.completionTokens.Add(float64(usage.CompletionTokens))
}
