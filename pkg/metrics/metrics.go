package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Global collectors, registered on the default registry by promauto.

var (
	// HttpRequestsTotal counts requests by method, path and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readlens_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HttpRequestDuration measures server response time.
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "readlens_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	// AnalysesTotal counts analyses by kind (readability, keywords) and
	// outcome (ok, rejected, fault).
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readlens_analyses_total",
			Help: "Total number of text analyses by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// ReadabilityScore tracks the distribution of normalized 0-10 scores.
	ReadabilityScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "readlens_readability_score",
			Help:    "Normalized readability scores returned",
			Buckets: []float64{2, 4, 6, 7, 8, 10},
		},
	)

	// InputCharacters tracks the size of analyzed texts.
	InputCharacters = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "readlens_input_characters",
			Help:    "Length in characters of analyzed texts",
			Buckets: prometheus.ExponentialBuckets(50, 4, 8),
		},
		[]string{"kind"},
	)
)

// Analysis kinds used as label values.
const (
	KindReadability = "readability"
	KindKeywords    = "keywords"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFault    = "fault"
)

// ObserveAnalysis records one finished analysis of a text of the given
// length.
func ObserveAnalysis(kind, outcome string, characters int) {
	AnalysesTotal.WithLabelValues(kind, outcome).Inc()
	InputCharacters.WithLabelValues(kind).Observe(float64(characters))
}

// ObserveScore records one normalized readability score returned to a caller.
func ObserveScore(score int) {
	ReadabilityScore.Observe(float64(score))
}
