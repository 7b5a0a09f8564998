package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	discoveryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_discovery_requests_total",
			Help: "Total number of discovery requests",
		},
		[]string{"tier"},
	)

	candidatePoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_candidate_pool_size",
			Help:    "Candidate pool sizes fetched per discovery request",
			Buckets: prometheus.LinearBuckets(0, 20, 6),
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_compatibility_scores",
			Help:    "Distribution of compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

func RecordDiscovery(tier string) {
	discoveryRequestsTotal.WithLabelValues(tier).Inc()
}

func ObserveCandidatePool(size int) {
	candidatePoolSize.Observe(float64(size))
}

func RecordCompatibilityScore(score int) {
	compatibilityScores.Observe(float64(score))
}
