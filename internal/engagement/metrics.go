package engagement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	swipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_swipes_total",
			Help: "Total number of swipes recorded",
		},
		[]string{"direction"},
	)

	matchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engagement_matches_total",
			Help: "Total number of matches created",
		},
	)

	quotaDeniedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engagement_quota_denied_total",
			Help: "Total number of likes denied by the daily quota",
		},
	)
)

func RecordSwipe(direction string) {
	swipesTotal.WithLabelValues(direction).Inc()
}

func RecordMatch() {
	matchesTotal.Inc()
}

func RecordQuotaDenied() {
	quotaDeniedTotal.Inc()
}
