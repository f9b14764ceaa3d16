package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ScansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_scans_total",
			Help: "Total number of page scans by outcome",
		},
		[]string{"result"},
	)

	FetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seo_fetch_duration_seconds",
			Help:    "Duration of the outbound page fetch in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	Scores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seo_score",
			Help:    "Distribution of computed SEO scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

func init() {
	prometheus.MustRegister(ScansTotal, FetchDuration, Scores)
}
