package browse

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	staleResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_stale_responses_total",
		Help: "Responses dropped because a newer request superseded them",
	}, []string{"kind"})

	listFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_list_fetches_total",
		Help: "Committed list fetches by outcome",
	}, []string{"outcome"})

	enrichmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_enrichments_total",
		Help: "Detail enrichments by outcome",
	}, []string{"outcome"})

	enrichmentDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roster_enrichment_duration_seconds",
		Help:    "Time to resolve homeworld, species and films for one character",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	searchCommitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_search_commits_total",
		Help: "Search terms committed after the debounce delay",
	})
)
