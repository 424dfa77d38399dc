package querycache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lexdesk",
		Subsystem: "querycache",
		Name:      "hits_total",
		Help:      "Reads served from a fresh cached entry.",
	})
	missesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lexdesk",
		Subsystem: "querycache",
		Name:      "misses_total",
		Help:      "Reads that required a fetch (absent, stale, or errored entry).",
	})
	sharedFlightsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lexdesk",
		Subsystem: "querycache",
		Name:      "shared_flights_total",
		Help:      "Reads that joined an in-flight fetch for the same key.",
	})
	invalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lexdesk",
		Subsystem: "querycache",
		Name:      "invalidations_total",
		Help:      "Entries marked stale by prefix invalidation.",
	})
	fetchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lexdesk",
		Subsystem: "querycache",
		Name:      "fetch_failures_total",
		Help:      "Fetches that failed after exhausting retries.",
	})
)
