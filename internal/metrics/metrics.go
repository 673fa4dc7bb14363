// Package metrics defines Prometheus metrics for wordladder.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordladder_search_duration_seconds",
			Help:    "Search wall-clock duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"strategy", "status"},
	)

	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordladder_searches_total",
			Help: "Total searches by strategy and outcome",
		},
		[]string{"strategy", "status"},
	)

	ExpandedNodes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordladder_search_expanded_nodes",
			Help:    "Words expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"strategy"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordladder_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordladder_graph_cache_lookups_total",
			Help: "Graph cache lookups by the tier that served them",
		},
		[]string{"tier"},
	)

	GraphWords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wordladder_graph_words",
			Help: "Words in the most recently loaded graph",
		},
	)

	GraphEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wordladder_graph_edges",
			Help: "Edges in the most recently loaded graph",
		},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordladder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordladder_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		SearchDuration, SearchesTotal, ExpandedNodes, ErrorsTotal,
		CacheLookups, GraphWords, GraphEdges,
		RequestDuration, RequestsTotal,
	)
}

// ObserveSearch records one finished search.
func ObserveSearch(strategy, status string, elapsed time.Duration, expanded int) {
	SearchDuration.WithLabelValues(strategy, status).Observe(elapsed.Seconds())
	SearchesTotal.WithLabelValues(strategy, status).Inc()
	ExpandedNodes.WithLabelValues(strategy).Observe(float64(expanded))
}

// SetGraph publishes the size of the graph being served.
func SetGraph(words, edges int) {
	GraphWords.Set(float64(words))
	GraphEdges.Set(float64(edges))
}
