package observability

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	IngestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_ingestions_total",
			Help: "Product page ingestions by outcome.",
		},
		[]string{"outcome"},
	)
	FetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "product_fetch_duration_seconds",
			Help:    "Time spent downloading product pages.",
			Buckets: prometheus.DefBuckets,
		},
	)
	PageCacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_cache_requests_total",
			Help: "Page cache lookups by result.",
		},
		[]string{"result"},
	)
	DataQualityWarnings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "data_quality_warnings_total",
			Help: "Non-fatal extraction anomalies by field.",
		},
		[]string{"field"},
	)
	EmbeddingsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "embeddings_total",
			Help: "Total embeddings generated.",
		},
	)
)

func init() {
	prometheus.MustRegister(IngestionsTotal)
	prometheus.MustRegister(FetchDuration)
	prometheus.MustRegister(PageCacheRequests)
	prometheus.MustRegister(DataQualityWarnings)
	prometheus.MustRegister(EmbeddingsTotal)
}

// Start serves /metrics on port in the background.
func Start(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		slog.Info("Exposing Prometheus metrics", "port", port)
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			slog.Error("Metrics server stopped", "error", err)
		}
	}()
}
