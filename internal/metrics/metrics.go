// Package metrics provides Prometheus metrics for the feed reader.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kindlyrss"

var (
	// SyncTotal counts feed syncs by outcome: fresh, synced, failed.
	SyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_total",
			Help:      "Total number of feed sync attempts",
		},
		[]string{"result"},
	)

	// SyncDuration measures stale-path sync duration.
	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duration of feed syncs that hit the network, in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// ArticlesDiscovered counts new items by processing mode: inline, download, deferred.
	ArticlesDiscovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_discovered_total",
			Help:      "Total number of new feed items by processing mode",
		},
		[]string{"mode"},
	)

	// ArticleProcessFailures counts dropped items by failing stage.
	ArticleProcessFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_process_failures_total",
			Help:      "Total number of new items dropped during processing",
		},
		[]string{"stage"},
	)

	// ImagesTotal counts image rewrites: stored, passthrough, placeholder.
	ImagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "images_total",
			Help:      "Total number of article images handled",
		},
		[]string{"result"},
	)

	// LazyFetchTotal counts on-demand article content fetches: cached, fetched, failed.
	LazyFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lazy_fetch_total",
			Help:      "Total number of on-demand article content requests",
		},
		[]string{"result"},
	)
)

// RecordSync records a sync outcome. Duration is only observed for syncs
// that went to the network.
func RecordSync(result string, seconds float64) {
	SyncTotal.WithLabelValues(result).Inc()
	if result != "fresh" {
		SyncDuration.Observe(seconds)
	}
}

// RecordDiscovered records new items planned in the given mode.
func RecordDiscovered(mode string, count int) {
	if count <= 0 {
		return
	}
	ArticlesDiscovered.WithLabelValues(mode).Add(float64(count))
}

// RecordProcessFailure records an item dropped at the given stage.
func RecordProcessFailure(stage string) {
	ArticleProcessFailures.WithLabelValues(stage).Inc()
}

// RecordImage records the outcome of one image rewrite.
func RecordImage(result string) {
	ImagesTotal.WithLabelValues(result).Inc()
}

// RecordLazyFetch records the outcome of an article content request.
func RecordLazyFetch(result string) {
	LazyFetchTotal.WithLabelValues(result).Inc()
}
