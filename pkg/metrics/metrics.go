// Package metrics expõe as métricas Prometheus da sincronização e da API
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncRunsTotal conta os ciclos de sincronização por modo e resultado
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revenue_sync_runs_total",
			Help: "Total number of revenue sync cycles",
		},
		[]string{"mode", "status"},
	)

	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "revenue_sync_duration_seconds",
			Help:    "Duration of revenue sync cycles in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"mode"},
	)

	SyncChefsProjet = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "revenue_sync_chefs_projet",
			Help: "Number of CDP rows upserted by the last successful sync",
		},
	)

	SyncTotalRevenue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "revenue_sync_total_revenue",
			Help: "Total revenue reported by the last successful sync",
		},
	)

	// SourceRowsSkippedTotal conta linhas descartadas por estarem mal formatadas
	SourceRowsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revenue_source_rows_skipped_total",
			Help: "Total number of malformed source rows skipped",
		},
		[]string{"mode"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)
)
