package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingestionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_ingestion_duration_seconds",
			Help:    "Time spent ingesting a dataset",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dataset", "status"},
	)

	ingestionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_ingestion_total",
			Help: "Total number of dataset ingestion operations",
		},
		[]string{"dataset", "status"},
	)

	recordsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_records_processed_total",
			Help: "Total number of dataset records processed",
		},
		[]string{"dataset", "collection"},
	)

	recordsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_records_stored_total",
			Help: "Total number of dataset records successfully stored",
		},
		[]string{"dataset", "collection"},
	)

	recordsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_records_failed_total",
			Help: "Total number of dataset records that failed to store",
		},
		[]string{"dataset", "collection", "error_type"},
	)
)

// RecordIngestionMetrics records metrics for one dataset ingestion pass
func RecordIngestionMetrics(dataset, collection string, startTime time.Time, status string, recordCount, storedCount, failedCount int) {
	duration := time.Since(startTime).Seconds()

	ingestionDuration.WithLabelValues(dataset, status).Observe(duration)
	ingestionTotal.WithLabelValues(dataset, status).Inc()

	recordsProcessed.WithLabelValues(dataset, collection).Add(float64(recordCount))
	recordsStored.WithLabelValues(dataset, collection).Add(float64(storedCount))
	if failedCount > 0 {
		recordsFailed.WithLabelValues(dataset, collection, "storage_error").Add(float64(failedCount))
	}
}
