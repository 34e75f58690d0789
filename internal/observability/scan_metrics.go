package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricFilesVisited   = "huescan.scan.files.visited"
	metricOccurrences    = "huescan.scan.occurrences"
	metricScanDuration   = "huescan.scan.duration.seconds"
	metricFilesSkipped   = "huescan.scan.files.skipped"
	metricScansTruncated = "huescan.scan.truncated"

	attrStatus = "status"
)

// durationBucketBoundaries covers 1ms to 30s: import closures are small
// by design (file-count cap), so passes finish fast.
var durationBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// ScanMetrics holds the OTel instruments recorded once per scan pass.
type ScanMetrics struct {
	filesVisited   metric.Int64Counter
	occurrences    metric.Int64Counter
	filesSkipped   metric.Int64Counter
	scansTruncated metric.Int64Counter
	scanDuration   metric.Float64Histogram
}

// NewScanMetrics creates the scan instruments from the given meter.
func NewScanMetrics(mt metric.Meter) (*ScanMetrics, error) {
	b := newMetricBuilder(mt)

	sm := &ScanMetrics{
		filesVisited:   b.counter(metricFilesVisited, "Files visited during import traversal", "{file}"),
		occurrences:    b.counter(metricOccurrences, "Color occurrences found", "{occurrence}"),
		filesSkipped:   b.counter(metricFilesSkipped, "Files skipped as unreadable", "{file}"),
		scansTruncated: b.counter(metricScansTruncated, "Scan passes truncated by the file cap", "{scan}"),
		scanDuration:   b.histogram(metricScanDuration, "Scan pass duration in seconds", "s", durationBucketBoundaries...),
	}

	if b.err != nil {
		return nil, b.err
	}

	return sm, nil
}

// RecordPass records the outcome of one completed scan pass.
func (sm *ScanMetrics) RecordPass(ctx context.Context, files, skipped, occurrences int, truncated bool, duration time.Duration) {
	status := "complete"
	if truncated {
		status = "truncated"

		sm.scansTruncated.Add(ctx, 1)
	}

	attrs := metric.WithAttributes(attribute.String(attrStatus, status))

	sm.filesVisited.Add(ctx, int64(files), attrs)
	sm.filesSkipped.Add(ctx, int64(skipped), attrs)
	sm.occurrences.Add(ctx, int64(occurrences), attrs)
	sm.scanDuration.Record(ctx, duration.Seconds(), attrs)
}
