// Package oteladapters provides OpenTelemetry implementations of the datetool observability interfaces.
//
//   - MetricsCollector maps datetool.MetricsCollector onto OpenTelemetry histograms, counters and gauges
//   - SlogBridgeLogger is a datetool.Logger on top of the otelslog bridge
//   - OTelLogger is a datetool.Logger emitting OpenTelemetry log records directly
//
// Usage example:
//
//	meter := otel.GetMeterProvider().Meter("datetool")
//	cache, _ := formatcache.NewCache(
//		formatcache.WithLogger(oteladapters.NewSlogBridgeLogger("datetool")),
//		formatcache.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//	)
package oteladapters
