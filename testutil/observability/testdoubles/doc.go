// Package testdoubles provides test doubles for the observability and clock seams of datetool.
//
//   - LogHandlerSpy: a slog.Handler capturing records, with a fluent matcher for level, message and attributes
//   - MetricsCollectorSpy: a datetool.MetricsCollector capturing durations, counters and values
//   - ClockStub: a datetool.Clock returning a settable instant
//
// They let the packages test their logging and metrics without a telemetry backend.
package testdoubles
