package oteladapters_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/datetool-go/datetool/formatcache"
	"github.com/AntonStoeckl/datetool-go/datetool/oteladapters"
)

func newCollector() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	return resourceMetrics
}

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	// arrange
	collector, reader := newCollector()

	// act
	collector.RecordDuration(
		"datetool_formatter_construction_duration_seconds",
		150*time.Millisecond,
		map[string]string{"status": "success"},
	)

	// assert
	histogram := findHistogramMetric(t, collect(t, reader), "datetool_formatter_construction_duration_seconds")
	require.Len(t, histogram.DataPoints, 1)
	dataPoint := histogram.DataPoints[0]
	assert.Equal(t, uint64(1), dataPoint.Count)
	assert.InDelta(t, 0.15, dataPoint.Sum, 0.001)
	expectedAttrs := attribute.NewSet(attribute.String("status", "success"))
	assert.True(t, dataPoint.Attributes.Equals(&expectedAttrs))
}

func Test_MetricsCollector_IncrementCounter(t *testing.T) {
	// arrange
	collector, reader := newCollector()
	labels := map[string]string{"bucket": "minutes"}

	// act
	collector.IncrementCounter("datetool_relative_descriptions_total", labels)
	collector.IncrementCounter("datetool_relative_descriptions_total", labels)
	collector.IncrementCounter("datetool_relative_descriptions_total", map[string]string{"bucket": "days"})

	// assert
	counter := findCounterMetric(t, collect(t, reader), "datetool_relative_descriptions_total")
	require.Len(t, counter.DataPoints, 2)
	assert.True(t, counter.IsMonotonic)

	values := map[string]int64{}
	for _, dataPoint := range counter.DataPoints {
		bucket, _ := dataPoint.Attributes.Value("bucket")
		values[bucket.AsString()] = dataPoint.Value
	}
	assert.Equal(t, map[string]int64{"minutes": 2, "days": 1}, values)
}

func Test_MetricsCollector_RecordValue_ShouldKeepLastValue(t *testing.T) {
	// arrange
	collector, reader := newCollector()

	// act
	collector.RecordValue("datetool_formatter_cache_size", 1, nil)
	collector.RecordValue("datetool_formatter_cache_size", 2, nil)

	// assert
	gauge := findGaugeMetric(t, collect(t, reader), "datetool_formatter_cache_size")
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 2.0, gauge.DataPoints[0].Value, 0)
}

func Test_MetricsCollector_ShouldBeSafeForConcurrentUse(t *testing.T) {
	// arrange
	collector, reader := newCollector()
	var wg sync.WaitGroup

	// act
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.IncrementCounter("concurrent_total", nil)
			collector.RecordDuration("concurrent_duration_seconds", time.Millisecond, nil)
			collector.RecordValue("concurrent_value", 1, nil)
		}()
	}
	wg.Wait()

	// assert
	counter := findCounterMetric(t, collect(t, reader), "concurrent_total")
	assert.Equal(t, int64(32), counter.DataPoints[0].Value)
}

func Test_MetricsCollector_ShouldReceiveFormatterCacheMetrics(t *testing.T) {
	// arrange
	collector, reader := newCollector()
	cache, err := formatcache.NewCache(formatcache.WithMetrics(collector))
	require.NoError(t, err)

	// act
	_, err = cache.Get("yyyy-MM-dd")
	require.NoError(t, err)
	_, err = cache.Get("yyyy-MM-dd")
	require.NoError(t, err)

	// assert
	resourceMetrics := collect(t, reader)
	assert.Equal(t, int64(1), findCounterMetric(t, resourceMetrics, "datetool_formatter_cache_hits_total").DataPoints[0].Value)
	assert.Equal(t, int64(1), findCounterMetric(t, resourceMetrics, "datetool_formatter_cache_misses_total").DataPoints[0].Value)
	assert.InDelta(t, 1.0, findGaugeMetric(t, resourceMetrics, "datetool_formatter_cache_size").DataPoints[0].Value, 0)
	assert.Equal(t, uint64(1), findHistogramMetric(t, resourceMetrics, "datetool_formatter_construction_duration_seconds").DataPoints[0].Count)
}

func Test_MetricsCollector_InstrumentCreationErrors(t *testing.T) {
	// arrange
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	collector := oteladapters.NewMetricsCollector(&errorInjectingMeter{Meter: provider.Meter("test")})

	// act & assert
	assert.NotPanics(t, func() {
		collector.RecordDuration("error_histogram", 100*time.Millisecond, nil)
	})
	assert.NotPanics(t, func() {
		collector.IncrementCounter("error_counter", nil)
	})
	assert.NotPanics(t, func() {
		collector.RecordValue("error_gauge", 42.0, nil)
	})
}

// errorInjectingMeter returns errors for instruments with an "error_" name.
type errorInjectingMeter struct {
	metric.Meter
}

func (m *errorInjectingMeter) Float64Histogram(name string, options ...metric.Float64HistogramOption) (metric.Float64Histogram, error) {
	if name == "error_histogram" {
		return nil, errors.New("histogram creation failed")
	}
	return m.Meter.Float64Histogram(name, options...)
}

func (m *errorInjectingMeter) Int64Counter(name string, options ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	if name == "error_counter" {
		return nil, errors.New("counter creation failed")
	}
	return m.Meter.Int64Counter(name, options...)
}

func (m *errorInjectingMeter) Float64Gauge(name string, options ...metric.Float64GaugeOption) (metric.Float64Gauge, error) {
	if name == "error_gauge" {
		return nil, errors.New("gauge creation failed")
	}
	return m.Meter.Float64Gauge(name, options...)
}

func findHistogramMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Histogram[float64] {
	t.Helper()
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				if h, ok := m.Data.(metricdata.Histogram[float64]); ok {
					return &h
				}
			}
		}
	}
	t.Fatalf("Histogram metric %s not found", name)
	return nil
}

func findCounterMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Sum[int64] {
	t.Helper()
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				if c, ok := m.Data.(metricdata.Sum[int64]); ok {
					return &c
				}
			}
		}
	}
	t.Fatalf("Counter metric %s not found", name)
	return nil
}

func findGaugeMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Gauge[float64] {
	t.Helper()
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				if g, ok := m.Data.(metricdata.Gauge[float64]); ok {
					return &g
				}
			}
		}
	}
	t.Fatalf("Gauge metric %s not found", name)
	return nil
}
