package formatcache

import (
	"math"
	"time"

	"github.com/AntonStoeckl/datetool-go/datetool/layout"
)

// logConstruction logs a successful formatter construction at debug level if the logger is configured.
func (c *Cache) logConstruction(formatter *layout.Formatter, duration time.Duration, size int) {
	if c.logger != nil {
		c.logger.Debug(
			logMsgFormatterConstructed,
			logAttrPattern, formatter.Pattern(),
			logAttrFormatterID, formatter.ID().String(),
			logAttrDurationMS, toMilliseconds(duration),
			logAttrCacheSize, size,
		)
	}
}

// logConstructionError logs a rejected pattern at error level if the logger is configured.
func (c *Cache) logConstructionError(pattern string, err error) {
	if c.logger != nil {
		c.logger.Error(logMsgConstructionFailed, logAttrError, err.Error(), logAttrPattern, pattern)
	}
}

func (c *Cache) recordHit() {
	if c.metricsCollector != nil {
		c.metricsCollector.IncrementCounter(metricCacheHits, map[string]string{})
	}
}

func (c *Cache) recordConstruction(duration time.Duration, size int) {
	if c.metricsCollector != nil {
		c.metricsCollector.IncrementCounter(metricCacheMisses, map[string]string{})
		c.metricsCollector.RecordDuration(metricConstructionDuration, duration, map[string]string{labelStatus: statusSuccess})
		c.metricsCollector.RecordValue(metricCacheSize, float64(size), map[string]string{})
	}
}

func (c *Cache) recordConstructionError(duration time.Duration) {
	if c.metricsCollector != nil {
		c.metricsCollector.IncrementCounter(metricConstructionErrors, map[string]string{})
		c.metricsCollector.RecordDuration(metricConstructionDuration, duration, map[string]string{labelStatus: statusError})
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
