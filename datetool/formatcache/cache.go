package formatcache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/AntonStoeckl/datetool-go/datetool"
	"github.com/AntonStoeckl/datetool-go/datetool/layout"
)

const (
	logMsgFormatterConstructed = "formatter constructed"
	logMsgConstructionFailed   = "formatter construction failed"
	logAttrPattern             = "pattern"
	logAttrFormatterID         = "formatter_id"
	logAttrDurationMS          = "duration_ms"
	logAttrCacheSize           = "cache_size"
	logAttrError               = "error"
	metricCacheHits            = "datetool_formatter_cache_hits_total"
	metricCacheMisses          = "datetool_formatter_cache_misses_total"
	metricConstructionErrors   = "datetool_formatter_construction_errors_total"
	metricConstructionDuration = "datetool_formatter_construction_duration_seconds"
	metricCacheSize            = "datetool_formatter_cache_size"
	statusSuccess              = "success"
	statusError                = "error"
	labelStatus                = "status"
)

// Cache maps format pattern strings to compiled formatters for the lifetime of the Cache.
// It is safe for concurrent use. The zero value is not usable, construct it with NewCache.
type Cache struct {
	mu               sync.RWMutex
	formatters       map[string]*layout.Formatter
	constructions    singleflight.Group
	logger           datetool.Logger
	metricsCollector datetool.MetricsCollector
}

// NewCache creates an empty Cache with optional configuration.
func NewCache(options ...Option) (*Cache, error) {
	c := &Cache{
		formatters: make(map[string]*layout.Formatter),
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Get returns the formatter for pattern, compiling and storing it on first use.
//
// Subsequent calls with the same pattern string return the identical *layout.Formatter.
// A pattern the formatter engine rejects yields an error wrapping datetool.ErrConstruction,
// and the failure is not cached: the next Get for that pattern compiles again.
func (c *Cache) Get(pattern string) (*layout.Formatter, error) {
	if formatter, found := c.lookup(pattern); found {
		c.recordHit()
		return formatter, nil
	}

	result, err, _ := c.constructions.Do(pattern, func() (any, error) {
		return c.construct(pattern)
	})
	if err != nil {
		return nil, err
	}

	return result.(*layout.Formatter), nil
}

// Len returns the number of cached formatters.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.formatters)
}

func (c *Cache) lookup(pattern string) (*layout.Formatter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	formatter, found := c.formatters[pattern]

	return formatter, found
}

// construct runs at most once at a time per pattern. A caller that missed the fast path while a
// previous construction was completing finds the stored formatter in the re-check.
func (c *Cache) construct(pattern string) (*layout.Formatter, error) {
	if formatter, found := c.lookup(pattern); found {
		c.recordHit()
		return formatter, nil
	}

	start := time.Now()
	formatter, err := layout.Compile(pattern)
	duration := time.Since(start)

	if err != nil {
		c.logConstructionError(pattern, err)
		c.recordConstructionError(duration)
		return nil, err
	}

	c.mu.Lock()
	c.formatters[pattern] = formatter
	size := len(c.formatters)
	c.mu.Unlock()

	c.logConstruction(formatter, duration, size)
	c.recordConstruction(duration, size)

	return formatter, nil
}
