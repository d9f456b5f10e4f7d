// Package formatcache provides the shared formatter cache of the datetool packages.
//
// Compiling a pattern is the expensive part of pattern based formatting, so callers should build
// one Cache at the top of their application and hand it to everything that formats or parses dates.
// The cache maps the exact pattern string to one *layout.Formatter for the lifetime of the Cache:
// there is no eviction and no size bound, which is fine because patterns come from a small set of
// call sites.
//
// Key features:
//   - Identity: the same pattern string always yields the same *layout.Formatter
//   - Concurrency safe insert-if-absent: concurrent first access compiles a pattern exactly once
//   - Failed compilations are returned to the caller and never cached
//   - Optional logging and metrics
//
// Usage examples:
//
//	// Basic usage
//	cache, _ := formatcache.NewCache()
//	formatter, err := cache.Get("yyyy-MM-dd HH:mm:ss")
//
//	// With observability
//	cache, _ := formatcache.NewCache(
//		formatcache.WithLogger(slog.Default()),
//		formatcache.WithMetrics(metricsCollector),
//	)
package formatcache
