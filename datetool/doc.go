// Package datetool provides the core types of a small date/time toolkit built around
// millisecond timestamps, pattern based formatting and relative "time ago" descriptions.
//
// This package defines the types shared by the other datetool packages:
//   - Instant: an immutable, millisecond resolution point in time
//   - TimestampAccuracy: millisecond or second timestamp strings
//   - Clock: the source of "now"
//   - Logger and MetricsCollector: optional observability hooks
//   - the error taxonomy rooted at ErrParse and ErrConstruction
//
// Instant also plugs into encoding/json (quoted millisecond timestamps),
// database/sql and pgx v5 (timestamptz).
//
// The operations live in sibling packages:
//   - layout: compiles format patterns like "yyyy-MM-dd HH:mm:ss SS" into formatters
//   - formatcache: shares compiled formatters between callers
//   - relative: describes an instant relative to another one
//   - dateengine: the facade exposing all operations
//
// Common usage pattern:
//
//	cache, _ := formatcache.NewCache()
//	engine, _ := dateengine.NewEngine(cache)
//
//	instant, err := engine.DateFromTimestamp("1562292000000")
//	if err != nil {
//		// handle error
//	}
//
//	described := engine.RelativeDescription(instant) // "3 hours ago", "2019-7-5", ...
//	seconds := instant.TimestampWithAccuracy(datetool.AccuracySecond)
package datetool
