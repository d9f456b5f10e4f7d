// Package dateengine provides Engine, the entry point bundling everything datetool offers.
//
// An Engine combines a shared formatcache.Cache, a wall clock, a location used as the calendar
// for patterns and weekdays, and a relative.Describer. Timestamps are decimal strings of epoch
// milliseconds unless an operation takes a datetool.TimestampAccuracy.
//
// Features:
//   - Pattern based formatting and strict parsing through shared, cached formatters
//   - Timestamp strings in millisecond or second accuracy
//   - Relative descriptions like "5 minutes ago"
//   - Weekdays numbered 1 (Sunday) to 7 (Saturday)
//   - Injectable clock and location, optional logging and metrics
//
// Usage examples:
//
//	cache, _ := formatcache.NewCache()
//	engine, _ := dateengine.NewEngine(cache, dateengine.WithLocationName("Asia/Shanghai"))
//
//	text, err := engine.DateString("1562292000000", "yyyy-MM-dd HH:mm")              // "2019-07-05 10:00"
//	ts, err := engine.TimestampFromDateString("2019-07-05 10:00", "yyyy-MM-dd HH:mm") // "1562292000000"
//	weekday, err := engine.WeekdayFromTimestamp("1562292000000")                     // 6, a Friday
//	phrase := engine.RelativeDescription(someInstant)                                // "3 hours ago"
//
// Failures are classified by errors.Is against datetool.ErrParse for bad input and
// datetool.ErrConstruction for bad patterns.
package dateengine
