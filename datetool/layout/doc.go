// Package layout compiles date format patterns into reusable formatters.
//
// Patterns use the Unicode LDML field letters familiar from ICU and NSDateFormatter,
// not Go's reference time layouts:
//
//	yyyy-MM-dd HH:mm:ss SS   ->  2019-07-05 10:00:00 12
//	yyyy-M-d                 ->  2019-7-5
//	EEE, d MMM yyyy h:mm a   ->  Fri, 5 Jul 2019 10:00 AM
//	yyyy-MM-dd'T'HH:mm:ssXXX ->  2019-07-05T10:00:00+08:00
//
// Supported fields:
//   - G: era (AD, BC)
//   - y, yy, yyyy: year, yy being the two digit year
//   - M, MM, MMM, MMMM (or L...): month as number, short or full English name
//   - d, dd: day of month; D, DD, DDD: day of year
//   - E, EE, EEE, EEEE: short or full English weekday name
//   - a: AM/PM marker
//   - H, HH (0-23), h, hh (1-12), k, kk (1-24), K, KK (0-11): hour
//   - m, mm: minute; s, ss: second
//   - S...: fraction of a second, one letter per digit, truncated
//   - Z, ZZ, ZZZ: +0800; ZZZZZ: +08:00 or Z; x, xx, xxx and X, XX, XXX: ISO 8601 offsets
//   - z...: zone abbreviation
//
// Text in single quotes is literal, a doubled single quote stands for one quote character. Every other ASCII letter is reserved
// and makes Compile fail with datetool.ErrInvalidPattern.
//
// Parsing is strict: every character of the input must be consumed by the pattern, every field
// must be in range and the resulting date must exist. Fields missing from the pattern default to
// 1970-01-01 00:00:00.000.
package layout
