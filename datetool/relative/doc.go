// Package relative renders how long ago an instant happened as a short English phrase.
//
// The elapsed time is measured in whole seconds and classified into buckets:
//
//	less than a minute   "just now"
//	less than an hour    "N minutes ago"
//	less than a day      "N hours ago"
//	less than ten days   "N days ago"
//	ten days or more     the absolute date, "2019-7-5" by default
//
// Counts are truncated, never rounded, and never pluralised: one minute is "1 minutes ago".
// Instants in the future describe as "just now".
package relative
