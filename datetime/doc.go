// Package datetime converts between text, epoch milliseconds, time.Time and a
// zone-less civil date-time.
//
// A Converter is bound to a location and a date pattern. Patterns use the
// familiar letter notation (yyyy-MM-dd HH:mm:ss) and are translated to Go
// layouts once, when the Converter is built.
//
// # Configuration
//
//	datetime:
//	  zone: "Europe/Istanbul"
//	  pattern: "yyyy-MM-dd HH:mm:ss"
//
// # Usage
//
//	ldt, err := datetime.Parse("2024-03-01 10:00:00")
//	ms := datetime.ToUnixMilli(ldt)
//
// Package-level functions use the process local zone and DefaultPattern.
package datetime
