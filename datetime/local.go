package datetime

import "time"

const isoLayout = "2006-01-02T15:04:05.999999999"

// LocalDateTime is a date and wall clock time without a zone. It names an
// instant only once a location is supplied.
type LocalDateTime struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// LocalOf returns the wall clock reading of t in loc.
func LocalOf(t time.Time, loc *time.Location) LocalDateTime {
	return wallClock(t.In(loc))
}

func wallClock(t time.Time) LocalDateTime {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	return LocalDateTime{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     sec,
		Nanosecond: t.Nanosecond(),
	}
}

// In returns the instant at which clocks in loc read l. Readings skipped or
// repeated by a zone transition resolve the way time.Date does.
func (l LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(l.Year, l.Month, l.Day, l.Hour, l.Minute, l.Second, l.Nanosecond, loc)
}

// IsZero reports whether l is the zero value.
func (l LocalDateTime) IsZero() bool {
	return l == LocalDateTime{}
}

// Before reports whether l is earlier than u.
func (l LocalDateTime) Before(u LocalDateTime) bool {
	return l.In(time.UTC).Before(u.In(time.UTC))
}

// After reports whether l is later than u.
func (l LocalDateTime) After(u LocalDateTime) bool {
	return l.In(time.UTC).After(u.In(time.UTC))
}

// Equal reports whether l and u name the same reading after normalization.
func (l LocalDateTime) Equal(u LocalDateTime) bool {
	return l.In(time.UTC).Equal(u.In(time.UTC))
}

// String formats l as ISO-8601 without offset, e.g. 2024-03-01T10:00:00.
func (l LocalDateTime) String() string {
	return l.In(time.UTC).Format(isoLayout)
}
