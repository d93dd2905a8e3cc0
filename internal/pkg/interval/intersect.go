package interval

import (
	"time"

	"github.com/netsec-ethz/isorange/internal/pkg/datepart"
)

//From returns the instant at which the interval starts.
func (iv Interval) From() time.Time {
	return iv.Start.Instant()
}

//Until returns the instant directly after the interval. The last value is included as a whole, so
//2024-07-07/08 lasts until 2024-07-09T00:00:00.
func (iv Interval) Until() time.Time {
	last := iv.End
	if last.Len() == 0 {
		last = iv.Start
	}
	t := last.Instant()
	switch last.First() + datepart.Field(last.Len()-1) {
	case datepart.Year:
		return t.AddDate(1, 0, 0)
	case datepart.Month:
		return t.AddDate(0, 1, 0)
	case datepart.Day:
		return t.AddDate(0, 0, 1)
	case datepart.Hour:
		return t.Add(time.Hour)
	case datepart.Minute:
		return t.Add(time.Minute)
	}
	return t.Add(time.Second)
}

//Intersect returns true if a and b share at least one instant.
func Intersect(a, b Interval) bool {
	if a.Start.Len() == 0 || b.Start.Len() == 0 {
		return false
	}
	return a.From().Before(b.Until()) && b.From().Before(a.Until())
}
