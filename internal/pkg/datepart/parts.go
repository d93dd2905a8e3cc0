package datepart

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

//Field identifies the position of a component in a date or time sequence.
type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
)

const nofFields = int(Second) + 1

func (f Field) String() string {
	switch f {
	case Year:
		return "year"
	case Month:
		return "month"
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

//IsDate returns true if f is one of year, month or day.
func (f Field) IsDate() bool {
	return f <= Day
}

//Parts is an ordered sequence of components occupying the consecutive fields starting at
//first. Every component except the year is exactly two characters wide.
type Parts struct {
	fields [nofFields]string
	first  Field
	n      int
}

func newParts(first Field, components []string) Parts {
	p := Parts{first: first, n: len(components)}
	for i, c := range components {
		p.fields[int(first)+i] = c
	}
	return p
}

//Len returns the number of components in p.
func (p Parts) Len() int {
	return p.n
}

//First returns the field of the first component. It is Year for dates and Hour for times.
func (p Parts) First() Field {
	return p.first
}

//Has returns true if p contains a component for f.
func (p Parts) Has(f Field) bool {
	return p.n > 0 && f >= p.first && int(f) < int(p.first)+p.n
}

//Get returns the component stored for f or the empty string if p does not cover f.
func (p Parts) Get(f Field) string {
	if !p.Has(f) {
		return ""
	}
	return p.fields[f]
}

//Components returns the components of p in order.
func (p Parts) Components() []string {
	out := make([]string, p.n)
	copy(out, p.fields[p.first:int(p.first)+p.n])
	return out
}

//Equal returns true if p and q cover the same fields with identical components.
func (p Parts) Equal(q Parts) bool {
	return p.first == q.first && p.n == q.n && p.fields == q.fields
}

//Concat returns p followed by q. q must start at the field directly following p's last one.
func (p Parts) Concat(q Parts) Parts {
	if q.n == 0 {
		return p
	}
	if p.n == 0 {
		return q
	}
	if int(p.first)+p.n != int(q.first) {
		panic(fmt.Sprintf("datepart: cannot append parts starting at %s after %s", q.first, Field(int(p.first)+p.n-1)))
	}
	out := p
	out.n += q.n
	for f := q.first; int(f) < int(q.first)+q.n; f++ {
		out.fields[f] = q.fields[f]
	}
	return out
}

//WithRomanMonth returns a copy of p where the month is replaced by its lowercase Roman numeral.
//Parts without a month are returned unchanged.
func (p Parts) WithRomanMonth() Parts {
	if !p.Has(Month) {
		return p
	}
	if r, ok := RomanMonth(p.fields[Month]); ok {
		p.fields[Month] = r
	}
	return p
}

//Instant returns the UTC point in time denoted by p. Missing month and day default to 1, missing
//time fields to 0.
func (p Parts) Instant() time.Time {
	v := [nofFields]int{0, 1, 1, 0, 0, 0}
	for f := p.first; int(f) < int(p.first)+p.n; f++ {
		if f == Month {
			v[f] = monthNumber(p.fields[f])
			continue
		}
		v[f], _ = strconv.Atoi(p.fields[f])
	}
	return time.Date(v[Year], time.Month(v[Month]), v[Day], v[Hour], v[Minute], v[Second], 0, time.UTC)
}

//String returns p in ISO notation.
func (p Parts) String() string {
	sb := strings.Builder{}
	for f := p.first; int(f) < int(p.first)+p.n; f++ {
		if f != p.first {
			switch {
			case f <= Day:
				sb.WriteByte('-')
			case f == Hour:
				sb.WriteByte('T')
			default:
				sb.WriteByte(':')
			}
		}
		sb.WriteString(p.fields[f])
	}
	return sb.String()
}

//Date is a validated and normalized date string.
type Date struct {
	Parts
	//UTC is set if the date string carried a trailing Z.
	UTC bool
}

//HasTime returns true if the date string already encoded a time of day.
func (d Date) HasTime() bool {
	return d.Has(Hour)
}

//New validates components as the fields starting at first and returns them as Parts.
func New(first Field, components []string) (Parts, error) {
	if len(components) == 0 || int(first)+len(components) > nofFields {
		return Parts{}, errors.Errorf("%d components do not fit after %s", len(components), first)
	}
	c := append([]string(nil), components...)
	if err := checkComponents(first, c); err != nil {
		return Parts{}, err
	}
	return newParts(first, c), nil
}
