package datepart

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	dateSeparators = "-/.:T"
	timeSeparators = ":."
)

//ParseDate validates s and splits it into its zero padded components. Accepted are a year, a
//year-month, a full date or a full date with hour:minute[:second], each optionally followed by a
//literal Z. Offsets and time zone designators other than Z are rejected.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errors.New("date is empty")
	}
	if strings.ContainsAny(s, "+±") {
		return Date{}, errors.Errorf("date %q has an offset, only UTC ISO strings permitted", s)
	}
	utc := false
	if tz := trailingLetters(s); tz != "" {
		if tz != "Z" {
			return Date{}, errors.Errorf("date %q has time zone %q, only UTC ISO strings permitted", s, tz)
		}
		s = strings.TrimSuffix(s, "Z")
		utc = true
	}
	components := split(s, dateSeparators)
	switch len(components) {
	case 1, 2, 3, 5, 6:
	case 4:
		return Date{}, errors.Errorf("date %q has an hour but no minutes", s)
	default:
		return Date{}, errors.Errorf("date %q has %d components", s, len(components))
	}
	if err := checkComponents(Year, components); err != nil {
		return Date{}, errors.Wrapf(err, "date %q", s)
	}
	return Date{Parts: newParts(Year, components), UTC: utc}, nil
}

//ParseTime validates s as hour:minute[:second], with colons or dots as separators, and returns its
//zero padded components.
func ParseTime(s string) (Parts, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Parts{}, errors.New("time is empty")
	}
	components := split(s, timeSeparators)
	if len(components) < 2 || len(components) > 3 {
		return Parts{}, errors.Errorf("time %q must have 2 or 3 components, got %d", s, len(components))
	}
	if err := checkComponents(Hour, components); err != nil {
		return Parts{}, errors.Wrapf(err, "time %q", s)
	}
	return newParts(Hour, components), nil
}

//checkComponents range checks components occupying the fields starting at first and pads them
//in place.
func checkComponents(first Field, components []string) error {
	var year, month int
	for i, c := range components {
		f := first + Field(i)
		if !isDigits(c) {
			return errors.Errorf("%s %q is not a number", f, c)
		}
		width := 2
		if f == Year {
			width = 4
		}
		if len(c) > width || (f == Year && len(c) != width) {
			return errors.Errorf("%s %q must have %d digits", f, c, width)
		}
		v, err := strconv.Atoi(c)
		if err != nil {
			return errors.Wrapf(err, "%s %q", f, c)
		}
		lo, hi := bounds(f, year, month)
		if v < lo || v > hi {
			return errors.Errorf("%s %d out of range [%d, %d]", f, v, lo, hi)
		}
		switch f {
		case Year:
			year = v
		case Month:
			month = v
		}
		if f != Year {
			components[i] = pad(c)
		}
	}
	return nil
}

func bounds(f Field, year, month int) (int, int) {
	switch f {
	case Year:
		return 0, 9999
	case Month:
		return 1, 12
	case Day:
		return 1, daysIn(year, month)
	case Hour:
		return 0, 23
	}
	return 0, 59
}

//daysIn returns the number of days of month in year, honouring leap years.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

//split cuts s at every rune contained in seps. Empty components are kept so that they can be
//rejected by the caller.
func split(s, seps string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if strings.ContainsRune(seps, r) {
			out = append(out, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(out, s[start:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

//trailingLetters returns the run of letters at the end of s.
func trailingLetters(s string) string {
	i := strings.LastIndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	return s[i+1:]
}

func pad(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}
