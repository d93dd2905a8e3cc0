// Package isorange formats a start date, an optional end date and optional start and end times as
// a compact ISO 8601 interval, writing the components shared by start and end only once, e.g.
// 2024-07-07/08 instead of 2024-07-07/2024-07-08.
package isorange

import (
	"strings"

	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/netsec-ethz/isorange/internal/pkg/datepart"
	"github.com/netsec-ethz/isorange/internal/pkg/interval"
)

// Style selects between the ISO rendering and the friendly one using slashes, spaces and
// optionally Roman numeral months.
type Style = interval.Style

// Interval is a validated and merged request. Render it with the style of your choice.
type Interval = interval.Interval

// Predefined styles.
var (
	ISO      = interval.ISO
	Friendly = interval.Friendly
)

// Request holds the four textual arguments of a formatting call. Empty strings mark absent values,
// except for StartDate which is required.
type Request struct {
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
}

// Format returns the compact interval for the given dates and times. startDate is a year, a
// year-month, a full date or a full date and time, optionally with a trailing Z. endDate must have
// the same shape as startDate. Times are hours:minutes[:seconds] and may only accompany full dates.
// With useSlashesNotDashes the result uses slashes between date components, a dash between start
// and end and a space instead of T; useRomanNumeralMonths additionally writes months as Roman
// numerals.
func Format(startDate, endDate, startTime, endTime string, useSlashesNotDashes, useRomanNumeralMonths bool) (string, error) {
	req := Request{StartDate: startDate, EndDate: endDate, StartTime: startTime, EndTime: endTime}
	return req.Format(Style{Slashes: useSlashesNotDashes, RomanMonths: useRomanNumeralMonths})
}

// Format returns r rendered in style.
func (r Request) Format(style Style) (string, error) {
	iv, err := Parse(r)
	if err != nil {
		return "", err
	}
	return iv.Render(style), nil
}

// Parse validates r and merges start and end. Only the start date's Z suffix is taken into account.
func Parse(r Request) (Interval, error) {
	start, err := datepart.ParseDate(r.StartDate)
	if err != nil {
		return Interval{}, reject(ErrInvalidStartDate, r.StartDate, err)
	}

	var end datepart.Date
	if r.EndDate != "" {
		if end, err = datepart.ParseDate(r.EndDate); err != nil {
			return Interval{}, reject(ErrInvalidEndDate, r.EndDate, err)
		}
		if start.Len() != end.Len() {
			return Interval{}, reject(ErrFormatMismatch, r.EndDate, nil)
		}
	}

	var startTime datepart.Parts
	if r.StartTime != "" {
		if startTime, err = datepart.ParseTime(r.StartTime); err != nil {
			return Interval{}, reject(ErrInvalidStartTime, r.StartTime, err)
		}
		if start.Len() < 3 {
			return Interval{}, reject(ErrPartialDateWithTime, r.StartDate, nil)
		}
		if start.HasTime() {
			return Interval{}, reject(ErrDuplicateTime, r.StartDate, nil)
		}
	}

	var endTime datepart.Parts
	if r.EndTime != "" {
		if r.EndDate == "" {
			return Interval{}, reject(ErrNoEndDateForEndTime, r.EndTime, nil)
		}
		if r.StartTime == "" {
			return Interval{}, reject(ErrNoStartTimeForEndTime, r.EndTime, nil)
		}
		if endTime, err = datepart.ParseTime(r.EndTime); err != nil {
			return Interval{}, reject(ErrInvalidEndTime, r.EndTime, err)
		}
		if end.Len() < 3 {
			return Interval{}, reject(ErrEndTimePartialDate, r.EndDate, nil)
		}
		if end.HasTime() {
			return Interval{}, reject(ErrEndTimeFullDateTime, r.EndDate, nil)
		}
		if startTime.Len() != endTime.Len() {
			return Interval{}, reject(ErrTimeFormatMismatch, r.EndTime, nil)
		}
	}

	if end.Len() > 0 && startTime.Len() != endTime.Len() {
		// both ends must be given with the same precision
		return Interval{}, reject(ErrTimeFormatMismatch, r.EndDate, nil)
	}
	iv, err := interval.Merge(start.Concat(startTime), end.Concat(endTime), start.UTC)
	if err != nil {
		if errors.Is(err, interval.ErrEndBeforeStart) {
			return Interval{}, reject(ErrEndBeforeStart, r.EndDate, nil)
		}
		return Interval{}, reject(ErrFormatMismatch, r.EndDate, err)
	}
	return iv, nil
}

// ParseRequest reads a request from a comma separated line of the form
// startDate[,endDate[,startTime[,endTime]]]. Fields are trimmed and may be left empty.
func ParseRequest(line string) (Request, error) {
	fields := strings.Split(line, ",")
	if len(fields) > 4 {
		return Request{}, errors.Errorf("request %q has %d fields, at most 4 allowed", line, len(fields))
	}
	for len(fields) < 4 {
		fields = append(fields, "")
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return Request{StartDate: fields[0], EndDate: fields[1], StartTime: fields[2], EndTime: fields[3]}, nil
}

func reject(kind error, value string, cause error) error {
	log.Debug("Rejected date interval request", "reason", kind, "value", value, "cause", cause)
	return &Error{Kind: kind, Value: value, Cause: cause}
}
