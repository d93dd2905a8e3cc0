package isorange

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by Format and Parse. Use errors.Is to find out why a request was rejected.
var (
	ErrInvalidStartDate      = errors.New("invalid start date, a valid start date is required")
	ErrInvalidEndDate        = errors.New("invalid end date")
	ErrFormatMismatch        = errors.New("start date and end date formats do not match")
	ErrInvalidStartTime      = errors.New("invalid start time")
	ErrPartialDateWithTime   = errors.New("start time not valid for partial start date")
	ErrDuplicateTime         = errors.New("cannot have start time for full ISO datetime string")
	ErrNoEndDateForEndTime   = errors.New("no end date for end time")
	ErrNoStartTimeForEndTime = errors.New("no start time for end time")
	ErrInvalidEndTime        = errors.New("invalid end time")
	ErrEndTimePartialDate    = errors.New("end time not valid for partial end date")
	ErrEndTimeFullDateTime   = errors.New("cannot have end time for full ISO datetime string")
	ErrTimeFormatMismatch    = errors.New("start time and end time formats do not match")
	ErrEndBeforeStart        = errors.New("end date is before start date")
)

// Error describes a rejected request.
type Error struct {
	// Kind is one of the Err* values of this package.
	Kind error
	// Value is the argument that caused the rejection, if any.
	Value string
	// Cause is the underlying validation error, if any.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying validation error.
func (e *Error) Unwrap() error {
	return e.Cause
}
