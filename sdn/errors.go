// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sdn

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrInvalidDate is returned, possibly wrapped, whenever a date is
// constructed or parsed with a year, month or day that the calendar does
// not allow. Use errors.Is to test for it.
var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError describes an invalid date. It matches ErrInvalidDate
// when used with errors.Is.
type InvalidDateError struct {
	Calendar string
	Year     int
	Month    int
	Day      int
	Reason   string
}

// Error implements error.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%v: %s %04d-%02d-%02d: %s", ErrInvalidDate, e.Calendar, e.Year, e.Month, e.Day, e.Reason)
}

// Is implements errors.Is.
func (e *InvalidDateError) Is(target error) bool {
	if target == ErrInvalidDate {
		return true
	}
	_, ok := target.(*InvalidDateError)
	return ok
}

// NewInvalidDateError returns a new *InvalidDateError.
func NewInvalidDateError(calendar string, year, month, day int, reason string) error {
	return &InvalidDateError{
		Calendar: calendar,
		Year:     year,
		Month:    month,
		Day:      day,
		Reason:   reason,
	}
}
