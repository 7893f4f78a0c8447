// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hebrew provides support for dates in the Hebrew calendar and
// their conversion to and from serial day numbers. The calendar is
// computed arithmetically, using the molad of Tishrei and the rules of
// postponement, with all time values held as integer parts of an hour so
// that the results are exact for all supported years.
package hebrew

import (
	"fmt"
	"time"

	"cloudeng.io/jewishcal/sdn"
)

// CalendarName is used to identify this calendar in errors.
const CalendarName = "hebrew"

// ErrInvalidDate is the same as sdn.ErrInvalidDate.
var ErrInvalidDate = sdn.ErrInvalidDate

// Date represents a valid date in the Hebrew calendar. Values are
// immutable and comparable, the zero value is not a valid date.
type Date struct {
	year  int
	month Month
	day   int
}

func invalid(year int, month Month, day int, format string, args ...any) error {
	return sdn.NewInvalidDateError(CalendarName, year, int(month), day, fmt.Sprintf(format, args...))
}

// New returns the Date for the given year, month and day, or an error
// that matches ErrInvalidDate if any of them are out of range. AdarII
// (month 13) is only valid in leap years.
func New(year int, month Month, day int) (Date, error) {
	if year < 1 || year > MaxYear {
		return Date{}, invalid(year, month, day, "year must be in the range 1-%d", MaxYear)
	}
	if !month.Valid() {
		return Date{}, invalid(year, month, day, "month must be in the range 1-%d", MonthsInYear(year))
	}
	if month == AdarII && !IsLeapYear(year) {
		return Date{}, invalid(year, month, day, "%v does not occur in the common year %d", AdarII, year)
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return Date{}, invalid(year, month, day, "day must be in the range 1-%d for %v %d", dim, MonthName(year, month), year)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is like New but panics on error.
func MustNew(year int, month Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Year returns the year of d.
func (d Date) Year() int {
	return d.year
}

// Month returns the month of d.
func (d Date) Month() Month {
	return d.month
}

// DayOfMonth returns the day of the month of d.
func (d Date) DayOfMonth() int {
	return d.day
}

// IsZero returns true for the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// IsLeapYear returns true if d is in a leap year.
func (d Date) IsLeapYear() bool {
	return IsLeapYear(d.year)
}

// Day returns the serial day number of d.
func (d Date) Day() sdn.Day {
	yi := newYearInfo(d.year)
	return yi.start.Add(yi.daysBefore(d.month) + d.day - 1)
}

// FromDay returns the Date for the given serial day number. Days before
// 1 Tishrei AM 1 (Epoch) or after 29 Elul MaxYear (LastDay) are invalid.
func FromDay(day sdn.Day) (Date, error) {
	if day < Epoch {
		return Date{}, sdn.NewInvalidDateError(CalendarName, 0, 0, 0,
			fmt.Sprintf("%v is before the start of the calendar (%v)", day, Epoch))
	}
	if day > LastDay {
		return Date{}, sdn.NewInvalidDateError(CalendarName, 0, 0, 0,
			fmt.Sprintf("%v is after the end of year %d (%v)", day, MaxYear, LastDay))
	}
	year := estimateYear(day)
	for year > 1 && RoshHashanah(year) > day {
		year--
	}
	for RoshHashanah(year+1) <= day {
		year++
	}
	yi := newYearInfo(year)
	remaining := int(day - yi.start)
	for _, m := range yi.months() {
		dim := yi.daysInMonth(m)
		if remaining < dim {
			return Date{year: year, month: m, day: remaining + 1}, nil
		}
		remaining -= dim
	}
	panic(fmt.Sprintf("unreachable: %v is not within year %d", day, year))
}

// MustFromDay is like FromDay but panics on error.
func MustFromDay(day sdn.Day) Date {
	d, err := FromDay(day)
	if err != nil {
		panic(err)
	}
	return d
}

// estimateYear returns an estimate of the year containing day based on
// the mean year length of 235/19 mean months. The estimate is within one
// year of the correct value.
func estimateYear(day sdn.Day) int {
	elapsed := int64(day) - epochOffset
	return int(elapsed*PartsPerDay*yearsPerCycle/(MonthsPerCycle*PartsPerMonth)) + 1
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) (Date, error) {
	return FromDay(d.Day().Add(n))
}

// Sub returns the number of days from o to d.
func (d Date) Sub(o Date) int64 {
	return sdn.Difference(d.Day(), o.Day())
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as or after o. Dates are ordered chronologically, so that Tishrei
// precedes Nisan within a year.
func (d Date) Compare(o Date) int {
	if d.year != o.year {
		return cmp(d.year, o.year)
	}
	if d.month != o.month {
		return cmp(civilIndex(d.month), civilIndex(o.month))
	}
	return cmp(d.day, o.day)
}

// civilIndex returns the position of m in the civil year, Adar II
// follows Adar.
func civilIndex(m Month) int {
	switch {
	case m >= Tishrei && m <= Adar:
		return int(m - Tishrei)
	case m == AdarII:
		return int(Adar-Tishrei) + 1
	}
	return int(m) + int(AdarII-Tishrei)
}

func cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before returns true if d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After returns true if d is later than o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Day().Weekday()
}

// DayOfYear returns the day of the civil year, 1 Tishrei is day 1.
func (d Date) DayOfYear() int {
	return newYearInfo(d.year).daysBefore(d.month) + d.day
}

// FirstOfYear returns 1 Tishrei of the given year.
func FirstOfYear(year int) (Date, error) {
	return New(year, Tishrei, 1)
}
