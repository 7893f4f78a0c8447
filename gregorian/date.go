// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gregorian provides support for dates in the proleptic Gregorian
// calendar and their conversion to and from serial day numbers.
// Years use astronomical numbering, ie. year 0 is 1 BCE and year -1 is 2 BCE.
package gregorian

import (
	"fmt"
	"time"

	"cloudeng.io/jewishcal/sdn"
)

// CalendarName is used to identify this calendar in errors.
const CalendarName = "gregorian"

// ErrInvalidDate is the same as sdn.ErrInvalidDate.
var ErrInvalidDate = sdn.ErrInvalidDate

// MinYear and MaxYear bound the years accepted by New and Parse. The
// serial day number arithmetic is exact for all dates within them.
const (
	MinYear = -1000000
	MaxYear = 1000000
)

// Date represents a valid date in the Gregorian calendar. Values are
// immutable and comparable, the zero value is not a valid date.
type Date struct {
	year  int
	month Month
	day   int
}

// New returns the Date for the given year, month and day, or an error
// that matches ErrInvalidDate if the year, month or day are out of range.
func New(year int, month Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, sdn.NewInvalidDateError(CalendarName, year, int(month), day,
			fmt.Sprintf("year must be in the range %d to %d", MinYear, MaxYear))
	}
	if !month.Valid() {
		return Date{}, sdn.NewInvalidDateError(CalendarName, year, int(month), day, "month must be in the range 1-12")
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, sdn.NewInvalidDateError(CalendarName, year, int(month), day,
			fmt.Sprintf("day must be in the range 1-%d for %v", DaysInMonth(year, month), month))
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

// Day returns the serial day number for d. The computation counts
// years from March so that the leap day is always the last day of
// the counted year.
func (d Date) Day() sdn.Day {
	a := int64(14-d.month) / 12 // 1 for Jan and Feb, 0 otherwise.
	y := int64(d.year) + 4800 - a
	m := int64(d.month) + 12*a - 3
	days := int64(d.day) + (153*m+2)/5 + 365*y +
		sdn.FloorDiv(y, 4) - sdn.FloorDiv(y, 100) + sdn.FloorDiv(y, 400) - 32045
	return sdn.Day(days)
}

// FromDay returns the Date for the given serial day number. The result
// is only meaningful for days that fall between MinYear and MaxYear.
func FromDay(day sdn.Day) Date {
	a := int64(day) + 32044
	b := sdn.FloorDiv(4*a+3, 146097)   // 400 year periods.
	c := a - sdn.FloorDiv(146097*b, 4) // days within the period.
	d := (4*c + 3) / 1461              // 4 year periods.
	e := c - (1461*d)/4
	m := (5*e + 2) / 153 // months counted from March.
	return Date{
		year:  int(100*b + d - 4800 + m/10),
		month: Month(m + 3 - 12*(m/10)),
		day:   int(e - (153*m+2)/5 + 1),
	}
}

// FromTime returns the Date for the year, month and day of t in
// its location. The year of t must be between MinYear and MaxYear.
func FromTime(t time.Time) Date {
	y, m, dd := t.Date()
	return Date{year: y, month: Month(m), day: dd}
}

// Time returns midnight at the start of d in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after d, n may be negative. As for
// FromDay, the result must fall between MinYear and MaxYear.
func (d Date) AddDays(n int) Date {
	return FromDay(d.Day().Add(n))
}

// Sub returns the number of days from o to d.
func (d Date) Sub(o Date) int64 {
	return sdn.Difference(d.Day(), o.Day())
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmp(d.year, o.year)
	case d.month != o.month:
		return cmp(int(d.month), int(o.month))
	}
	return cmp(d.day, o.day)
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

// DayOfYear returns the day of the year as 1-365 for non-leap years
// and 1-366 for leap years.
func (d Date) DayOfYear() int {
	if IsLeap(d.year) {
		return dayOfYearLeap[d.month-1] + d.day
	}
	return dayOfYear[d.month-1] + d.day
}

// Tomorrow returns the date of the next day, 12/31 wraps to 1/1 of
// the following year.
func (d Date) Tomorrow() Date {
	if d.month == 12 && d.day == 31 {
		return Date{year: d.year + 1, month: 1, day: 1}
	}
	if d.day >= DaysInMonth(d.year, d.month) {
		return Date{year: d.year, month: d.month + 1, day: 1}
	}
	d.day++
	return d
}

// Yesterday returns the date of the previous day, 1/1 wraps to 12/31
// of the preceding year.
func (d Date) Yesterday() Date {
	if d.month == 1 && d.day == 1 {
		return Date{year: d.year - 1, month: 12, day: 31}
	}
	if d.day <= 1 {
		return Date{year: d.year, month: d.month - 1, day: DaysInMonth(d.year, d.month-1)}
	}
	d.day--
	return d
}

// FromDayOfYear returns the Date for the given day of the year. A day of
// <= 0 is treated as Jan-01 and a day of > 365/366 is treated as Dec-31.
func FromDayOfYear(year, day int) Date {
	if day <= 0 {
		return Date{year: year, month: 1, day: 1}
	}
	if day > DaysInYear(year) {
		return Date{year: year, month: 12, day: 31}
	}
	dim := daysInMonth
	if IsLeap(year) {
		dim = daysInMonthLeap
	}
	for month := 0; month < 12; month++ {
		if day <= dim[month] {
			return Date{year: year, month: Month(month + 1), day: day}
		}
		day -= dim[month]
	}
	panic("unreachable")
}
