// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jewishcal converts dates between the Gregorian and Hebrew
// calendars. The two calendars never refer to each other directly, all
// conversions are made via the serial day number (sdn.Day) of a date.
package jewishcal

import (
	"fmt"
	"time"

	"cloudeng.io/jewishcal/gregorian"
	"cloudeng.io/jewishcal/hebrew"
	"cloudeng.io/jewishcal/sdn"
)

// ToHebrew returns the Hebrew date for the specified Gregorian date. It
// returns an error for dates before 1 Tishrei AM 1 (7 Sep 3761 BCE).
func ToHebrew(d gregorian.Date) (hebrew.Date, error) {
	return hebrew.FromDay(d.Day())
}

// ToGregorian returns the Gregorian date for the specified Hebrew date.
func ToGregorian(d hebrew.Date) gregorian.Date {
	return gregorian.FromDay(d.Day())
}

// Date represents the same day in both calendars.
type Date struct {
	Day       sdn.Day
	Gregorian gregorian.Date
	Hebrew    hebrew.Date
}

// FromDay returns the Date for the specified serial day number.
func FromDay(day sdn.Day) (Date, error) {
	hd, err := hebrew.FromDay(day)
	if err != nil {
		return Date{}, err
	}
	return Date{Day: day, Gregorian: gregorian.FromDay(day), Hebrew: hd}, nil
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Day.Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%v %v (%v)", d.Weekday(), d.Gregorian, d.Hebrew)
}

// TodayAt returns the Date for the civil date of t in its location. The
// Hebrew day starts at nightfall, if afterSunset is true the following
// Hebrew date is returned with the same Gregorian date.
func TodayAt(t time.Time, afterSunset bool) (Date, error) {
	gd := gregorian.FromTime(t)
	day := gd.Day()
	if afterSunset {
		day++
	}
	hd, err := hebrew.FromDay(day)
	if err != nil {
		return Date{}, err
	}
	return Date{Day: gd.Day(), Gregorian: gd, Hebrew: hd}, nil
}

// Today is like TodayAt for the current local time.
func Today(afterSunset bool) (Date, error) {
	return TodayAt(time.Now(), afterSunset)
}

// HebrewYearsOverlapping returns the Hebrew years that have at least one
// day within the specified Gregorian year, in order. Most Gregorian years
// overlap with two Hebrew years.
func HebrewYearsOverlapping(year int) ([]int, error) {
	fg, err := gregorian.New(year, 1, 1)
	if err != nil {
		return nil, err
	}
	first, last := fg.Day(), gregorian.MustNew(year, 12, 31).Day()
	if last < hebrew.Epoch {
		return nil, sdn.NewInvalidDateError(gregorian.CalendarName, year, 0, 0, "year precedes the start of the Hebrew calendar")
	}
	first, last = max(first, hebrew.Epoch), min(last, hebrew.LastDay)
	fd, err := hebrew.FromDay(first)
	if err != nil {
		return nil, err
	}
	ld, err := hebrew.FromDay(last)
	if err != nil {
		return nil, err
	}
	years := make([]int, 0, 2)
	for y := fd.Year(); y <= ld.Year(); y++ {
		years = append(years, y)
	}
	return years, nil
}
