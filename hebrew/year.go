// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hebrew

import (
	"fmt"

	"cloudeng.io/jewishcal/sdn"
)

// Time is measured in hours and parts (chalakim) of which there are 1080
// in an hour. Days start at 6pm of the preceding civil day.
const (
	PartsPerHour   = 1080
	PartsPerDay    = 24 * PartsPerHour
	PartsPerMonth  = 29*PartsPerDay + 12*PartsPerHour + 793 // mean synodic month.
	MonthsPerCycle = 235                                    // per 19 year metonic cycle.
)

const (
	// moladOfCreation is the molad of Tishrei AM 1 (BaHaRaD: Monday,
	// 5 hours and 204 parts) measured from the start of day zero.
	moladOfCreation = PartsPerDay + 5*PartsPerHour + 204

	// epochOffset is the serial day number of day zero of the molad
	// count, ie. the Sunday before 1 Tishrei AM 1.
	epochOffset = 347997

	yearsPerCycle = 19
	daysInWeek    = 7
)

const (
	noon       = 18 * PartsPerHour
	gatarad    = 9*PartsPerHour + 204  // 3:11:20am on a Tuesday.
	betutakpat = 15*PartsPerHour + 589 // 9:32:43 1/3am on a Monday.
)

const (
	sunday    = 0
	monday    = 1
	tuesday   = 2
	wednesday = 3
	friday    = 5
)

// MaxYear is the largest year supported.
const MaxYear = 999999

// Epoch is the serial day number of 1 Tishrei AM 1.
const Epoch = sdn.Day(epochOffset + 1)

// LastDay is the serial day number of 29 Elul MaxYear, the last day
// that can be represented.
var LastDay = RoshHashanah(MaxYear+1) - 1

// IsLeapYear returns true for the years that have 13 months, ie.
// years 3, 6, 8, 11, 14, 17 and 19 of each 19 year cycle.
func IsLeapYear(year int) bool {
	return sdn.FloorMod(7*int64(year)+1, yearsPerCycle) < 7
}

// MonthsInYear returns 13 for leap years and 12 otherwise.
func MonthsInYear(year int) int {
	if IsLeapYear(year) {
		return 13
	}
	return 12
}

// monthsBefore returns the number of months between the molad of
// creation and Tishrei of the given year.
func monthsBefore(year int) int64 {
	return sdn.FloorDiv(MonthsPerCycle*int64(year)-(MonthsPerCycle-1), yearsPerCycle)
}

// moladParts returns the time of the molad of the given month counted
// from the molad of creation, in parts.
func moladParts(monthsElapsed int64) (day, parts int64) {
	total := moladOfCreation + monthsElapsed*PartsPerMonth
	return sdn.FloorDiv(total, PartsPerDay), sdn.FloorMod(total, PartsPerDay)
}

// RoshHashanah returns the serial day number of 1 Tishrei of the given
// year, year must be >= 1. The new year starts on the day of the molad
// of Tishrei unless postponed by the dehiyyot:
//
//  1. molad zaken: the molad is at or after noon.
//  2. gatarad: a common year whose molad is on a Tuesday at or after
//     9 hours and 204 parts.
//  3. betutakpat: a year following a leap year whose molad is on a
//     Monday at or after 15 hours and 589 parts.
//  4. lo adu rosh: the new year may not start on a Sunday, Wednesday or
//     Friday, this is applied after the above and may add a second day.
func RoshHashanah(year int) sdn.Day {
	day, parts := moladParts(monthsBefore(year))
	dow := sdn.FloorMod(day, daysInWeek)
	if parts >= noon ||
		(!IsLeapYear(year) && dow == tuesday && parts >= gatarad) ||
		(IsLeapYear(year-1) && dow == monday && parts >= betutakpat) {
		day++
		dow = (dow + 1) % daysInWeek
	}
	if dow == sunday || dow == wednesday || dow == friday {
		day++
	}
	return sdn.Day(day + epochOffset)
}

// DaysInYear returns the number of days in the given year.
func DaysInYear(year int) int {
	return int(RoshHashanah(year+1) - RoshHashanah(year))
}

// YearType classifies a year by the lengths of Cheshvan and Kislev.
type YearType int

const (
	// Deficient years have 353 or 383 days, both Cheshvan and Kislev
	// have 29 days.
	Deficient YearType = iota + 1
	// Regular years have 354 or 384 days, Cheshvan has 29 days and
	// Kislev 30.
	Regular
	// Complete years have 355 or 385 days, both Cheshvan and Kislev
	// have 30 days.
	Complete
)

func (yt YearType) String() string {
	switch yt {
	case Deficient:
		return "deficient"
	case Regular:
		return "regular"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("YearType(%d)", int(yt))
}

// YearTypeOf returns the YearType for the specified year.
func YearTypeOf(year int) YearType {
	return newYearInfo(year).yearType()
}

// Length returns the number of days in a year of this type.
func (yt YearType) Length(leap bool) int {
	n := 352 + int(yt)
	if leap {
		n += 30
	}
	return n
}

// yearInfo caches the values needed to compute month lengths for a year.
type yearInfo struct {
	year   int
	start  sdn.Day
	length int
	leap   bool
}

func newYearInfo(year int) yearInfo {
	start := RoshHashanah(year)
	return yearInfo{
		year:   year,
		start:  start,
		length: int(RoshHashanah(year+1) - start),
		leap:   IsLeapYear(year),
	}
}

func (yi yearInfo) yearType() YearType {
	switch yi.length % 10 {
	case 3:
		return Deficient
	case 5:
		return Complete
	}
	return Regular
}

func (yi yearInfo) daysInMonth(month Month) int {
	switch month {
	case Nisan, Sivan, Av, Tishrei, Shevat:
		return 30
	case Iyar, Tammuz, Elul, Tevet:
		return 29
	case Cheshvan:
		if yi.yearType() == Complete {
			return 30
		}
		return 29
	case Kislev:
		if yi.yearType() == Deficient {
			return 29
		}
		return 30
	case Adar:
		if yi.leap {
			return 30
		}
		return 29
	case AdarII:
		if yi.leap {
			return 29
		}
	}
	return 0
}

func (yi yearInfo) months() []Month {
	if yi.leap {
		return civilOrderLeap
	}
	return civilOrder
}

// daysBefore returns the number of days in the year that precede
// the first day of month.
func (yi yearInfo) daysBefore(month Month) int {
	days := 0
	for _, m := range yi.months() {
		if m == month {
			break
		}
		days += yi.daysInMonth(m)
	}
	return days
}

// DaysInMonth returns the number of days in the given month of year, or
// zero if that month does not occur in that year.
func DaysInMonth(year int, month Month) int {
	switch month {
	case Cheshvan, Kislev:
		return newYearInfo(year).daysInMonth(month)
	}
	return yearInfo{year: year, leap: IsLeapYear(year)}.daysInMonth(month)
}
