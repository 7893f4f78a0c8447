// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hebrew

import (
	"fmt"
	"time"

	"cloudeng.io/jewishcal/sdn"
)

// Molad represents the time of the mean conjunction that begins a month.
// Time is expressed as it is traditionally announced: the day, whose
// evening starts at 6pm on the preceding civil day, and the hours and
// parts elapsed since 6pm.
type Molad struct {
	Day   sdn.Day // The day on which the molad occurs.
	Hours int     // Hours since 6pm on the previous civil day, 0-23.
	Parts int     // Parts of an hour, 0-1079.
}

// MoladOf returns the molad of the given month and year. It returns an
// error if the month does not occur in that year.
func MoladOf(year int, month Month) (Molad, error) {
	if year < 1 || year > MaxYear {
		return Molad{}, invalid(year, month, 0, "year must be in the range 1-%d", MaxYear)
	}
	months := civilOrder
	if IsLeapYear(year) {
		months = civilOrderLeap
	}
	for i, m := range months {
		if m == month {
			return moladAt(monthsBefore(year) + int64(i)), nil
		}
	}
	return Molad{}, invalid(year, month, 0, "%v does not occur in %d", month, year)
}

func moladAt(monthsElapsed int64) Molad {
	day, parts := moladParts(monthsElapsed)
	return Molad{
		Day:   sdn.Day(day + epochOffset),
		Hours: int(parts / PartsPerHour),
		Parts: int(parts % PartsPerHour),
	}
}

// Weekday returns the day of the week of the molad.
func (m Molad) Weekday() time.Weekday {
	return m.Day.Weekday()
}

// Minutes returns the whole minutes within the hour, there being 18 parts
// per minute.
func (m Molad) Minutes() int {
	return m.Parts / 18
}

// Chalakim returns the parts remaining after the whole minutes, 0-17.
func (m Molad) Chalakim() int {
	return m.Parts % 18
}

// Clock returns the civil day and the hour (0-23) and minute of that day
// at which the molad occurs.
func (m Molad) Clock() (day sdn.Day, hour, minute int) {
	if m.Hours < 6 {
		return m.Day - 1, m.Hours + 18, m.Minutes()
	}
	return m.Day, m.Hours - 6, m.Minutes()
}

func (m Molad) String() string {
	day, hour, minute := m.Clock()
	return fmt.Sprintf("%v %02d:%02d and %d chalakim (%v)", day.Weekday(), hour, minute, m.Chalakim(), day)
}
