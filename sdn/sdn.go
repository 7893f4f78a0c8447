// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sdn provides the serial day number (SDN) axis that is used
// to convert dates between calendars. An SDN is the Julian Day Number of
// a date, that is, the number of days since 1 January 4713 BCE in the
// proleptic Julian calendar (24 November 4714 BCE in the proleptic
// Gregorian calendar). Any calendar that can convert its dates to and from
// a Day can be converted to any other such calendar.
package sdn

import (
	"fmt"
	"time"
)

// Day is a serial day number.
type Day int64

// Difference returns the signed number of days from b to a.
func Difference(a, b Day) int64 {
	return int64(a - b)
}

// Add returns the Day that is n days after d, n may be negative.
func (d Day) Add(n int) Day {
	return d + Day(n)
}

// Sub returns the number of days from o to d.
func (d Day) Sub(o Day) int64 {
	return Difference(d, o)
}

// Weekday returns the day of the week for d. Day 0 was a Monday.
func (d Day) Weekday() time.Weekday {
	return time.Weekday(FloorMod(int64(d)+1, 7))
}

func (d Day) String() string {
	return fmt.Sprintf("SDN %d", int64(d))
}

// FloorDiv returns a/b rounded towards negative infinity, b must be positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// FloorMod returns a mod b in the range [0, b), b must be positive.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
