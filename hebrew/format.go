// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hebrew

import (
	"fmt"
	"strconv"
	"strings"
)

const expectedDateFormats = "'13 Av 5776' or 5776-05-13"

// String returns d as "<day> <month> <year>", eg. "13 Av 5776" or
// "14 Adar I 5784".
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d", d.day, MonthName(d.year, d.month), d.year)
}

// HebrewString is like String but uses the Hebrew month name.
func (d Date) HebrewString() string {
	return fmt.Sprintf("%d %s %d", d.day, HebrewMonthName(d.year, d.month), d.year)
}

// ISO returns d as "<year>-<month>-<day>" with months numbered from Nisan.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Parse parses a date of the form "13 Av 5776", where the month may
// be any name accepted by ParseMonth including multi-word names such as
// "Adar II", or of the form 5776-05-13 with months numbered from Nisan.
func Parse(val string) (Date, error) {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return Date{}, fmt.Errorf("empty value, expected %s", expectedDateFormats)
	}
	if fields := strings.Fields(val); len(fields) >= 3 {
		return parseParts(val, fields[0], strings.Join(fields[1:len(fields)-1], " "), fields[len(fields)-1])
	}
	if parts := strings.Split(val, "-"); len(parts) == 3 {
		return parseParts(val, parts[2], parts[1], parts[0])
	}
	return Date{}, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
}

func parseParts(val, day, month, year string) (Date, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in %q: %s", val, year)
	}
	m, err := ParseMonth(month)
	if err != nil {
		return Date{}, err
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in %q: %s", val, day)
	}
	return New(y, m, d)
}

// MustParse is like Parse but panics on error.
func MustParse(val string) Date {
	d, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	nd, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
