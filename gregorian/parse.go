// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"strconv"
	"strings"
)

const expectedDateFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

func (d Date) String() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, d.month, d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Parse parses a date in the formats '2006-01-02', '01/02/2006'
// or 'Jan-02-2006' with error checking for valid month and day.
// A leading '-' on the first format denotes a negative year.
func Parse(val string) (Date, error) {
	if len(val) == 0 {
		return Date{}, fmt.Errorf("empty value, expected %s", expectedDateFormats)
	}
	if strings.Contains(val, "/") {
		return parseParts(val, strings.Split(val, "/"), 2, 0, 1, ParseNumericMonth)
	}
	neg := strings.HasPrefix(val, "-")
	parts := strings.Split(strings.TrimPrefix(val, "-"), "-")
	if len(parts) == 3 && len(parts[0]) > 0 && isDigits(parts[0]) {
		d, err := parseParts(val, parts, 0, 1, 2, ParseNumericMonth)
		if err != nil || !neg {
			return d, err
		}
		return New(-d.year, d.month, d.day)
	}
	if neg {
		return Date{}, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	return parseParts(val, parts, 2, 0, 1, ParseMonth)
}

// MustParse is like Parse but panics on error.
func MustParse(val string) Date {
	d, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func parseParts(val string, parts []string, yi, mi, di int, monthParser func(string) (Month, error)) (Date, error) {
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	year, err := strconv.Atoi(parts[yi])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %s", parts[yi])
	}
	month, err := monthParser(parts[mi])
	if err != nil {
		return Date{}, err
	}
	day, err := strconv.Atoi(parts[di])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %s", parts[di])
	}
	return New(year, month, day)
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
