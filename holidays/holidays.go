// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package holidays provides the dates of the Hebrew holidays and fasts
// for a given Hebrew or Gregorian year. Holidays are evaluated once per
// Hebrew year and may be postponed, or advanced, to avoid Shabbat.
package holidays

import (
	"strings"
	"time"

	"cloudeng.io/jewishcal/hebrew"
	"cloudeng.io/jewishcal/sdn"
)

// Holiday is evaluated once per Hebrew year to determine the days on
// which it is observed. Evaluate returns false if the holiday does not
// occur in that year.
type Holiday interface {
	Name() string
	Evaluate(hebrewYear int) (sdn.Range, bool)
}

// List represents a list of holidays.
type List []Holiday

func (l List) String() string {
	var out strings.Builder
	for i, h := range l {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(h.Name())
	}
	return out.String()
}

// Location determines the number of days for which some holidays are
// observed.
type Location int

const (
	Diaspora Location = iota
	Israel
)

func (l Location) String() string {
	if l == Israel {
		return "israel"
	}
	return "diaspora"
}

// Shabbat determines how a date that falls on Shabbat is handled.
type Shabbat int

const (
	Observed  Shabbat = iota // Observed on Shabbat.
	Postponed                // Moved to Sunday.
	Advanced                 // Moved to the preceding Thursday.
)

// Fixed is a holiday that starts on a fixed day of a Hebrew month.
type Fixed struct {
	Title string
	Month hebrew.Month
	Day   int
	// Days is the number of days the holiday lasts, zero is treated as one.
	Days int
	// LastAdar indicates that a holiday in Adar is observed in Adar II in
	// leap years.
	LastAdar bool
	// Shabbat specifies the handling of a start day that falls on Shabbat.
	Shabbat Shabbat
}

// Name implements Holiday.
func (f Fixed) Name() string {
	return f.Title
}

// Evaluate implements Holiday.
func (f Fixed) Evaluate(year int) (sdn.Range, bool) {
	month := f.Month
	if f.LastAdar && month == hebrew.Adar && hebrew.IsLeapYear(year) {
		month = hebrew.AdarII
	}
	date, err := hebrew.New(year, month, f.Day)
	if err != nil {
		return sdn.Range{}, false
	}
	start := date.Day()
	if start.Weekday() == time.Saturday {
		switch f.Shabbat {
		case Postponed:
			start++
		case Advanced:
			start -= 2
		}
	}
	return sdn.NewRange(start, start.Add(max(f.Days, 1)-1)), true
}

func fixed(title string, month hebrew.Month, day, days int) Fixed {
	return Fixed{Title: title, Month: month, Day: day, Days: days}
}

func fast(title string, month hebrew.Month, day int, shabbat Shabbat) Fixed {
	return Fixed{Title: title, Month: month, Day: day, Days: 1, Shabbat: shabbat}
}

func purim(title string, day int, shabbat Shabbat) Fixed {
	return Fixed{Title: title, Month: hebrew.Adar, Day: day, Days: 1, LastAdar: true, Shabbat: shabbat}
}

// Builtin returns the major holidays and fasts for the specified location
// in the order in which they occur in the civil year.
func Builtin(loc Location) List {
	twoInDiaspora, pesach, simchatTorah := 2, 8, 23
	if loc == Israel {
		twoInDiaspora, pesach, simchatTorah = 1, 7, 22
	}
	return List{
		fixed("Rosh Hashanah", hebrew.Tishrei, 1, 2),
		fast("Tzom Gedaliah", hebrew.Tishrei, 3, Postponed),
		fixed("Yom Kippur", hebrew.Tishrei, 10, 1),
		fixed("Sukkot", hebrew.Tishrei, 15, 7),
		fixed("Shemini Atzeret", hebrew.Tishrei, 22, 1),
		fixed("Simchat Torah", hebrew.Tishrei, simchatTorah, 1),
		fixed("Chanukah", hebrew.Kislev, 25, 8),
		fast("Asara B'Tevet", hebrew.Tevet, 10, Observed),
		fixed("Tu BiShvat", hebrew.Shevat, 15, 1),
		purim("Ta'anit Esther", 13, Advanced),
		purim("Purim", 14, Observed),
		purim("Shushan Purim", 15, Observed),
		fixed("Pesach", hebrew.Nisan, 15, pesach),
		fixed("Lag BaOmer", hebrew.Iyar, 18, 1),
		fixed("Shavuot", hebrew.Sivan, 6, twoInDiaspora),
		fast("Tzom Tammuz", hebrew.Tammuz, 17, Postponed),
		fast("Tisha B'Av", hebrew.Av, 9, Postponed),
		fixed("Tu B'Av", hebrew.Av, 15, 1),
	}
}

// Lookup returns the holiday with the specified name, ignoring case.
func (l List) Lookup(name string) (Holiday, bool) {
	for _, h := range l {
		if strings.EqualFold(h.Name(), name) {
			return h, true
		}
	}
	return nil, false
}
