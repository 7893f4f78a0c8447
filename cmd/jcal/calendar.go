// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloudeng.io/jewishcal"
	"cloudeng.io/jewishcal/gregorian"
	"cloudeng.io/jewishcal/hebrew"
	"cloudeng.io/jewishcal/sdn"
	"cloudeng.io/logging/ctxlog"
)

func parseYear(calendar, val string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid %v year: %w", val, calendar, err)
	}
	return y, nil
}

func parseHebrewYear(val string) (int, error) {
	y, err := parseYear(hebrew.CalendarName, val)
	if err != nil {
		return 0, err
	}
	if _, err := hebrew.FirstOfYear(y); err != nil {
		return 0, err
	}
	return y, nil
}

func moladString(m hebrew.Molad) string {
	day, hour, minute := m.Clock()
	return fmt.Sprintf("%v %v %02d:%02d and %d chalakim",
		day.Weekday(), gregorian.FromDay(day), hour, minute, m.Chalakim())
}

type monthRecord struct {
	Month      string `json:"month" yaml:"month"`
	HebrewName string `json:"hebrew_name" yaml:"hebrew_name"`
	Days       int    `json:"days" yaml:"days"`
	Start      string `json:"start" yaml:"start"`
	Molad      string `json:"molad,omitempty" yaml:"molad,omitempty"`
}

type yearRecord struct {
	Year         int           `json:"year" yaml:"year"`
	Leap         bool          `json:"leap" yaml:"leap"`
	Type         string        `json:"type" yaml:"type"`
	Days         int           `json:"days" yaml:"days"`
	RoshHashanah dateRecord    `json:"rosh_hashanah" yaml:"rosh_hashanah"`
	Months       []monthRecord `json:"months" yaml:"months"`
}

func newYearRecord(year int, withMolad bool) (yearRecord, error) {
	first, err := hebrew.FirstOfYear(year)
	if err != nil {
		return yearRecord{}, err
	}
	rh, err := jewishcal.FromDay(first.Day())
	if err != nil {
		return yearRecord{}, err
	}
	yr := yearRecord{
		Year:         year,
		Leap:         hebrew.IsLeapYear(year),
		Type:         hebrew.YearTypeOf(year).String(),
		Days:         hebrew.DaysInYear(year),
		RoshHashanah: newDateRecord(rh),
	}
	for _, m := range hebrew.MonthsInCivilOrder(year) {
		start := hebrew.MustNew(year, m, 1)
		mr := monthRecord{
			Month:      hebrew.MonthName(year, m),
			HebrewName: hebrew.HebrewMonthName(year, m),
			Days:       hebrew.DaysInMonth(year, m),
			Start:      jewishcal.ToGregorian(start).String(),
		}
		if withMolad {
			molad, err := hebrew.MoladOf(year, m)
			if err != nil {
				return yearRecord{}, err
			}
			mr.Molad = moladString(molad)
		}
		yr.Months = append(yr.Months, mr)
	}
	return yr, nil
}

func (yr yearRecord) text(w io.Writer) error {
	kind := "common"
	if yr.Leap {
		kind = "leap"
	}
	fmt.Fprintf(w, "%d: %v %v year of %d days\n", yr.Year, yr.Type, kind, yr.Days)
	fmt.Fprintf(w, "Rosh Hashanah: %v %v\n", yr.RoshHashanah.Weekday, yr.RoshHashanah.Gregorian)
	for _, m := range yr.Months {
		line := fmt.Sprintf("  %-9s %-8s %2d days from %v", m.Month, m.HebrewName, m.Days, m.Start)
		if len(m.Molad) > 0 {
			line += ", molad " + m.Molad
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func yearCmd(ctx context.Context, p *printer, values any, args []string) error {
	fv := values.(*yearFlags)
	y, err := parseHebrewYear(args[0])
	if err != nil {
		return err
	}
	yr, err := newYearRecord(y, fv.Molad)
	if err != nil {
		return err
	}
	ctxlog.Debug(ctx, "year", "year", y, "type", yr.Type, "days", yr.Days)
	return p.print(yr, yr.text)
}

type monthReport struct {
	Year   int          `json:"year" yaml:"year"`
	Month  string       `json:"month" yaml:"month"`
	Hebrew string       `json:"hebrew_name" yaml:"hebrew_name"`
	Molad  string       `json:"molad" yaml:"molad"`
	Days   []dateRecord `json:"days" yaml:"days"`
}

func newMonthReport(year int, month hebrew.Month) (monthReport, error) {
	first, err := hebrew.New(year, month, 1)
	if err != nil {
		return monthReport{}, err
	}
	molad, err := hebrew.MoladOf(year, month)
	if err != nil {
		return monthReport{}, err
	}
	mr := monthReport{
		Year:   year,
		Month:  hebrew.MonthName(year, month),
		Hebrew: hebrew.HebrewMonthName(year, month),
		Molad:  moladString(molad),
	}
	start := first.Day()
	days := sdn.NewRange(start, start.Add(hebrew.DaysInMonth(year, month)-1))
	for day := range days.Days() {
		d, err := jewishcal.FromDay(day)
		if err != nil {
			return monthReport{}, err
		}
		mr.Days = append(mr.Days, newDateRecord(d))
	}
	return mr, nil
}

func (mr monthReport) text(w io.Writer) error {
	fmt.Fprintf(w, "%v %d (%v), molad %v\n", mr.Month, mr.Year, mr.Hebrew, mr.Molad)
	for _, d := range mr.Days {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	return nil
}

func monthCmd(ctx context.Context, p *printer, _ any, args []string) error {
	y, err := parseHebrewYear(args[0])
	if err != nil {
		return err
	}
	m, err := hebrew.ParseMonth(args[1])
	if err != nil {
		return err
	}
	mr, err := newMonthReport(y, m)
	if err != nil {
		return err
	}
	ctxlog.Debug(ctx, "month", "year", y, "month", mr.Month, "days", len(mr.Days))
	return p.print(mr, mr.text)
}
