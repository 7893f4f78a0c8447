// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/jewishcal"
	"cloudeng.io/jewishcal/gregorian"
	"cloudeng.io/jewishcal/hebrew"
	"cloudeng.io/jewishcal/holidays"
	"cloudeng.io/logging/ctxlog"
)

type holidayRecord struct {
	Name   string `json:"name" yaml:"name"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Days   int    `json:"days" yaml:"days"`
	Hebrew string `json:"hebrew" yaml:"hebrew"`
}

type holidayReport struct {
	Year     int             `json:"year" yaml:"year"`
	Calendar string          `json:"calendar" yaml:"calendar"`
	Location string          `json:"location" yaml:"location"`
	Holidays []holidayRecord `json:"holidays" yaml:"holidays"`
}

func (hr holidayReport) text(w io.Writer) error {
	for _, h := range hr.Holidays {
		when := h.From
		if h.To != h.From {
			when = h.From + " - " + h.To
		}
		if _, err := fmt.Fprintf(w, "%-16s %-23s %v\n", h.Name, when, h.Hebrew); err != nil {
			return err
		}
	}
	return nil
}

// holidayYear returns the year to list the holidays for, the current
// year in the requested calendar is used if none is specified.
func holidayYear(args []string, hebrewYear bool) (int, error) {
	if len(args) == 1 {
		if hebrewYear {
			return parseHebrewYear(args[0])
		}
		return parseYear(gregorian.CalendarName, args[0])
	}
	if !hebrewYear {
		return now().Year(), nil
	}
	d, err := jewishcal.TodayAt(now(), false)
	if err != nil {
		return 0, err
	}
	return d.Hebrew.Year(), nil
}

func holidaysCmd(ctx context.Context, p *printer, values any, args []string) error {
	fv := values.(*holidayFlags)
	loc := holidays.Diaspora
	if fv.Israel {
		loc = holidays.Israel
	}
	y, err := holidayYear(args, fv.Hebrew)
	if err != nil {
		return err
	}
	list := holidays.Builtin(loc)
	report := holidayReport{Year: y, Calendar: gregorian.CalendarName, Location: loc.String()}
	var occ []holidays.Occurrence
	if fv.Hebrew {
		report.Calendar = hebrew.CalendarName
		occ = holidays.ForHebrewYear(list, y)
	} else {
		occ, err = holidays.Occurrences(list, y)
		if err != nil {
			return err
		}
	}
	ctxlog.Debug(ctx, "holidays", "year", y, "calendar", report.Calendar, "location", loc, "count", len(occ))
	for _, o := range occ {
		from, to := o.Gregorian()
		report.Holidays = append(report.Holidays, holidayRecord{
			Name:   o.Name,
			From:   from.String(),
			To:     to.String(),
			Days:   o.Days.Len(),
			Hebrew: o.Start.String(),
		})
	}
	return p.print(report, report.text)
}
