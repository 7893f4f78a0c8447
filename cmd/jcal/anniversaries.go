// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/jewishcal"
	"cloudeng.io/jewishcal/gregorian"
	"cloudeng.io/jewishcal/hebrew"
	"cloudeng.io/logging/ctxlog"
)

// Event is a birth or death recorded using either calendar, eg:
//
//	events:
//	  - name: Ruth
//	    kind: birthday
//	    gregorian: 2016-08-17
//	    after_sunset: true
//	  - name: Moshe
//	    kind: yahrzeit
//	    hebrew: 30 Kislev 5785
type Event struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Gregorian   string `yaml:"gregorian"`
	Hebrew      string `yaml:"hebrew"`
	AfterSunset bool   `yaml:"after_sunset"`
}

// EventsConfig is the format of the file read by the anniversaries command.
type EventsConfig struct {
	Events []Event `yaml:"events"`
}

const (
	birthday = "birthday"
	yahrzeit = "yahrzeit"
)

// Date returns the Hebrew date of the event.
func (e Event) Date() (hebrew.Date, error) {
	switch {
	case len(e.Hebrew) > 0 && len(e.Gregorian) > 0:
		return hebrew.Date{}, fmt.Errorf("only one of gregorian or hebrew may be specified")
	case len(e.Hebrew) > 0:
		if e.AfterSunset {
			return hebrew.Date{}, fmt.Errorf("after_sunset applies only to gregorian dates")
		}
		return hebrew.Parse(e.Hebrew)
	case len(e.Gregorian) > 0:
		gd, err := gregorian.Parse(e.Gregorian)
		if err != nil {
			return hebrew.Date{}, err
		}
		day := gd.Day()
		if e.AfterSunset {
			day++
		}
		return hebrew.FromDay(day)
	}
	return hebrew.Date{}, fmt.Errorf("one of gregorian or hebrew must be specified")
}

// Anniversary returns the anniversary of the event in the specified
// Hebrew year.
func (e Event) Anniversary(year int) (hebrew.Date, error) {
	d, err := e.Date()
	if err != nil {
		return hebrew.Date{}, err
	}
	switch strings.ToLower(e.Kind) {
	case birthday:
		return hebrew.Birthday(d, year)
	case yahrzeit:
		return hebrew.Yahrzeit(d, year)
	}
	return hebrew.Date{}, fmt.Errorf("unsupported kind %q: use %v or %v", e.Kind, birthday, yahrzeit)
}

type anniversaryRecord struct {
	Name     string     `json:"name" yaml:"name"`
	Kind     string     `json:"kind" yaml:"kind"`
	Original string     `json:"original" yaml:"original"`
	Date     dateRecord `json:"date" yaml:"date"`
}

type anniversaryReport struct {
	Year          int                 `json:"year" yaml:"year"`
	Anniversaries []anniversaryRecord `json:"anniversaries" yaml:"anniversaries"`
}

func (ar anniversaryReport) text(w io.Writer) error {
	for _, a := range ar.Anniversaries {
		if _, err := fmt.Fprintf(w, "%-9s %v  %-20v %v: %v (%v)\n",
			a.Date.Weekday, a.Date.Gregorian, a.Date.Hebrew, a.Kind, a.Name, a.Original); err != nil {
			return err
		}
	}
	return nil
}

// anniversariesFor returns the anniversaries, ordered by date, of the
// events that occurred before year. Invalid events are reported together.
func anniversariesFor(ctx context.Context, events []Event, year int) (anniversaryReport, error) {
	var errs errors.M
	report := anniversaryReport{Year: year}
	for i, e := range events {
		orig, err := e.Date()
		if err == nil && orig.Year() >= year {
			ctxlog.Debug(ctx, "skipping event", "name", e.Name, "date", orig, "year", year)
			continue
		}
		var d hebrew.Date
		if err == nil {
			d, err = e.Anniversary(year)
		}
		if err != nil {
			errs.Append(fmt.Errorf("event %d (%v): %w", i+1, e.Name, err))
			continue
		}
		jd, err := jewishcal.FromDay(d.Day())
		if err != nil {
			errs.Append(fmt.Errorf("event %d (%v): %w", i+1, e.Name, err))
			continue
		}
		report.Anniversaries = append(report.Anniversaries, anniversaryRecord{
			Name:     e.Name,
			Kind:     strings.ToLower(e.Kind),
			Original: orig.String(),
			Date:     newDateRecord(jd),
		})
	}
	slices.SortStableFunc(report.Anniversaries, func(a, b anniversaryRecord) int {
		return int(a.Date.SDN - b.Date.SDN)
	})
	return report, errs.Err()
}

func anniversariesCmd(ctx context.Context, p *printer, values any, args []string) error {
	fv := values.(*anniversaryFlags)
	y, err := parseHebrewYear(args[0])
	if err != nil {
		return err
	}
	var cfg EventsConfig
	if err := cmdyaml.ParseConfigFile(ctx, fv.Events, &cfg); err != nil {
		return err
	}
	ctxlog.Debug(ctx, "events", "file", fv.Events, "count", len(cfg.Events))
	report, err := anniversariesFor(ctx, cfg.Events, y)
	if len(report.Anniversaries) > 0 {
		if perr := p.print(report, report.text); perr != nil {
			return perr
		}
	}
	return err
}
