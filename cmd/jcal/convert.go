// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/jewishcal"
	"cloudeng.io/jewishcal/gregorian"
	"cloudeng.io/jewishcal/hebrew"
	"cloudeng.io/logging/ctxlog"
)

var now = time.Now

func todayCmd(ctx context.Context, p *printer, values any, _ []string) error {
	fv := values.(*todayFlags)
	d, err := jewishcal.TodayAt(now(), fv.AfterSunset)
	if err != nil {
		return err
	}
	ctxlog.Debug(ctx, "today", "sdn", d.Day, "after-sunset", fv.AfterSunset)
	return printDates(p, []dateRecord{newDateRecord(d)})
}

func hebrewCmd(ctx context.Context, p *printer, _ any, args []string) error {
	return convert(ctx, p, args, func(arg string) (jewishcal.Date, error) {
		gd, err := gregorian.Parse(arg)
		if err != nil {
			return jewishcal.Date{}, err
		}
		return jewishcal.FromDay(gd.Day())
	})
}

func gregorianCmd(ctx context.Context, p *printer, _ any, args []string) error {
	return convert(ctx, p, args, func(arg string) (jewishcal.Date, error) {
		hd, err := hebrew.Parse(arg)
		if err != nil {
			return jewishcal.Date{}, err
		}
		return jewishcal.FromDay(hd.Day())
	})
}

// convert prints the dates for all of the arguments that can be parsed
// and returns the errors for those that cannot.
func convert(ctx context.Context, p *printer, args []string, parse func(string) (jewishcal.Date, error)) error {
	var errs errors.M
	records := make([]dateRecord, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		d, err := parse(arg)
		if err != nil {
			ctxlog.Debug(ctx, "invalid date", "arg", arg, "error", err)
			errs.Append(fmt.Errorf("%q: %w", arg, err))
			continue
		}
		records = append(records, newDateRecord(d))
	}
	if len(records) > 0 {
		if err := printDates(p, records); err != nil {
			return err
		}
	}
	return errs.Err()
}
