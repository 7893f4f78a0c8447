// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command jcal converts dates between the Gregorian and Hebrew calendars
// and prints the Hebrew calendar, holidays and anniversaries.
//
// Gregorian dates are accepted as 2006-01-02, 01/02/2006 or Jan-02-2006,
// Hebrew dates as '13 Av 5776' or 5776-05-13 with months numbered from
// Nisan. Output is printed as text, json or yaml according to --format.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: jcal
summary: convert dates between the Gregorian and Hebrew calendars
commands:
  - name: today
    summary: print the current date in both calendars
  - name: hebrew
    summary: convert Gregorian dates to Hebrew dates
    arguments:
      - <gregorian-date>
      - ...
  - name: gregorian
    summary: convert Hebrew dates, eg. '13 Av 5776', to Gregorian dates
    arguments:
      - <hebrew-date>
      - ...
  - name: year
    summary: describe a Hebrew year, its type, length and months
    arguments:
      - <hebrew-year>
  - name: month
    summary: print every day of a Hebrew month and its molad
    arguments:
      - <hebrew-year>
      - <month>
  - name: holidays
    summary: print the holidays that start in a Gregorian year, the current year by default
    arguments:
      - "[gregorian-year]"
  - name: anniversaries
    summary: print the birthdays and yahrzeits listed in a YAML events file for a Hebrew year
    arguments:
      - <hebrew-year>
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Format string `subcmd:"format,text,'output format: text, json or yaml'"`
}

type todayFlags struct {
	CommonFlags
	AfterSunset bool `subcmd:"after-sunset,false,'use the following Hebrew date since the Hebrew day starts at nightfall'"`
}

type convertFlags struct {
	CommonFlags
}

type yearFlags struct {
	CommonFlags
	Molad bool `subcmd:"molad,false,'include the molad of each month'"`
}

type monthFlags struct {
	CommonFlags
}

type holidayFlags struct {
	CommonFlags
	Israel bool `subcmd:"israel,false,'use the holiday schedule observed in Israel'"`
	Hebrew bool `subcmd:"hebrew-year,false,'interpret the year as a Hebrew year'"`
}

type anniversaryFlags struct {
	CommonFlags
	Events string `subcmd:"events,events.yaml,'YAML file listing the birthdays and yahrzeits'"`
}

func newCommandSet() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("today").MustRunnerAndFlags(
		stdout(todayCmd), subcmd.MustRegisteredFlagSet(&todayFlags{}))
	cmdSet.Set("hebrew").MustRunnerAndFlags(
		stdout(hebrewCmd), subcmd.MustRegisteredFlagSet(&convertFlags{}))
	cmdSet.Set("gregorian").MustRunnerAndFlags(
		stdout(gregorianCmd), subcmd.MustRegisteredFlagSet(&convertFlags{}))
	cmdSet.Set("year").MustRunnerAndFlags(
		stdout(yearCmd), subcmd.MustRegisteredFlagSet(&yearFlags{}))
	cmdSet.Set("month").MustRunnerAndFlags(
		stdout(monthCmd), subcmd.MustRegisteredFlagSet(&monthFlags{}))
	cmdSet.Set("holidays").MustRunnerAndFlags(
		stdout(holidaysCmd), subcmd.MustRegisteredFlagSet(&holidayFlags{}))
	cmdSet.Set("anniversaries").MustRunnerAndFlags(
		stdout(anniversariesCmd), subcmd.MustRegisteredFlagSet(&anniversaryFlags{}))
	return cmdSet
}

type commandFlags interface {
	common() *CommonFlags
}

func (cf *CommonFlags) common() *CommonFlags {
	return cf
}

// command is implemented by each sub-command, the output is written to
// the supplied printer.
type command func(ctx context.Context, p *printer, values any, args []string) error

// stdout returns a subcmd.Runner that configures logging and the output
// format before running cmd with its output written to os.Stdout.
func stdout(cmd command) subcmd.Runner {
	return func(ctx context.Context, values any, args []string) error {
		return run(ctx, os.Stdout, cmd, values, args)
	}
}

func run(ctx context.Context, out io.Writer, cmd command, values any, args []string) error {
	cf := values.(commandFlags).common()
	p, err := newPrinter(out, cf.Format)
	if err != nil {
		return err
	}
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close() //nolint:errcheck
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctxlog.Debug(ctx, "running", "args", args, "format", cf.Format)
	return cmd(ctx, p, values, args)
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet())
}
