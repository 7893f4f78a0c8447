// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func flags(format string) CommonFlags {
	return CommonFlags{Format: format}
}

func runCmd(t *testing.T, cmd command, values any, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), &out, cmd, values, args)
	return out.String(), err
}

func lines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestToday(t *testing.T) {
	now = func() time.Time { return time.Date(2016, 8, 17, 20, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	out, err := runCmd(t, todayCmd, &todayFlags{CommonFlags: flags("text")})
	require.NoError(t, err)
	require.Contains(t, out, "Wednesday 2016-08-17  13 Av 5776")

	out, err = runCmd(t, todayCmd, &todayFlags{CommonFlags: flags("text"), AfterSunset: true})
	require.NoError(t, err)
	require.Contains(t, out, "Wednesday 2016-08-17  14 Av 5776")
}

func TestConvert(t *testing.T) {
	out, err := runCmd(t, hebrewCmd, &convertFlags{flags("text")}, "2016-08-17", "03/24/2024")
	require.NoError(t, err)
	l := lines(out)
	require.Len(t, l, 2)
	require.Contains(t, l[0], "13 Av 5776")
	require.Contains(t, l[1], "14 Adar II 5784")

	out, err = runCmd(t, gregorianCmd, &convertFlags{flags("json")}, "13 Av 5776")
	require.NoError(t, err)
	var records []dateRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Equal(t, []dateRecord{{
		SDN:        2457618,
		Weekday:    "Wednesday",
		Gregorian:  "2016-08-17",
		Hebrew:     "13 Av 5776",
		HebrewText: "13 אב 5776",
	}}, records)
}

func TestConvertErrors(t *testing.T) {
	out, err := runCmd(t, hebrewCmd, &convertFlags{flags("text")}, "2016-08-17", "2016-13-01", "-3761-01-01")
	require.Error(t, err)
	require.Len(t, lines(out), 1)
	require.Contains(t, out, "13 Av 5776")
	require.Contains(t, err.Error(), "2016-13-01")
	require.Contains(t, err.Error(), "-3761-01-01")

	out, err = runCmd(t, gregorianCmd, &convertFlags{flags("text")}, "30 Cheshvan 5784")
	require.Error(t, err)
	require.Empty(t, out)

	out, err = runCmd(t, hebrewCmd, &convertFlags{flags("text")}, "99999999999-01-01", "996251-06-19")
	require.Error(t, err)
	require.Empty(t, out)
	require.Contains(t, err.Error(), "99999999999-01-01")
	require.Contains(t, err.Error(), "996251-06-19")

	_, err = runCmd(t, holidaysCmd, &holidayFlags{CommonFlags: flags("text")}, "99999999999")
	require.Error(t, err)

	_, err = runCmd(t, gregorianCmd, &convertFlags{flags("xml")}, "13 Av 5776")
	require.ErrorContains(t, err, "unsupported output format")
}

func TestYear(t *testing.T) {
	out, err := runCmd(t, yearCmd, &yearFlags{CommonFlags: flags("yaml"), Molad: true}, "5784")
	require.NoError(t, err)
	var yr yearRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &yr))
	require.Equal(t, 5784, yr.Year)
	require.True(t, yr.Leap)
	require.Equal(t, "deficient", yr.Type)
	require.Equal(t, 383, yr.Days)
	require.Equal(t, "2023-09-16", yr.RoshHashanah.Gregorian)
	require.Equal(t, "Saturday", yr.RoshHashanah.Weekday)
	require.Len(t, yr.Months, 13)
	require.Equal(t, "Tishrei", yr.Months[0].Month)
	require.Equal(t, "Friday 2023-09-15 05:49 and 0 chalakim", yr.Months[0].Molad)
	require.Equal(t, "Adar I", yr.Months[5].Month)
	require.Equal(t, 30, yr.Months[5].Days)
	require.Equal(t, "Adar II", yr.Months[6].Month)
	require.Equal(t, "Nisan", yr.Months[7].Month)
	total := 0
	for _, m := range yr.Months {
		total += m.Days
	}
	require.Equal(t, yr.Days, total)

	out, err = runCmd(t, yearCmd, &yearFlags{CommonFlags: flags("text")}, "5785")
	require.NoError(t, err)
	l := lines(out)
	require.Len(t, l, 14)
	require.Equal(t, "5785: complete common year of 355 days", l[0])
	require.Equal(t, "Rosh Hashanah: Thursday 2024-10-03", l[1])
	require.NotContains(t, out, "molad")

	for _, arg := range []string{"0", "year", "1000000"} {
		_, err = runCmd(t, yearCmd, &yearFlags{CommonFlags: flags("text")}, arg)
		require.Error(t, err, arg)
	}
}

func TestMonth(t *testing.T) {
	out, err := runCmd(t, monthCmd, &monthFlags{flags("text")}, "5785", "kislev")
	require.NoError(t, err)
	l := lines(out)
	require.Len(t, l, 31)
	require.True(t, strings.HasPrefix(l[0], "Kislev 5785 (כסלו), molad "), l[0])
	require.Contains(t, l[1], "2024-12-02  1 Kislev 5785")
	require.Contains(t, l[30], "2024-12-31  30 Kislev 5785")

	out, err = runCmd(t, monthCmd, &monthFlags{flags("json")}, "5784", "Adar II")
	require.NoError(t, err)
	var mr monthReport
	require.NoError(t, json.Unmarshal([]byte(out), &mr))
	require.Equal(t, "Adar II", mr.Month)
	require.Len(t, mr.Days, 29)
	require.Equal(t, "14 Adar II 5784", mr.Days[13].Hebrew)
	require.Equal(t, "2024-03-24", mr.Days[13].Gregorian)

	_, err = runCmd(t, monthCmd, &monthFlags{flags("text")}, "5785", "adar2")
	require.Error(t, err)
	_, err = runCmd(t, monthCmd, &monthFlags{flags("text")}, "5785", "smarch")
	require.Error(t, err)
}

func TestHolidays(t *testing.T) {
	out, err := runCmd(t, holidaysCmd, &holidayFlags{CommonFlags: flags("json")}, "2024")
	require.NoError(t, err)
	var report holidayReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, "gregorian", report.Calendar)
	require.Equal(t, "diaspora", report.Location)
	require.Len(t, report.Holidays, 17)
	require.Equal(t, holidayRecord{
		Name: "Tu BiShvat", From: "2024-01-25", To: "2024-01-25", Days: 1, Hebrew: "15 Shevat 5784",
	}, report.Holidays[0])
	require.Equal(t, holidayRecord{
		Name: "Pesach", From: "2024-04-23", To: "2024-04-30", Days: 8, Hebrew: "15 Nisan 5784",
	}, report.Holidays[4])

	out, err = runCmd(t, holidaysCmd, &holidayFlags{CommonFlags: flags("text"), Israel: true, Hebrew: true}, "5785")
	require.NoError(t, err)
	l := lines(out)
	require.Len(t, l, 18)
	require.True(t, strings.HasPrefix(l[0], "Rosh Hashanah"), l[0])
	require.Contains(t, out, "2025-04-13 - 2025-04-19")

	_, err = runCmd(t, holidaysCmd, &holidayFlags{CommonFlags: flags("text")}, "-5000")
	require.Error(t, err)
}

const eventsFile = `events:
  - name: Ruth
    kind: birthday
    gregorian: 2016-08-17
    after_sunset: true
  - name: Moshe
    kind: Yahrzeit
    hebrew: 30 Kislev 5785
  - name: Yet to come
    kind: birthday
    hebrew: 1 Nisan 5790
  - name: Party
    kind: wedding
    hebrew: 1 Nisan 5780
  - name: Unknown
    kind: birthday
`

func TestAnniversaries(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(eventsFile), 0o600))

	fv := &anniversaryFlags{CommonFlags: flags("yaml"), Events: filename}
	out, err := runCmd(t, anniversariesCmd, fv, "5786")
	require.Error(t, err)
	require.Contains(t, err.Error(), "wedding")
	require.Contains(t, err.Error(), "Unknown")
	require.NotContains(t, err.Error(), "Yet to come")

	var report anniversaryReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Equal(t, 5786, report.Year)
	require.Len(t, report.Anniversaries, 2)

	yz := report.Anniversaries[0]
	require.Equal(t, "Moshe", yz.Name)
	require.Equal(t, "yahrzeit", yz.Kind)
	require.Equal(t, "30 Kislev 5785", yz.Original)
	require.Equal(t, "30 Kislev 5786", yz.Date.Hebrew)
	require.Equal(t, "2025-12-20", yz.Date.Gregorian)

	bd := report.Anniversaries[1]
	require.Equal(t, "Ruth", bd.Name)
	require.Equal(t, "14 Av 5776", bd.Original)
	require.Equal(t, "14 Av 5786", bd.Date.Hebrew)
	require.Equal(t, "2026-07-28", bd.Date.Gregorian)
	require.Equal(t, "Tuesday", bd.Date.Weekday)

	fv.Events = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = runCmd(t, anniversariesCmd, fv, "5786")
	require.Error(t, err)
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()
	cs := newCommandSet()
	require.Error(t, cs.DispatchWithArgs(ctx, "jcal", "year"))
	require.Error(t, cs.DispatchWithArgs(ctx, "jcal", "month", "5785"))
	require.Error(t, cs.DispatchWithArgs(ctx, "jcal", "year", "--format=xml", "5785"))
	require.Error(t, cs.DispatchWithArgs(ctx, "jcal", "hebrew", "not-a-date"))
}
