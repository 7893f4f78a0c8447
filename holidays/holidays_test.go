// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays_test

import (
	"fmt"
	"testing"

	"cloudeng.io/jewishcal/gregorian"
	"cloudeng.io/jewishcal/hebrew"
	"cloudeng.io/jewishcal/holidays"
	"cloudeng.io/jewishcal/sdn"
)

type occurrence struct {
	name     string
	from, to string
}

func compare(t *testing.T, got []holidays.Occurrence, want []occurrence) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", len(got), len(want))
	}
	for i, o := range got {
		from, to := o.Gregorian()
		if o.Name != want[i].name || from.String() != want[i].from || to.String() != want[i].to {
			t.Errorf("%v: got %v, want %v", i, o, want[i])
		}
		if got, want := o.Start.Day(), o.Days.From; got != want {
			t.Errorf("%v: got %v, want %v", o, got, want)
		}
	}
}

func TestOccurrences(t *testing.T) {
	occ, err := holidays.Occurrences(holidays.Builtin(holidays.Diaspora), 2024)
	if err != nil {
		t.Fatal(err)
	}
	compare(t, occ, []occurrence{
		{"Tu BiShvat", "2024-01-25", "2024-01-25"},
		{"Ta'anit Esther", "2024-03-21", "2024-03-21"},
		{"Purim", "2024-03-24", "2024-03-24"},
		{"Shushan Purim", "2024-03-25", "2024-03-25"},
		{"Pesach", "2024-04-23", "2024-04-30"},
		{"Lag BaOmer", "2024-05-26", "2024-05-26"},
		{"Shavuot", "2024-06-12", "2024-06-13"},
		{"Tzom Tammuz", "2024-07-23", "2024-07-23"},
		{"Tisha B'Av", "2024-08-13", "2024-08-13"},
		{"Tu B'Av", "2024-08-19", "2024-08-19"},
		{"Rosh Hashanah", "2024-10-03", "2024-10-04"},
		{"Tzom Gedaliah", "2024-10-06", "2024-10-06"},
		{"Yom Kippur", "2024-10-12", "2024-10-12"},
		{"Sukkot", "2024-10-17", "2024-10-23"},
		{"Shemini Atzeret", "2024-10-24", "2024-10-24"},
		{"Simchat Torah", "2024-10-25", "2024-10-25"},
		{"Chanukah", "2024-12-26", "2025-01-02"},
	})

	occ, err = holidays.Occurrences(holidays.Builtin(holidays.Israel), 2024)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []occurrence{
		{"Pesach", "2024-04-23", "2024-04-29"},
		{"Shavuot", "2024-06-12", "2024-06-12"},
		{"Simchat Torah", "2024-10-24", "2024-10-24"},
	} {
		found := false
		for _, o := range occ {
			if o.Name != tc.name {
				continue
			}
			found = true
			from, to := o.Gregorian()
			if from.String() != tc.from || to.String() != tc.to {
				t.Errorf("got %v, want %v", o, tc)
			}
		}
		if !found {
			t.Errorf("%v: not found", tc.name)
		}
	}
}

func TestPostponements(t *testing.T) {
	list := holidays.Builtin(holidays.Diaspora)
	for _, tc := range []struct {
		name   string
		year   int
		date   string
		hebrew hebrew.Date
	}{
		{"Tzom Gedaliah", 5784, "2023-09-18", hebrew.MustNew(5784, hebrew.Tishrei, 3)},
		{"Tzom Gedaliah", 5785, "2024-10-06", hebrew.MustNew(5785, hebrew.Tishrei, 4)},
		{"Ta'anit Esther", 5783, "2023-03-06", hebrew.MustNew(5783, hebrew.Adar, 13)},
		{"Ta'anit Esther", 5784, "2024-03-21", hebrew.MustNew(5784, hebrew.AdarII, 11)},
		{"Tzom Tammuz", 5782, "2022-07-17", hebrew.MustNew(5782, hebrew.Tammuz, 18)},
		{"Tzom Tammuz", 5785, "2025-07-13", hebrew.MustNew(5785, hebrew.Tammuz, 17)},
		{"Tisha B'Av", 5782, "2022-08-07", hebrew.MustNew(5782, hebrew.Av, 10)},
		{"Tisha B'Av", 5785, "2025-08-03", hebrew.MustNew(5785, hebrew.Av, 9)},
	} {
		h, ok := list.Lookup(tc.name)
		if !ok {
			t.Fatalf("%v: not found", tc.name)
		}
		days, ok := h.Evaluate(tc.year)
		if !ok {
			t.Errorf("%v: %v: not evaluated", tc.name, tc.year)
			continue
		}
		if got, want := gregorian.FromDay(days.From).String(), tc.date; got != want {
			t.Errorf("%v: %v: got %v, want %v", tc.name, tc.year, got, want)
		}
		if got, want := days.From, tc.hebrew.Day(); got != want {
			t.Errorf("%v: %v: got %v, want %v", tc.name, tc.year, got, want)
		}
	}
}

func TestForHebrewYear(t *testing.T) {
	list := holidays.Builtin(holidays.Diaspora)
	occ := holidays.ForHebrewYear(list, 5785)
	if got, want := len(occ), len(list); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := 1; i < len(occ); i++ {
		if occ[i].Less(occ[i-1]) {
			t.Errorf("%v: out of order with %v", occ[i], occ[i-1])
		}
	}
	if got, want := occ[0].Name, "Rosh Hashanah"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := occ[len(occ)-1].Name, "Tu B'Av"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, o := range occ {
		if got, want := o.Start.Year(), 5785; got != want {
			t.Errorf("%v: got %v, want %v", o, got, want)
		}
	}
}

type monthly struct {
	day int
}

func (m monthly) Name() string {
	return fmt.Sprintf("day %d of Adar II", m.day)
}

func (m monthly) Evaluate(year int) (sdn.Range, bool) {
	d, err := hebrew.New(year, hebrew.AdarII, m.day)
	if err != nil {
		return sdn.Range{}, false
	}
	return sdn.Single(d.Day()), true
}

func TestCustom(t *testing.T) {
	list := holidays.List{monthly{day: 1}, holidays.Fixed{Title: "rosh chodesh", Month: hebrew.Nisan, Day: 1}}
	if got, want := list.String(), "day 1 of Adar II, rosh chodesh"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(holidays.ForHebrewYear(list, 5784)), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(holidays.ForHebrewYear(list, 5785)), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, year := range []int{-4000, 1000001, 1000000000} {
		if _, err := holidays.Occurrences(list, year); err == nil {
			t.Errorf("%v: expected an error", year)
		}
	}
}

func ExampleOccurrences() {
	list := holidays.Builtin(holidays.Diaspora)
	occ, _ := holidays.Occurrences(list, 2025)
	for _, o := range occ[:3] {
		fmt.Println(o)
	}
	// Output:
	// Asara B'Tevet: 2025-01-10 (10 Tevet 5785)
	// Tu BiShvat: 2025-02-13 (15 Shevat 5785)
	// Ta'anit Esther: 2025-03-13 (13 Adar 5785)
}
