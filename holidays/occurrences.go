// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import (
	"fmt"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/jewishcal"
	"cloudeng.io/jewishcal/gregorian"
	"cloudeng.io/jewishcal/hebrew"
	"cloudeng.io/jewishcal/sdn"
)

// Occurrence represents the days on which a holiday is observed.
type Occurrence struct {
	Name  string
	Days  sdn.Range
	Start hebrew.Date
}

// Less implements heap.Value, occurrences are ordered by their first
// day and then by name.
func (o Occurrence) Less(b Occurrence) bool {
	if o.Days.From == b.Days.From {
		return o.Name < b.Name
	}
	return o.Days.From < b.Days.From
}

// Gregorian returns the first and last days of the occurrence as Gregorian
// dates.
func (o Occurrence) Gregorian() (from, to gregorian.Date) {
	return gregorian.FromDay(o.Days.From), gregorian.FromDay(o.Days.To)
}

func (o Occurrence) String() string {
	from, to := o.Gregorian()
	if from == to {
		return fmt.Sprintf("%v: %v (%v)", o.Name, from, o.Start)
	}
	return fmt.Sprintf("%v: %v - %v (%v)", o.Name, from, to, o.Start)
}

func (l List) evaluate(year int, h *heap.Heap[Occurrence], include func(sdn.Range) bool) {
	for _, hol := range l {
		days, ok := hol.Evaluate(year)
		if !ok || !include(days) {
			continue
		}
		start, err := hebrew.FromDay(days.From)
		if err != nil {
			continue
		}
		h.Push(Occurrence{Name: hol.Name(), Days: days, Start: start})
	}
}

func drain(h *heap.Heap[Occurrence]) []Occurrence {
	out := make([]Occurrence, 0, h.Len())
	for h.Len() > 0 {
		out = append(out, h.Pop())
	}
	return out
}

// ForHebrewYear returns the occurrences of the holidays in the specified
// Hebrew year ordered by date.
func ForHebrewYear(l List, year int) []Occurrence {
	var h heap.Heap[Occurrence]
	l.evaluate(year, &h, func(sdn.Range) bool { return true })
	return drain(&h)
}

// Occurrences returns the occurrences of the holidays that start within the
// specified Gregorian year ordered by date. Since a Gregorian year overlaps
// with two Hebrew years, the holidays are evaluated for both.
func Occurrences(l List, year int) ([]Occurrence, error) {
	years, err := jewishcal.HebrewYearsOverlapping(year)
	if err != nil {
		return nil, err
	}
	first := gregorian.MustNew(year, 1, 1).Day()
	last := gregorian.MustNew(year, 12, 31).Day()
	within := sdn.NewRange(first, last)
	var h heap.Heap[Occurrence]
	for _, y := range years {
		l.evaluate(y, &h, func(r sdn.Range) bool { return within.Contains(r.From) })
	}
	return drain(&h), nil
}
