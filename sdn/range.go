// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sdn

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of days.
type Range struct {
	From, To Day
}

// NewRange returns a Range for the from/to days. If from is later
// than to then they are swapped.
func NewRange(from, to Day) Range {
	if from > to {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Single returns a Range that contains just the specified day.
func Single(d Day) Range {
	return Range{From: d, To: d}
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	return int(r.To-r.From) + 1
}

// Contains returns true if d is within the range.
func (r Range) Contains(d Day) bool {
	return d >= r.From && d <= r.To
}

// Overlaps returns true if r and o share at least one day.
func (r Range) Overlaps(o Range) bool {
	return r.From <= o.To && o.From <= r.To
}

// Days returns an iterator that yields each day in the range.
func (r Range) Days() iter.Seq[Day] {
	return func(yield func(Day) bool) {
		for d := r.From; d <= r.To; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%d - %d", int64(r.From), int64(r.To))
}
