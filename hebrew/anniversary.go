// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hebrew

import "cloudeng.io/jewishcal/sdn"

// lastMonth returns Adar II for leap years and Adar otherwise.
func lastMonth(year int) Month {
	if IsLeapYear(year) {
		return AdarII
	}
	return Adar
}

// dayOf returns the day that is day-1 days after the first of month in
// year, days beyond the end of the month spill into the following month.
func dayOf(year int, month Month, day int) sdn.Day {
	yi := newYearInfo(year)
	return yi.start.Add(yi.daysBefore(month) + day - 1)
}

func checkYear(orig Date, year int) error {
	if year < 1 || year > MaxYear {
		return invalid(year, orig.month, orig.day, "year must be in the range 1-%d", MaxYear)
	}
	return nil
}

// Birthday returns the anniversary of birth in the given year. A birthday
// in the last Adar of the year, Adar in a common year or Adar II in a leap
// year, is observed in the last Adar of year. A birthday on a 30th that
// does not occur in year is observed on the first of the next month.
func Birthday(birth Date, year int) (Date, error) {
	if err := checkYear(birth, year); err != nil {
		return Date{}, err
	}
	if birth.month == lastMonth(birth.year) {
		return FromDay(dayOf(year, lastMonth(year), birth.day))
	}
	return FromDay(dayOf(year, birth.month, birth.day))
}

// Yahrzeit returns the anniversary of death in the given year using the
// customary rules:
//
//   - 30 Cheshvan, when the year following the death has a 29 day Cheshvan,
//     is always observed on the last day of Cheshvan, 29 or 30.
//   - 30 Kislev, when the year following the death has a 29 day Kislev,
//     is always observed on the last day of Kislev, 29 or 30.
//   - Adar II is observed in the last Adar of year.
//   - 30 Adar I is observed on 30 Shevat in common years.
//
// Otherwise the same day and month are used, with a 30th that does not
// occur in year being observed on the first of the next month.
func Yahrzeit(death Date, year int) (Date, error) {
	if err := checkYear(death, year); err != nil {
		return Date{}, err
	}
	switch {
	case death.month == Cheshvan && death.day == 30 && DaysInMonth(death.year+1, Cheshvan) == 29:
		return FromDay(dayOf(year, Kislev, 1) - 1)
	case death.month == Kislev && death.day == 30 && DaysInMonth(death.year+1, Kislev) == 29:
		return FromDay(dayOf(year, Tevet, 1) - 1)
	case death.month == AdarII:
		return FromDay(dayOf(year, lastMonth(year), death.day))
	case death.month == Adar && death.day == 30 && !IsLeapYear(year):
		return New(year, Shevat, 30)
	}
	return FromDay(dayOf(year, death.month, death.day))
}
