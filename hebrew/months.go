// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hebrew

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Month represents a Hebrew month. Months are numbered from Nisan,
// following the Torah, so that Tishrei, the first month of the civil
// year, is month 7 and Adar II, which only occurs in leap years, is
// month 13.
type Month int

const (
	Nisan Month = iota + 1
	Iyar
	Sivan
	Tammuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Tevet
	Shevat
	Adar
	AdarII
)

// AdarI is the first Adar of a leap year, it shares its number with
// Adar.
const AdarI = Adar

var (
	civilOrder = []Month{
		Tishrei, Cheshvan, Kislev, Tevet, Shevat, Adar,
		Nisan, Iyar, Sivan, Tammuz, Av, Elul,
	}
	civilOrderLeap = []Month{
		Tishrei, Cheshvan, Kislev, Tevet, Shevat, Adar, AdarII,
		Nisan, Iyar, Sivan, Tammuz, Av, Elul,
	}
)

var monthNames = [...]string{
	"", "Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul", "Tishrei",
	"Cheshvan", "Kislev", "Tevet", "Shevat", "Adar", "Adar II",
}

var hebrewMonthNames = [...]string{
	"", "ניסן", "אייר", "סיוון", "תמוז", "אב", "אלול", "תשרי",
	"חשוון", "כסלו", "טבת", "שבט", "אדר", "אדר ב׳",
}

const (
	adarIName       = "Adar I"
	hebrewAdarIName = "אדר א׳"
)

// Valid returns true for months 1-13.
func (m Month) Valid() bool {
	return m >= Nisan && m <= AdarII
}

// String returns the English name of the month. Month 12 is always
// rendered as Adar, use MonthName for the leap year aware name.
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m]
}

// Hebrew returns the name of the month in Hebrew.
func (m Month) Hebrew() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return hebrewMonthNames[m]
}

// MonthName returns the English name of month in the given year, month 12
// is Adar I in a leap year.
func MonthName(year int, month Month) string {
	if month == Adar && IsLeapYear(year) {
		return adarIName
	}
	return month.String()
}

// HebrewMonthName is like MonthName but returns the Hebrew name.
func HebrewMonthName(year int, month Month) string {
	if month == Adar && IsLeapYear(year) {
		return hebrewAdarIName
	}
	return month.Hebrew()
}

// MonthsInCivilOrder returns the months of year starting with Tishrei.
func MonthsInCivilOrder(year int) []Month {
	months := civilOrder
	if IsLeapYear(year) {
		months = civilOrderLeap
	}
	return append([]Month(nil), months...)
}

// monthAliases maps normalized spellings to months, normalization
// case folds, removes niqqud and removes spaces, hyphens and apostrophes.
var monthAliases = map[string]Month{
	"nisan": Nisan, "nissan": Nisan,
	"iyar": Iyar, "iyyar": Iyar,
	"sivan": Sivan,
	"tammuz": Tammuz, "tamuz": Tammuz,
	"av": Av, "menachemav": Av,
	"elul": Elul,
	"tishrei": Tishrei, "tishri": Tishrei,
	"cheshvan": Cheshvan, "heshvan": Cheshvan, "marcheshvan": Cheshvan, "marheshvan": Cheshvan,
	"kislev": Kislev,
	"tevet": Tevet, "teves": Tevet,
	"shevat": Shevat, "shvat": Shevat,
	"adar": Adar, "adari": Adar, "adar1": Adar, "adarrishon": Adar,
	"adarii": AdarII, "adar2": AdarII, "adarb": AdarII, "adarsheni": AdarII, "veadar": AdarII,
}

func init() {
	for m := Nisan; m <= AdarII; m++ {
		monthAliases[normalizeMonth(hebrewMonthNames[m])] = m
	}
	monthAliases[normalizeMonth(hebrewAdarIName)] = Adar
	monthAliases["חשון"] = Cheshvan
	monthAliases["סיון"] = Sivan
}

func normalizeMonth(val string) string {
	// Transformers and Casers are stateful and are created per call.
	stripNiqqud := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripNiqqud, val); err == nil {
		val = stripped
	}
	var out strings.Builder
	for _, r := range cases.Fold().String(val) {
		switch r {
		case ' ', '-', '\'', '׳', '"', '״':
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// ParseMonth parses a month name, spelling variant or number (1-13).
// Names are case insensitive and may be abbreviated to a unique prefix of
// at least three letters.
func ParseMonth(val string) (Month, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if m := Month(n); m.Valid() {
			return m, nil
		}
		return 0, fmt.Errorf("invalid month: %v", val)
	}
	key := normalizeMonth(val)
	if m, ok := monthAliases[key]; ok {
		return m, nil
	}
	if len(key) < 3 {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	var found Month
	for alias, m := range monthAliases {
		if !strings.HasPrefix(alias, key) {
			continue
		}
		if found != 0 && found != m {
			return 0, fmt.Errorf("ambiguous month: %q", val)
		}
		found = m
	}
	if found == 0 {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	return found, nil
}

// Parse parses val as a month and stores the result in m.
func (m *Month) Parse(val string) error {
	pm, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = pm
	return nil
}
