// Package julian converts calendar dates into the compact date encoding
// used by CPA 005 date fields.
package julian

import (
	"fmt"
	"time"
)

// dayNumber returns the Julian Day Number for a Gregorian calendar date,
// using the Fliegel-Van Flandern integer arithmetic. Working from the JDN
// keeps the day-of-year anchored to the same epoch and leap rules the
// receiving institutions validate against.
func dayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// ShortDate encodes a date as the 6-character field "0YYDDD": a literal
// zero, the two-digit year of century, and the three-digit day of year
// derived from Julian Day Number arithmetic. A zero time encodes the
// current date. Every valid date maps to a string; there is no error path.
func ShortDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	year, month, day := t.Date()
	// Day of year is the distance from December 31 of the prior year.
	doy := dayNumber(year, int(month), day) - dayNumber(year-1, 12, 31)
	return fmt.Sprintf("0%02d%03d", year%100, doy)
}
