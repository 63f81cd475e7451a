// Package date implements a calendar date with day granularity, as used for
// the placement and settlement days of a bet.
package date

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Day is the length of a calendar day.
const Day = 24 * time.Hour

// EnvTestingNow pins the clock returned by Now, formatted as "2006-01-02 15:04:05" in local time.
const EnvTestingNow = "BADBETS_TESTING_NOW"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the date of t in t's location.
func Of(t time.Time) Date { return New(t.Date()) }

// Now returns the current time, unless the clock is pinned with BADBETS_TESTING_NOW.
func Now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

// Today returns the current date.
func Today() Date { return Of(Now()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Midnight returns the first instant of the day in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, loc)
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1 if d is before x, +1 if d is after x, and 0 on the same day.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Sub returns the number of days from x to d.
func (d Date) Sub(x Date) int { return int(d.time().Sub(x.time()) / Day) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date according to layout, see [time.Time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return Of(on), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseInput parses a date typed by a user.
//
// It accepts "t" or "today", US style "mm/dd/yyyy" and "mm/dd/yy" (two-digit
// years are in the 2000s), and ISO "yyyy-mm-dd". Years must lie between 1900
// and 2100.
func ParseInput(str string, today Date) (Date, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	switch str {
	case "":
		return Date{}, fmt.Errorf("empty date")
	case "t", "today":
		return today, nil
	}
	if !strings.Contains(str, "/") {
		return Parse(str)
	}

	parts := strings.Split(str, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q want format mm/dd/yyyy", str)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("error parsing month %q", parts[0])
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("error parsing day %q", parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("error parsing year %q", parts[2])
	}
	switch {
	case year >= 0 && year <= 99:
		year += 2000
	case year >= 1900 && year <= 2100:
	default:
		return Date{}, fmt.Errorf("year %d must be between 0 and 99 or 1900 and 2100", year)
	}

	// New normalizes 02/30 into March, reject instead.
	d := New(year, time.Month(month), day)
	if d.Month() != time.Month(month) || d.Day() != day {
		return Date{}, fmt.Errorf("%02d/%02d/%d is not a calendar day", month, day, year)
	}
	return d, nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*d = Of(on)
	return nil
}

// MarshalJSON writes the date as an ISO-8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
