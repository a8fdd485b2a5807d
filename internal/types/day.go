// Package types implements special types for DebtFlow.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Day is a calendar date without a time component.
type Day time.Time

// NewDay returns a new Day.
func NewDay(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// String returns the date formatted as YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", time.Time(d).Year(), time.Time(d).Month(), time.Time(d).Day())
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the full-date string, e.g. "2024-01-15".
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The day is expected to be a string in either RFC3339 full-date
// format or full RFC3339 format. From the parsed string, everything
// but the calendar date is ignored.
func (d *Day) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	// This allows to parse strings in the "2006-01-02" format
	match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}$", value)
	if err != nil {
		return err
	}

	// This is the default pattern
	pattern := "2006-01-02T15:04:05Z07:00"
	if match {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DayOf(t)
	return nil
}

// DayOf returns the Day on which a time occurs in that time's location.
func DayOf(t time.Time) Day {
	year, month, day := t.Date()
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDay parses a string in RFC3339 full-date format and returns the Day value it represents.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}

	return DayOf(t), nil
}

// UnmarshalParam parses a Day from a query or URI parameter.
func (d *Day) UnmarshalParam(param string) error {
	parsed, err := ParseDay(param)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// IsZero reports if the day is the zero value.
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddMonths adds the specified amount of calendar months. When the
// day-of-month does not exist in the target month, the date is
// normalized forward, e.g. adding one month to October 31 yields
// December 1.
func (d Day) AddMonths(months int) Day {
	return Day(time.Time(d).AddDate(0, months, 0))
}

// Before reports whether the day d is before e.
func (d Day) Before(e Day) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the day d is after e.
func (d Day) After(e Day) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same calendar date.
func (d Day) Equal(e Day) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Time returns the midnight UTC instant of the day.
func (d Day) Time() time.Time {
	return time.Time(d)
}
