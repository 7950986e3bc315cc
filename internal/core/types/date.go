package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

// Date is a calendar date without time-of-day or zone.
// Payroll periods, effective dates and appointment dates use it; it
// serializes as "YYYY-MM-DD" in JSON and maps to Postgres DATE.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar date in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustDate parses "YYYY-MM-DD", panics on error. Use only in tests.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last nanosecond of the date in UTC.
// Used for inclusive upper bounds on timestamp ranges.
func (d Date) EndOfDay() time.Time {
	return d.Time().AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Equal reports whether two dates are the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" (and tolerates full RFC 3339 input
// by taking its date part).
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			*d = DateOf(t)
			return nil
		}
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalParam binds "YYYY-MM-DD" query and form parameters.
func (d *Date) UnmarshalParam(param string) error {
	if param == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(param)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer, storing the date as time.Time.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time(), nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Period is an inclusive calendar-date range.
type Period struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// NewPeriod builds a Period, validating ordering.
func NewPeriod(start, end Date) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, fmt.Errorf("period boundaries must be set")
	}
	if end.Before(start) {
		return Period{}, fmt.Errorf("period end %s before start %s", end, start)
	}
	return Period{Start: start, End: end}, nil
}

// MonthOf returns the full calendar month containing d.
func MonthOf(d Date) Period {
	first := NewDate(d.Year, d.Month, 1)
	last := DateOf(first.Time().AddDate(0, 1, -1))
	return Period{Start: first, End: last}
}

// Contains reports whether the date falls inside the period (inclusive).
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

func (p Period) String() string {
	return p.Start.String() + ".." + p.End.String()
}
