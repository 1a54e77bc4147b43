package statements

import (
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// PeriodFormat is the format used to represent year-month periods as strings.
const PeriodFormat = "2006-01"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument.
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Period represents a calendar month, the granularity at which income
// statements are computed.
type Period struct {
	y int
	m time.Month
}

// NewPeriod returns a normalized Period for the given year and month.
func NewPeriod(year int, month time.Month) Period {
	d := NewDate(year, month, 1)
	return Period{y: d.Year(), m: d.Month()}
}

// PeriodOf returns the period containing the given date.
func PeriodOf(d Date) Period { return NewPeriod(d.Year(), d.Month()) }

// Year returns the year of the period.
func (p Period) Year() int { return p.y }

// Month returns the month of the period.
func (p Period) Month() time.Month { return p.m }

// String formats the period as "2006-01".
func (p Period) String() string { return p.Start().Format(PeriodFormat) }

// IsZero returns true if the period is the zero value.
func (p Period) IsZero() bool { return p.y == 0 && p.m == 0 }

// Start returns the first day of the period.
func (p Period) Start() Date { return NewDate(p.y, p.m, 1) }

// End returns the last day of the period.
func (p Period) End() Date { return NewDate(p.y, p.m+1, 0) }

// Contains reports whether the date falls within the period.
func (p Period) Contains(d Date) bool { return d.Year() == p.y && d.Month() == p.m }

// Next returns the following period.
func (p Period) Next() Period { return NewPeriod(p.y, p.m+1) }

// Prev returns the preceding period.
func (p Period) Prev() Period { return NewPeriod(p.y, p.m-1) }

// Before reports whether the period p is before x.
func (p Period) Before(x Period) bool { return p.Start().Before(x.Start()) }

// Range returns the date range covered by the period.
func (p Period) Range() Range { return Range{From: p.Start(), To: p.End()} }

// ParsePeriod parses a Period from a string like "2025-07". It is lenient
// and also accepts "2025-7".
func ParsePeriod(str string) (Period, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse("2006-1", str)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q want format %q: %w", str, PeriodFormat, err)
	}
	return NewPeriod(on.Year(), on.Month()), nil
}

// MustParsePeriod is like ParsePeriod but panics on error.
func MustParsePeriod(str string) Period {
	p, err := ParsePeriod(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }
