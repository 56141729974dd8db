package dateutil

import (
	"fmt"
	"sort"
	"time"
)

// Date is a calendar day without time or location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date and reports whether the combination exists
// in the proleptic Gregorian calendar (no 31 April, no 29 February in 2025)
func NewDate(year int, month time.Month, day int) (Date, bool) {
	if month < time.January || month > time.December || day < 1 {
		return Date{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// DateOf returns the calendar day of t in its own location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// YearDay returns the 1-based day of year
func (d Date) YearDay() int {
	return d.Time().YearDay()
}

// Before reports whether d comes before other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate parses YYYY-MM-DD or DD.MM.YYYY
func ParseDate(s string) (Date, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, fmt.Errorf("unsupported date format: %q", s)
}

// DateSet is an unordered set of dates
type DateSet map[Date]struct{}

// Add inserts d and reports whether it was absent
func (s DateSet) Add(d Date) bool {
	if _, ok := s[d]; ok {
		return false
	}
	s[d] = struct{}{}
	return true
}

// Has reports whether d is in the set
func (s DateSet) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

// Sorted returns the dates in chronological order
func (s DateSet) Sorted() []Date {
	dates := make([]Date, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// IsLeapYear reports whether year has 366 days
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// FromYearDay returns the date at the given 1-based day of year
func FromYearDay(year, yearDay int) Date {
	return DateOf(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, yearDay-1))
}

// Today returns today's date in the local zone
func Today() Date {
	return DateOf(time.Now())
}
