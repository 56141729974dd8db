package calendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/username/workcal/pkg/dateutil"
)

// YearMap classifies every day of one year, indexed by day of year from 1.
// It is read-only once built.
type YearMap struct {
	year int
	days []DayStatus // days[i] is day of year i+1
}

// BuildYearMap marks weekends and every date in nonWorking as non-working.
// Dates of other years in nonWorking are ignored.
func BuildYearMap(year int, nonWorking dateutil.DateSet) *YearMap {
	ym := &YearMap{
		year: year,
		days: make([]DayStatus, 0, dateutil.DaysInYear(year)),
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		status := StatusWorking
		if cal.IsWeekend(d) || nonWorking.Has(dateutil.DateOf(d)) {
			status = StatusNonWorking
		}
		ym.days = append(ym.days, status)
	}

	return ym
}

// Year returns the calendar year
func (ym *YearMap) Year() int {
	return ym.year
}

// Len returns 365 or 366
func (ym *YearMap) Len() int {
	return len(ym.days)
}

// Status returns the label of a 1-based day of year
func (ym *YearMap) Status(yearDay int) (DayStatus, bool) {
	if yearDay < 1 || yearDay > len(ym.days) {
		return "", false
	}
	return ym.days[yearDay-1], true
}

// StatusOf returns the label of d, false when d belongs to another year
func (ym *YearMap) StatusOf(d dateutil.Date) (DayStatus, bool) {
	if d.Year != ym.year {
		return "", false
	}
	return ym.Status(d.YearDay())
}

// Map returns a copy keyed by day of year
func (ym *YearMap) Map() map[int]DayStatus {
	m := make(map[int]DayStatus, len(ym.days))
	for i, status := range ym.days {
		m[i+1] = status
	}
	return m
}

// NonWorkingDays counts non-working days, weekends included
func (ym *YearMap) NonWorkingDays() int {
	n := 0
	for _, status := range ym.days {
		if status == StatusNonWorking {
			n++
		}
	}
	return n
}

// DayInfo describes one day of the year
func (ym *YearMap) DayInfo(yearDay int) (DayInfo, bool) {
	status, ok := ym.Status(yearDay)
	if !ok {
		return DayInfo{}, false
	}
	return newDayInfo(dateutil.FromYearDay(ym.year, yearDay), status == StatusNonWorking), true
}

// MonthInfo aggregates one month of the year
func (ym *YearMap) MonthInfo(month time.Month) *MonthInfo {
	n := daysInMonth(ym.year, month)
	days := make([]DayInfo, 0, n)
	first := dateutil.Date{Year: ym.year, Month: month, Day: 1}.YearDay()
	for yearDay := first; yearDay < first+n; yearDay++ {
		info, _ := ym.DayInfo(yearDay)
		days = append(days, info)
	}
	return summarizeMonth(ym.year, month, days)
}

// MarshalJSON writes {"1": "нерабочий", "2": ...} with keys in day order
func (ym *YearMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, status := range ym.days {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(i + 1))
		buf.WriteString(`":`)
		label, err := json.Marshal(string(status))
		if err != nil {
			return nil, err
		}
		buf.Write(label)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseYearMap reads the JSON form written by MarshalJSON
func ParseYearMap(year int, data []byte) (*YearMap, error) {
	var raw map[string]DayStatus
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse year map: %w", err)
	}

	n := dateutil.DaysInYear(year)
	if len(raw) != n {
		return nil, fmt.Errorf("year map for %d has %d days, expected %d", year, len(raw), n)
	}

	ym := &YearMap{
		year: year,
		days: make([]DayStatus, n),
	}
	for key, status := range raw {
		yearDay, err := strconv.Atoi(key)
		if err != nil || yearDay < 1 || yearDay > n {
			return nil, fmt.Errorf("invalid day of year %q", key)
		}
		if !status.Valid() {
			return nil, fmt.Errorf("invalid status %q for day %d", status, yearDay)
		}
		ym.days[yearDay-1] = status
	}

	return ym, nil
}

// Mismatch is a day classified differently by two maps
type Mismatch struct {
	Date dateutil.Date
	Got  DayStatus
	Want DayStatus
}

// Diff lists the days where got and want disagree. Both must cover the same year.
func Diff(got, want *YearMap) ([]Mismatch, error) {
	if got.year != want.year || len(got.days) != len(want.days) {
		return nil, fmt.Errorf("cannot compare year %d with year %d", got.year, want.year)
	}

	var mismatches []Mismatch
	for i := range got.days {
		if got.days[i] != want.days[i] {
			mismatches = append(mismatches, Mismatch{
				Date: dateutil.FromYearDay(got.year, i+1),
				Got:  got.days[i],
				Want: want.days[i],
			})
		}
	}
	return mismatches, nil
}
