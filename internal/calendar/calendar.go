package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/username/workcal/pkg/dateutil"
)

// DayStatus is the label stored for each day of the year
type DayStatus string

const (
	StatusWorking    DayStatus = "рабочий"
	StatusNonWorking DayStatus = "нерабочий"
)

// Valid reports whether s is one of the two known labels
func (s DayStatus) Valid() bool {
	return s == StatusWorking || s == StatusNonWorking
}

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday // non-working weekday: public holiday or transferred day off
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      dateutil.Date
	YearDay   int
	Type      DayType
	IsWorkday bool
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year     int
	Month    time.Month
	WorkDays int
	Weekends int
	Holidays int
	Days     []DayInfo
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) (bool, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}

func newDayInfo(d dateutil.Date, nonWorking bool) DayInfo {
	info := DayInfo{
		Date:      d,
		YearDay:   d.YearDay(),
		Type:      DayTypeWorkday,
		IsWorkday: !nonWorking,
	}
	if nonWorking {
		if cal.IsWeekend(d.Time()) {
			info.Type = DayTypeWeekend
		} else {
			info.Type = DayTypeHoliday
		}
	}
	return info
}

func summarizeMonth(year int, month time.Month, days []DayInfo) *MonthInfo {
	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  days,
	}

	for _, day := range days {
		switch day.Type {
		case DayTypeWorkday:
			monthInfo.WorkDays++
		case DayTypeWeekend:
			monthInfo.Weekends++
		case DayTypeHoliday:
			monthInfo.Holidays++
		}
	}

	return monthInfo
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
