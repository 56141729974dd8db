package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/username/workcal/pkg/dateutil"
)

// WeekendCalendar knows only Saturdays and Sundays. It answers for any
// year and serves as the fallback when no extracted calendar exists.
type WeekendCalendar struct {
	calendar *cal.BusinessCalendar
}

// NewWeekendCalendar creates a new WeekendCalendar
func NewWeekendCalendar() *WeekendCalendar {
	return &WeekendCalendar{calendar: cal.NewBusinessCalendar()}
}

// IsWorkday checks if the given date is a working day
func (wc *WeekendCalendar) IsWorkday(date time.Time) (bool, error) {
	return wc.calendar.IsWorkday(date), nil
}

// GetMonthInfo returns calendar info for the entire month
func (wc *WeekendCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	n := daysInMonth(year, month)
	days := make([]DayInfo, 0, n)
	for day := 1; day <= n; day++ {
		d := dateutil.Date{Year: year, Month: month, Day: day}
		days = append(days, newDayInfo(d, !wc.calendar.IsWorkday(d.Time())))
	}
	return summarizeMonth(year, month, days), nil
}

// GetDayInfo returns detailed info for a specific day
func (wc *WeekendCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	info := newDayInfo(dateutil.DateOf(date), !wc.calendar.IsWorkday(date))
	return &info, nil
}
