package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: FileCalendar (extracted year maps)
// Fallback: WeekendCalendar (weekends only)
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// IsWorkday checks if the given date is a working day
func (cc *CompositeCalendar) IsWorkday(date time.Time) (bool, error) {
	isWorkday, err := cc.primary.IsWorkday(date)
	if err == nil {
		return isWorkday, nil
	}

	cc.logger.Warn("Primary calendar failed, falling back",
		zap.Time("date", date),
		zap.Error(err))

	return cc.fallback.IsWorkday(date)
}

// GetMonthInfo returns calendar info for the entire month
func (cc *CompositeCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	monthInfo, err := cc.primary.GetMonthInfo(year, month)
	if err == nil {
		return monthInfo, nil
	}

	cc.logger.Warn("Primary calendar failed, falling back",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Error(err))

	return cc.fallback.GetMonthInfo(year, month)
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	dayInfo, err := cc.primary.GetDayInfo(date)
	if err == nil {
		return dayInfo, nil
	}

	cc.logger.Warn("Primary calendar failed, falling back",
		zap.Time("date", date),
		zap.Error(err))

	return cc.fallback.GetDayInfo(date)
}

// LoadPrimary loads the primary calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadPrimary() error {
	if fc, ok := cc.primary.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load primary calendar: %w", err)
		}
	}
	return nil
}
