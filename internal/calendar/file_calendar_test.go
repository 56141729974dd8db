package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/username/workcal/pkg/dateutil"
	"go.uber.org/zap"
)

func TestSaveYearMap(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	set := dateutil.DateSet{}
	set.Add(dateutil.Date{Year: 2025, Month: time.November, Day: 4})
	ym := BuildYearMap(2025, set)

	path, err := SaveYearMap(dir, ym)
	if err != nil {
		t.Fatalf("SaveYearMap() error = %v", err)
	}
	if filepath.Base(path) != "calendar_2025.json" {
		t.Errorf("SaveYearMap() path = %s", path)
	}

	loaded, err := LoadYearMap(path)
	if err != nil {
		t.Fatalf("LoadYearMap() error = %v", err)
	}
	if loaded.Year() != 2025 {
		t.Errorf("Year() = %d, want 2025", loaded.Year())
	}

	mismatches, _ := Diff(loaded, ym)
	if len(mismatches) != 0 {
		t.Errorf("round trip changed %d days", len(mismatches))
	}
}

func TestLoadYearMap_BadName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadYearMap(path); err == nil {
		t.Error("LoadYearMap() expected error for unexpected file name, got nil")
	}
}

func TestFileCalendar(t *testing.T) {
	dir := t.TempDir()

	set := dateutil.DateSet{}
	set.Add(dateutil.Date{Year: 2025, Month: time.June, Day: 12})
	if _, err := SaveYearMap(dir, BuildYearMap(2025, set)); err != nil {
		t.Fatal(err)
	}
	// Broken file is skipped, not fatal
	if err := os.WriteFile(filepath.Join(dir, "calendar_2024.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	fc := NewFileCalendar(dir, zap.NewNop())
	if err := fc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name     string
		date     time.Time
		wantWork bool
		wantType DayType
	}{
		{"Russia Day", time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), false, DayTypeHoliday},
		{"Regular Friday", time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), true, DayTypeWorkday},
		{"Saturday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), false, DayTypeWeekend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isWorkday, err := fc.IsWorkday(tt.date)
			if err != nil {
				t.Fatalf("IsWorkday() error = %v", err)
			}
			if isWorkday != tt.wantWork {
				t.Errorf("IsWorkday() = %v, want %v", isWorkday, tt.wantWork)
			}

			info, err := fc.GetDayInfo(tt.date)
			if err != nil {
				t.Fatalf("GetDayInfo() error = %v", err)
			}
			if info.Type != tt.wantType {
				t.Errorf("GetDayInfo().Type = %v, want %v", info.Type, tt.wantType)
			}
		})
	}

	monthInfo, err := fc.GetMonthInfo(2025, time.June)
	if err != nil {
		t.Fatalf("GetMonthInfo() error = %v", err)
	}
	if monthInfo.Holidays != 1 || monthInfo.WorkDays != 20 {
		t.Errorf("June 2025 = %d workdays, %d holidays; want 20, 1", monthInfo.WorkDays, monthInfo.Holidays)
	}

	if _, err := fc.IsWorkday(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("IsWorkday() expected error for year with broken file, got nil")
	}
}

func TestCompositeCalendar_Fallback(t *testing.T) {
	dir := t.TempDir()

	set := dateutil.DateSet{}
	set.Add(dateutil.Date{Year: 2025, Month: time.June, Day: 12})
	if _, err := SaveYearMap(dir, BuildYearMap(2025, set)); err != nil {
		t.Fatal(err)
	}

	cc := NewCompositeCalendar(NewFileCalendar(dir, zap.NewNop()), NewWeekendCalendar(), zap.NewNop())
	if err := cc.LoadPrimary(); err != nil {
		t.Fatalf("LoadPrimary() error = %v", err)
	}

	// Served by the extracted calendar
	isWorkday, err := cc.IsWorkday(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))
	if err != nil || isWorkday {
		t.Errorf("IsWorkday(2025-06-12) = %v, %v; want false, nil", isWorkday, err)
	}

	// 2026 is not extracted: weekends only
	isWorkday, err = cc.IsWorkday(time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC))
	if err != nil || !isWorkday {
		t.Errorf("IsWorkday(2026-06-12) = %v, %v; want true, nil", isWorkday, err)
	}

	info, err := cc.GetDayInfo(time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetDayInfo() error = %v", err)
	}
	if info.Type != DayTypeWeekend {
		t.Errorf("GetDayInfo(2026-06-13).Type = %v, want weekend", info.Type)
	}

	monthInfo, err := cc.GetMonthInfo(2026, time.February)
	if err != nil {
		t.Fatalf("GetMonthInfo() error = %v", err)
	}
	if len(monthInfo.Days) != 28 || monthInfo.Weekends != 8 || monthInfo.WorkDays != 20 {
		t.Errorf("February 2026 = %d days, %d weekends, %d workdays", len(monthInfo.Days), monthInfo.Weekends, monthInfo.WorkDays)
	}
}
