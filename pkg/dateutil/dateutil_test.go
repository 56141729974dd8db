package dateutil

import (
	"testing"
	"time"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		valid bool
	}{
		{"Regular day", 2025, time.January, 15, true},
		{"31 April", 2025, time.April, 31, false},
		{"29 February leap", 2024, time.February, 29, true},
		{"29 February non-leap", 2025, time.February, 29, false},
		{"Zero day", 2025, time.March, 0, false},
		{"Day 32", 2025, time.March, 32, false},
		{"Month 13", 2025, time.Month(13), 1, false},
		{"Century non-leap", 1900, time.February, 29, false},
		{"Century leap", 2000, time.February, 29, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := NewDate(tt.year, tt.month, tt.day)
			if ok != tt.valid {
				t.Fatalf("NewDate(%d, %d, %d) ok = %v, want %v", tt.year, tt.month, tt.day, ok, tt.valid)
			}
			if ok && (d.Year != tt.year || d.Month != tt.month || d.Day != tt.day) {
				t.Errorf("NewDate() = %v", d)
			}
		})
	}
}

func TestDateYearDay(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want int
	}{
		{"January 1", Date{2025, time.January, 1}, 1},
		{"March 1 non-leap", Date{2025, time.March, 1}, 60},
		{"March 1 leap", Date{2024, time.March, 1}, 61},
		{"December 31 leap", Date{2024, time.December, 31}, 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.YearDay(); got != tt.want {
				t.Errorf("YearDay(%v) = %d, want %d", tt.date, got, tt.want)
			}
			if back := FromYearDay(tt.date.Year, tt.want); back != tt.date {
				t.Errorf("FromYearDay(%d, %d) = %v, want %v", tt.date.Year, tt.want, back, tt.date)
			}
		})
	}
}

func TestDaysInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2023, 365},
		{2024, 366},
		{2100, 365},
		{2000, 366},
	}

	for _, tt := range tests {
		if got := DaysInYear(tt.year); got != tt.want {
			t.Errorf("DaysInYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestDateSet(t *testing.T) {
	set := DateSet{}
	jan8 := Date{2025, time.January, 8}
	jan1 := Date{2025, time.January, 1}

	if !set.Add(jan8) {
		t.Error("Add() on empty set = false, want true")
	}
	if set.Add(jan8) {
		t.Error("Add() of existing date = true, want false")
	}
	set.Add(jan1)

	if !set.Has(jan1) || set.Has(Date{2025, time.January, 2}) {
		t.Error("Has() returned wrong membership")
	}

	sorted := set.Sorted()
	if len(sorted) != 2 || sorted[0] != jan1 || sorted[1] != jan8 {
		t.Errorf("Sorted() = %v, want [%v %v]", sorted, jan1, jan8)
	}
}

func TestParseDate(t *testing.T) {
	want := Date{2025, time.March, 8}

	for _, input := range []string{"2025-03-08", "08.03.2025"} {
		got, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q) error = %v", input, err)
		}
		if got != want {
			t.Errorf("ParseDate(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := ParseDate("8 марта"); err == nil {
		t.Error("ParseDate() expected error for free text, got nil")
	}
}
