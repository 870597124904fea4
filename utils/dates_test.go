package utils

import (
	"testing"
	"time"
)

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{"plain month", "2024-03-15", 1, "2024-04-15"},
		{"year rollover", "2024-11-10", 3, "2025-02-10"},
		{"clamped to month end", "2024-01-31", 1, "2024-02-29"},
		{"clamped in non leap year", "2023-01-31", 1, "2023-02-28"},
		{"backwards", "2024-03-31", -1, "2024-02-29"},
		{"full year", "2024-02-29", 12, "2025-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.start, err)
			}
			got := AddMonthsClamped(start, tt.months).Format(DateLayout)
			if got != tt.want {
				t.Errorf("AddMonthsClamped(%s, %d) = %s, want %s", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestComputeReferralExpiry(t *testing.T) {
	got, err := ComputeReferralExpiry("2024-05-10", 6)
	if err != nil {
		t.Fatalf("ComputeReferralExpiry: %v", err)
	}
	if got != "2024-11-10" {
		t.Errorf("got %s, want 2024-11-10", got)
	}

	// Zero and negative durations fall back to twelve months.
	got, err = ComputeReferralExpiry("2024-05-10", 0)
	if err != nil {
		t.Fatalf("ComputeReferralExpiry: %v", err)
	}
	if got != "2025-05-10" {
		t.Errorf("default duration: got %s, want 2025-05-10", got)
	}

	if _, err := ComputeReferralExpiry("not-a-date", 12); err == nil {
		t.Error("expected error for malformed referral date")
	}
}

func TestAgeFromDOB(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	if age := AgeFromDOB("1990-06-15", now); age == nil || *age != 34 {
		t.Errorf("birthday today: got %v, want 34", age)
	}
	if age := AgeFromDOB("1990-06-16", now); age == nil || *age != 33 {
		t.Errorf("birthday tomorrow: got %v, want 33", age)
	}
	if age := AgeFromDOB("", now); age != nil {
		t.Errorf("empty DOB: got %v, want nil", age)
	}
	if age := AgeFromDOB("garbage", now); age != nil {
		t.Errorf("malformed DOB: got %v, want nil", age)
	}
}

func TestMonthBounds(t *testing.T) {
	start, next, err := MonthBounds("2024-12")
	if err != nil {
		t.Fatalf("MonthBounds: %v", err)
	}
	if start != "2024-12-01" || next != "2025-01-01" {
		t.Errorf("got (%s, %s), want (2024-12-01, 2025-01-01)", start, next)
	}

	if _, _, err := MonthBounds("2024-13"); err == nil {
		t.Error("expected error for month 13")
	}
	if _, _, err := MonthBounds("december"); err == nil {
		t.Error("expected error for non numeric month")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"2024-02", 29},
		{"2023-02", 28},
		{"2024-04", 30},
		{"2024-01", 31},
	}
	for _, tt := range tests {
		got, err := DaysInMonth(tt.month)
		if err != nil {
			t.Fatalf("DaysInMonth(%q): %v", tt.month, err)
		}
		if got != tt.want {
			t.Errorf("DaysInMonth(%q) = %d, want %d", tt.month, got, tt.want)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	got, err := WeekdayName("2024-06-17")
	if err != nil {
		t.Fatalf("WeekdayName: %v", err)
	}
	if got != "Monday" {
		t.Errorf("got %s, want Monday", got)
	}
}
