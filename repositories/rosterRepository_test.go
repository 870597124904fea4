package repositories

import (
	"context"
	"testing"

	"NileDialysis/models"
)

func TestShiftHours(t *testing.T) {
	tests := []struct {
		shift string
		want  int
	}{
		{"M", 8},
		{"A", 8},
		{"L", 12},
		{"N", 12},
		{"NM", 18},
		{"AN", 18},
		{"", 0},
		{"X", 0},
	}
	for _, tt := range tests {
		if got := ShiftHours(tt.shift); got != tt.want {
			t.Errorf("ShiftHours(%q) = %d, want %d", tt.shift, got, tt.want)
		}
	}
}

func TestTotalHours(t *testing.T) {
	shifts := map[string]string{
		"2024-06-01": "M",
		"2024-06-02": "N",
		"2024-06-03": "NM",
		"2024-06-04": "",
	}
	if got := TotalHours(shifts); got != 38 {
		t.Errorf("TotalHours = %d, want 38", got)
	}
	if got := TotalHours(nil); got != 0 {
		t.Errorf("TotalHours(nil) = %d, want 0", got)
	}
}

func TestMonthGridFillsDefaultShift(t *testing.T) {
	db := newTestDB(t, &models.Staff{}, &models.ShiftChange{})
	repo := NewRosterRepository(db)
	ctx := context.Background()

	nurse := models.Staff{Name: "Amina Fawzy", JobTitle: "Nurse", Grade: "Senior", DefaultShift: "M"}
	if err := db.Create(&nurse).Error; err != nil {
		t.Fatalf("failed to seed staff: %v", err)
	}
	floater := models.Staff{Name: "Omar Said", JobTitle: "Nurse", Grade: "Junior"}
	if err := db.Create(&floater).Error; err != nil {
		t.Fatalf("failed to seed staff: %v", err)
	}

	entries, err := repo.MonthGrid(ctx, "2025-06", "Nurse")
	if err != nil {
		t.Fatalf("MonthGrid: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	// Default shift fills every day for Amina: 30 days of M at 8 hours.
	amina := entries[0]
	if amina.DefaultShift != "M" {
		t.Errorf("default shift = %q, want M", amina.DefaultShift)
	}
	if len(amina.Shifts) != 30 {
		t.Errorf("filled days = %d, want 30", len(amina.Shifts))
	}
	if got := TotalHours(amina.Shifts); got != 240 {
		t.Errorf("month hours = %d, want 240", got)
	}

	// No default shift means an empty grid row and zero hours.
	omar := entries[1]
	if len(omar.Shifts) != 0 {
		t.Errorf("filled days without default = %d, want 0", len(omar.Shifts))
	}
	if got := TotalHours(omar.Shifts); got != 0 {
		t.Errorf("month hours without default = %d, want 0", got)
	}
}

func TestMonthGridOverridesDefaultShift(t *testing.T) {
	db := newTestDB(t, &models.Staff{}, &models.ShiftChange{})
	repo := NewRosterRepository(db)
	ctx := context.Background()

	nurse := models.Staff{Name: "Amina Fawzy", JobTitle: "Nurse", Grade: "Senior", DefaultShift: "M"}
	if err := db.Create(&nurse).Error; err != nil {
		t.Fatalf("failed to seed staff: %v", err)
	}
	change := models.ShiftChange{StaffID: nurse.ID, ChangeDate: "2025-06-10", NewShift: "N"}
	if err := db.Create(&change).Error; err != nil {
		t.Fatalf("failed to seed shift change: %v", err)
	}

	entries, err := repo.MonthGrid(ctx, "2025-06", "")
	if err != nil {
		t.Fatalf("MonthGrid: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	shifts := entries[0].Shifts
	if shifts["2025-06-10"] != "N" {
		t.Errorf("overridden day = %q, want N", shifts["2025-06-10"])
	}
	if shifts["2025-06-11"] != "M" {
		t.Errorf("ordinary day = %q, want M", shifts["2025-06-11"])
	}
	// 29 default days at 8 hours plus one 12-hour override.
	if got := TotalHours(shifts); got != 244 {
		t.Errorf("month hours = %d, want 244", got)
	}
}
