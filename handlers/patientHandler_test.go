package handlers

import (
	"testing"
	"time"

	"NileDialysis/models"
)

func TestPatientFromRow(t *testing.T) {
	row := []string{
		"Ahmed Hassan", "MRN-1001", "29901011234567", "0100000000", "Cairo",
		"2024-01-10", "2024-01-05", "General Hospital", "Unit A",
		"O+", "Diabetes", "Negative", "15/06/1990",
		"Male", "note", "Saturday,Monday", "M",
	}
	patient, err := patientFromRow(row)
	if err != nil {
		t.Fatalf("patientFromRow: %v", err)
	}
	if patient.Name != "Ahmed Hassan" || patient.MedicalID != "MRN-1001" {
		t.Errorf("identity fields: %+v", patient)
	}
	if patient.AddedDate != "2024-01-10" || patient.ReferralDate != "2024-01-05" {
		t.Errorf("dates: added %s referral %s", patient.AddedDate, patient.ReferralDate)
	}
	if patient.DateOfBirth != "1990-06-15" {
		t.Errorf("DateOfBirth = %s, want 1990-06-15", patient.DateOfBirth)
	}
	// Twelve month default applied to the referral date.
	if patient.ReferralExpiry != "2025-01-05" {
		t.Errorf("ReferralExpiry = %s, want 2025-01-05", patient.ReferralExpiry)
	}
}

func TestPatientFromRowShortRow(t *testing.T) {
	// Trailing empty cells are dropped by the sheet reader; optional columns
	// must not be required.
	row := []string{
		"Ahmed Hassan", "MRN-1001", "", "", "",
		"2024-01-10", "2024-01-05", "", "Unit A",
		"", "", "Negative",
	}
	patient, err := patientFromRow(row)
	if err != nil {
		t.Fatalf("patientFromRow: %v", err)
	}
	if patient.DateOfBirth != "" || patient.Gender != "" {
		t.Errorf("expected empty optional fields, got %+v", patient)
	}
}

func TestPatientFromRowBadDate(t *testing.T) {
	row := []string{
		"Ahmed Hassan", "MRN-1001", "", "", "",
		"January 10th", "2024-01-05", "", "Unit A",
		"", "", "Negative",
	}
	if _, err := patientFromRow(row); err == nil {
		t.Error("expected error for unparseable added date")
	}
}

func TestPatientWithAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	patient := &models.Patient{Name: "Ahmed Hassan", DateOfBirth: "1990-06-15"}
	detail := patientWithAge(patient, now)
	if detail.Age == nil {
		t.Fatal("age not derived from date of birth")
	}
	// Birthday has not passed yet in June 2025.
	if *detail.Age != 34 {
		t.Errorf("age = %d, want 34", *detail.Age)
	}

	noDOB := &models.Patient{Name: "Ahmed Hassan"}
	if detail := patientWithAge(noDOB, now); detail.Age != nil {
		t.Errorf("age without date of birth = %d, want nil", *detail.Age)
	}
}
