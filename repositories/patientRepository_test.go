package repositories

import (
	"context"
	"errors"
	"testing"

	"NileDialysis/models"
)

func newPatientTestRepo(t *testing.T) *PatientRepository {
	t.Helper()
	db := newTestDB(t, &models.Patient{}, &models.ArchivedPatient{})
	return NewPatientRepository(db, newTestCache(t))
}

func testPatient(medicalID, nationalID string) *models.Patient {
	return &models.Patient{
		Name:         "Test Patient " + medicalID,
		MedicalID:    medicalID,
		NationalID:   nationalID,
		AddedDate:    "2025-01-01",
		ReferralDate: "2025-01-01",
		DialysisUnit: "General",
		VirusStatus:  "Negative",
	}
}

func TestCreatePatientAllowsEmptyNationalIDs(t *testing.T) {
	repo := newPatientTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, testPatient("MID-001", "")); err != nil {
		t.Fatalf("first patient without national ID: %v", err)
	}
	if err := repo.Create(ctx, testPatient("MID-002", "")); err != nil {
		t.Fatalf("second patient without national ID: %v", err)
	}
}

func TestCreatePatientRejectsDuplicateIDs(t *testing.T) {
	repo := newPatientTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, testPatient("MID-001", "29001011234567")); err != nil {
		t.Fatalf("first patient: %v", err)
	}

	if err := repo.Create(ctx, testPatient("MID-001", "")); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate medical ID: got %v, want ErrConflict", err)
	}
	if err := repo.Create(ctx, testPatient("MID-002", "29001011234567")); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate national ID: got %v, want ErrConflict", err)
	}
}

func TestArchivedFromPatientGatesDateOfDeath(t *testing.T) {
	patient := *testPatient("MID-009", "")
	patient.ID = 9

	row := archivedFromPatient(patient, "Death", "passed away at home", "2025-03-10")
	if row.DateOfDeath != "2025-03-10" {
		t.Errorf("date of death on death archive = %q, want 2025-03-10", row.DateOfDeath)
	}

	row = archivedFromPatient(patient, "Transferred", "moved to another unit", "2025-03-10")
	if row.DateOfDeath != "" {
		t.Errorf("date of death on transfer archive = %q, want empty", row.DateOfDeath)
	}
	if row.ArchiveReason != "Transferred" {
		t.Errorf("archive reason = %q, want Transferred", row.ArchiveReason)
	}
}
