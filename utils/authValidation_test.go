package utils

import (
	"NileDialysis/models"
	"testing"
)

func validPatient() models.Patient {
	return models.Patient{
		Name:         "Ahmed Hassan",
		MedicalID:    "MRN-1001",
		AddedDate:    "2024-01-10",
		ReferralDate: "2024-01-05",
		DialysisUnit: "Unit A",
		VirusStatus:  "Negative",
		Gender:       "Male",
	}
}

func TestValidatePatientData(t *testing.T) {
	if err := ValidatePatientData(validPatient()); err != nil {
		t.Fatalf("valid patient rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.Patient)
	}{
		{"missing name", func(p *models.Patient) { p.Name = "" }},
		{"single character name", func(p *models.Patient) { p.Name = "A" }},
		{"missing medical id", func(p *models.Patient) { p.MedicalID = "" }},
		{"missing added date", func(p *models.Patient) { p.AddedDate = "" }},
		{"malformed referral date", func(p *models.Patient) { p.ReferralDate = "05/01/2024" }},
		{"missing dialysis unit", func(p *models.Patient) { p.DialysisUnit = "" }},
		{"missing virus status", func(p *models.Patient) { p.VirusStatus = "" }},
		{"unknown gender", func(p *models.Patient) { p.Gender = "Other" }},
		{"malformed date of birth", func(p *models.Patient) { p.DateOfBirth = "1990" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patient := validPatient()
			tt.mutate(&patient)
			if err := ValidatePatientData(patient); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateSessionData(t *testing.T) {
	session := models.Session{PatientID: 3, SessionDate: "2024-06-01"}
	if err := ValidateSessionData(session); err != nil {
		t.Fatalf("valid session rejected: %v", err)
	}

	session.BloodTransfusionBags = -1
	if err := ValidateSessionData(session); err == nil {
		t.Error("expected error for negative transfusion count")
	}

	session = models.Session{SessionDate: "2024-06-01"}
	if err := ValidateSessionData(session); err == nil {
		t.Error("expected error for missing patient")
	}
}

func TestValidateLabTestTypeData(t *testing.T) {
	testType := models.LabTestType{TestName: "Hemoglobin", ResultType: "number"}
	if err := ValidateLabTestTypeData(testType); err != nil {
		t.Fatalf("valid test type rejected: %v", err)
	}

	testType.ResultType = "boolean"
	if err := ValidateLabTestTypeData(testType); err == nil {
		t.Error("expected error for unknown result type")
	}
}

func TestValidateUserData(t *testing.T) {
	user := models.User{Username: "nurse.amal", Role: "nurse"}
	if err := ValidateUserData(user, "passw0rd!"); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}

	tests := []struct {
		name     string
		user     models.User
		password string
	}{
		{"short password", user, "ab1"},
		{"no digits", user, "passwords"},
		{"no letters", user, "12345678"},
		{"blank password", user, ""},
		{"unknown role", models.User{Username: "x.y", Role: "superuser"}, "passw0rd!"},
		{"missing username", models.User{Role: "nurse"}, "passw0rd!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateUserData(tt.user, tt.password); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
