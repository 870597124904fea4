package repositories

import (
	"NileDialysis/models"
	"testing"
)

func TestBuildInvoice(t *testing.T) {
	patient := models.Patient{ID: 7, Name: "Mona Adel", MedicalID: "MRN-77", DialysisUnit: "Unit B"}
	settings := &models.AppSettings{PricePerSession: 200, PricePerBloodBag: 150}
	sessions := []models.Session{
		{SessionDate: "2024-06-03", BloodTransfusionBags: 1},
		{SessionDate: "2024-06-05"},
		{SessionDate: "2024-06-10", BloodTransfusionBags: 2},
	}

	invoice := buildInvoice(patient, "2024-06", sessions, settings)

	if invoice.PatientID != 7 || invoice.Month != "2024-06" {
		t.Errorf("unexpected identity fields: %+v", invoice)
	}
	if invoice.SessionCount != 3 {
		t.Errorf("SessionCount = %d, want 3", invoice.SessionCount)
	}
	if invoice.BloodBagCount != 3 {
		t.Errorf("BloodBagCount = %d, want 3", invoice.BloodBagCount)
	}
	if invoice.SessionsTotal != 600 {
		t.Errorf("SessionsTotal = %v, want 600", invoice.SessionsTotal)
	}
	if invoice.BloodBagsTotal != 450 {
		t.Errorf("BloodBagsTotal = %v, want 450", invoice.BloodBagsTotal)
	}
	if invoice.GrandTotal != 1050 {
		t.Errorf("GrandTotal = %v, want 1050", invoice.GrandTotal)
	}
	if invoice.FirstSessionDate != "2024-06-03" || invoice.LastSessionDate != "2024-06-10" {
		t.Errorf("session date range = (%s, %s)", invoice.FirstSessionDate, invoice.LastSessionDate)
	}
}

func TestBuildInvoiceNoSessions(t *testing.T) {
	settings := &models.AppSettings{PricePerSession: 200, PricePerBloodBag: 150}
	invoice := buildInvoice(models.Patient{ID: 1}, "2024-06", nil, settings)

	if invoice.GrandTotal != 0 {
		t.Errorf("GrandTotal = %v, want 0", invoice.GrandTotal)
	}
	if invoice.FirstSessionDate != "" || invoice.LastSessionDate != "" {
		t.Errorf("expected empty session date range, got (%s, %s)", invoice.FirstSessionDate, invoice.LastSessionDate)
	}
}
