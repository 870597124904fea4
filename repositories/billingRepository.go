package repositories

import (
	"NileDialysis/cache"
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	settingsCacheKey    = "settings_cache:app"
	settingsCacheExpiry = 24 * time.Hour

	// Fallback prices used when the settings row is missing or zeroed.
	DefaultPricePerSession  = 200.0
	DefaultPricePerBloodBag = 150.0
)

// Invoice is the billing summary for one patient and one month.
type Invoice struct {
	PatientID        uint    `json:"patient_id"`
	PatientName      string  `json:"patient_name"`
	MedicalID        string  `json:"medical_id"`
	DialysisUnit     string  `json:"dialysis_unit"`
	Month            string  `json:"month"`
	SessionCount     int     `json:"session_count"`
	BloodBagCount    int     `json:"blood_bag_count"`
	PricePerSession  float64 `json:"price_per_session"`
	PricePerBloodBag float64 `json:"price_per_blood_bag"`
	SessionsTotal    float64 `json:"sessions_total"`
	BloodBagsTotal   float64 `json:"blood_bags_total"`
	GrandTotal       float64 `json:"grand_total"`
	FirstSessionDate string  `json:"first_session_date"`
	LastSessionDate  string  `json:"last_session_date"`
}

type BillingRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewBillingRepository(db *gorm.DB, cache *cache.Cache) *BillingRepository {
	return &BillingRepository{db: db, cache: cache}
}

// GetSettings returns the singleton settings row, falling back to the default
// prices when it is absent.
func (r *BillingRepository) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	var cached models.AppSettings
	if found, err := r.cache.GetJSON(ctx, settingsCacheKey, &cached); err == nil && found {
		return &cached, nil
	} else if err != nil {
		log.Printf("Failed to get settings from cache: %v", err)
	}

	var settings models.AppSettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.AppSettings{ID: 1, PricePerSession: DefaultPricePerSession, PricePerBloodBag: DefaultPricePerBloodBag}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.PricePerSession <= 0 {
		settings.PricePerSession = DefaultPricePerSession
	}
	if settings.PricePerBloodBag <= 0 {
		settings.PricePerBloodBag = DefaultPricePerBloodBag
	}

	if err := r.cache.SetJSON(ctx, settingsCacheKey, settings, settingsCacheExpiry); err != nil {
		log.Printf("Failed to set settings in cache: %v", err)
	}
	return &settings, nil
}

// UpdateSettings writes the singleton settings row.
func (r *BillingRepository) UpdateSettings(ctx context.Context, settings *models.AppSettings) error {
	settings.ID = 1
	if settings.PricePerSession <= 0 || settings.PricePerBloodBag <= 0 {
		return fmt.Errorf("prices must be positive: %w", ErrInvalid)
	}
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if err := r.cache.Delete(ctx, settingsCacheKey); err != nil {
		log.Printf("Failed to invalidate settings cache: %v", err)
	}
	return nil
}

// PatientInvoice builds the invoice for one patient and one YYYY-MM month.
func (r *BillingRepository) PatientInvoice(ctx context.Context, patientID uint, month string) (*Invoice, error) {
	start, end, err := utils.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, "id = ?", patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %d: %w", patientID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load patient: %w", err)
	}

	var sessions []models.Session
	err = r.db.WithContext(ctx).
		Where("patient_id = ? AND session_date >= ? AND session_date < ?", patientID, start, end).
		Order("session_date ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	settings, err := r.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	invoice := buildInvoice(patient, month, sessions, settings)
	return &invoice, nil
}

// MonthInvoices builds invoices for every patient with at least one session
// in the month, optionally restricted to one dialysis unit.
func (r *BillingRepository) MonthInvoices(ctx context.Context, month, dialysisUnit string) ([]Invoice, error) {
	start, end, err := utils.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}

	query := r.db.WithContext(ctx).Model(&models.Session{}).
		Joins("JOIN patients ON patients.id = sessions.patient_id").
		Where("sessions.session_date >= ? AND sessions.session_date < ?", start, end)
	if dialysisUnit != "" {
		query = query.Where("patients.dialysis_unit = ?", dialysisUnit)
	}

	var sessions []SessionWithPatient
	err = query.Select(`sessions.*, patients.name AS patient_name, patients.medical_id,
patients.dialysis_unit, patients.virus_status, '' AS patient_shift, '' AS patient_dialysis_days, '' AS machine_serial`).
		Order("sessions.session_date ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load month sessions: %w", err)
	}

	settings, err := r.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	byPatient := make(map[uint][]models.Session)
	meta := make(map[uint]models.Patient)
	var order []uint
	for _, s := range sessions {
		if _, seen := meta[s.PatientID]; !seen {
			order = append(order, s.PatientID)
			meta[s.PatientID] = models.Patient{
				ID:           s.PatientID,
				Name:         s.PatientName,
				MedicalID:    s.MedicalID,
				DialysisUnit: s.DialysisUnit,
			}
		}
		byPatient[s.PatientID] = append(byPatient[s.PatientID], s.Session)
	}

	invoices := make([]Invoice, 0, len(order))
	for _, patientID := range order {
		invoices = append(invoices, buildInvoice(meta[patientID], month, byPatient[patientID], settings))
	}
	return invoices, nil
}

// buildInvoice prices a month of sessions. Sessions arrive date-ordered.
func buildInvoice(patient models.Patient, month string, sessions []models.Session, settings *models.AppSettings) Invoice {
	invoice := Invoice{
		PatientID:        patient.ID,
		PatientName:      patient.Name,
		MedicalID:        patient.MedicalID,
		DialysisUnit:     patient.DialysisUnit,
		Month:            month,
		SessionCount:     len(sessions),
		PricePerSession:  settings.PricePerSession,
		PricePerBloodBag: settings.PricePerBloodBag,
	}
	for _, s := range sessions {
		invoice.BloodBagCount += s.BloodTransfusionBags
	}
	if len(sessions) > 0 {
		invoice.FirstSessionDate = sessions[0].SessionDate
		invoice.LastSessionDate = sessions[len(sessions)-1].SessionDate
	}
	invoice.SessionsTotal = float64(invoice.SessionCount) * settings.PricePerSession
	invoice.BloodBagsTotal = float64(invoice.BloodBagCount) * settings.PricePerBloodBag
	invoice.GrandTotal = invoice.SessionsTotal + invoice.BloodBagsTotal
	return invoice
}
