package repositories

import (
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UnitVirusCount is one cell of the daily unit by virus-status breakdown.
type UnitVirusCount struct {
	DialysisUnit string `json:"dialysis_unit"`
	VirusStatus  string `json:"virus_status"`
	SessionCount int    `json:"session_count"`
}

// UnitSummary counts patients and machines registered to one unit.
type UnitSummary struct {
	DialysisUnit string `json:"dialysis_unit"`
	PatientCount int    `json:"patient_count"`
	MachineCount int    `json:"machine_count"`
}

// GeneratedReport is the unconfirmed daily snapshot, computed on demand.
type GeneratedReport struct {
	ReportDate    string           `json:"report_date"`
	SessionCounts []UnitVirusCount `json:"session_counts"`
	UnitSummaries []UnitSummary    `json:"unit_summaries"`
	TotalSessions int              `json:"total_sessions"`
}

// MissedSessionRow is a patient registered before the month with no session in it.
type MissedSessionRow struct {
	PatientID    uint   `json:"patient_id"`
	Name         string `json:"name"`
	MedicalID    string `json:"medical_id"`
	DialysisUnit string `json:"dialysis_unit"`
	Phone        string `json:"phone"`
	AddedDate    string `json:"added_date"`
}

// MachineUsageRow counts sessions attributed to one machine in a range.
type MachineUsageRow struct {
	MachineID    uint    `json:"machine_id"`
	SerialNumber string  `json:"serial_number"`
	SessionCount int     `json:"session_count"`
	TotalHours   float64 `json:"total_hours"`
}

// PatientUsageRow counts sessions for one patient in a range.
type PatientUsageRow struct {
	PatientID    uint   `json:"patient_id"`
	Name         string `json:"name"`
	MedicalID    string `json:"medical_id"`
	SessionCount int    `json:"session_count"`
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Generate computes the daily snapshot for a date. Pure read; nothing is stored.
func (r *ReportRepository) Generate(ctx context.Context, date string) (*GeneratedReport, error) {
	var counts []UnitVirusCount
	err := r.db.WithContext(ctx).Model(&models.Session{}).
		Select("patients.dialysis_unit, patients.virus_status, COUNT(*) AS session_count").
		Joins("JOIN patients ON patients.id = sessions.patient_id").
		Where("sessions.session_date = ?", date).
		Group("patients.dialysis_unit, patients.virus_status").
		Order("patients.dialysis_unit ASC, patients.virus_status ASC").
		Find(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	var unitSummaries []UnitSummary
	err = r.db.WithContext(ctx).Model(&models.Patient{}).
		Select(`patients.dialysis_unit, COUNT(*) AS patient_count,
(SELECT COUNT(*) FROM machines WHERE machines.internal_unit = patients.dialysis_unit) AS machine_count`).
		Group("patients.dialysis_unit").
		Order("patients.dialysis_unit ASC").
		Find(&unitSummaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize units: %w", err)
	}

	report := GeneratedReport{ReportDate: date, SessionCounts: counts, UnitSummaries: unitSummaries}
	for _, c := range counts {
		report.TotalSessions += c.SessionCount
	}
	return &report, nil
}

// Confirm upserts a daily report by date with the caller-supplied payload.
// The payload is trusted as-is and never recomputed.
func (r *ReportRepository) Confirm(ctx context.Context, date, finalData, confirmedBy string) (*models.DailyReport, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}

	now := time.Now()
	report := models.DailyReport{
		ReportDate:      date,
		ReportStatus:    "confirmed",
		FinalData:       finalData,
		ConfirmedByUser: confirmedBy,
		ConfirmedAt:     &now,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"report_status", "final_data", "confirmed_by_user", "confirmed_at"}),
	}).Create(&report).Error
	if err != nil {
		return nil, fmt.Errorf("failed to confirm report: %w", err)
	}
	return &report, nil
}

// GetByDate returns the stored report for a date.
func (r *ReportRepository) GetByDate(ctx context.Context, date string) (*models.DailyReport, error) {
	var report models.DailyReport
	if err := r.db.WithContext(ctx).First(&report, "report_date = ?", date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report for %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// List returns stored reports inside a date range, newest first.
func (r *ReportRepository) List(ctx context.Context, from, to string) ([]models.DailyReport, error) {
	query := r.db.WithContext(ctx).Model(&models.DailyReport{})
	if from != "" {
		query = query.Where("report_date >= ?", from)
	}
	if to != "" {
		query = query.Where("report_date <= ?", to)
	}
	var reports []models.DailyReport
	if err := query.Order("report_date DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// MissedSessions lists patients registered before the month who have no
// session inside it, optionally restricted to one unit.
func (r *ReportRepository) MissedSessions(ctx context.Context, month, dialysisUnit string) ([]MissedSessionRow, error) {
	start, end, err := utils.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}

	query := r.db.WithContext(ctx).Model(&models.Patient{}).
		Select("patients.id AS patient_id, patients.name, patients.medical_id, patients.dialysis_unit, patients.phone, patients.added_date").
		Where("patients.added_date < ?", start).
		Where("NOT EXISTS (SELECT 1 FROM sessions WHERE sessions.patient_id = patients.id AND sessions.session_date >= ? AND sessions.session_date < ?)", start, end)
	if dialysisUnit != "" {
		query = query.Where("patients.dialysis_unit = ?", dialysisUnit)
	}

	var rows []MissedSessionRow
	if err := query.Order("patients.name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list missed sessions: %w", err)
	}
	return rows, nil
}

// SessionsPerMachine aggregates machine usage inside a date range.
func (r *ReportRepository) SessionsPerMachine(ctx context.Context, from, to string) ([]MachineUsageRow, error) {
	var rows []MachineUsageRow
	err := r.db.WithContext(ctx).Model(&models.Session{}).
		Select("machines.id AS machine_id, machines.serial_number, COUNT(*) AS session_count, COALESCE(SUM(sessions.machine_hours_operated), 0) AS total_hours").
		Joins("JOIN machines ON machines.id = sessions.machine_id").
		Where("sessions.session_date >= ? AND sessions.session_date <= ?", from, to).
		Group("machines.id, machines.serial_number").
		Order("session_count DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate machine usage: %w", err)
	}
	return rows, nil
}

// SessionsPerPatient aggregates patient session counts inside a date range.
func (r *ReportRepository) SessionsPerPatient(ctx context.Context, from, to string) ([]PatientUsageRow, error) {
	var rows []PatientUsageRow
	err := r.db.WithContext(ctx).Model(&models.Session{}).
		Select("patients.id AS patient_id, patients.name, patients.medical_id, COUNT(*) AS session_count").
		Joins("JOIN patients ON patients.id = sessions.patient_id").
		Where("sessions.session_date >= ? AND sessions.session_date <= ?", from, to).
		Group("patients.id, patients.name, patients.medical_id").
		Order("session_count DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate patient sessions: %w", err)
	}
	return rows, nil
}
