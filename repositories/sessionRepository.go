package repositories

import (
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// SessionWithPatient is a session row joined with its patient's identity.
type SessionWithPatient struct {
	models.Session
	PatientName      string `json:"patient_name"`
	MedicalID        string `json:"medical_id"`
	DialysisUnit     string `json:"dialysis_unit"`
	VirusStatus      string `json:"virus_status"`
	PatientShift     string `json:"patient_shift" gorm:"column:patient_shift"`
	MachineSerial    string `json:"machine_serial"`
	PatientDialysis  string `json:"patient_dialysis_days" gorm:"column:patient_dialysis_days"`
}

// SessionListFilter carries the query parameters of the session list endpoint.
type SessionListFilter struct {
	Date      string
	PatientID uint
	Search    string
}

// BulkSessionItem is one entry of a bulk session save.
type BulkSessionItem struct {
	PatientID            uint    `json:"patient_id"`
	Shift                string  `json:"shift"`
	Notes                string  `json:"notes"`
	BloodTransfusionBags int     `json:"blood_transfusion_bags"`
	MachineID            *uint   `json:"machine_id"`
	MachineHoursOperated float64 `json:"machine_hours_operated"`
}

// BulkSessionFailure reports one rejected entry of a batch operation.
type BulkSessionFailure struct {
	PatientID uint   `json:"patient_id"`
	Error     string `json:"error"`
}

// PredictedSessionPair identifies one patient/date insertion candidate.
type PredictedSessionPair struct {
	PatientID   uint   `json:"patient_id"`
	SessionDate string `json:"session_date"`
	Shift       string `json:"shift"`
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionJoinSelect = `sessions.*, patients.name AS patient_name, patients.medical_id,
patients.dialysis_unit, patients.virus_status, patients.dialysis_shift AS patient_shift,
patients.dialysis_days AS patient_dialysis_days, COALESCE(machines.serial_number, '') AS machine_serial`

// List returns sessions joined with patient identity, newest first.
func (r *SessionRepository) List(ctx context.Context, filter SessionListFilter) ([]SessionWithPatient, error) {
	query := r.db.WithContext(ctx).Model(&models.Session{}).
		Select(sessionJoinSelect).
		Joins("JOIN patients ON patients.id = sessions.patient_id").
		Joins("LEFT JOIN machines ON machines.id = sessions.machine_id")
	if filter.Date != "" {
		query = query.Where("sessions.session_date = ?", filter.Date)
	}
	if filter.PatientID != 0 {
		query = query.Where("sessions.patient_id = ?", filter.PatientID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("patients.name ILIKE ? OR patients.medical_id ILIKE ?", like, like)
	}

	var sessions []SessionWithPatient
	err := query.Order("sessions.session_date DESC, patients.name ASC").Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// ByDate splits patients into those with a session on the date and those
// without one whose dialysis_days include the date's weekday.
func (r *SessionRepository) ByDate(ctx context.Context, date, virusStatus, dialysisUnit string) ([]SessionWithPatient, []models.Patient, error) {
	weekday, err := utils.WeekdayName(date)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}

	withSessions, err := r.List(ctx, SessionListFilter{Date: date})
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[uint]bool, len(withSessions))
	filtered := withSessions[:0]
	for _, s := range withSessions {
		if virusStatus != "" && s.VirusStatus != virusStatus {
			continue
		}
		if dialysisUnit != "" && s.DialysisUnit != dialysisUnit {
			continue
		}
		seen[s.PatientID] = true
		filtered = append(filtered, s)
	}

	query := r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("dialysis_days LIKE ?", "%"+weekday+"%")
	if virusStatus != "" {
		query = query.Where("virus_status = ?", virusStatus)
	}
	if dialysisUnit != "" {
		query = query.Where("dialysis_unit = ?", dialysisUnit)
	}

	var scheduled []models.Patient
	if err := query.Order("name ASC").Find(&scheduled).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list scheduled patients: %w", err)
	}

	without := make([]models.Patient, 0, len(scheduled))
	for _, p := range scheduled {
		if !seen[p.ID] {
			without = append(without, p)
		}
	}
	return filtered, without, nil
}

// Create records a session. Future dates are rejected; one session per
// patient per date.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	if err := r.validateNotFuture(session.SessionDate); err != nil {
		return err
	}
	if err := r.checkDuplicate(ctx, r.db, session.PatientID, session.SessionDate); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Update applies field changes to an existing session. The date rules are not
// re-checked here; corrections to historical rows stay possible.
func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	var existing models.Session
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", session.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("session %d: %w", session.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load session: %w", err)
	}
	session.PatientID = existing.PatientID
	session.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(session).Error; err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// UpdateTransfusion sets the blood bag count for one session.
func (r *SessionRepository) UpdateTransfusion(ctx context.Context, id uint, bags int) error {
	if bags < 0 {
		return fmt.Errorf("blood transfusion bags must be non-negative: %w", ErrInvalid)
	}
	result := r.db.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", id).
		Update("blood_transfusion_bags", bags)
	if result.Error != nil {
		return fmt.Errorf("failed to update transfusion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	return nil
}

// PatientMonth lists one patient's sessions inside a YYYY-MM month.
func (r *SessionRepository) PatientMonth(ctx context.Context, patientID uint, month string) ([]models.Session, error) {
	start, end, err := utils.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}
	var sessions []models.Session
	err = r.db.WithContext(ctx).
		Where("patient_id = ? AND session_date >= ? AND session_date < ?", patientID, start, end).
		Order("session_date ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patient sessions: %w", err)
	}
	return sessions, nil
}

// UpdateByDate adds and removes sessions for a single date in one transaction.
func (r *SessionRepository) UpdateByDate(ctx context.Context, date string, addIDs, removeIDs []uint) error {
	if err := r.validateNotFuture(date); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, patientID := range addIDs {
			var count int64
			if err := tx.Model(&models.Session{}).
				Where("patient_id = ? AND session_date = ?", patientID, date).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			session := models.Session{PatientID: patientID, SessionDate: date}
			if err := tx.Create(&session).Error; err != nil {
				return fmt.Errorf("failed to add session for patient %d: %w", patientID, err)
			}
		}
		if len(removeIDs) > 0 {
			if err := tx.Where("session_date = ? AND patient_id IN ?", date, removeIDs).
				Delete(&models.Session{}).Error; err != nil {
				return fmt.Errorf("failed to remove sessions: %w", err)
			}
		}
		return nil
	})
}

// Bulk upserts one session per patient for a single date. Individual
// rejections are collected, not fatal.
func (r *SessionRepository) Bulk(ctx context.Context, date string, items []BulkSessionItem) (int, []BulkSessionFailure, error) {
	if err := r.validateNotFuture(date); err != nil {
		return 0, nil, err
	}

	var saved int
	var failures []BulkSessionFailure
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item.PatientID == 0 {
				failures = append(failures, BulkSessionFailure{Error: "missing patient_id"})
				continue
			}
			if item.BloodTransfusionBags < 0 {
				failures = append(failures, BulkSessionFailure{PatientID: item.PatientID, Error: "blood transfusion bags must be non-negative"})
				continue
			}

			var existing models.Session
			err := tx.Where("patient_id = ? AND session_date = ?", item.PatientID, date).First(&existing).Error
			switch {
			case err == nil:
				existing.Shift = item.Shift
				existing.Notes = item.Notes
				existing.BloodTransfusionBags = item.BloodTransfusionBags
				existing.MachineID = item.MachineID
				existing.MachineHoursOperated = item.MachineHoursOperated
				if err := tx.Save(&existing).Error; err != nil {
					failures = append(failures, BulkSessionFailure{PatientID: item.PatientID, Error: err.Error()})
					continue
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				session := models.Session{
					PatientID:            item.PatientID,
					SessionDate:          date,
					Shift:                item.Shift,
					Notes:                item.Notes,
					BloodTransfusionBags: item.BloodTransfusionBags,
					MachineID:            item.MachineID,
					MachineHoursOperated: item.MachineHoursOperated,
				}
				if err := tx.Create(&session).Error; err != nil {
					failures = append(failures, BulkSessionFailure{PatientID: item.PatientID, Error: err.Error()})
					continue
				}
			default:
				return err
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to save sessions: %w", err)
	}
	return saved, failures, nil
}

// Toggle creates the session when absent and deletes it when present.
// Returns the action taken.
func (r *SessionRepository) Toggle(ctx context.Context, patientID uint, date, shift string) (string, error) {
	if err := r.validateNotFuture(date); err != nil {
		return "", err
	}

	var action string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Session
		err := tx.Where("patient_id = ? AND session_date = ?", patientID, date).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to delete session: %w", err)
			}
			action = "deleted"
		case errors.Is(err, gorm.ErrRecordNotFound):
			session := models.Session{PatientID: patientID, SessionDate: date, Shift: shift}
			if err := tx.Create(&session).Error; err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}
			action = "created"
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

// RecordPredicted inserts one session per pair unless it already exists.
// Per-pair failures are tolerated and reported.
func (r *SessionRepository) RecordPredicted(ctx context.Context, pairs []PredictedSessionPair) (int, []BulkSessionFailure, error) {
	var inserted int
	var failures []BulkSessionFailure
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, pair := range pairs {
			if pair.PatientID == 0 || pair.SessionDate == "" {
				failures = append(failures, BulkSessionFailure{PatientID: pair.PatientID, Error: "missing patient_id or session_date"})
				continue
			}
			var count int64
			if err := tx.Model(&models.Session{}).
				Where("patient_id = ? AND session_date = ?", pair.PatientID, pair.SessionDate).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			session := models.Session{PatientID: pair.PatientID, SessionDate: pair.SessionDate, Shift: pair.Shift}
			if err := tx.Create(&session).Error; err != nil {
				failures = append(failures, BulkSessionFailure{PatientID: pair.PatientID, Error: err.Error()})
				continue
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to record predicted sessions: %w", err)
	}
	return inserted, failures, nil
}

// SessionsInRange lists joined sessions between two dates inclusive.
func (r *SessionRepository) SessionsInRange(ctx context.Context, from, to string) ([]SessionWithPatient, error) {
	var sessions []SessionWithPatient
	err := r.db.WithContext(ctx).Model(&models.Session{}).
		Select(sessionJoinSelect).
		Joins("JOIN patients ON patients.id = sessions.patient_id").
		Joins("LEFT JOIN machines ON machines.id = sessions.machine_id").
		Where("sessions.session_date >= ? AND sessions.session_date <= ?", from, to).
		Order("sessions.session_date ASC, patients.name ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions in range: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) validateNotFuture(date string) error {
	t, err := utils.ParseDate(date)
	if err != nil {
		return fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}
	today := time.Now().Format(utils.DateLayout)
	if t.Format(utils.DateLayout) > today {
		return fmt.Errorf("session date cannot be in the future: %w", ErrInvalid)
	}
	return nil
}

func (r *SessionRepository) checkDuplicate(ctx context.Context, db *gorm.DB, patientID uint, date string) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Session{}).
		Where("patient_id = ? AND session_date = ?", patientID, date).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing session: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("session already recorded for patient on %s: %w", strings.TrimSpace(date), ErrConflict)
	}
	return nil
}
