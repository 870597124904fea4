package repositories

import (
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ScheduleEntry is a booking joined with patient and machine identity.
type ScheduleEntry struct {
	models.SessionSchedule
	PatientName  string `json:"patient_name"`
	MedicalID    string `json:"medical_id"`
	SerialNumber string `json:"serial_number"`
	Ward         string `json:"ward"`
}

// DailySchedule is the full picture for one date.
type DailySchedule struct {
	Date             string           `json:"date"`
	Scheduled        []ScheduleEntry  `json:"scheduled"`
	Unscheduled      []models.Patient `json:"unscheduled"`
	BookableMachines []models.Machine `json:"bookable_machines"`
}

// PredictedRosterRow pairs a patient's planned days with the sessions
// actually recorded in the month.
type PredictedRosterRow struct {
	PatientID    uint     `json:"patient_id"`
	Name         string   `json:"name"`
	MedicalID    string   `json:"medical_id"`
	DialysisDays string   `json:"dialysis_days"`
	Shift        string   `json:"dialysis_shift"`
	SessionDates []string `json:"session_dates"`
}

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleJoinSelect = `session_schedules.*, patients.name AS patient_name,
patients.medical_id, machines.serial_number, machines.ward`

// CreateBooking books a machine slot. A taken slot or an already-booked
// patient is a conflict.
func (r *ScheduleRepository) CreateBooking(ctx context.Context, booking *models.SessionSchedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SessionSchedule{}).
			Where("machine_id = ? AND schedule_date = ? AND shift = ?", booking.MachineID, booking.ScheduleDate, booking.Shift).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check machine slot: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("machine already booked for this slot: %w", ErrConflict)
		}

		if err := tx.Model(&models.SessionSchedule{}).
			Where("patient_id = ? AND schedule_date = ?", booking.PatientID, booking.ScheduleDate).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check patient booking: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("patient already booked on this date: %w", ErrConflict)
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

func (r *ScheduleRepository) DeleteBooking(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SessionSchedule{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	return nil
}

// Daily returns bookings, unscheduled patients and bookable machines for one date.
func (r *ScheduleRepository) Daily(ctx context.Context, date string) (*DailySchedule, error) {
	var scheduled []ScheduleEntry
	err := r.db.WithContext(ctx).Model(&models.SessionSchedule{}).
		Select(scheduleJoinSelect).
		Joins("JOIN patients ON patients.id = session_schedules.patient_id").
		Joins("JOIN machines ON machines.id = session_schedules.machine_id").
		Where("session_schedules.schedule_date = ?", date).
		Order("session_schedules.shift ASC, machines.serial_number ASC").
		Find(&scheduled).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookedPatients := make([]uint, 0, len(scheduled))
	for _, entry := range scheduled {
		bookedPatients = append(bookedPatients, entry.PatientID)
	}

	unscheduledQuery := r.db.WithContext(ctx).Model(&models.Patient{})
	if len(bookedPatients) > 0 {
		unscheduledQuery = unscheduledQuery.Where("id NOT IN ?", bookedPatients)
	}
	var unscheduled []models.Patient
	if err := unscheduledQuery.Order("name ASC").Find(&unscheduled).Error; err != nil {
		return nil, fmt.Errorf("failed to list unscheduled patients: %w", err)
	}

	var machines []models.Machine
	if err := r.db.WithContext(ctx).
		Where("status = ?", "Working").
		Order("serial_number ASC").
		Find(&machines).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookable machines: %w", err)
	}

	return &DailySchedule{
		Date:             date,
		Scheduled:        scheduled,
		Unscheduled:      unscheduled,
		BookableMachines: machines,
	}, nil
}

// Weekly returns bookings between two dates plus machines and patients
// without any booking in the range.
func (r *ScheduleRepository) Weekly(ctx context.Context, from, to string) ([]ScheduleEntry, []models.Machine, []models.Patient, error) {
	var scheduled []ScheduleEntry
	err := r.db.WithContext(ctx).Model(&models.SessionSchedule{}).
		Select(scheduleJoinSelect).
		Joins("JOIN patients ON patients.id = session_schedules.patient_id").
		Joins("JOIN machines ON machines.id = session_schedules.machine_id").
		Where("session_schedules.schedule_date >= ? AND session_schedules.schedule_date <= ?", from, to).
		Order("session_schedules.schedule_date ASC, session_schedules.shift ASC").
		Find(&scheduled).Error
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list weekly bookings: %w", err)
	}

	var machines []models.Machine
	if err := r.db.WithContext(ctx).Order("serial_number ASC").Find(&machines).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list machines: %w", err)
	}

	booked := make(map[uint]bool, len(scheduled))
	for _, entry := range scheduled {
		booked[entry.PatientID] = true
	}
	var patients []models.Patient
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&patients).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list patients: %w", err)
	}
	unscheduled := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		if !booked[p.ID] {
			unscheduled = append(unscheduled, p)
		}
	}

	return scheduled, machines, unscheduled, nil
}

// PredictedRoster lists active-referral patients with their planned days and
// the sessions already recorded inside the month.
func (r *ScheduleRepository) PredictedRoster(ctx context.Context, month string) ([]PredictedRosterRow, error) {
	start, end, err := utils.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}

	var patients []models.Patient
	err = r.db.WithContext(ctx).
		Where("referral_expiry >= ? AND dialysis_days <> ''", start).
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active patients: %w", err)
	}

	var sessions []models.Session
	err = r.db.WithContext(ctx).
		Where("session_date >= ? AND session_date < ?", start, end).
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list month sessions: %w", err)
	}

	datesByPatient := make(map[uint][]string)
	for _, s := range sessions {
		datesByPatient[s.PatientID] = append(datesByPatient[s.PatientID], s.SessionDate)
	}

	rows := make([]PredictedRosterRow, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, PredictedRosterRow{
			PatientID:    p.ID,
			Name:         p.Name,
			MedicalID:    p.MedicalID,
			DialysisDays: strings.TrimSpace(p.DialysisDays),
			Shift:        p.DialysisShift,
			SessionDates: datesByPatient[p.ID],
		})
	}
	return rows, nil
}
