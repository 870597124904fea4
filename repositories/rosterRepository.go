package repositories

import (
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterEntry is one staff member's row in the month grid.
type RosterEntry struct {
	StaffID      uint                 `json:"staff_id"`
	Name         string               `json:"name"`
	JobTitle     string               `json:"job_title"`
	Grade        string               `json:"grade"`
	DefaultShift string               `json:"default_shift"`
	Shifts       map[string]string    `json:"shifts"`
	Changes      []models.ShiftChange `json:"changes"`
}

// RosterSaveItem is one cell of a roster bulk save.
type RosterSaveItem struct {
	StaffID           uint   `json:"staff_id"`
	Date              string `json:"date"`
	Shift             string `json:"shift"`
	SubstituteStaffID *uint  `json:"substitute_staff_id"`
	Reason            string `json:"reason"`
}

// ShiftHours maps a roster shift code to its working hours.
// M and A are 8-hour shifts, L and N are 12, the doubled codes are 18.
func ShiftHours(shift string) int {
	switch shift {
	case "M", "A":
		return 8
	case "L", "N":
		return 12
	case "NM", "AN":
		return 18
	default:
		return 0
	}
}

type RosterRepository struct {
	db *gorm.DB
}

func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// MonthGrid returns the roster for a YYYY-MM month, optionally filtered by
// job title. Each staff row carries a shift per date: the member's default
// shift on ordinary days, replaced wherever a shift change overrides it.
func (r *RosterRepository) MonthGrid(ctx context.Context, month, jobTitle string) ([]RosterEntry, error) {
	start, end, err := utils.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}
	days, err := utils.DaysInMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}

	staffQuery := r.db.WithContext(ctx).Where("employment_status = ?", "Active")
	if jobTitle != "" {
		staffQuery = staffQuery.Where("job_title = ?", jobTitle)
	}
	var staff []models.Staff
	if err := staffQuery.Order("name ASC").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	var changes []models.ShiftChange
	err = r.db.WithContext(ctx).
		Where("change_date >= ? AND change_date < ?", start, end).
		Order("change_date ASC").
		Find(&changes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shift changes: %w", err)
	}

	changesByStaff := make(map[uint][]models.ShiftChange)
	for _, change := range changes {
		changesByStaff[change.StaffID] = append(changesByStaff[change.StaffID], change)
	}

	entries := make([]RosterEntry, 0, len(staff))
	for _, member := range staff {
		shifts := make(map[string]string, days)
		if member.DefaultShift != "" {
			for day := 1; day <= days; day++ {
				shifts[fmt.Sprintf("%s-%02d", month, day)] = member.DefaultShift
			}
		}
		for _, change := range changesByStaff[member.ID] {
			shifts[change.ChangeDate] = change.NewShift
		}
		entries = append(entries, RosterEntry{
			StaffID:      member.ID,
			Name:         member.Name,
			JobTitle:     member.JobTitle,
			Grade:        member.Grade,
			DefaultShift: member.DefaultShift,
			Shifts:       shifts,
			Changes:      changesByStaff[member.ID],
		})
	}
	return entries, nil
}

// BulkSave upserts roster cells in one transaction. An empty shift removes
// the override for that staff/day.
func (r *RosterRepository) BulkSave(ctx context.Context, items []RosterSaveItem) (int, error) {
	var saved int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item.StaffID == 0 || item.Date == "" {
				return fmt.Errorf("missing staff_id or date: %w", ErrInvalid)
			}
			if item.Shift == "" {
				if err := tx.Where("staff_id = ? AND change_date = ?", item.StaffID, item.Date).
					Delete(&models.ShiftChange{}).Error; err != nil {
					return fmt.Errorf("failed to clear roster cell: %w", err)
				}
				saved++
				continue
			}

			change := models.ShiftChange{
				StaffID:           item.StaffID,
				ChangeDate:        item.Date,
				NewShift:          item.Shift,
				SubstituteStaffID: item.SubstituteStaffID,
				Reason:            item.Reason,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "staff_id"}, {Name: "change_date"}},
				DoUpdates: clause.AssignmentColumns([]string{"new_shift", "substitute_staff_id", "reason"}),
			}).Create(&change).Error
			if err != nil {
				return fmt.Errorf("failed to save roster cell: %w", err)
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saved, nil
}

// TotalHours sums the working hours of a month's shift codes for one entry.
func TotalHours(shifts map[string]string) int {
	total := 0
	for _, shift := range shifts {
		total += ShiftHours(shift)
	}
	return total
}
