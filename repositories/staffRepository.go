package repositories

import (
	"NileDialysis/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// List returns a page of staff with optional search and status filter.
func (r *StaffRepository) List(ctx context.Context, page, limit int, search, employmentStatus string) ([]models.Staff, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Staff{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR national_id ILIKE ?", like, like)
	}
	if employmentStatus != "" {
		query = query.Where("employment_status = ?", employmentStatus)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 25
	}

	var staff []models.Staff
	err := query.Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&staff).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, total, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return &staff, nil
}

func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	if staff.NationalID != "" {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Staff{}).
			Where("national_id = ?", staff.NationalID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check for existing staff: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("national ID already registered: %w", ErrConflict)
		}
	}
	if staff.EmploymentStatus == "" {
		staff.EmploymentStatus = "Active"
	}
	if err := r.db.WithContext(ctx).Create(staff).Error; err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	var existing models.Staff
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", staff.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("staff %d: %w", staff.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load staff: %w", err)
	}
	staff.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(staff).Error; err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", id).Delete(&models.ShiftChange{}).Error; err != nil {
			return fmt.Errorf("failed to delete shift changes: %w", err)
		}
		result := tx.Delete(&models.Staff{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete staff: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("staff %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// UpsertShiftChange records a roster override, replacing any that exists for
// the same staff member and date.
func (r *StaffRepository) UpsertShiftChange(ctx context.Context, change *models.ShiftChange) error {
	if _, err := r.GetByID(ctx, change.StaffID); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "change_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"new_shift", "substitute_staff_id", "reason"}),
	}).Create(change).Error
	if err != nil {
		return fmt.Errorf("failed to save shift change: %w", err)
	}
	return nil
}

// JobTitles lists the distinct job titles in use.
func (r *StaffRepository) JobTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := r.db.WithContext(ctx).Model(&models.Staff{}).
		Distinct("job_title").
		Order("job_title ASC").
		Pluck("job_title", &titles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}
	return titles, nil
}
