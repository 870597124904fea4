package repositories

import (
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MaintenancePeriodRow is one machine's maintenance activity inside a window.
type MaintenancePeriodRow struct {
	MachineID       uint    `json:"machine_id"`
	SerialNumber    string  `json:"serial_number"`
	Ward            string  `json:"ward"`
	PreventiveCount int     `json:"preventive_count"`
	CurativeCount   int     `json:"curative_count"`
	CurativeCost    float64 `json:"curative_cost"`
}

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// ListPreventive returns preventive visits, optionally for one machine.
func (r *MaintenanceRepository) ListPreventive(ctx context.Context, machineID uint) ([]models.PreventiveMaintenance, error) {
	query := r.db.WithContext(ctx).Model(&models.PreventiveMaintenance{})
	if machineID != 0 {
		query = query.Where("machine_id = ?", machineID)
	}
	var records []models.PreventiveMaintenance
	if err := query.Order("maintenance_date DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list preventive maintenance: %w", err)
	}
	return records, nil
}

// CreatePreventive records a visit and refreshes the machine's
// last_maintenance date in the same transaction.
func (r *MaintenanceRepository) CreatePreventive(ctx context.Context, record *models.PreventiveMaintenance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var machine models.Machine
		if err := tx.First(&machine, "id = ?", record.MachineID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("machine %d: %w", record.MachineID, ErrNotFound)
			}
			return err
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create preventive maintenance: %w", err)
		}
		if record.MaintenanceDate > machine.LastMaintenance {
			if err := tx.Model(&machine).Update("last_maintenance", record.MaintenanceDate).Error; err != nil {
				return fmt.Errorf("failed to update machine last maintenance: %w", err)
			}
		}
		return nil
	})
}

func (r *MaintenanceRepository) UpdatePreventive(ctx context.Context, record *models.PreventiveMaintenance) error {
	var existing models.PreventiveMaintenance
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", record.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("preventive maintenance %d: %w", record.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load preventive maintenance: %w", err)
	}
	record.MachineID = existing.MachineID
	record.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("failed to update preventive maintenance: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) DeletePreventive(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PreventiveMaintenance{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete preventive maintenance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("preventive maintenance %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListCurative returns repair records, optionally for one machine.
func (r *MaintenanceRepository) ListCurative(ctx context.Context, machineID uint) ([]models.CurativeMaintenance, error) {
	query := r.db.WithContext(ctx).Model(&models.CurativeMaintenance{})
	if machineID != 0 {
		query = query.Where("machine_id = ?", machineID)
	}
	var records []models.CurativeMaintenance
	if err := query.Order("report_date DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list curative maintenance: %w", err)
	}
	return records, nil
}

func (r *MaintenanceRepository) CreateCurative(ctx context.Context, record *models.CurativeMaintenance) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Machine{}).
		Where("id = ?", record.MachineID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check machine: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("machine %d: %w", record.MachineID, ErrNotFound)
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create curative maintenance: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) UpdateCurative(ctx context.Context, record *models.CurativeMaintenance) error {
	var existing models.CurativeMaintenance
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", record.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("curative maintenance %d: %w", record.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load curative maintenance: %w", err)
	}
	record.MachineID = existing.MachineID
	record.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("failed to update curative maintenance: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) DeleteCurative(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CurativeMaintenance{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete curative maintenance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("curative maintenance %d: %w", id, ErrNotFound)
	}
	return nil
}

// PeriodReport aggregates per-machine maintenance for a period ending today.
// Periods: monthly, quarterly, semi-annual, annual.
func (r *MaintenanceRepository) PeriodReport(ctx context.Context, period string) ([]MaintenancePeriodRow, error) {
	months, ok := map[string]int{
		"monthly":     1,
		"quarterly":   3,
		"semi-annual": 6,
		"annual":      12,
	}[period]
	if !ok {
		return nil, fmt.Errorf("unknown period %q: %w", period, ErrInvalid)
	}

	now := time.Now()
	from := utils.AddMonthsClamped(now, -months).Format(utils.DateLayout)
	to := now.Format(utils.DateLayout)

	// Correlated subqueries keep the two maintenance tables from
	// cross-multiplying each other's rows.
	var rows []MaintenancePeriodRow
	err := r.db.WithContext(ctx).Model(&models.Machine{}).
		Select(`machines.id AS machine_id, machines.serial_number, machines.ward,
(SELECT COUNT(*) FROM preventive_maintenance pm WHERE pm.machine_id = machines.id AND pm.maintenance_date >= ? AND pm.maintenance_date <= ?) AS preventive_count,
(SELECT COUNT(*) FROM curative_maintenance cm WHERE cm.machine_id = machines.id AND cm.report_date >= ? AND cm.report_date <= ?) AS curative_count,
(SELECT COALESCE(SUM(cm.cost), 0) FROM curative_maintenance cm WHERE cm.machine_id = machines.id AND cm.report_date >= ? AND cm.report_date <= ?) AS curative_cost`,
			from, to, from, to, from, to).
		Order("machines.serial_number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build maintenance period report: %w", err)
	}
	return rows, nil
}
