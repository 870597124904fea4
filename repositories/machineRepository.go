package repositories

import (
	"NileDialysis/cache"
	"NileDialysis/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	MachineCacheExpiry   = 24 * time.Hour
	machinesListCacheKey = "machines_cache:list"
)

type MachineRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMachineRepository(db *gorm.DB, cache *cache.Cache) *MachineRepository {
	return &MachineRepository{db: db, cache: cache}
}

// List returns machines with optional status and ward filters. The unfiltered
// list is cached; machines change rarely.
func (r *MachineRepository) List(ctx context.Context, status, ward string) ([]models.Machine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if status == "" && ward == "" {
		var cached []models.Machine
		if found, err := r.cache.GetJSON(ctx, machinesListCacheKey, &cached); err == nil && found {
			return cached, nil
		} else if err != nil {
			log.Printf("Failed to get machines from cache: %v", err)
		}
	}

	query := r.db.WithContext(ctx).Model(&models.Machine{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if ward != "" {
		query = query.Where("ward = ?", ward)
	}

	var machines []models.Machine
	if err := query.Order("serial_number ASC").Find(&machines).Error; err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}

	if status == "" && ward == "" {
		if err := r.cache.SetJSON(ctx, machinesListCacheKey, machines, MachineCacheExpiry); err != nil {
			log.Printf("Failed to set machines in cache: %v", err)
		}
	}
	return machines, nil
}

func (r *MachineRepository) GetByID(ctx context.Context, id uint) (*models.Machine, error) {
	var machine models.Machine
	if err := r.db.WithContext(ctx).First(&machine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("machine %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get machine: %w", err)
	}
	return &machine, nil
}

func (r *MachineRepository) Create(ctx context.Context, machine *models.Machine) error {
	if err := r.checkDuplicateSerial(ctx, machine.SerialNumber, 0); err != nil {
		return err
	}
	if machine.Status == "" {
		machine.Status = "Working"
	}
	if err := r.db.WithContext(ctx).Create(machine).Error; err != nil {
		return fmt.Errorf("failed to create machine: %w", err)
	}
	return r.invalidateCache(ctx)
}

func (r *MachineRepository) Update(ctx context.Context, machine *models.Machine) error {
	var existing models.Machine
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", machine.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("machine %d: %w", machine.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load machine: %w", err)
	}
	if machine.SerialNumber != existing.SerialNumber {
		if err := r.checkDuplicateSerial(ctx, machine.SerialNumber, machine.ID); err != nil {
			return err
		}
	}
	machine.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(machine).Error; err != nil {
		return fmt.Errorf("failed to update machine: %w", err)
	}
	return r.invalidateCache(ctx)
}

func (r *MachineRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Machine{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete machine: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("machine %d: %w", id, ErrNotFound)
	}
	return r.invalidateCache(ctx)
}

// BulkCreate inserts imported machines, reporting per-row duplicates.
func (r *MachineRepository) BulkCreate(ctx context.Context, machines []models.Machine) (int, []ArchiveFailure, error) {
	var created int
	var failures []ArchiveFailure
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range machines {
			var count int64
			if err := tx.Model(&models.Machine{}).
				Where("serial_number = ?", machines[i].SerialNumber).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				failures = append(failures, ArchiveFailure{Error: fmt.Sprintf("serial number %s already registered", machines[i].SerialNumber)})
				continue
			}
			if machines[i].Status == "" {
				machines[i].Status = "Working"
			}
			if err := tx.Create(&machines[i]).Error; err != nil {
				failures = append(failures, ArchiveFailure{Error: err.Error()})
				continue
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to import machines: %w", err)
	}
	if err := r.invalidateCache(ctx); err != nil {
		log.Printf("Failed to invalidate machine cache: %v", err)
	}
	return created, failures, nil
}

func (r *MachineRepository) checkDuplicateSerial(ctx context.Context, serial string, excludeID uint) error {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Machine{}).Where("serial_number = ?", serial)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing machine: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("serial number already registered: %w", ErrConflict)
	}
	return nil
}

func (r *MachineRepository) invalidateCache(ctx context.Context) error {
	return r.cache.DeleteAll(ctx, "machines_cache*")
}
