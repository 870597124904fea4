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
	SupplyCacheExpiry    = 6 * time.Hour
	suppliesListCacheKey = "supplies_cache:list"
	expiringSoonDays     = 90
)

type SupplyRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewSupplyRepository(db *gorm.DB, cache *cache.Cache) *SupplyRepository {
	return &SupplyRepository{db: db, cache: cache}
}

// List returns supplies with optional search and stock status filter.
// Status: low_stock, expired, expiring_soon.
func (r *SupplyRepository) List(ctx context.Context, search, status string) ([]models.MedicalSupply, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if search == "" && status == "" {
		var cached []models.MedicalSupply
		if found, err := r.cache.GetJSON(ctx, suppliesListCacheKey, &cached); err == nil && found {
			return cached, nil
		} else if err != nil {
			log.Printf("Failed to get supplies from cache: %v", err)
		}
	}

	query := r.db.WithContext(ctx).Model(&models.MedicalSupply{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("item_name ILIKE ? OR category ILIKE ?", like, like)
	}

	today := time.Now().Format(utils.DateLayout)
	horizon := time.Now().AddDate(0, 0, expiringSoonDays).Format(utils.DateLayout)
	switch status {
	case "low_stock":
		query = query.Where("quantity <= min_stock_level")
	case "expired":
		query = query.Where("expiry_date <> '' AND expiry_date < ?", today)
	case "expiring_soon":
		query = query.Where("expiry_date <> '' AND expiry_date >= ? AND expiry_date <= ?", today, horizon)
	}

	var supplies []models.MedicalSupply
	if err := query.Order("item_name ASC").Find(&supplies).Error; err != nil {
		return nil, fmt.Errorf("failed to list supplies: %w", err)
	}

	if search == "" && status == "" {
		if err := r.cache.SetJSON(ctx, suppliesListCacheKey, supplies, SupplyCacheExpiry); err != nil {
			log.Printf("Failed to set supplies in cache: %v", err)
		}
	}
	return supplies, nil
}

func (r *SupplyRepository) GetByID(ctx context.Context, id uint) (*models.MedicalSupply, error) {
	var supply models.MedicalSupply
	if err := r.db.WithContext(ctx).First(&supply, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supply %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get supply: %w", err)
	}
	return &supply, nil
}

func (r *SupplyRepository) Create(ctx context.Context, supply *models.MedicalSupply) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(supply).Error; err != nil {
			return fmt.Errorf("failed to create supply: %w", err)
		}
		if supply.Quantity != 0 {
			entry := models.InventoryLog{
				SupplyID:     supply.ID,
				ChangeAmount: supply.Quantity,
				NewQuantity:  supply.Quantity,
				Reason:       "Initial stock",
				LogDate:      time.Now().Format(utils.DateLayout),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to log initial stock: %w", err)
			}
		}
		return r.invalidateCache(ctx)
	})
}

func (r *SupplyRepository) Update(ctx context.Context, supply *models.MedicalSupply) error {
	var existing models.MedicalSupply
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", supply.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("supply %d: %w", supply.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load supply: %w", err)
	}
	// Stock moves only through Adjust, LogUsage and order completion.
	supply.Quantity = existing.Quantity
	supply.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(supply).Error; err != nil {
		return fmt.Errorf("failed to update supply: %w", err)
	}
	return r.invalidateCache(ctx)
}

func (r *SupplyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supply_id = ?", id).Delete(&models.InventoryLog{}).Error; err != nil {
			return fmt.Errorf("failed to delete inventory logs: %w", err)
		}
		result := tx.Delete(&models.MedicalSupply{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete supply: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("supply %d: %w", id, ErrNotFound)
		}
		return r.invalidateCache(ctx)
	})
}

// Adjust applies a signed stock delta and logs the movement. A result below
// zero is rejected.
func (r *SupplyRepository) Adjust(ctx context.Context, id uint, delta int, reason string) (*models.MedicalSupply, error) {
	var supply models.MedicalSupply
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&supply, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("supply %d: %w", id, ErrNotFound)
			}
			return err
		}

		newQuantity := supply.Quantity + delta
		if newQuantity < 0 {
			return fmt.Errorf("adjustment would make stock negative: %w", ErrInvalid)
		}

		if err := tx.Model(&supply).Update("quantity", newQuantity).Error; err != nil {
			return fmt.Errorf("failed to adjust stock: %w", err)
		}
		supply.Quantity = newQuantity

		entry := models.InventoryLog{
			SupplyID:     id,
			ChangeAmount: delta,
			NewQuantity:  newQuantity,
			Reason:       reason,
			LogDate:      time.Now().Format(utils.DateLayout),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to log adjustment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := r.invalidateCache(ctx); err != nil {
		log.Printf("Failed to invalidate supply cache: %v", err)
	}
	return &supply, nil
}

// LogUsage consumes stock. The amount must be positive and within stock.
func (r *SupplyRepository) LogUsage(ctx context.Context, id uint, amount int, reason string) (*models.MedicalSupply, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("usage amount must be positive: %w", ErrInvalid)
	}
	supply, err := r.Adjust(ctx, id, -amount, reason)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return nil, fmt.Errorf("usage exceeds available stock: %w", ErrInvalid)
		}
		return nil, err
	}
	return supply, nil
}

// Logs lists the movement history for one supply, newest first.
func (r *SupplyRepository) Logs(ctx context.Context, supplyID uint) ([]models.InventoryLog, error) {
	var logs []models.InventoryLog
	err := r.db.WithContext(ctx).
		Where("supply_id = ?", supplyID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory logs: %w", err)
	}
	return logs, nil
}

func (r *SupplyRepository) invalidateCache(ctx context.Context) error {
	return r.cache.DeleteAll(ctx, "supplies_cache*")
}
