package repositories

import (
	"NileDialysis/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) List(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return &supplier, nil
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	if err := r.checkDuplicateName(ctx, supplier.Name, 0); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	var existing models.Supplier
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", supplier.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("supplier %d: %w", supplier.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load supplier: %w", err)
	}
	if supplier.Name != existing.Name {
		if err := r.checkDuplicateName(ctx, supplier.Name, supplier.ID); err != nil {
			return err
		}
	}
	supplier.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(supplier).Error; err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PurchaseOrder{}).
		Where("supplier_id = ?", id).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check supplier orders: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("supplier has purchase orders: %w", ErrConflict)
	}

	result := r.db.WithContext(ctx).Delete(&models.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("supplier %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SupplierRepository) checkDuplicateName(ctx context.Context, name string, excludeID uint) error {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Supplier{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing supplier: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("supplier name already exists: %w", ErrConflict)
	}
	return nil
}
