package repositories

import (
	"NileDialysis/cache"
	"NileDialysis/database"
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseOrderWithSupplier is an order row joined with its supplier's name.
type PurchaseOrderWithSupplier struct {
	models.PurchaseOrder
	SupplierName string `json:"supplier_name"`
	ItemCount    int    `json:"item_count"`
}

// PurchaseOrderItemInput is one line of an order create request.
type PurchaseOrderItemInput struct {
	SupplyID  uint    `json:"supply_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type PurchaseOrderRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPurchaseOrderRepository(db *gorm.DB, cache *cache.Cache) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db, cache: cache}
}

// List returns orders joined with supplier names, newest first.
func (r *PurchaseOrderRepository) List(ctx context.Context, status string) ([]PurchaseOrderWithSupplier, error) {
	query := r.db.WithContext(ctx).Model(&models.PurchaseOrder{}).
		Select(`purchase_orders.*, suppliers.name AS supplier_name,
(SELECT COUNT(*) FROM purchase_order_items WHERE purchase_order_items.order_id = purchase_orders.id) AS item_count`).
		Joins("JOIN suppliers ON suppliers.id = purchase_orders.supplier_id")
	if status != "" {
		query = query.Where("purchase_orders.status = ?", status)
	}

	var orders []PurchaseOrderWithSupplier
	if err := query.Order("purchase_orders.order_date DESC, purchase_orders.id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, nil
}

// GetByID returns one order with its items preloaded.
func (r *PurchaseOrderRepository) GetByID(ctx context.Context, id uint) (*models.PurchaseOrder, error) {
	var order models.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("purchase order %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get purchase order: %w", err)
	}
	return &order, nil
}

// Create inserts the order and its items in one transaction.
func (r *PurchaseOrderRepository) Create(ctx context.Context, order *models.PurchaseOrder, items []PurchaseOrderItemInput) error {
	if len(items) == 0 {
		return fmt.Errorf("purchase order needs at least one item: %w", ErrInvalid)
	}
	if order.OrderDate == "" {
		order.OrderDate = time.Now().Format(utils.DateLayout)
	}
	if order.Status == "" {
		order.Status = "Pending"
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Supplier{}).Where("id = ?", order.SupplierID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("supplier %d: %w", order.SupplierID, ErrNotFound)
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create purchase order: %w", err)
		}
		for _, item := range items {
			if item.SupplyID == 0 || item.Quantity <= 0 {
				return fmt.Errorf("order items need a supply and a positive quantity: %w", ErrInvalid)
			}
			if item.UnitPrice < 0 {
				return fmt.Errorf("order item unit price must be non-negative: %w", ErrInvalid)
			}
			row := models.PurchaseOrderItem{
				OrderID:   order.ID,
				SupplyID:  item.SupplyID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}
		return nil
	})
}

// Complete applies a pending order to stock: each item's quantity is added to
// its supply and logged with the resulting balance, then the status flips to
// Completed. Completing twice is rejected.
func (r *PurchaseOrderRepository) Complete(ctx context.Context, id uint) error {
	lockKey := fmt.Sprintf("purchase_order_lock:%d", id)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, 30*time.Second)
	if err != nil {
		return fmt.Errorf("failed to acquire order lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("order completion already in progress: %w", ErrConflict)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release order lock: %v", err)
		}
	}()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.PurchaseOrder
		if err := tx.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("purchase order %d: %w", id, ErrNotFound)
			}
			return err
		}
		if order.Status == "Completed" {
			return fmt.Errorf("purchase order already completed: %w", ErrInvalid)
		}
		if len(order.Items) == 0 {
			return fmt.Errorf("purchase order has no items: %w", ErrInvalid)
		}

		today := time.Now().Format(utils.DateLayout)
		for _, item := range order.Items {
			var supply models.MedicalSupply
			if err := tx.First(&supply, "id = ?", item.SupplyID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("supply %d: %w", item.SupplyID, ErrNotFound)
				}
				return err
			}

			newQuantity := supply.Quantity + item.Quantity
			if err := tx.Model(&supply).Update("quantity", newQuantity).Error; err != nil {
				return fmt.Errorf("failed to receive stock for supply %d: %w", item.SupplyID, err)
			}

			entry := models.InventoryLog{
				SupplyID:     item.SupplyID,
				ChangeAmount: item.Quantity,
				NewQuantity:  newQuantity,
				Reason:       fmt.Sprintf("Purchase order #%d received", order.ID),
				LogDate:      today,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to log received stock: %w", err)
			}
		}

		if err := tx.Model(&order).Update("status", "Completed").Error; err != nil {
			return fmt.Errorf("failed to complete purchase order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := r.cache.DeleteAll(ctx, "supplies_cache*"); err != nil {
		log.Printf("Failed to invalidate supply cache after order completion: %v", err)
	}
	return nil
}

func (r *PurchaseOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.PurchaseOrder
		if err := tx.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("purchase order %d: %w", id, ErrNotFound)
			}
			return err
		}
		if order.Status == "Completed" {
			return fmt.Errorf("completed orders cannot be deleted: %w", ErrInvalid)
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.PurchaseOrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("failed to delete purchase order: %w", err)
		}
		return nil
	})
}
