package models

import (
	"time"
)

// MedicalSupply model
type MedicalSupply struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ItemName       string    `gorm:"column:item_name;not null;index" json:"item_name"`
	Category       string    `gorm:"column:category;index" json:"category"`
	Quantity       int       `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Unit           string    `gorm:"column:unit" json:"unit"`
	MinStockLevel  int       `gorm:"column:min_stock_level;default:0" json:"min_stock_level"`
	ExpiryDate     string    `gorm:"column:expiry_date" json:"expiry_date"`
	SupplierName   string    `gorm:"column:supplier_name" json:"supplier_name"`
	StorageDetails string    `gorm:"column:storage_details" json:"storage_details"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MedicalSupply) TableName() string {
	return "medical_supplies"
}

// InventoryLog records one stock movement and the balance it produced.
type InventoryLog struct {
	ID           uint          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SupplyID     uint          `gorm:"column:supply_id;not null;index" json:"supply_id"`
	ChangeAmount int           `gorm:"column:change_amount;not null" json:"change_amount"`
	NewQuantity  int           `gorm:"column:new_quantity;not null" json:"new_quantity"`
	Reason       string        `gorm:"column:reason" json:"reason"`
	LogDate      string        `gorm:"column:log_date;not null;index" json:"log_date"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Supply       MedicalSupply `gorm:"foreignKey:SupplyID;references:ID" json:"-"`
}

func (InventoryLog) TableName() string {
	return "inventory_logs"
}

// Supplier model
type Supplier struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string    `gorm:"column:name;not null;unique;index" json:"name"`
	ContactPerson string    `gorm:"column:contact_person" json:"contact_person"`
	Phone         string    `gorm:"column:phone" json:"phone"`
	Email         string    `gorm:"column:email" json:"email"`
	Address       string    `gorm:"column:address" json:"address"`
	Notes         string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// PurchaseOrder model. Status flips from Pending to Completed exactly once;
// completion applies every item to stock.
type PurchaseOrder struct {
	ID         uint                `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SupplierID uint                `gorm:"column:supplier_id;not null;index" json:"supplier_id"`
	OrderDate  string              `gorm:"column:order_date;not null;index" json:"order_date"`
	Status     string              `gorm:"column:status;not null;default:Pending;check:status IN ('Pending', 'Completed', 'Cancelled')" json:"status"`
	Notes      string              `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Supplier   Supplier            `gorm:"foreignKey:SupplierID;references:ID" json:"-"`
	Items      []PurchaseOrderItem `gorm:"foreignKey:OrderID;references:ID" json:"items,omitempty"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem model
type PurchaseOrderItem struct {
	ID        uint          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID   uint          `gorm:"column:order_id;not null;index" json:"order_id"`
	SupplyID  uint          `gorm:"column:supply_id;not null;index" json:"supply_id"`
	Quantity  int           `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice float64       `gorm:"column:unit_price;default:0" json:"unit_price"`
	Supply    MedicalSupply `gorm:"foreignKey:SupplyID;references:ID" json:"-"`
}

func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
