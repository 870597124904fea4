package repositories

import (
	"context"
	"errors"
	"testing"

	"NileDialysis/models"

	"gorm.io/gorm"
)

func newOrderTestRepo(t *testing.T) (*PurchaseOrderRepository, *testOrderFixture) {
	t.Helper()
	db := newTestDB(t,
		&models.Supplier{}, &models.MedicalSupply{},
		&models.PurchaseOrder{}, &models.PurchaseOrderItem{}, &models.InventoryLog{},
	)
	c := newTestCache(t)

	supplier := models.Supplier{Name: "Nile Medical Supplies"}
	if err := db.Create(&supplier).Error; err != nil {
		t.Fatalf("failed to seed supplier: %v", err)
	}
	supply := models.MedicalSupply{ItemName: "Dialyzer F8", Quantity: 40}
	if err := db.Create(&supply).Error; err != nil {
		t.Fatalf("failed to seed supply: %v", err)
	}

	return NewPurchaseOrderRepository(db, c), &testOrderFixture{db: db, supplier: supplier, supply: supply}
}

type testOrderFixture struct {
	db       *gorm.DB
	supplier models.Supplier
	supply   models.MedicalSupply
}

func TestPurchaseOrderCreatePersistsUnitPrice(t *testing.T) {
	repo, fx := newOrderTestRepo(t)
	ctx := context.Background()

	order := models.PurchaseOrder{SupplierID: fx.supplier.ID}
	items := []PurchaseOrderItemInput{{SupplyID: fx.supply.ID, Quantity: 25, UnitPrice: 12.5}}
	if err := repo.Create(ctx, &order, items); err != nil {
		t.Fatalf("create order: %v", err)
	}

	var rows []models.PurchaseOrderItem
	if err := fx.db.Where("order_id = ?", order.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load order items: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("order items = %d, want 1", len(rows))
	}
	if rows[0].UnitPrice != 12.5 {
		t.Errorf("unit price = %v, want 12.5", rows[0].UnitPrice)
	}
	if rows[0].Quantity != 25 {
		t.Errorf("quantity = %d, want 25", rows[0].Quantity)
	}
}

func TestPurchaseOrderCreateRejectsNegativeUnitPrice(t *testing.T) {
	repo, fx := newOrderTestRepo(t)

	order := models.PurchaseOrder{SupplierID: fx.supplier.ID}
	items := []PurchaseOrderItemInput{{SupplyID: fx.supply.ID, Quantity: 5, UnitPrice: -1}}
	if err := repo.Create(context.Background(), &order, items); !errors.Is(err, ErrInvalid) {
		t.Fatalf("negative unit price: got %v, want ErrInvalid", err)
	}
}

func TestPurchaseOrderCompleteOnce(t *testing.T) {
	repo, fx := newOrderTestRepo(t)
	ctx := context.Background()

	order := models.PurchaseOrder{SupplierID: fx.supplier.ID}
	items := []PurchaseOrderItemInput{{SupplyID: fx.supply.ID, Quantity: 10, UnitPrice: 9.99}}
	if err := repo.Create(ctx, &order, items); err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := repo.Complete(ctx, order.ID); err != nil {
		t.Fatalf("first completion: %v", err)
	}

	var supply models.MedicalSupply
	if err := fx.db.First(&supply, "id = ?", fx.supply.ID).Error; err != nil {
		t.Fatalf("reload supply: %v", err)
	}
	if supply.Quantity != 50 {
		t.Errorf("stock after completion = %d, want 50", supply.Quantity)
	}

	var logCount int64
	fx.db.Model(&models.InventoryLog{}).Where("supply_id = ?", fx.supply.ID).Count(&logCount)
	if logCount != 1 {
		t.Errorf("inventory log entries = %d, want 1", logCount)
	}

	if err := repo.Complete(ctx, order.ID); !errors.Is(err, ErrInvalid) {
		t.Fatalf("second completion: got %v, want ErrInvalid", err)
	}

	fx.db.First(&supply, "id = ?", fx.supply.ID)
	if supply.Quantity != 50 {
		t.Errorf("stock after rejected completion = %d, want 50", supply.Quantity)
	}
}
