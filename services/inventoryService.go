package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type InventoryService struct {
	supplyRepo   *repositories.SupplyRepository
	supplierRepo *repositories.SupplierRepository
	orderRepo    *repositories.PurchaseOrderRepository
}

func NewInventoryService(
	supplyRepo *repositories.SupplyRepository,
	supplierRepo *repositories.SupplierRepository,
	orderRepo *repositories.PurchaseOrderRepository,
) *InventoryService {
	return &InventoryService{
		supplyRepo:   supplyRepo,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
	}
}

func (s *InventoryService) ListSupplies(ctx context.Context, search, status string) ([]models.MedicalSupply, error) {
	return s.supplyRepo.List(ctx, search, status)
}

func (s *InventoryService) GetSupply(ctx context.Context, id uint) (*models.MedicalSupply, error) {
	return s.supplyRepo.GetByID(ctx, id)
}

func (s *InventoryService) CreateSupply(ctx context.Context, supply *models.MedicalSupply) error {
	return s.supplyRepo.Create(ctx, supply)
}

func (s *InventoryService) UpdateSupply(ctx context.Context, supply *models.MedicalSupply) error {
	return s.supplyRepo.Update(ctx, supply)
}

func (s *InventoryService) DeleteSupply(ctx context.Context, id uint) error {
	return s.supplyRepo.Delete(ctx, id)
}

func (s *InventoryService) AdjustSupply(ctx context.Context, id uint, delta int, reason string) (*models.MedicalSupply, error) {
	return s.supplyRepo.Adjust(ctx, id, delta, reason)
}

func (s *InventoryService) LogUsage(ctx context.Context, id uint, amount int, reason string) (*models.MedicalSupply, error) {
	return s.supplyRepo.LogUsage(ctx, id, amount, reason)
}

func (s *InventoryService) SupplyLogs(ctx context.Context, supplyID uint) ([]models.InventoryLog, error) {
	return s.supplyRepo.Logs(ctx, supplyID)
}

func (s *InventoryService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.supplierRepo.List(ctx)
}

func (s *InventoryService) GetSupplier(ctx context.Context, id uint) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, id)
}

func (s *InventoryService) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	return s.supplierRepo.Create(ctx, supplier)
}

func (s *InventoryService) UpdateSupplier(ctx context.Context, supplier *models.Supplier) error {
	return s.supplierRepo.Update(ctx, supplier)
}

func (s *InventoryService) DeleteSupplier(ctx context.Context, id uint) error {
	return s.supplierRepo.Delete(ctx, id)
}

func (s *InventoryService) ListOrders(ctx context.Context, status string) ([]repositories.PurchaseOrderWithSupplier, error) {
	return s.orderRepo.List(ctx, status)
}

func (s *InventoryService) GetOrder(ctx context.Context, id uint) (*models.PurchaseOrder, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *InventoryService) CreateOrder(ctx context.Context, order *models.PurchaseOrder, items []repositories.PurchaseOrderItemInput) error {
	return s.orderRepo.Create(ctx, order, items)
}

func (s *InventoryService) CompleteOrder(ctx context.Context, id uint) error {
	return s.orderRepo.Complete(ctx, id)
}

func (s *InventoryService) DeleteOrder(ctx context.Context, id uint) error {
	return s.orderRepo.Delete(ctx, id)
}
