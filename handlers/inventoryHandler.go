package handlers

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"NileDialysis/services"
	"NileDialysis/utils"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) ListSupplies(c *gin.Context) {
	supplies, err := h.service.ListSupplies(c, c.Query("search"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, supplies)
}

func (h *InventoryHandler) GetSupplyByID(c *gin.Context) {
	id, ok := uintParam(c, "supply_id")
	if !ok {
		return
	}
	supply, err := h.service.GetSupply(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, supply)
}

func (h *InventoryHandler) CreateSupply(c *gin.Context) {
	var supply models.MedicalSupply
	if err := c.ShouldBindJSON(&supply); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateSupplyData(supply); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateSupply(c, &supply); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, supply)
}

func (h *InventoryHandler) UpdateSupply(c *gin.Context) {
	id, ok := uintParam(c, "supply_id")
	if !ok {
		return
	}
	var supply models.MedicalSupply
	if err := c.ShouldBindJSON(&supply); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateSupplyData(supply); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	supply.ID = id
	if err := h.service.UpdateSupply(c, &supply); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, supply)
}

func (h *InventoryHandler) DeleteSupply(c *gin.Context) {
	id, ok := uintParam(c, "supply_id")
	if !ok {
		return
	}
	if err := h.service.DeleteSupply(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Supply deleted"})
}

func (h *InventoryHandler) AdjustSupply(c *gin.Context) {
	id, ok := uintParam(c, "supply_id")
	if !ok {
		return
	}
	var req struct {
		ChangeAmount int    `json:"change_amount"`
		Reason       string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	supply, err := h.service.AdjustSupply(c, id, req.ChangeAmount, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, supply)
}

func (h *InventoryHandler) LogUsage(c *gin.Context) {
	id, ok := uintParam(c, "supply_id")
	if !ok {
		return
	}
	var req struct {
		Amount int    `json:"amount"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	supply, err := h.service.LogUsage(c, id, req.Amount, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, supply)
}

func (h *InventoryHandler) GetSupplyLogs(c *gin.Context) {
	id, ok := uintParam(c, "supply_id")
	if !ok {
		return
	}
	logs, err := h.service.SupplyLogs(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, logs)
}

func (h *InventoryHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.service.ListSuppliers(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, suppliers)
}

func (h *InventoryHandler) CreateSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateSupplierData(supplier); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateSupplier(c, &supplier); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, supplier)
}

func (h *InventoryHandler) UpdateSupplier(c *gin.Context) {
	id, ok := uintParam(c, "supplier_id")
	if !ok {
		return
	}
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateSupplierData(supplier); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	supplier.ID = id
	if err := h.service.UpdateSupplier(c, &supplier); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, supplier)
}

func (h *InventoryHandler) DeleteSupplier(c *gin.Context) {
	id, ok := uintParam(c, "supplier_id")
	if !ok {
		return
	}
	if err := h.service.DeleteSupplier(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Supplier deleted"})
}

func (h *InventoryHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, orders)
}

func (h *InventoryHandler) GetOrderByID(c *gin.Context) {
	id, ok := uintParam(c, "order_id")
	if !ok {
		return
	}
	order, err := h.service.GetOrder(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, order)
}

func (h *InventoryHandler) CreateOrder(c *gin.Context) {
	var req struct {
		SupplierID uint                                  `json:"supplier_id"`
		OrderDate  string                                `json:"order_date"`
		Notes      string                                `json:"notes"`
		Items      []repositories.PurchaseOrderItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if req.SupplierID == 0 {
		c.JSON(400, gin.H{"error": "supplier_id is required"})
		return
	}
	order := models.PurchaseOrder{
		SupplierID: req.SupplierID,
		OrderDate:  req.OrderDate,
		Notes:      req.Notes,
	}
	if err := h.service.CreateOrder(c, &order, req.Items); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, order)
}

// CompleteOrder receives a pending order into stock. Each item's quantity is
// added to its supply with an inventory log entry.
func (h *InventoryHandler) CompleteOrder(c *gin.Context) {
	id, ok := uintParam(c, "order_id")
	if !ok {
		return
	}
	if err := h.service.CompleteOrder(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Order completed and stock updated"})
}

func (h *InventoryHandler) DeleteOrder(c *gin.Context) {
	id, ok := uintParam(c, "order_id")
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Order deleted"})
}
