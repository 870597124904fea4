package handlers

import (
	"NileDialysis/models"
	"NileDialysis/services"
	"NileDialysis/utils"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

func (h *BillingHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, settings)
}

func (h *BillingHandler) UpdateSettings(c *gin.Context) {
	var settings models.AppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateSettings(c, &settings); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, settings)
}

func (h *BillingHandler) GetPatientInvoice(c *gin.Context) {
	patientID, ok := uintParam(c, "patient_id")
	if !ok {
		return
	}
	month := c.Query("month")
	if _, _, err := utils.MonthBounds(month); err != nil {
		c.JSON(400, gin.H{"error": "invalid month"})
		return
	}
	invoice, err := h.service.PatientInvoice(c, patientID, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, invoice)
}

func (h *BillingHandler) GetMonthInvoices(c *gin.Context) {
	month := c.Query("month")
	if _, _, err := utils.MonthBounds(month); err != nil {
		c.JSON(400, gin.H{"error": "invalid month"})
		return
	}
	invoices, err := h.service.MonthInvoices(c, month, c.Query("dialysis_unit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, invoices)
}

func (h *BillingHandler) ExportMonthInvoices(c *gin.Context) {
	month := c.Query("month")
	if _, _, err := utils.MonthBounds(month); err != nil {
		c.JSON(400, gin.H{"error": "invalid month"})
		return
	}
	invoices, err := h.service.MonthInvoices(c, month, c.Query("dialysis_unit"))
	if err != nil {
		respondError(c, err)
		return
	}

	headers := []string{
		"Patient", "Medical ID", "Unit", "Sessions", "Blood Bags",
		"Price Per Session", "Price Per Bag", "Sessions Total", "Blood Bags Total", "Grand Total",
	}
	f, err := utils.NewWorkbook("Invoices", headers)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	for i, inv := range invoices {
		values := []interface{}{
			inv.PatientName, inv.MedicalID, inv.DialysisUnit, inv.SessionCount, inv.BloodBagCount,
			inv.PricePerSession, inv.PricePerBloodBag, inv.SessionsTotal, inv.BloodBagsTotal, inv.GrandTotal,
		}
		if err := utils.WriteRow(f, "Invoices", i+2, values); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	}
	respondWorkbook(c, f, "invoices_"+month+".xlsx")
}
