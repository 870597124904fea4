package handlers

import (
	"NileDialysis/models"
	"NileDialysis/services"
	"NileDialysis/utils"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	service *services.StaffService
}

func NewStaffHandler(service *services.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) ListStaff(c *gin.Context) {
	staff, total, err := h.service.List(c, intQuery(c, "page", 1), intQuery(c, "limit", 25), c.Query("search"), c.Query("employment_status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"staff": staff, "total": total})
}

func (h *StaffHandler) GetStaffByID(c *gin.Context) {
	id, ok := uintParam(c, "staff_id")
	if !ok {
		return
	}
	staff, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, staff)
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStaffData(staff); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &staff); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, staff)
}

func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, ok := uintParam(c, "staff_id")
	if !ok {
		return
	}
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStaffData(staff); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	staff.ID = id
	if err := h.service.Update(c, &staff); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, staff)
}

func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id, ok := uintParam(c, "staff_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Staff member deleted"})
}

func (h *StaffHandler) UpsertShiftChange(c *gin.Context) {
	var change models.ShiftChange
	if err := c.ShouldBindJSON(&change); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if change.StaffID == 0 || change.ChangeDate == "" {
		c.JSON(400, gin.H{"error": "staff_id and change_date are required"})
		return
	}
	if err := h.service.UpsertShiftChange(c, &change); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, change)
}

func (h *StaffHandler) GetJobTitles(c *gin.Context) {
	titles, err := h.service.JobTitles(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, titles)
}
