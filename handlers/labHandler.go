package handlers

import (
	"NileDialysis/models"
	"NileDialysis/services"
	"NileDialysis/utils"

	"github.com/gin-gonic/gin"
)

type LabHandler struct {
	service *services.LabService
}

func NewLabHandler(service *services.LabService) *LabHandler {
	return &LabHandler{service: service}
}

func (h *LabHandler) ListTestTypes(c *gin.Context) {
	types, err := h.service.ListTestTypes(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, types)
}

func (h *LabHandler) CreateTestType(c *gin.Context) {
	var testType models.LabTestType
	if err := c.ShouldBindJSON(&testType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateLabTestTypeData(testType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateTestType(c, &testType); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, testType)
}

func (h *LabHandler) UpdateTestType(c *gin.Context) {
	id, ok := uintParam(c, "type_id")
	if !ok {
		return
	}
	var testType models.LabTestType
	if err := c.ShouldBindJSON(&testType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateLabTestTypeData(testType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	testType.ID = id
	if err := h.service.UpdateTestType(c, &testType); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, testType)
}

func (h *LabHandler) DeleteTestType(c *gin.Context) {
	id, ok := uintParam(c, "type_id")
	if !ok {
		return
	}
	if err := h.service.DeleteTestType(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Test type and its results deleted"})
}

func (h *LabHandler) CreateResult(c *gin.Context) {
	var result models.LabResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateLabResultData(result); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateResult(c, &result); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, result)
}

func (h *LabHandler) UpdateResult(c *gin.Context) {
	id, ok := uintParam(c, "result_id")
	if !ok {
		return
	}
	var result models.LabResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	result.ID = id
	if err := h.service.UpdateResult(c, &result); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, result)
}

func (h *LabHandler) DeleteResult(c *gin.Context) {
	id, ok := uintParam(c, "result_id")
	if !ok {
		return
	}
	if err := h.service.DeleteResult(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Result deleted"})
}

func (h *LabHandler) GetPatientResults(c *gin.Context) {
	patientID, ok := uintParam(c, "patient_id")
	if !ok {
		return
	}
	results, err := h.service.PatientResults(c, patientID, c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, results)
}

func (h *LabHandler) GetTrend(c *gin.Context) {
	patientID, ok := uintParam(c, "patient_id")
	if !ok {
		return
	}
	typeID, ok := uintParam(c, "type_id")
	if !ok {
		return
	}
	results, err := h.service.Trend(c, patientID, typeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, results)
}

func (h *LabHandler) GetCriticalResults(c *gin.Context) {
	results, err := h.service.CriticalResults(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, results)
}
