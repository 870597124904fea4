package handlers

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"NileDialysis/services"
	"NileDialysis/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	service *services.SessionService
}

func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	filter := repositories.SessionListFilter{
		Date:   c.Query("date"),
		Search: c.Query("search"),
	}
	if patientID := intQuery(c, "patient_id", 0); patientID > 0 {
		filter.PatientID = uint(patientID)
	}
	sessions, err := h.service.List(c, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, sessions)
}

// GetSessionsByDate returns the sessions recorded on a date alongside the
// patients whose dialysis days include that weekday but have no session yet.
func (h *SessionHandler) GetSessionsByDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		c.JSON(400, gin.H{"error": "invalid date"})
		return
	}
	sessions, expected, err := h.service.ByDate(c, date, c.Query("virus_status"), c.Query("dialysis_unit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"sessions": sessions, "expected_patients": expected})
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var session models.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateSessionData(session); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &session); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, session)
}

func (h *SessionHandler) UpdateSession(c *gin.Context) {
	id, ok := uintParam(c, "session_id")
	if !ok {
		return
	}
	var session models.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	session.ID = id
	if err := h.service.Update(c, &session); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, session)
}

func (h *SessionHandler) UpdateTransfusion(c *gin.Context) {
	id, ok := uintParam(c, "session_id")
	if !ok {
		return
	}
	var req struct {
		BloodTransfusionBags int `json:"blood_transfusion_bags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateTransfusion(c, id, req.BloodTransfusionBags); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Transfusion count updated"})
}

func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, ok := uintParam(c, "session_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Session deleted"})
}

func (h *SessionHandler) GetPatientMonth(c *gin.Context) {
	patientID, ok := uintParam(c, "patient_id")
	if !ok {
		return
	}
	sessions, err := h.service.PatientMonth(c, patientID, c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, sessions)
}

func (h *SessionHandler) UpdateSessionsByDate(c *gin.Context) {
	var req struct {
		Date      string `json:"date"`
		AddIDs    []uint `json:"add_ids"`
		RemoveIDs []uint `json:"remove_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		c.JSON(400, gin.H{"error": "invalid date"})
		return
	}
	if err := h.service.UpdateByDate(c, req.Date, req.AddIDs, req.RemoveIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Sessions updated"})
}

func (h *SessionHandler) BulkSaveSessions(c *gin.Context) {
	var req struct {
		Date  string                         `json:"date"`
		Items []repositories.BulkSessionItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		c.JSON(400, gin.H{"error": "invalid date"})
		return
	}
	saved, failures, err := h.service.Bulk(c, req.Date, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"saved": saved, "failures": failures})
}

func (h *SessionHandler) ToggleSession(c *gin.Context) {
	var req struct {
		PatientID uint   `json:"patient_id"`
		Date      string `json:"date"`
		Shift     string `json:"shift"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if req.PatientID == 0 {
		c.JSON(400, gin.H{"error": "patient_id is required"})
		return
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		c.JSON(400, gin.H{"error": "invalid date"})
		return
	}
	status, err := h.service.Toggle(c, req.PatientID, req.Date, req.Shift)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"status": status})
}

func (h *SessionHandler) RecordPredictedSessions(c *gin.Context) {
	var req struct {
		Pairs []repositories.PredictedSessionPair `json:"pairs"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if len(req.Pairs) == 0 {
		c.JSON(400, gin.H{"error": "pairs is required"})
		return
	}
	saved, failures, err := h.service.RecordPredicted(c, req.Pairs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"saved": saved, "failures": failures})
}
