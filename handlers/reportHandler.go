package handlers

import (
	"NileDialysis/middlewares"
	"NileDialysis/models"
	"NileDialysis/services"
	"NileDialysis/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) GenerateDailyReport(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		c.JSON(400, gin.H{"error": "invalid date"})
		return
	}
	report, err := h.service.Generate(c, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, report)
}

// ConfirmDailyReport freezes the submitted report payload for a date. The
// confirming user is taken from the access token, not the request body.
func (h *ReportHandler) ConfirmDailyReport(c *gin.Context) {
	var req struct {
		Date      string `json:"date"`
		FinalData string `json:"final_data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	userID, err := middlewares.ExtractUserIDFromContext(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}
	report, err := h.service.Confirm(c, req.Date, req.FinalData, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, report)
}

func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		c.JSON(400, gin.H{"error": "invalid date"})
		return
	}
	report, err := h.service.GetByDate(c, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, report)
}

func (h *ReportHandler) ListDailyReports(c *gin.Context) {
	reports, err := h.service.List(c, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, reports)
}

func (h *ReportHandler) GetMissedSessions(c *gin.Context) {
	month := c.Query("month")
	if _, _, err := utils.MonthBounds(month); err != nil {
		c.JSON(400, gin.H{"error": "invalid month"})
		return
	}
	rows, err := h.service.MissedSessions(c, month, c.Query("dialysis_unit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, rows)
}

func (h *ReportHandler) GetMachineUsage(c *gin.Context) {
	rows, err := h.service.SessionsPerMachine(c, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, rows)
}

func (h *ReportHandler) GetPatientUsage(c *gin.Context) {
	rows, err := h.service.SessionsPerPatient(c, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, rows)
}

func (h *ReportHandler) GetDashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c, c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, stats)
}

func (h *ReportHandler) GetDistributions(c *gin.Context) {
	distributions, err := h.service.PatientDistributions(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, distributions)
}

func (h *ReportHandler) GetMonthlyTrends(c *gin.Context) {
	points, err := h.service.MonthlyTrends(c, intQuery(c, "months", 6))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, points)
}

func (h *ReportHandler) ListWaterLogs(c *gin.Context) {
	logs, total, err := h.service.WaterLogs(c, intQuery(c, "page", 1), intQuery(c, "limit", 25), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"logs": logs, "total": total})
}

func (h *ReportHandler) CreateWaterLog(c *gin.Context) {
	var entry models.WaterTreatmentLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateWaterLogData(entry); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateWaterLog(c, &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, entry)
}
