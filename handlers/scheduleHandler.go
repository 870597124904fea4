package handlers

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"NileDialysis/services"
	"NileDialysis/utils"
	"fmt"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	service *services.ScheduleService
}

func NewScheduleHandler(service *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) CreateBooking(c *gin.Context) {
	var booking models.SessionSchedule
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if booking.PatientID == 0 || booking.MachineID == 0 || booking.Shift == "" {
		c.JSON(400, gin.H{"error": "patient_id, machine_id and shift are required"})
		return
	}
	if _, err := utils.ParseDate(booking.ScheduleDate); err != nil {
		c.JSON(400, gin.H{"error": "invalid schedule_date"})
		return
	}
	if err := h.service.CreateBooking(c, &booking); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, booking)
}

func (h *ScheduleHandler) DeleteBooking(c *gin.Context) {
	id, ok := uintParam(c, "booking_id")
	if !ok {
		return
	}
	if err := h.service.DeleteBooking(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Booking deleted"})
}

func (h *ScheduleHandler) GetDailySchedule(c *gin.Context) {
	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		c.JSON(400, gin.H{"error": "invalid date"})
		return
	}
	schedule, err := h.service.Daily(c, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, schedule)
}

func (h *ScheduleHandler) GetWeeklySchedule(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if _, err := utils.ParseDate(from); err != nil {
		c.JSON(400, gin.H{"error": "invalid from date"})
		return
	}
	if _, err := utils.ParseDate(to); err != nil {
		c.JSON(400, gin.H{"error": "invalid to date"})
		return
	}
	entries, machines, unscheduled, err := h.service.Weekly(c, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"bookings": entries, "machines": machines, "unscheduled_patients": unscheduled})
}

// GetPredictedRoster projects next month's attendance from each patient's
// dialysis day pattern alongside the sessions already recorded.
func (h *ScheduleHandler) GetPredictedRoster(c *gin.Context) {
	month := c.Query("month")
	if _, _, err := utils.MonthBounds(month); err != nil {
		c.JSON(400, gin.H{"error": "invalid month"})
		return
	}
	rows, err := h.service.PredictedRoster(c, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, rows)
}

func (h *ScheduleHandler) GetRosterGrid(c *gin.Context) {
	month := c.Query("month")
	if _, _, err := utils.MonthBounds(month); err != nil {
		c.JSON(400, gin.H{"error": "invalid month"})
		return
	}
	entries, err := h.service.RosterMonthGrid(c, month, c.Query("job_title"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, entries)
}

func (h *ScheduleHandler) SaveRoster(c *gin.Context) {
	var req struct {
		Items []repositories.RosterSaveItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(400, gin.H{"error": "items is required"})
		return
	}
	saved, err := h.service.RosterBulkSave(c, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"saved": saved})
}

// ExportRoster writes the month's shift grid as a workbook, one row per staff
// member with a day column for every calendar day plus the hour total.
func (h *ScheduleHandler) ExportRoster(c *gin.Context) {
	month := c.Query("month")
	days, err := utils.DaysInMonth(month)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid month"})
		return
	}
	entries, err := h.service.RosterMonthGrid(c, month, c.Query("job_title"))
	if err != nil {
		respondError(c, err)
		return
	}

	headers := []string{"Name", "Job Title", "Grade"}
	for day := 1; day <= days; day++ {
		headers = append(headers, fmt.Sprintf("%d", day))
	}
	headers = append(headers, "Total Hours")

	f, err := utils.NewWorkbook("Roster", headers)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	for i, entry := range entries {
		values := []interface{}{entry.Name, entry.JobTitle, entry.Grade}
		for day := 1; day <= days; day++ {
			date := fmt.Sprintf("%s-%02d", month, day)
			values = append(values, entry.Shifts[date])
		}
		values = append(values, repositories.TotalHours(entry.Shifts))
		if err := utils.WriteRow(f, "Roster", i+2, values); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	}
	respondWorkbook(c, f, "roster_"+month+".xlsx")
}
