package handlers

import (
	"NileDialysis/services"
	"NileDialysis/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type DataHandler struct {
	service *services.DataService
}

func NewDataHandler(service *services.DataService) *DataHandler {
	return &DataHandler{service: service}
}

func (h *DataHandler) CreateBackup(c *gin.Context) {
	fileName, err := h.service.CreateBackup(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, gin.H{"file_name": fileName})
}

func (h *DataHandler) ListBackups(c *gin.Context) {
	backups, err := h.service.ListBackups(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, backups)
}

// ExportSQL streams the full database dump as a downloadable SQL script.
func (h *DataHandler) ExportSQL(c *gin.Context) {
	dump, err := h.service.ExportSQL(c)
	if err != nil {
		respondError(c, err)
		return
	}
	fileName := "export_" + time.Now().Format("20060102_150405") + ".sql"
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(200, "application/sql", []byte(dump))
}

// ExportSessionsGrid writes an attendance workbook for a date range, one row
// per patient with a check mark under every day a session was recorded.
func (h *DataHandler) ExportSessionsGrid(c *gin.Context) {
	from, err := utils.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid from date"})
		return
	}
	to, err := utils.ParseDate(c.Query("to"))
	if err != nil || to.Before(from) {
		c.JSON(400, gin.H{"error": "invalid to date"})
		return
	}

	sessions, err := h.service.SessionsInRange(c, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(utils.DateLayout))
	}

	type patientRow struct {
		name      string
		medicalID string
		attended  map[string]bool
	}
	rowsByPatient := make(map[uint]*patientRow)
	var order []uint
	for _, s := range sessions {
		row, ok := rowsByPatient[s.PatientID]
		if !ok {
			row = &patientRow{name: s.PatientName, medicalID: s.MedicalID, attended: make(map[string]bool)}
			rowsByPatient[s.PatientID] = row
			order = append(order, s.PatientID)
		}
		row.attended[s.SessionDate] = true
	}

	headers := append([]string{"Name", "Medical ID"}, days...)
	f, err := utils.NewWorkbook("Sessions", headers)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	for i, patientID := range order {
		row := rowsByPatient[patientID]
		values := []interface{}{row.name, row.medicalID}
		for _, day := range days {
			if row.attended[day] {
				values = append(values, "✓")
			} else {
				values = append(values, "")
			}
		}
		if err := utils.WriteRow(f, "Sessions", i+2, values); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	}
	respondWorkbook(c, f, "sessions_"+c.Query("from")+"_"+c.Query("to")+".xlsx")
}
