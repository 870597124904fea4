package handlers

import (
	"NileDialysis/models"
	"NileDialysis/services"
	"NileDialysis/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var machineColumns = []string{
	"Serial Number", "Ward", "Internal Unit", "Status", "Model", "Last Maintenance", "Notes",
}

type MachineHandler struct {
	service *services.MachineService
}

func NewMachineHandler(service *services.MachineService) *MachineHandler {
	return &MachineHandler{service: service}
}

func (h *MachineHandler) ListMachines(c *gin.Context) {
	machines, err := h.service.List(c, c.Query("status"), c.Query("ward"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, machines)
}

func (h *MachineHandler) GetMachineByID(c *gin.Context) {
	id, ok := uintParam(c, "machine_id")
	if !ok {
		return
	}
	machine, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, machine)
}

func (h *MachineHandler) CreateMachine(c *gin.Context) {
	var machine models.Machine
	if err := c.ShouldBindJSON(&machine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateMachineData(machine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &machine); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, machine)
}

func (h *MachineHandler) UpdateMachine(c *gin.Context) {
	id, ok := uintParam(c, "machine_id")
	if !ok {
		return
	}
	var machine models.Machine
	if err := c.ShouldBindJSON(&machine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateMachineData(machine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	machine.ID = id
	if err := h.service.Update(c, &machine); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, machine)
}

func (h *MachineHandler) DeleteMachine(c *gin.Context) {
	id, ok := uintParam(c, "machine_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Machine deleted"})
}

func (h *MachineHandler) DownloadTemplate(c *gin.Context) {
	f, err := utils.NewWorkbook("Machines", machineColumns)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	respondWorkbook(c, f, "machines_template.xlsx")
}

func (h *MachineHandler) ImportMachines(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(400, gin.H{"error": "could not read workbook"})
		return
	}
	defer workbook.Close()

	rows, err := utils.SheetRows(workbook)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var machines []models.Machine
	for _, row := range rows {
		machine := models.Machine{
			SerialNumber: utils.CellAt(row, 0),
			Ward:         utils.CellAt(row, 1),
			InternalUnit: utils.CellAt(row, 2),
			Status:       utils.CellAt(row, 3),
			Model:        utils.CellAt(row, 4),
			Notes:        utils.CellAt(row, 6),
		}
		if cell := utils.CellAt(row, 5); cell != "" {
			if date, err := utils.ParseExcelDate(cell); err == nil {
				machine.LastMaintenance = date
			}
		}
		machines = append(machines, machine)
	}

	imported, failures, err := h.service.BulkCreate(c, machines)
	if err != nil {
		respondError(c, err)
		return
	}
	status := 201
	if len(failures) > 0 {
		status = 200
	}
	c.JSON(status, gin.H{"imported": imported, "failures": failures})
}

func (h *MachineHandler) ListPreventive(c *gin.Context) {
	records, err := h.service.ListPreventive(c, uint(intQuery(c, "machine_id", 0)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, records)
}

func (h *MachineHandler) CreatePreventive(c *gin.Context) {
	var record models.PreventiveMaintenance
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if record.MachineID == 0 || record.MaintenanceDate == "" {
		c.JSON(400, gin.H{"error": "machine_id and maintenance_date are required"})
		return
	}
	if err := h.service.CreatePreventive(c, &record); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, record)
}

func (h *MachineHandler) UpdatePreventive(c *gin.Context) {
	id, ok := uintParam(c, "record_id")
	if !ok {
		return
	}
	var record models.PreventiveMaintenance
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record.ID = id
	if err := h.service.UpdatePreventive(c, &record); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, record)
}

func (h *MachineHandler) DeletePreventive(c *gin.Context) {
	id, ok := uintParam(c, "record_id")
	if !ok {
		return
	}
	if err := h.service.DeletePreventive(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Maintenance record deleted"})
}

func (h *MachineHandler) ListCurative(c *gin.Context) {
	records, err := h.service.ListCurative(c, uint(intQuery(c, "machine_id", 0)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, records)
}

func (h *MachineHandler) CreateCurative(c *gin.Context) {
	var record models.CurativeMaintenance
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if record.MachineID == 0 || record.ReportDate == "" {
		c.JSON(400, gin.H{"error": "machine_id and report_date are required"})
		return
	}
	if err := h.service.CreateCurative(c, &record); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, record)
}

func (h *MachineHandler) UpdateCurative(c *gin.Context) {
	id, ok := uintParam(c, "record_id")
	if !ok {
		return
	}
	var record models.CurativeMaintenance
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record.ID = id
	if err := h.service.UpdateCurative(c, &record); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, record)
}

func (h *MachineHandler) DeleteCurative(c *gin.Context) {
	id, ok := uintParam(c, "record_id")
	if !ok {
		return
	}
	if err := h.service.DeleteCurative(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Maintenance record deleted"})
}

// GetMaintenanceReport aggregates maintenance activity per machine over a
// rolling period (monthly, quarterly, semi-annual or annual).
func (h *MachineHandler) GetMaintenanceReport(c *gin.Context) {
	rows, err := h.service.PeriodReport(c, c.DefaultQuery("period", "monthly"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, rows)
}
