package handlers

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"NileDialysis/services"
	"NileDialysis/utils"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// patientColumns is the shared column order of the template, import and
// export workbooks.
var patientColumns = []string{
	"Name", "Medical ID", "National ID", "Phone", "Address",
	"Added Date", "Referral Date", "Referral Place", "Dialysis Unit",
	"Blood Type", "Chronic Diseases", "Virus Status", "Date of Birth",
	"Gender", "Patient Notes", "Dialysis Days", "Dialysis Shift",
}

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

type patientRequest struct {
	models.Patient
	ReferralDurationMonths int `json:"referral_duration_months"`
}

type archiveRequest struct {
	PatientIDs  []uint `json:"patient_ids"`
	Reason      string `json:"reason"`
	Details     string `json:"details"`
	DateOfDeath string `json:"date_of_death"`
}

func (h *PatientHandler) ListPatients(c *gin.Context) {
	if c.Query("all") == "true" {
		summaries, err := h.service.Summaries(c)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, summaries)
		return
	}

	filter := repositories.PatientListFilter{
		Page:          intQuery(c, "page", 1),
		Limit:         intQuery(c, "limit", 25),
		Search:        c.Query("search"),
		ReferralPlace: c.Query("referral_place"),
		DialysisDay:   c.Query("dialysis_day"),
		DialysisUnit:  c.Query("dialysis_unit"),
		Status:        c.Query("status"),
	}
	patients, total, err := h.service.List(c, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"patients": patients, "total": total})
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := uintParam(c, "patient_id")
	if !ok {
		return
	}
	patient, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, patientWithAge(patient, time.Now()))
}

// patientDetail is a patient row plus the age derived from the date of birth.
type patientDetail struct {
	*models.Patient
	Age *int `json:"age"`
}

func patientWithAge(patient *models.Patient, now time.Time) patientDetail {
	return patientDetail{Patient: patient, Age: utils.AgeFromDOB(patient.DateOfBirth, now)}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidatePatientData(req.Patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if req.Patient.ReferralExpiry == "" {
		expiry, err := utils.ComputeReferralExpiry(req.Patient.ReferralDate, req.ReferralDurationMonths)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		req.Patient.ReferralExpiry = expiry
	}
	if err := h.service.Create(c, &req.Patient); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, req.Patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := uintParam(c, "patient_id")
	if !ok {
		return
	}
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidatePatientData(req.Patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	req.Patient.ID = id
	if req.ReferralDurationMonths > 0 && req.Patient.ReferralDate != "" {
		expiry, err := utils.ComputeReferralExpiry(req.Patient.ReferralDate, req.ReferralDurationMonths)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		req.Patient.ReferralExpiry = expiry
	}
	if err := h.service.Update(c, &req.Patient); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, req.Patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := uintParam(c, "patient_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Patient deleted"})
}

func (h *PatientHandler) ArchivePatients(c *gin.Context) {
	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if len(req.PatientIDs) == 0 || req.Reason == "" {
		c.JSON(400, gin.H{"error": "patient_ids and reason are required"})
		return
	}
	archived, failures, err := h.service.Archive(c, req.PatientIDs, req.Reason, req.Details, req.DateOfDeath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"archived": archived, "failures": failures})
}

func (h *PatientHandler) UnarchivePatients(c *gin.Context) {
	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if len(req.PatientIDs) == 0 {
		c.JSON(400, gin.H{"error": "patient_ids is required"})
		return
	}
	restored, failures, err := h.service.Unarchive(c, req.PatientIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"restored": restored, "failures": failures})
}

func (h *PatientHandler) ListArchivedPatients(c *gin.Context) {
	patients, total, err := h.service.ArchivedList(c, intQuery(c, "page", 1), intQuery(c, "limit", 25), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"patients": patients, "total": total})
}

func (h *PatientHandler) DownloadTemplate(c *gin.Context) {
	f, err := utils.NewWorkbook("Patients", patientColumns)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	respondWorkbook(c, f, "patients_template.xlsx")
}

func (h *PatientHandler) ImportPatients(c *gin.Context) {
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

	imported := 0
	var failures []gin.H
	for i, row := range rows {
		patient, err := patientFromRow(row)
		if err == nil {
			err = h.service.Create(c, patient)
		}
		if err != nil {
			// Row 1 is the header, so data rows start at 2.
			failures = append(failures, gin.H{"row": i + 2, "error": err.Error()})
			continue
		}
		imported++
	}
	status := 201
	if len(failures) > 0 {
		status = 200
	}
	c.JSON(status, gin.H{"imported": imported, "failures": failures})
}

func patientFromRow(row []string) (*models.Patient, error) {
	patient := &models.Patient{
		Name:            utils.CellAt(row, 0),
		MedicalID:       utils.CellAt(row, 1),
		NationalID:      utils.CellAt(row, 2),
		Phone:           utils.CellAt(row, 3),
		Address:         utils.CellAt(row, 4),
		ReferralPlace:   utils.CellAt(row, 7),
		DialysisUnit:    utils.CellAt(row, 8),
		BloodType:       utils.CellAt(row, 9),
		ChronicDiseases: utils.CellAt(row, 10),
		VirusStatus:     utils.CellAt(row, 11),
		Gender:          utils.CellAt(row, 13),
		PatientNotes:    utils.CellAt(row, 14),
		DialysisDays:    utils.CellAt(row, 15),
		DialysisShift:   utils.CellAt(row, 16),
	}

	var err error
	if patient.AddedDate, err = utils.ParseExcelDate(utils.CellAt(row, 5)); err != nil {
		return nil, fmt.Errorf("added date: %w", err)
	}
	if patient.ReferralDate, err = utils.ParseExcelDate(utils.CellAt(row, 6)); err != nil {
		return nil, fmt.Errorf("referral date: %w", err)
	}
	if dob := utils.CellAt(row, 12); dob != "" {
		if patient.DateOfBirth, err = utils.ParseExcelDate(dob); err != nil {
			return nil, fmt.Errorf("date of birth: %w", err)
		}
	}
	if err := utils.ValidatePatientData(*patient); err != nil {
		return nil, err
	}
	if patient.ReferralExpiry, err = utils.ComputeReferralExpiry(patient.ReferralDate, 0); err != nil {
		return nil, err
	}
	return patient, nil
}

func (h *PatientHandler) ExportPatients(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		from = "0001-01-01"
	}
	to := c.Query("to")
	if to == "" {
		to = "9999-12-31"
	}
	patients, err := h.service.GetByAddedDateRange(c, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	headers := append(append([]string{}, patientColumns...), "Referral Expiry")
	f, err := utils.NewWorkbook("Patients", headers)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	for i, p := range patients {
		values := []interface{}{
			p.Name, p.MedicalID, p.NationalID, p.Phone, p.Address,
			p.AddedDate, p.ReferralDate, p.ReferralPlace, p.DialysisUnit,
			p.BloodType, p.ChronicDiseases, p.VirusStatus, p.DateOfBirth,
			p.Gender, p.PatientNotes, p.DialysisDays, p.DialysisShift,
			p.ReferralExpiry,
		}
		if err := utils.WriteRow(f, "Patients", i+2, values); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	}
	respondWorkbook(c, f, "patients_"+time.Now().Format("20060102")+".xlsx")
}
