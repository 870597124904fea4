package controllers

import (
	"NileDialysis/handlers"
	"NileDialysis/middlewares"
	"NileDialysis/utils"

	"github.com/gin-gonic/gin"
)

// APIHandlers bundles the handlers registered by SetupAPIRoutes.
type APIHandlers struct {
	Patient   *handlers.PatientHandler
	Staff     *handlers.StaffHandler
	Session   *handlers.SessionHandler
	Machine   *handlers.MachineHandler
	Lab       *handlers.LabHandler
	Schedule  *handlers.ScheduleHandler
	Inventory *handlers.InventoryHandler
	Billing   *handlers.BillingHandler
	Report    *handlers.ReportHandler
	Data      *handlers.DataHandler
}

// SetupAPIRoutes registers every domain route behind token authentication.
// Administrative routes additionally require the admin role.
func SetupAPIRoutes(router *gin.Engine, h *APIHandlers) {
	api := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		api.GET("/patients", h.Patient.ListPatients)
		api.POST("/patients", h.Patient.CreatePatient)
		api.GET("/patients/template", h.Patient.DownloadTemplate)
		api.GET("/patients/export", h.Patient.ExportPatients)
		api.POST("/patients/import", h.Patient.ImportPatients)
		api.POST("/patients/archive", h.Patient.ArchivePatients)
		api.POST("/patients/unarchive", h.Patient.UnarchivePatients)
		api.GET("/patients/archived", h.Patient.ListArchivedPatients)
		api.GET("/patients/:patient_id", h.Patient.GetPatientByID)
		api.PUT("/patients/:patient_id", h.Patient.UpdatePatient)
		api.GET("/patients/:patient_id/sessions", h.Session.GetPatientMonth)
		api.GET("/patients/:patient_id/lab-results", h.Lab.GetPatientResults)
		api.GET("/patients/:patient_id/lab-results/:type_id/trend", h.Lab.GetTrend)
		api.GET("/patients/:patient_id/invoice", h.Billing.GetPatientInvoice)

		api.GET("/staff", h.Staff.ListStaff)
		api.POST("/staff", h.Staff.CreateStaff)
		api.GET("/staff/job-titles", h.Staff.GetJobTitles)
		api.POST("/staff/shift-changes", h.Staff.UpsertShiftChange)
		api.GET("/staff/:staff_id", h.Staff.GetStaffByID)
		api.PUT("/staff/:staff_id", h.Staff.UpdateStaff)
		api.DELETE("/staff/:staff_id", h.Staff.DeleteStaff)

		api.GET("/roster", h.Schedule.GetRosterGrid)
		api.POST("/roster", h.Schedule.SaveRoster)
		api.GET("/roster/export", h.Schedule.ExportRoster)

		api.GET("/sessions", h.Session.ListSessions)
		api.POST("/sessions", h.Session.CreateSession)
		api.GET("/sessions/date/:date", h.Session.GetSessionsByDate)
		api.PUT("/sessions/by-date", h.Session.UpdateSessionsByDate)
		api.POST("/sessions/bulk", h.Session.BulkSaveSessions)
		api.POST("/sessions/toggle", h.Session.ToggleSession)
		api.POST("/sessions/predicted", h.Session.RecordPredictedSessions)
		api.PUT("/sessions/:session_id", h.Session.UpdateSession)
		api.PATCH("/sessions/:session_id/transfusion", h.Session.UpdateTransfusion)
		api.DELETE("/sessions/:session_id", h.Session.DeleteSession)

		api.GET("/machines", h.Machine.ListMachines)
		api.POST("/machines", h.Machine.CreateMachine)
		api.GET("/machines/template", h.Machine.DownloadTemplate)
		api.POST("/machines/import", h.Machine.ImportMachines)
		api.GET("/machines/:machine_id", h.Machine.GetMachineByID)
		api.PUT("/machines/:machine_id", h.Machine.UpdateMachine)
		api.DELETE("/machines/:machine_id", h.Machine.DeleteMachine)

		api.GET("/maintenance/preventive", h.Machine.ListPreventive)
		api.POST("/maintenance/preventive", h.Machine.CreatePreventive)
		api.PUT("/maintenance/preventive/:record_id", h.Machine.UpdatePreventive)
		api.DELETE("/maintenance/preventive/:record_id", h.Machine.DeletePreventive)
		api.GET("/maintenance/curative", h.Machine.ListCurative)
		api.POST("/maintenance/curative", h.Machine.CreateCurative)
		api.PUT("/maintenance/curative/:record_id", h.Machine.UpdateCurative)
		api.DELETE("/maintenance/curative/:record_id", h.Machine.DeleteCurative)
		api.GET("/maintenance/report", h.Machine.GetMaintenanceReport)

		api.GET("/lab/test-types", h.Lab.ListTestTypes)
		api.POST("/lab/test-types", h.Lab.CreateTestType)
		api.PUT("/lab/test-types/:type_id", h.Lab.UpdateTestType)
		api.DELETE("/lab/test-types/:type_id", h.Lab.DeleteTestType)
		api.POST("/lab/results", h.Lab.CreateResult)
		api.PUT("/lab/results/:result_id", h.Lab.UpdateResult)
		api.DELETE("/lab/results/:result_id", h.Lab.DeleteResult)
		api.GET("/lab/critical", h.Lab.GetCriticalResults)

		api.POST("/schedule/bookings", h.Schedule.CreateBooking)
		api.DELETE("/schedule/bookings/:booking_id", h.Schedule.DeleteBooking)
		api.GET("/schedule/daily/:date", h.Schedule.GetDailySchedule)
		api.GET("/schedule/weekly", h.Schedule.GetWeeklySchedule)
		api.GET("/schedule/predicted", h.Schedule.GetPredictedRoster)

		api.GET("/supplies", h.Inventory.ListSupplies)
		api.POST("/supplies", h.Inventory.CreateSupply)
		api.GET("/supplies/:supply_id", h.Inventory.GetSupplyByID)
		api.PUT("/supplies/:supply_id", h.Inventory.UpdateSupply)
		api.DELETE("/supplies/:supply_id", h.Inventory.DeleteSupply)
		api.POST("/supplies/:supply_id/adjust", h.Inventory.AdjustSupply)
		api.POST("/supplies/:supply_id/usage", h.Inventory.LogUsage)
		api.GET("/supplies/:supply_id/logs", h.Inventory.GetSupplyLogs)

		api.GET("/suppliers", h.Inventory.ListSuppliers)
		api.POST("/suppliers", h.Inventory.CreateSupplier)
		api.PUT("/suppliers/:supplier_id", h.Inventory.UpdateSupplier)
		api.DELETE("/suppliers/:supplier_id", h.Inventory.DeleteSupplier)

		api.GET("/purchase-orders", h.Inventory.ListOrders)
		api.POST("/purchase-orders", h.Inventory.CreateOrder)
		api.GET("/purchase-orders/:order_id", h.Inventory.GetOrderByID)
		api.POST("/purchase-orders/:order_id/complete", h.Inventory.CompleteOrder)
		api.DELETE("/purchase-orders/:order_id", h.Inventory.DeleteOrder)

		api.GET("/billing/settings", h.Billing.GetSettings)
		api.GET("/billing/invoices", h.Billing.GetMonthInvoices)
		api.GET("/billing/invoices/export", h.Billing.ExportMonthInvoices)

		api.GET("/reports/daily", h.Report.ListDailyReports)
		api.GET("/reports/daily/:date", h.Report.GetDailyReport)
		api.GET("/reports/daily/:date/generate", h.Report.GenerateDailyReport)
		api.POST("/reports/daily/confirm", h.Report.ConfirmDailyReport)
		api.GET("/reports/missed-sessions", h.Report.GetMissedSessions)
		api.GET("/reports/machine-usage", h.Report.GetMachineUsage)
		api.GET("/reports/patient-usage", h.Report.GetPatientUsage)
		api.GET("/reports/dashboard", h.Report.GetDashboard)
		api.GET("/reports/distributions", h.Report.GetDistributions)
		api.GET("/reports/trends", h.Report.GetMonthlyTrends)

		api.GET("/water-logs", h.Report.ListWaterLogs)
		api.POST("/water-logs", h.Report.CreateWaterLog)

		api.GET("/export/sessions-grid", h.Data.ExportSessionsGrid)
	}

	admin := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(utils.RoleAdmin),
	)
	{
		admin.DELETE("/patients/:patient_id", h.Patient.DeletePatient)
		admin.PUT("/billing/settings", h.Billing.UpdateSettings)
		admin.POST("/backups", h.Data.CreateBackup)
		admin.GET("/backups", h.Data.ListBackups)
		admin.GET("/export/sql", h.Data.ExportSQL)
	}
}
