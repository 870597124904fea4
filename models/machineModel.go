package models

import (
	"time"
)

// Machine model
type Machine struct {
	ID              uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SerialNumber    string    `gorm:"column:serial_number;not null;unique;index" json:"serial_number"`
	Ward            string    `gorm:"column:ward;not null;index" json:"ward"`
	InternalUnit    string    `gorm:"column:internal_unit;not null" json:"internal_unit"`
	Status          string    `gorm:"column:status;not null;default:Working;index" json:"status"`
	Model           string    `gorm:"column:model" json:"model"`
	LastMaintenance string    `gorm:"column:last_maintenance" json:"last_maintenance"`
	Notes           string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Machine) TableName() string {
	return "machines"
}

// PreventiveMaintenance is a scheduled service visit for one machine.
type PreventiveMaintenance struct {
	ID              uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MachineID       uint      `gorm:"column:machine_id;not null;index" json:"machine_id"`
	MaintenanceDate string    `gorm:"column:maintenance_date;not null;index" json:"maintenance_date"`
	TechnicianName  string    `gorm:"column:technician_name" json:"technician_name"`
	VisitorName     string    `gorm:"column:visitor_name" json:"visitor_name"`
	Section         string    `gorm:"column:section" json:"section"`
	Notes           string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Machine         Machine   `gorm:"foreignKey:MachineID;references:ID" json:"-"`
}

func (PreventiveMaintenance) TableName() string {
	return "preventive_maintenance"
}

// CurativeMaintenance is a breakdown repair record for one machine.
type CurativeMaintenance struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MachineID          uint      `gorm:"column:machine_id;not null;index" json:"machine_id"`
	ReportDate         string    `gorm:"column:report_date;not null;index" json:"report_date"`
	RequestNumber      string    `gorm:"column:request_number" json:"request_number"`
	RepairDate         string    `gorm:"column:repair_date" json:"repair_date"`
	EngineerName       string    `gorm:"column:engineer_name" json:"engineer_name"`
	Cost               float64   `gorm:"column:cost;default:0" json:"cost"`
	PartsDetails       string    `gorm:"column:parts_details;type:text" json:"parts_details"`
	FailureDescription string    `gorm:"column:failure_description;type:text" json:"failure_description"`
	RepairNotes        string    `gorm:"column:repair_notes;type:text" json:"repair_notes"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Machine            Machine   `gorm:"foreignKey:MachineID;references:ID" json:"-"`
}

func (CurativeMaintenance) TableName() string {
	return "curative_maintenance"
}
