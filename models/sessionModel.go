package models

import (
	"time"
)

// Session is one dialysis session for one patient on one date.
type Session struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID            uint      `gorm:"column:patient_id;not null;uniqueIndex:idx_session_patient_date" json:"patient_id"`
	SessionDate          string    `gorm:"column:session_date;not null;uniqueIndex:idx_session_patient_date;index" json:"session_date"`
	Shift                string    `gorm:"column:shift" json:"shift"`
	Notes                string    `gorm:"column:notes;type:text" json:"notes"`
	BloodTransfusionBags int       `gorm:"column:blood_transfusion_bags;default:0" json:"blood_transfusion_bags"`
	MachineID            *uint     `gorm:"column:machine_id" json:"machine_id"`
	MachineHoursOperated float64   `gorm:"column:machine_hours_operated;default:0" json:"machine_hours_operated"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient              Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

// SessionSchedule is a machine booking for one shift on one date.
type SessionSchedule struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID    uint      `gorm:"column:patient_id;not null;index" json:"patient_id"`
	MachineID    uint      `gorm:"column:machine_id;not null;uniqueIndex:idx_schedule_machine_slot" json:"machine_id"`
	ScheduleDate string    `gorm:"column:schedule_date;not null;uniqueIndex:idx_schedule_machine_slot;index" json:"schedule_date"`
	Shift        string    `gorm:"column:shift;not null;uniqueIndex:idx_schedule_machine_slot" json:"shift"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient      Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Machine      Machine   `gorm:"foreignKey:MachineID;references:ID" json:"-"`
}

func (SessionSchedule) TableName() string {
	return "session_schedules"
}
