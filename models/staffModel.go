package models

import (
	"time"
)

// Staff model
type Staff struct {
	ID               uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name             string    `gorm:"column:name;not null;index" json:"name"`
	NationalID       string    `gorm:"column:national_id;index" json:"national_id"`
	JobTitle         string    `gorm:"column:job_title;not null;index" json:"job_title"`
	Grade            string    `gorm:"column:grade;not null" json:"grade"`
	DefaultShift     string    `gorm:"column:default_shift" json:"default_shift"`
	Phone            string    `gorm:"column:phone" json:"phone"`
	HireDate         string    `gorm:"column:hire_date" json:"hire_date"`
	EmploymentStatus string    `gorm:"column:employment_status;default:Active;index" json:"employment_status"`
	Notes            string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Staff) TableName() string {
	return "staff"
}

// ShiftChange records a roster override for one staff member on one date.
// Shift codes: M, A, L, N, NM, AN, OFF.
type ShiftChange struct {
	ID                uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	StaffID           uint      `gorm:"column:staff_id;not null;uniqueIndex:idx_staff_change_date" json:"staff_id"`
	ChangeDate        string    `gorm:"column:change_date;not null;uniqueIndex:idx_staff_change_date" json:"change_date"`
	NewShift          string    `gorm:"column:new_shift;not null" json:"new_shift"`
	SubstituteStaffID *uint     `gorm:"column:substitute_staff_id" json:"substitute_staff_id"`
	Reason            string    `gorm:"column:reason" json:"reason"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Staff             Staff     `gorm:"foreignKey:StaffID;references:ID" json:"-"`
}

func (ShiftChange) TableName() string {
	return "shift_changes"
}
