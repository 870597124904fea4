package models

import (
	"time"

	"gorm.io/gorm"
)

// AppSettings is a singleton row (id 1) holding unit-wide billing prices.
type AppSettings struct {
	ID               uint    `gorm:"primaryKey;column:id" json:"id"`
	PricePerSession  float64 `gorm:"column:price_per_session;not null;default:200" json:"price_per_session"`
	PricePerBloodBag float64 `gorm:"column:price_per_blood_bag;not null;default:150" json:"price_per_blood_bag"`
}

func (AppSettings) TableName() string {
	return "app_settings"
}

// SeedAppSettings inserts the settings row if it does not exist yet.
func SeedAppSettings(db *gorm.DB) error {
	settings := AppSettings{ID: 1, PricePerSession: 200, PricePerBloodBag: 150}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.FirstOrCreate(&settings, AppSettings{ID: 1}).Error
	})
}

// DailyReport stores the confirmed snapshot for one calendar day. FinalData is
// the caller-supplied JSON payload and is never recomputed after confirmation.
type DailyReport struct {
	ID              uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ReportDate      string     `gorm:"column:report_date;not null;unique;index" json:"report_date"`
	ReportStatus    string     `gorm:"column:report_status;not null;default:draft" json:"report_status"`
	FinalData       string     `gorm:"column:final_data;type:text" json:"final_data"`
	ConfirmedByUser string     `gorm:"column:confirmed_by_user" json:"confirmed_by_user"`
	ConfirmedAt     *time.Time `gorm:"column:confirmed_at" json:"confirmed_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DailyReport) TableName() string {
	return "daily_reports"
}

// WaterTreatmentLog model
type WaterTreatmentLog struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	LogDate        string    `gorm:"column:log_date;not null;index" json:"log_date"`
	TechnicianName string    `gorm:"column:technician_name;not null" json:"technician_name"`
	HardnessLevel  *float64  `gorm:"column:hardness_level" json:"hardness_level"`
	ChlorineLevel  *float64  `gorm:"column:chlorine_level" json:"chlorine_level"`
	PHLevel        *float64  `gorm:"column:ph_level" json:"ph_level"`
	Conductivity   *float64  `gorm:"column:conductivity" json:"conductivity"`
	Notes          string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WaterTreatmentLog) TableName() string {
	return "water_treatment_logs"
}
