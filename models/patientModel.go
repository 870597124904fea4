package models

import (
	"time"
)

// Patient model. Calendar fields are stored as YYYY-MM-DD strings; DialysisDays
// is a comma-separated list of weekday names.
type Patient struct {
	ID              uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name            string    `gorm:"column:name;not null;index" json:"name"`
	MedicalID       string    `gorm:"column:medical_id;not null;unique;index" json:"medical_id"`
	NationalID      string    `gorm:"column:national_id;index" json:"national_id"`
	Phone           string    `gorm:"column:phone" json:"phone"`
	Address         string    `gorm:"column:address" json:"address"`
	AddedDate       string    `gorm:"column:added_date;not null;index" json:"added_date"`
	ReferralDate    string    `gorm:"column:referral_date;not null" json:"referral_date"`
	ReferralExpiry  string    `gorm:"column:referral_expiry;index" json:"referral_expiry"`
	ReferralPlace   string    `gorm:"column:referral_place" json:"referral_place"`
	DialysisUnit    string    `gorm:"column:dialysis_unit;not null;index" json:"dialysis_unit"`
	BloodType       string    `gorm:"column:blood_type" json:"blood_type"`
	ChronicDiseases string    `gorm:"column:chronic_diseases" json:"chronic_diseases"`
	VirusStatus     string    `gorm:"column:virus_status;not null" json:"virus_status"`
	DateOfBirth     string    `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender          string    `gorm:"column:gender;check:gender IN ('Male', 'Female', '')" json:"gender"`
	PatientNotes    string    `gorm:"column:patient_notes;type:text" json:"patient_notes"`
	DialysisDays    string    `gorm:"column:dialysis_days" json:"dialysis_days"`
	DialysisShift   string    `gorm:"column:dialysis_shift" json:"dialysis_shift"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// ArchivedPatient mirrors Patient plus the archive metadata recorded when the
// row was moved out of the active registry.
type ArchivedPatient struct {
	ID              uint      `gorm:"primaryKey;column:id" json:"id"`
	Name            string    `gorm:"column:name;not null;index" json:"name"`
	MedicalID       string    `gorm:"column:medical_id;not null;index" json:"medical_id"`
	NationalID      string    `gorm:"column:national_id" json:"national_id"`
	Phone           string    `gorm:"column:phone" json:"phone"`
	Address         string    `gorm:"column:address" json:"address"`
	AddedDate       string    `gorm:"column:added_date" json:"added_date"`
	ReferralDate    string    `gorm:"column:referral_date" json:"referral_date"`
	ReferralExpiry  string    `gorm:"column:referral_expiry" json:"referral_expiry"`
	ReferralPlace   string    `gorm:"column:referral_place" json:"referral_place"`
	DialysisUnit    string    `gorm:"column:dialysis_unit" json:"dialysis_unit"`
	BloodType       string    `gorm:"column:blood_type" json:"blood_type"`
	ChronicDiseases string    `gorm:"column:chronic_diseases" json:"chronic_diseases"`
	VirusStatus     string    `gorm:"column:virus_status" json:"virus_status"`
	DateOfBirth     string    `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender          string    `gorm:"column:gender" json:"gender"`
	PatientNotes    string    `gorm:"column:patient_notes;type:text" json:"patient_notes"`
	DialysisDays    string    `gorm:"column:dialysis_days" json:"dialysis_days"`
	DialysisShift   string    `gorm:"column:dialysis_shift" json:"dialysis_shift"`
	ArchiveReason   string    `gorm:"column:archive_reason;not null" json:"archive_reason"`
	ArchiveDetails  string    `gorm:"column:archive_details" json:"archive_details"`
	DateOfDeath     string    `gorm:"column:date_of_death" json:"date_of_death"`
	ArchivedAt      time.Time `gorm:"column:archived_at;autoCreateTime" json:"archived_at"`
}

func (ArchivedPatient) TableName() string {
	return "archived_patients"
}
