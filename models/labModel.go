package models

import (
	"time"
)

// LabTestType defines one test in the catalog. Numeric tests carry a normal
// range, text tests carry the expected normal value.
type LabTestType struct {
	ID              uint     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	TestName        string   `gorm:"column:test_name;not null;unique;index" json:"test_name"`
	Unit            string   `gorm:"column:unit" json:"unit"`
	ResultType      string   `gorm:"column:result_type;not null;default:number;check:result_type IN ('number', 'text')" json:"result_type"`
	NormalRangeLow  *float64 `gorm:"column:normal_range_low" json:"normal_range_low"`
	NormalRangeHigh *float64 `gorm:"column:normal_range_high" json:"normal_range_high"`
	NormalValueText string   `gorm:"column:normal_value_text" json:"normal_value_text"`
}

func (LabTestType) TableName() string {
	return "lab_test_types"
}

// LabResult model
type LabResult struct {
	ID          uint        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID   uint        `gorm:"column:patient_id;not null;index" json:"patient_id"`
	TestTypeID  uint        `gorm:"column:test_type_id;not null;index" json:"test_type_id"`
	ResultValue string      `gorm:"column:result_value;not null" json:"result_value"`
	ResultDate  string      `gorm:"column:result_date;not null;index" json:"result_date"`
	Notes       string      `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient     Patient     `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	TestType    LabTestType `gorm:"foreignKey:TestTypeID;references:ID" json:"-"`
}

func (LabResult) TableName() string {
	return "lab_results"
}
