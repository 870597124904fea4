package utils

import (
	"NileDialysis/models"
	"errors"
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one letter and one digit")
)

var dateRule = validation.Match(regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)).Error("must be a YYYY-MM-DD date")

// ValidatePatientData validates patient data using ozzo-validation.
func ValidatePatientData(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(2, 255)),
		validation.Field(&patient.MedicalID, validation.Required, validation.Length(1, 50)),
		validation.Field(&patient.AddedDate, validation.Required, dateRule),
		validation.Field(&patient.ReferralDate, validation.Required, dateRule),
		validation.Field(&patient.DialysisUnit, validation.Required),
		validation.Field(&patient.VirusStatus, validation.Required),
		validation.Field(&patient.DateOfBirth, validation.When(patient.DateOfBirth != "", dateRule)),
		validation.Field(&patient.Gender, validation.In("Male", "Female", "")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateStaffData validates staff data using ozzo-validation.
func ValidateStaffData(staff models.Staff) error {
	err := validation.ValidateStruct(&staff,
		validation.Field(&staff.Name, validation.Required, validation.Length(2, 255)),
		validation.Field(&staff.JobTitle, validation.Required),
		validation.Field(&staff.Grade, validation.Required),
		validation.Field(&staff.DefaultShift, validation.In("", "M", "A", "L", "N", "NM", "AN", "OFF")),
		validation.Field(&staff.HireDate, validation.When(staff.HireDate != "", dateRule)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateSessionData validates session data using ozzo-validation.
func ValidateSessionData(session models.Session) error {
	err := validation.ValidateStruct(&session,
		validation.Field(&session.PatientID, validation.Required),
		validation.Field(&session.SessionDate, validation.Required, dateRule),
		validation.Field(&session.BloodTransfusionBags, validation.Min(0)),
		validation.Field(&session.MachineHoursOperated, validation.Min(0.0)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateMachineData validates machine data using ozzo-validation.
func ValidateMachineData(machine models.Machine) error {
	err := validation.ValidateStruct(&machine,
		validation.Field(&machine.SerialNumber, validation.Required),
		validation.Field(&machine.Ward, validation.Required),
		validation.Field(&machine.InternalUnit, validation.Required),
		validation.Field(&machine.Status, validation.Required),
		validation.Field(&machine.LastMaintenance, validation.When(machine.LastMaintenance != "", dateRule)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateLabTestTypeData validates a lab test type using ozzo-validation.
func ValidateLabTestTypeData(testType models.LabTestType) error {
	err := validation.ValidateStruct(&testType,
		validation.Field(&testType.TestName, validation.Required, validation.Length(1, 255)),
		validation.Field(&testType.ResultType, validation.Required, validation.In("number", "text")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateLabResultData validates a lab result using ozzo-validation.
func ValidateLabResultData(result models.LabResult) error {
	err := validation.ValidateStruct(&result,
		validation.Field(&result.PatientID, validation.Required),
		validation.Field(&result.TestTypeID, validation.Required),
		validation.Field(&result.ResultValue, validation.Required),
		validation.Field(&result.ResultDate, validation.Required, dateRule),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateSupplyData validates a medical supply using ozzo-validation.
func ValidateSupplyData(supply models.MedicalSupply) error {
	err := validation.ValidateStruct(&supply,
		validation.Field(&supply.ItemName, validation.Required, validation.Length(1, 255)),
		validation.Field(&supply.Quantity, validation.Min(0)),
		validation.Field(&supply.MinStockLevel, validation.Min(0)),
		validation.Field(&supply.ExpiryDate, validation.When(supply.ExpiryDate != "", dateRule)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateSupplierData validates a supplier using ozzo-validation.
func ValidateSupplierData(supplier models.Supplier) error {
	err := validation.ValidateStruct(&supplier,
		validation.Field(&supplier.Name, validation.Required, validation.Length(1, 255)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateWaterLogData validates a water treatment log entry.
func ValidateWaterLogData(entry models.WaterTreatmentLog) error {
	err := validation.ValidateStruct(&entry,
		validation.Field(&entry.LogDate, validation.Required, dateRule),
		validation.Field(&entry.TechnicianName, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateUserData validates user data using ozzo-validation. The password is
// validated before hashing, so it arrives through the separate argument.
func ValidateUserData(user models.User, password string) error {
	err := validation.Errors{
		"username": validation.Validate(user.Username, validation.Required, validation.Length(3, 100)),
		"role":     validation.Validate(user.Role, validation.Required, validation.In("admin", "doctor", "nurse", "clerk")),
		"password": validation.Validate(password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		letterRegex = regexp.MustCompile(`[A-Za-z]`)
		digitRegex  = regexp.MustCompile(`\d`)
	)
	if !letterRegex.MatchString(password) || !digitRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
