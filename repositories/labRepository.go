package repositories

import (
	"NileDialysis/cache"
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	LabTypesCacheExpiry  = 24 * time.Hour
	labTypesListCacheKey = "lab_types_cache:list"
	criticalResultLimit  = 20
)

// LabResultWithType joins a result with its test type metadata and patient.
type LabResultWithType struct {
	models.LabResult
	TestName        string   `json:"test_name"`
	Unit            string   `json:"unit"`
	ResultType      string   `json:"result_type"`
	NormalRangeLow  *float64 `json:"normal_range_low"`
	NormalRangeHigh *float64 `json:"normal_range_high"`
	NormalValueText string   `json:"normal_value_text"`
	PatientName     string   `json:"patient_name"`
	MedicalID       string   `json:"medical_id"`
}

type LabRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewLabRepository(db *gorm.DB, cache *cache.Cache) *LabRepository {
	return &LabRepository{db: db, cache: cache}
}

// ListTestTypes returns the test catalog, cached.
func (r *LabRepository) ListTestTypes(ctx context.Context) ([]models.LabTestType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cached []models.LabTestType
	if found, err := r.cache.GetJSON(ctx, labTypesListCacheKey, &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		log.Printf("Failed to get lab test types from cache: %v", err)
	}

	var types []models.LabTestType
	if err := r.db.WithContext(ctx).Order("test_name ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list lab test types: %w", err)
	}

	if err := r.cache.SetJSON(ctx, labTypesListCacheKey, types, LabTypesCacheExpiry); err != nil {
		log.Printf("Failed to set lab test types in cache: %v", err)
	}
	return types, nil
}

func (r *LabRepository) CreateTestType(ctx context.Context, testType *models.LabTestType) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LabTestType{}).
		Where("test_name = ?", testType.TestName).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing test type: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("test name already exists: %w", ErrConflict)
	}
	if testType.ResultType == "" {
		testType.ResultType = "number"
	}
	if err := r.db.WithContext(ctx).Create(testType).Error; err != nil {
		return fmt.Errorf("failed to create test type: %w", err)
	}
	return r.invalidateTypeCache(ctx)
}

func (r *LabRepository) UpdateTestType(ctx context.Context, testType *models.LabTestType) error {
	var existing models.LabTestType
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", testType.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("test type %d: %w", testType.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load test type: %w", err)
	}
	if testType.TestName != existing.TestName {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.LabTestType{}).
			Where("test_name = ? AND id <> ?", testType.TestName, testType.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check for existing test type: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("test name already exists: %w", ErrConflict)
		}
	}
	if err := r.db.WithContext(ctx).Save(testType).Error; err != nil {
		return fmt.Errorf("failed to update test type: %w", err)
	}
	return r.invalidateTypeCache(ctx)
}

func (r *LabRepository) DeleteTestType(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_type_id = ?", id).Delete(&models.LabResult{}).Error; err != nil {
			return fmt.Errorf("failed to delete results of test type: %w", err)
		}
		result := tx.Delete(&models.LabTestType{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete test type: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("test type %d: %w", id, ErrNotFound)
		}
		return r.invalidateTypeCache(ctx)
	})
}

func (r *LabRepository) CreateResult(ctx context.Context, result *models.LabResult) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to create lab result: %w", err)
	}
	return nil
}

func (r *LabRepository) UpdateResult(ctx context.Context, result *models.LabResult) error {
	var existing models.LabResult
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", result.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lab result %d: %w", result.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load lab result: %w", err)
	}
	result.PatientID = existing.PatientID
	result.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(result).Error; err != nil {
		return fmt.Errorf("failed to update lab result: %w", err)
	}
	return nil
}

func (r *LabRepository) DeleteResult(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.LabResult{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete lab result: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("lab result %d: %w", id, ErrNotFound)
	}
	return nil
}

const labJoinSelect = `lab_results.*, lab_test_types.test_name, lab_test_types.unit,
lab_test_types.result_type, lab_test_types.normal_range_low, lab_test_types.normal_range_high,
lab_test_types.normal_value_text, patients.name AS patient_name, patients.medical_id`

// PatientResults lists one patient's results with type metadata, optionally
// restricted to a YYYY-MM month.
func (r *LabRepository) PatientResults(ctx context.Context, patientID uint, month string) ([]LabResultWithType, error) {
	query := r.db.WithContext(ctx).Model(&models.LabResult{}).
		Select(labJoinSelect).
		Joins("JOIN lab_test_types ON lab_test_types.id = lab_results.test_type_id").
		Joins("JOIN patients ON patients.id = lab_results.patient_id").
		Where("lab_results.patient_id = ?", patientID)
	if month != "" {
		start, end, err := utils.MonthBounds(month)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
		}
		query = query.Where("lab_results.result_date >= ? AND lab_results.result_date < ?", start, end)
	}

	var results []LabResultWithType
	if err := query.Order("lab_results.result_date DESC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list patient lab results: %w", err)
	}
	return results, nil
}

// Trend lists one patient's results for a single test type, oldest first.
func (r *LabRepository) Trend(ctx context.Context, patientID, testTypeID uint) ([]LabResultWithType, error) {
	var results []LabResultWithType
	err := r.db.WithContext(ctx).Model(&models.LabResult{}).
		Select(labJoinSelect).
		Joins("JOIN lab_test_types ON lab_test_types.id = lab_results.test_type_id").
		Joins("JOIN patients ON patients.id = lab_results.patient_id").
		Where("lab_results.patient_id = ? AND lab_results.test_type_id = ?", patientID, testTypeID).
		Order("lab_results.result_date ASC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lab trend: %w", err)
	}
	return results, nil
}

// CriticalResults returns the latest results outside their normal definition.
// The abnormality predicate runs in Go; the range semantics live in
// IsCriticalResult where tests can reach them.
func (r *LabRepository) CriticalResults(ctx context.Context) ([]LabResultWithType, error) {
	var recent []LabResultWithType
	err := r.db.WithContext(ctx).Model(&models.LabResult{}).
		Select(labJoinSelect).
		Joins("JOIN lab_test_types ON lab_test_types.id = lab_results.test_type_id").
		Joins("JOIN patients ON patients.id = lab_results.patient_id").
		Order("lab_results.result_date DESC, lab_results.id DESC").
		Limit(500).
		Find(&recent).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan lab results: %w", err)
	}

	critical := make([]LabResultWithType, 0, criticalResultLimit)
	for _, result := range recent {
		if IsCriticalResult(result.ResultType, result.ResultValue, result.NormalRangeLow, result.NormalRangeHigh, result.NormalValueText) {
			critical = append(critical, result)
			if len(critical) == criticalResultLimit {
				break
			}
		}
	}
	return critical, nil
}

// IsCriticalResult reports whether a result value falls outside its test's
// normal definition. Numeric tests compare against [low, high]; text tests
// compare case-insensitively after trimming.
func IsCriticalResult(resultType, value string, low, high *float64, normalText string) bool {
	if resultType == "number" {
		numeric, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return false
		}
		if low != nil && numeric < *low {
			return true
		}
		if high != nil && numeric > *high {
			return true
		}
		return false
	}

	if normalText == "" {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(normalText))
}

func (r *LabRepository) invalidateTypeCache(ctx context.Context) error {
	return r.cache.DeleteAll(ctx, "lab_types_cache*")
}
