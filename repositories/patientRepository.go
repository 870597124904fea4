package repositories

import (
	"NileDialysis/cache"
	"NileDialysis/database"
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 24 * time.Hour

	patientSummaryCacheKey = "patients_cache:summary"
	expiringWindowDays     = 30
)

// PatientListFilter carries the query parameters of the patient list endpoint.
type PatientListFilter struct {
	Page          int
	Limit         int
	Search        string
	ReferralPlace string
	DialysisDay   string
	DialysisUnit  string
	Status        string
}

// PatientSummary is the reduced projection returned when all=true.
type PatientSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	MedicalID      string `json:"medical_id"`
	ReferralExpiry string `json:"referral_expiry"`
	DateOfBirth    string `json:"date_of_birth"`
	Age            *int   `json:"age"`
}

// ArchiveRequestItem reports the outcome of archiving one patient ID.
type ArchiveFailure struct {
	PatientID uint   `json:"patient_id"`
	Error     string `json:"error"`
}

type PatientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) *PatientRepository {
	return &PatientRepository{db: db, cache: cache}
}

// List returns a page of patients plus the unpaged total.
func (r *PatientRepository) List(ctx context.Context, filter PatientListFilter) ([]models.Patient, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Patient{})
	query = applyPatientFilters(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 25
	}

	var patients []models.Patient
	err := query.Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, total, nil
}

func applyPatientFilters(query *gorm.DB, filter PatientListFilter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR medical_id ILIKE ? OR national_id ILIKE ?", like, like, like)
	}
	if filter.ReferralPlace != "" {
		query = query.Where("referral_place = ?", filter.ReferralPlace)
	}
	if filter.DialysisDay != "" {
		query = query.Where("dialysis_days LIKE ?", "%"+filter.DialysisDay+"%")
	}
	if filter.DialysisUnit != "" {
		query = query.Where("dialysis_unit = ?", filter.DialysisUnit)
	}

	today := time.Now().Format(utils.DateLayout)
	windowEnd := time.Now().AddDate(0, 0, expiringWindowDays).Format(utils.DateLayout)
	switch filter.Status {
	case "expired":
		query = query.Where("referral_expiry < ?", today)
	case "expiring":
		query = query.Where("referral_expiry >= ? AND referral_expiry <= ?", today, windowEnd)
	case "active":
		query = query.Where("referral_expiry > ?", windowEnd)
	}
	return query
}

// Summaries returns the reduced all=true projection for every patient.
func (r *PatientRepository) Summaries(ctx context.Context) ([]PatientSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var summaries []PatientSummary
	if found, err := r.cache.GetJSON(ctx, patientSummaryCacheKey, &summaries); err == nil && found {
		return summaries, nil
	} else if err != nil {
		log.Printf("Failed to get patient summaries from cache: %v", err)
	}

	err := r.db.WithContext(ctx).Model(&models.Patient{}).
		Select("id, name, medical_id, referral_expiry, date_of_birth").
		Order("name ASC").
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patient summaries: %w", err)
	}

	now := time.Now()
	for i := range summaries {
		summaries[i].Age = utils.AgeFromDOB(summaries[i].DateOfBirth, now)
	}

	if err := r.cache.SetJSON(ctx, patientSummaryCacheKey, summaries, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient summaries in cache: %v", err)
	}
	return summaries, nil
}

// GetByAddedDateRange lists patients whose added_date falls inside [from, to].
func (r *PatientRepository) GetByAddedDateRange(ctx context.Context, from, to string) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Where("added_date >= ? AND added_date <= ?", from, to).
		Order("added_date ASC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patients by added date: %w", err)
	}
	return patients, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	var cached models.Patient
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	} else if err != nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, patient, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}
	return &patient, nil
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if err := r.checkDuplicate(ctx, patient, 0); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		return r.invalidatePatientCache(ctx, patient.ID)
	})
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	var existing models.Patient
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", patient.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("patient %d: %w", patient.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to load patient: %w", err)
	}

	// Identifier fields are immutable after registration.
	patient.MedicalID = existing.MedicalID
	patient.NationalID = existing.NationalID
	patient.CreatedAt = existing.CreatedAt

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(patient).Error; err != nil {
			return fmt.Errorf("failed to update patient: %w", err)
		}
		return r.invalidatePatientCache(ctx, patient.ID)
	})
}

func (r *PatientRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Patient{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("patient %d: %w", id, ErrNotFound)
	}
	return r.invalidatePatientCache(ctx, id)
}

// Archive moves the given patients into archived_patients inside one
// transaction. Missing IDs are reported, not fatal.
func (r *PatientRepository) Archive(ctx context.Context, ids []uint, reason, details, dateOfDeath string) (int, []ArchiveFailure, error) {
	lockKey := "patient_archive_lock"
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, 30*time.Second)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to acquire archive lock: %w", err)
	}
	if !locked {
		return 0, nil, fmt.Errorf("archive already in progress: %w", ErrConflict)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release archive lock: %v", err)
		}
	}()

	var archived int
	var failures []ArchiveFailure
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var patient models.Patient
			if err := tx.First(&patient, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					failures = append(failures, ArchiveFailure{PatientID: id, Error: "patient not found"})
					continue
				}
				return err
			}

			row := archivedFromPatient(patient, reason, details, dateOfDeath)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to archive patient %d: %w", id, err)
			}
			if err := tx.Delete(&models.Patient{}, "id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to remove patient %d: %w", id, err)
			}
			archived++
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	if err := r.invalidatePatientCache(ctx, 0); err != nil {
		log.Printf("Failed to invalidate patient cache after archive: %v", err)
	}
	return archived, failures, nil
}

// Unarchive moves archived patients back into the active registry, clearing
// the archive fields. A medical ID that has been reused blocks that row.
func (r *PatientRepository) Unarchive(ctx context.Context, ids []uint) (int, []ArchiveFailure, error) {
	var restored int
	var failures []ArchiveFailure
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var row models.ArchivedPatient
			if err := tx.First(&row, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					failures = append(failures, ArchiveFailure{PatientID: id, Error: "archived patient not found"})
					continue
				}
				return err
			}

			var conflicts int64
			if err := tx.Model(&models.Patient{}).Where("medical_id = ?", row.MedicalID).Count(&conflicts).Error; err != nil {
				return err
			}
			if conflicts > 0 {
				failures = append(failures, ArchiveFailure{PatientID: id, Error: "medical ID already in use"})
				continue
			}

			patient := patientFromArchived(row)
			if err := tx.Create(&patient).Error; err != nil {
				return fmt.Errorf("failed to restore patient %d: %w", id, err)
			}
			if err := tx.Delete(&models.ArchivedPatient{}, "id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to remove archived patient %d: %w", id, err)
			}
			restored++
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	if err := r.invalidatePatientCache(ctx, 0); err != nil {
		log.Printf("Failed to invalidate patient cache after unarchive: %v", err)
	}
	return restored, failures, nil
}

// ArchivedList returns a page of archived patients.
func (r *PatientRepository) ArchivedList(ctx context.Context, page, limit int, search string) ([]models.ArchivedPatient, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ArchivedPatient{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR medical_id ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count archived patients: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 25
	}

	var rows []models.ArchivedPatient
	err := query.Order("archived_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list archived patients: %w", err)
	}
	return rows, total, nil
}

// checkDuplicate enforces medical/national ID uniqueness ahead of insert.
func (r *PatientRepository) checkDuplicate(ctx context.Context, patient *models.Patient, excludeID uint) error {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Patient{}).Where("medical_id = ?", patient.MedicalID)
	if patient.NationalID != "" {
		query = r.db.WithContext(ctx).Model(&models.Patient{}).
			Where("medical_id = ? OR national_id = ?", patient.MedicalID, patient.NationalID)
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing patient: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("medical or national ID already registered: %w", ErrConflict)
	}
	return nil
}

func (r *PatientRepository) invalidatePatientCache(ctx context.Context, id uint) error {
	if id != 0 {
		if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
			return fmt.Errorf("failed to delete patient cache: %w", err)
		}
	}
	return r.cache.DeleteAll(ctx, "patients_cache*")
}

func (r *PatientRepository) getPatientCacheKey(id uint) string {
	return fmt.Sprintf("patient_cache:%d", id)
}

// archivedFromPatient copies a patient into an archive row. A date of death
// is only meaningful when the archive reason is death, so it is dropped for
// any other reason.
func archivedFromPatient(p models.Patient, reason, details, dateOfDeath string) models.ArchivedPatient {
	if !strings.EqualFold(reason, "death") {
		dateOfDeath = ""
	}
	return models.ArchivedPatient{
		ID:              p.ID,
		Name:            p.Name,
		MedicalID:       p.MedicalID,
		NationalID:      p.NationalID,
		Phone:           p.Phone,
		Address:         p.Address,
		AddedDate:       p.AddedDate,
		ReferralDate:    p.ReferralDate,
		ReferralExpiry:  p.ReferralExpiry,
		ReferralPlace:   p.ReferralPlace,
		DialysisUnit:    p.DialysisUnit,
		BloodType:       p.BloodType,
		ChronicDiseases: p.ChronicDiseases,
		VirusStatus:     p.VirusStatus,
		DateOfBirth:     p.DateOfBirth,
		Gender:          p.Gender,
		PatientNotes:    p.PatientNotes,
		DialysisDays:    p.DialysisDays,
		DialysisShift:   p.DialysisShift,
		ArchiveReason:   reason,
		ArchiveDetails:  details,
		DateOfDeath:     dateOfDeath,
	}
}

func patientFromArchived(a models.ArchivedPatient) models.Patient {
	return models.Patient{
		ID:              a.ID,
		Name:            a.Name,
		MedicalID:       a.MedicalID,
		NationalID:      a.NationalID,
		Phone:           a.Phone,
		Address:         a.Address,
		AddedDate:       a.AddedDate,
		ReferralDate:    a.ReferralDate,
		ReferralExpiry:  a.ReferralExpiry,
		ReferralPlace:   a.ReferralPlace,
		DialysisUnit:    a.DialysisUnit,
		BloodType:       a.BloodType,
		ChronicDiseases: a.ChronicDiseases,
		VirusStatus:     a.VirusStatus,
		DateOfBirth:     a.DateOfBirth,
		Gender:          a.Gender,
		PatientNotes:    a.PatientNotes,
		DialysisDays:    a.DialysisDays,
		DialysisShift:   a.DialysisShift,
	}
}
