package repositories

import (
	"NileDialysis/models"
	"NileDialysis/utils"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DashboardStats compares the current period's activity with the previous one.
type DashboardStats struct {
	Month                string  `json:"month"`
	ActivePatients       int64   `json:"active_patients"`
	TotalPatients        int64   `json:"total_patients"`
	SessionsThisMonth    int64   `json:"sessions_this_month"`
	SessionsLastMonth    int64   `json:"sessions_last_month"`
	SessionChangePercent float64 `json:"session_change_percent"`
	NewPatientsThisMonth int64   `json:"new_patients_this_month"`
	NewPatientsLastMonth int64   `json:"new_patients_last_month"`
	WorkingMachines      int64   `json:"working_machines"`
	TotalMachines        int64   `json:"total_machines"`
	PendingOrders        int64   `json:"pending_orders"`
	LowStockSupplies     int64   `json:"low_stock_supplies"`
}

// BucketCount is one slice of a distribution.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Distributions groups the patient population along several axes.
type Distributions struct {
	Gender      []BucketCount `json:"gender"`
	VirusStatus []BucketCount `json:"virus_status"`
	AgeBuckets  []BucketCount `json:"age_buckets"`
	Unit        []BucketCount `json:"unit"`
}

// MonthlyTrendPoint is one month of session and registration activity.
type MonthlyTrendPoint struct {
	Month       string `json:"month"`
	Sessions    int    `json:"sessions"`
	NewPatients int    `json:"new_patients"`
}

type StatisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// Dashboard builds the headline numbers for a YYYY-MM month, with the
// previous month as the comparison period.
func (r *StatisticsRepository) Dashboard(ctx context.Context, month string) (*DashboardStats, error) {
	start, end, err := utils.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}
	monthStart, _ := utils.ParseDate(start)
	prevStart := utils.AddMonthsClamped(monthStart, -1).Format(utils.DateLayout)

	stats := DashboardStats{Month: month}
	db := r.db.WithContext(ctx)

	today := time.Now().Format(utils.DateLayout)
	if err := db.Model(&models.Patient{}).Count(&stats.TotalPatients).Error; err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	if err := db.Model(&models.Patient{}).Where("referral_expiry >= ?", today).Count(&stats.ActivePatients).Error; err != nil {
		return nil, fmt.Errorf("failed to count active patients: %w", err)
	}
	if err := db.Model(&models.Session{}).Where("session_date >= ? AND session_date < ?", start, end).Count(&stats.SessionsThisMonth).Error; err != nil {
		return nil, fmt.Errorf("failed to count month sessions: %w", err)
	}
	if err := db.Model(&models.Session{}).Where("session_date >= ? AND session_date < ?", prevStart, start).Count(&stats.SessionsLastMonth).Error; err != nil {
		return nil, fmt.Errorf("failed to count previous month sessions: %w", err)
	}
	if err := db.Model(&models.Patient{}).Where("added_date >= ? AND added_date < ?", start, end).Count(&stats.NewPatientsThisMonth).Error; err != nil {
		return nil, fmt.Errorf("failed to count new patients: %w", err)
	}
	if err := db.Model(&models.Patient{}).Where("added_date >= ? AND added_date < ?", prevStart, start).Count(&stats.NewPatientsLastMonth).Error; err != nil {
		return nil, fmt.Errorf("failed to count previous new patients: %w", err)
	}
	if err := db.Model(&models.Machine{}).Count(&stats.TotalMachines).Error; err != nil {
		return nil, fmt.Errorf("failed to count machines: %w", err)
	}
	if err := db.Model(&models.Machine{}).Where("status = ?", "Working").Count(&stats.WorkingMachines).Error; err != nil {
		return nil, fmt.Errorf("failed to count working machines: %w", err)
	}
	if err := db.Model(&models.PurchaseOrder{}).Where("status = ?", "Pending").Count(&stats.PendingOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}
	if err := db.Model(&models.MedicalSupply{}).Where("quantity <= min_stock_level").Count(&stats.LowStockSupplies).Error; err != nil {
		return nil, fmt.Errorf("failed to count low stock supplies: %w", err)
	}

	stats.SessionChangePercent = changePercent(stats.SessionsThisMonth, stats.SessionsLastMonth)
	return &stats, nil
}

// changePercent computes the relative change against a previous value.
// A zero previous period reports 100 when there is any current activity.
func changePercent(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}

// PatientDistributions groups the active registry by gender, virus status,
// age bucket and unit.
func (r *StatisticsRepository) PatientDistributions(ctx context.Context) (*Distributions, error) {
	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Select("gender, virus_status, date_of_birth, dialysis_unit").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}

	gender := map[string]int{}
	virus := map[string]int{}
	unit := map[string]int{}
	ages := map[string]int{}
	now := time.Now()
	for _, p := range patients {
		gender[labelOr(p.Gender, "Unknown")]++
		virus[labelOr(p.VirusStatus, "Unknown")]++
		unit[labelOr(p.DialysisUnit, "Unknown")]++
		ages[AgeBucket(utils.AgeFromDOB(p.DateOfBirth, now))]++
	}

	return &Distributions{
		Gender:      toBuckets(gender),
		VirusStatus: toBuckets(virus),
		AgeBuckets:  orderedAgeBuckets(ages),
		Unit:        toBuckets(unit),
	}, nil
}

// ageBucketLabels orders the buckets for presentation.
var ageBucketLabels = []string{"0-17", "18-34", "35-49", "50-64", "65+", "Unknown"}

// AgeBucket maps an age to its reporting bucket.
func AgeBucket(age *int) string {
	if age == nil {
		return "Unknown"
	}
	switch {
	case *age < 18:
		return "0-17"
	case *age < 35:
		return "18-34"
	case *age < 50:
		return "35-49"
	case *age < 65:
		return "50-64"
	default:
		return "65+"
	}
}

func labelOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func toBuckets(m map[string]int) []BucketCount {
	buckets := make([]BucketCount, 0, len(m))
	for label, count := range m {
		buckets = append(buckets, BucketCount{Label: label, Count: count})
	}
	return buckets
}

func orderedAgeBuckets(m map[string]int) []BucketCount {
	buckets := make([]BucketCount, 0, len(ageBucketLabels))
	for _, label := range ageBucketLabels {
		if count, ok := m[label]; ok {
			buckets = append(buckets, BucketCount{Label: label, Count: count})
		}
	}
	return buckets
}

// MonthlyTrends returns per-month session and registration counts for the
// last n months, oldest first.
func (r *StatisticsRepository) MonthlyTrends(ctx context.Context, months int) ([]MonthlyTrendPoint, error) {
	if months < 1 {
		months = 6
	}
	now := time.Now()
	points := make([]MonthlyTrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := utils.AddMonthsClamped(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), -i)
		month := monthStart.Format("2006-01")
		start, end, err := utils.MonthBounds(month)
		if err != nil {
			return nil, err
		}

		var sessions, newPatients int64
		if err := r.db.WithContext(ctx).Model(&models.Session{}).
			Where("session_date >= ? AND session_date < ?", start, end).
			Count(&sessions).Error; err != nil {
			return nil, fmt.Errorf("failed to count sessions for %s: %w", month, err)
		}
		if err := r.db.WithContext(ctx).Model(&models.Patient{}).
			Where("added_date >= ? AND added_date < ?", start, end).
			Count(&newPatients).Error; err != nil {
			return nil, fmt.Errorf("failed to count patients for %s: %w", month, err)
		}

		points = append(points, MonthlyTrendPoint{
			Month:       month,
			Sessions:    int(sessions),
			NewPatients: int(newPatients),
		})
	}
	return points, nil
}
