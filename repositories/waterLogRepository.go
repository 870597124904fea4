package repositories

import (
	"NileDialysis/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type WaterLogRepository struct {
	db *gorm.DB
}

func NewWaterLogRepository(db *gorm.DB) *WaterLogRepository {
	return &WaterLogRepository{db: db}
}

// List returns a page of water treatment log entries, newest first, with an
// optional date range filter.
func (r *WaterLogRepository) List(ctx context.Context, page, limit int, from, to string) ([]models.WaterTreatmentLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.WaterTreatmentLog{})
	if from != "" {
		query = query.Where("log_date >= ?", from)
	}
	if to != "" {
		query = query.Where("log_date <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count water logs: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 25
	}

	var logs []models.WaterTreatmentLog
	err := query.Order("log_date DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list water logs: %w", err)
	}
	return logs, total, nil
}

func (r *WaterLogRepository) Create(ctx context.Context, entry *models.WaterTreatmentLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create water log: %w", err)
	}
	return nil
}
