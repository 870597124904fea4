package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type StaffService struct {
	repository *repositories.StaffRepository
}

func NewStaffService(repository *repositories.StaffRepository) *StaffService {
	return &StaffService{repository: repository}
}

func (s *StaffService) List(ctx context.Context, page, limit int, search, employmentStatus string) ([]models.Staff, int64, error) {
	return s.repository.List(ctx, page, limit, search, employmentStatus)
}

func (s *StaffService) GetByID(ctx context.Context, id uint) (*models.Staff, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *StaffService) Create(ctx context.Context, staff *models.Staff) error {
	return s.repository.Create(ctx, staff)
}

func (s *StaffService) Update(ctx context.Context, staff *models.Staff) error {
	return s.repository.Update(ctx, staff)
}

func (s *StaffService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

func (s *StaffService) UpsertShiftChange(ctx context.Context, change *models.ShiftChange) error {
	return s.repository.UpsertShiftChange(ctx, change)
}

func (s *StaffService) JobTitles(ctx context.Context) ([]string, error) {
	return s.repository.JobTitles(ctx)
}
