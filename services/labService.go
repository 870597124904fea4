package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type LabService struct {
	repository *repositories.LabRepository
}

func NewLabService(repository *repositories.LabRepository) *LabService {
	return &LabService{repository: repository}
}

func (s *LabService) ListTestTypes(ctx context.Context) ([]models.LabTestType, error) {
	return s.repository.ListTestTypes(ctx)
}

func (s *LabService) CreateTestType(ctx context.Context, testType *models.LabTestType) error {
	return s.repository.CreateTestType(ctx, testType)
}

func (s *LabService) UpdateTestType(ctx context.Context, testType *models.LabTestType) error {
	return s.repository.UpdateTestType(ctx, testType)
}

func (s *LabService) DeleteTestType(ctx context.Context, id uint) error {
	return s.repository.DeleteTestType(ctx, id)
}

func (s *LabService) CreateResult(ctx context.Context, result *models.LabResult) error {
	return s.repository.CreateResult(ctx, result)
}

func (s *LabService) UpdateResult(ctx context.Context, result *models.LabResult) error {
	return s.repository.UpdateResult(ctx, result)
}

func (s *LabService) DeleteResult(ctx context.Context, id uint) error {
	return s.repository.DeleteResult(ctx, id)
}

func (s *LabService) PatientResults(ctx context.Context, patientID uint, month string) ([]repositories.LabResultWithType, error) {
	return s.repository.PatientResults(ctx, patientID, month)
}

func (s *LabService) Trend(ctx context.Context, patientID, testTypeID uint) ([]repositories.LabResultWithType, error) {
	return s.repository.Trend(ctx, patientID, testTypeID)
}

func (s *LabService) CriticalResults(ctx context.Context) ([]repositories.LabResultWithType, error) {
	return s.repository.CriticalResults(ctx)
}
