package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) List(ctx context.Context, filter repositories.PatientListFilter) ([]models.Patient, int64, error) {
	return s.repository.List(ctx, filter)
}

func (s *PatientService) Summaries(ctx context.Context) ([]repositories.PatientSummary, error) {
	return s.repository.Summaries(ctx)
}

func (s *PatientService) GetByAddedDateRange(ctx context.Context, from, to string) ([]models.Patient, error) {
	return s.repository.GetByAddedDateRange(ctx, from, to)
}

func (s *PatientService) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	return s.repository.Create(ctx, patient)
}

func (s *PatientService) Update(ctx context.Context, patient *models.Patient) error {
	return s.repository.Update(ctx, patient)
}

func (s *PatientService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

func (s *PatientService) Archive(ctx context.Context, ids []uint, reason, details, dateOfDeath string) (int, []repositories.ArchiveFailure, error) {
	return s.repository.Archive(ctx, ids, reason, details, dateOfDeath)
}

func (s *PatientService) Unarchive(ctx context.Context, ids []uint) (int, []repositories.ArchiveFailure, error) {
	return s.repository.Unarchive(ctx, ids)
}

func (s *PatientService) ArchivedList(ctx context.Context, page, limit int, search string) ([]models.ArchivedPatient, int64, error) {
	return s.repository.ArchivedList(ctx, page, limit, search)
}
