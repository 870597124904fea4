package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type BillingService struct {
	repository *repositories.BillingRepository
}

func NewBillingService(repository *repositories.BillingRepository) *BillingService {
	return &BillingService{repository: repository}
}

func (s *BillingService) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	return s.repository.GetSettings(ctx)
}

func (s *BillingService) UpdateSettings(ctx context.Context, settings *models.AppSettings) error {
	return s.repository.UpdateSettings(ctx, settings)
}

func (s *BillingService) PatientInvoice(ctx context.Context, patientID uint, month string) (*repositories.Invoice, error) {
	return s.repository.PatientInvoice(ctx, patientID, month)
}

func (s *BillingService) MonthInvoices(ctx context.Context, month, dialysisUnit string) ([]repositories.Invoice, error) {
	return s.repository.MonthInvoices(ctx, month, dialysisUnit)
}
