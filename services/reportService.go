package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type ReportService struct {
	repository     *repositories.ReportRepository
	statisticsRepo *repositories.StatisticsRepository
	waterLogRepo   *repositories.WaterLogRepository
}

func NewReportService(repository *repositories.ReportRepository, statisticsRepo *repositories.StatisticsRepository, waterLogRepo *repositories.WaterLogRepository) *ReportService {
	return &ReportService{repository: repository, statisticsRepo: statisticsRepo, waterLogRepo: waterLogRepo}
}

func (s *ReportService) Generate(ctx context.Context, date string) (*repositories.GeneratedReport, error) {
	return s.repository.Generate(ctx, date)
}

func (s *ReportService) Confirm(ctx context.Context, date, finalData, confirmedBy string) (*models.DailyReport, error) {
	return s.repository.Confirm(ctx, date, finalData, confirmedBy)
}

func (s *ReportService) GetByDate(ctx context.Context, date string) (*models.DailyReport, error) {
	return s.repository.GetByDate(ctx, date)
}

func (s *ReportService) List(ctx context.Context, from, to string) ([]models.DailyReport, error) {
	return s.repository.List(ctx, from, to)
}

func (s *ReportService) MissedSessions(ctx context.Context, month, dialysisUnit string) ([]repositories.MissedSessionRow, error) {
	return s.repository.MissedSessions(ctx, month, dialysisUnit)
}

func (s *ReportService) SessionsPerMachine(ctx context.Context, from, to string) ([]repositories.MachineUsageRow, error) {
	return s.repository.SessionsPerMachine(ctx, from, to)
}

func (s *ReportService) SessionsPerPatient(ctx context.Context, from, to string) ([]repositories.PatientUsageRow, error) {
	return s.repository.SessionsPerPatient(ctx, from, to)
}

func (s *ReportService) Dashboard(ctx context.Context, month string) (*repositories.DashboardStats, error) {
	return s.statisticsRepo.Dashboard(ctx, month)
}

func (s *ReportService) PatientDistributions(ctx context.Context) (*repositories.Distributions, error) {
	return s.statisticsRepo.PatientDistributions(ctx)
}

func (s *ReportService) MonthlyTrends(ctx context.Context, months int) ([]repositories.MonthlyTrendPoint, error) {
	return s.statisticsRepo.MonthlyTrends(ctx, months)
}

func (s *ReportService) WaterLogs(ctx context.Context, page, limit int, from, to string) ([]models.WaterTreatmentLog, int64, error) {
	return s.waterLogRepo.List(ctx, page, limit, from, to)
}

func (s *ReportService) CreateWaterLog(ctx context.Context, entry *models.WaterTreatmentLog) error {
	return s.waterLogRepo.Create(ctx, entry)
}
