package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type ScheduleService struct {
	repository *repositories.ScheduleRepository
	rosterRepo *repositories.RosterRepository
}

func NewScheduleService(repository *repositories.ScheduleRepository, rosterRepo *repositories.RosterRepository) *ScheduleService {
	return &ScheduleService{repository: repository, rosterRepo: rosterRepo}
}

func (s *ScheduleService) CreateBooking(ctx context.Context, booking *models.SessionSchedule) error {
	return s.repository.CreateBooking(ctx, booking)
}

func (s *ScheduleService) DeleteBooking(ctx context.Context, id uint) error {
	return s.repository.DeleteBooking(ctx, id)
}

func (s *ScheduleService) Daily(ctx context.Context, date string) (*repositories.DailySchedule, error) {
	return s.repository.Daily(ctx, date)
}

func (s *ScheduleService) Weekly(ctx context.Context, from, to string) ([]repositories.ScheduleEntry, []models.Machine, []models.Patient, error) {
	return s.repository.Weekly(ctx, from, to)
}

func (s *ScheduleService) PredictedRoster(ctx context.Context, month string) ([]repositories.PredictedRosterRow, error) {
	return s.repository.PredictedRoster(ctx, month)
}

func (s *ScheduleService) RosterMonthGrid(ctx context.Context, month, jobTitle string) ([]repositories.RosterEntry, error) {
	return s.rosterRepo.MonthGrid(ctx, month, jobTitle)
}

func (s *ScheduleService) RosterBulkSave(ctx context.Context, items []repositories.RosterSaveItem) (int, error) {
	return s.rosterRepo.BulkSave(ctx, items)
}
