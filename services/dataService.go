package services

import (
	"NileDialysis/repositories"
	"context"
)

type DataService struct {
	repository  *repositories.DataRepository
	sessionRepo *repositories.SessionRepository
}

func NewDataService(repository *repositories.DataRepository, sessionRepo *repositories.SessionRepository) *DataService {
	return &DataService{repository: repository, sessionRepo: sessionRepo}
}

func (s *DataService) CreateBackup(ctx context.Context) (string, error) {
	return s.repository.CreateBackup(ctx)
}

func (s *DataService) ListBackups(ctx context.Context) ([]repositories.BackupInfo, error) {
	return s.repository.ListBackups(ctx)
}

func (s *DataService) ExportSQL(ctx context.Context) (string, error) {
	return s.repository.DumpSQL(ctx, s.repository.CoreTables())
}

func (s *DataService) SessionsInRange(ctx context.Context, from, to string) ([]repositories.SessionWithPatient, error) {
	return s.sessionRepo.SessionsInRange(ctx, from, to)
}
