package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type SessionService struct {
	repository *repositories.SessionRepository
}

func NewSessionService(repository *repositories.SessionRepository) *SessionService {
	return &SessionService{repository: repository}
}

func (s *SessionService) List(ctx context.Context, filter repositories.SessionListFilter) ([]repositories.SessionWithPatient, error) {
	return s.repository.List(ctx, filter)
}

func (s *SessionService) ByDate(ctx context.Context, date, virusStatus, dialysisUnit string) ([]repositories.SessionWithPatient, []models.Patient, error) {
	return s.repository.ByDate(ctx, date, virusStatus, dialysisUnit)
}

func (s *SessionService) Create(ctx context.Context, session *models.Session) error {
	return s.repository.Create(ctx, session)
}

func (s *SessionService) Update(ctx context.Context, session *models.Session) error {
	return s.repository.Update(ctx, session)
}

func (s *SessionService) UpdateTransfusion(ctx context.Context, id uint, bags int) error {
	return s.repository.UpdateTransfusion(ctx, id, bags)
}

func (s *SessionService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

func (s *SessionService) PatientMonth(ctx context.Context, patientID uint, month string) ([]models.Session, error) {
	return s.repository.PatientMonth(ctx, patientID, month)
}

func (s *SessionService) UpdateByDate(ctx context.Context, date string, addIDs, removeIDs []uint) error {
	return s.repository.UpdateByDate(ctx, date, addIDs, removeIDs)
}

func (s *SessionService) Bulk(ctx context.Context, date string, items []repositories.BulkSessionItem) (int, []repositories.BulkSessionFailure, error) {
	return s.repository.Bulk(ctx, date, items)
}

func (s *SessionService) Toggle(ctx context.Context, patientID uint, date, shift string) (string, error) {
	return s.repository.Toggle(ctx, patientID, date, shift)
}

func (s *SessionService) RecordPredicted(ctx context.Context, pairs []repositories.PredictedSessionPair) (int, []repositories.BulkSessionFailure, error) {
	return s.repository.RecordPredicted(ctx, pairs)
}

func (s *SessionService) SessionsInRange(ctx context.Context, from, to string) ([]repositories.SessionWithPatient, error) {
	return s.repository.SessionsInRange(ctx, from, to)
}
