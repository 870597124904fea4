package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type UserService struct {
	repository *repositories.UserRepository
}

func NewUserService(repository *repositories.UserRepository) *UserService {
	return &UserService{repository: repository}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repository.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repository.GetByUsername(ctx, username)
}

func (s *UserService) Create(ctx context.Context, user *models.User) error {
	return s.repository.Create(ctx, user)
}

func (s *UserService) Update(ctx context.Context, user *models.User) error {
	return s.repository.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
