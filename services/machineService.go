package services

import (
	"NileDialysis/models"
	"NileDialysis/repositories"
	"context"
)

type MachineService struct {
	repository      *repositories.MachineRepository
	maintenanceRepo *repositories.MaintenanceRepository
}

func NewMachineService(repository *repositories.MachineRepository, maintenanceRepo *repositories.MaintenanceRepository) *MachineService {
	return &MachineService{repository: repository, maintenanceRepo: maintenanceRepo}
}

func (s *MachineService) List(ctx context.Context, status, ward string) ([]models.Machine, error) {
	return s.repository.List(ctx, status, ward)
}

func (s *MachineService) GetByID(ctx context.Context, id uint) (*models.Machine, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *MachineService) Create(ctx context.Context, machine *models.Machine) error {
	return s.repository.Create(ctx, machine)
}

func (s *MachineService) Update(ctx context.Context, machine *models.Machine) error {
	return s.repository.Update(ctx, machine)
}

func (s *MachineService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

func (s *MachineService) BulkCreate(ctx context.Context, machines []models.Machine) (int, []repositories.ArchiveFailure, error) {
	return s.repository.BulkCreate(ctx, machines)
}

func (s *MachineService) ListPreventive(ctx context.Context, machineID uint) ([]models.PreventiveMaintenance, error) {
	return s.maintenanceRepo.ListPreventive(ctx, machineID)
}

func (s *MachineService) CreatePreventive(ctx context.Context, record *models.PreventiveMaintenance) error {
	return s.maintenanceRepo.CreatePreventive(ctx, record)
}

func (s *MachineService) UpdatePreventive(ctx context.Context, record *models.PreventiveMaintenance) error {
	return s.maintenanceRepo.UpdatePreventive(ctx, record)
}

func (s *MachineService) DeletePreventive(ctx context.Context, id uint) error {
	return s.maintenanceRepo.DeletePreventive(ctx, id)
}

func (s *MachineService) ListCurative(ctx context.Context, machineID uint) ([]models.CurativeMaintenance, error) {
	return s.maintenanceRepo.ListCurative(ctx, machineID)
}

func (s *MachineService) CreateCurative(ctx context.Context, record *models.CurativeMaintenance) error {
	return s.maintenanceRepo.CreateCurative(ctx, record)
}

func (s *MachineService) UpdateCurative(ctx context.Context, record *models.CurativeMaintenance) error {
	return s.maintenanceRepo.UpdateCurative(ctx, record)
}

func (s *MachineService) DeleteCurative(ctx context.Context, id uint) error {
	return s.maintenanceRepo.DeleteCurative(ctx, id)
}

func (s *MachineService) PeriodReport(ctx context.Context, period string) ([]repositories.MaintenancePeriodRow, error) {
	return s.maintenanceRepo.PeriodReport(ctx, period)
}
