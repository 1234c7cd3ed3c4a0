package services

import (
	"fmt"

	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
)

type VehicleService struct {
	Repo    *repositories.VehicleRepository
	Clients *repositories.ClientRepository
}

func NewVehicleService(repo *repositories.VehicleRepository, clients *repositories.ClientRepository) *VehicleService {
	return &VehicleService{Repo: repo, Clients: clients}
}

// RegisterVehicle validates the owning client and stores the vehicle
func (s *VehicleService) RegisterVehicle(req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	if _, err := s.Clients.GetByID(req.ClientID); err != nil {
		return nil, fmt.Errorf("client %d: %w", req.ClientID, err)
	}
	return s.Repo.Create(req)
}

func (s *VehicleService) GetVehicle(id int) (*models.Vehicle, error) {
	return s.Repo.GetByID(id)
}

func (s *VehicleService) ListVehicles(clientID int) ([]*models.Vehicle, error) {
	if clientID > 0 {
		return s.Repo.ListByClient(clientID)
	}
	return s.Repo.List()
}

func (s *VehicleService) UpdateVehicle(id int, req *models.UpdateVehicleRequest) (*models.Vehicle, error) {
	return s.Repo.Update(id, req)
}

func (s *VehicleService) DeleteVehicle(id int) error {
	return s.Repo.Delete(id)
}
