package services

import (
	"garage-backend/internal/models"
	"garage-backend/internal/repositories"
)

type ClientService struct {
	Repo     *repositories.ClientRepository
	Vehicles *repositories.VehicleRepository
}

func NewClientService(repo *repositories.ClientRepository, vehicles *repositories.VehicleRepository) *ClientService {
	return &ClientService{Repo: repo, Vehicles: vehicles}
}

func (s *ClientService) CreateClient(req *models.CreateClientRequest) (*models.Client, error) {
	return s.Repo.Create(req)
}

func (s *ClientService) GetClient(id int) (*models.Client, error) {
	return s.Repo.GetByID(id)
}

// ListClients returns all clients with their derived vehicle counts
func (s *ClientService) ListClients() ([]*models.ClientWithVehicles, error) {
	clients, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	result := make([]*models.ClientWithVehicles, 0, len(clients))
	for _, client := range clients {
		result = append(result, &models.ClientWithVehicles{
			Client:       *client,
			VehicleCount: s.Vehicles.CountByClient(client.ID),
		})
	}
	return result, nil
}

func (s *ClientService) UpdateClient(id int, req *models.UpdateClientRequest) (*models.Client, error) {
	return s.Repo.Update(id, req)
}

func (s *ClientService) DeleteClient(id int) error {
	return s.Repo.Delete(id)
}
