package models

import "time"

type Vehicle struct {
	ID        int       `json:"id"`
	ClientID  int       `json:"client_id"`
	Model     string    `json:"model"`
	Plate     string    `json:"plate"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateVehicleRequest represents the request body for registering a vehicle
type CreateVehicleRequest struct {
	ClientID int    `json:"client_id"`
	Model    string `json:"model"`
	Plate    string `json:"plate"`
	Year     int    `json:"year"`
}

// UpdateVehicleRequest represents the request body for updating a vehicle
type UpdateVehicleRequest struct {
	Model string `json:"model"`
	Plate string `json:"plate"`
	Year  int    `json:"year"`
}
