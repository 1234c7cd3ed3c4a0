package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"garage-backend/internal/models"
	"garage-backend/internal/services"
	"garage-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type VehicleHandler struct {
	Service *services.VehicleService
}

func NewVehicleHandler(s *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{Service: s}
}

func (h *VehicleHandler) RegisterVehicle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Model == "" || req.Plate == "" {
		http.Error(w, "model and plate are required", http.StatusBadRequest)
		return
	}

	vehicle, err := h.Service.RegisterVehicle(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	vehicle, err := h.Service.GetVehicle(id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, vehicle)
}

// ListVehicles lists every vehicle, or one client's garage with ?client_id=
func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	clientID := 0
	if v := r.URL.Query().Get("client_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "client_id must be a number", http.StatusBadRequest)
			return
		}
		clientID = n
	}

	vehicles, err := h.Service.ListVehicles(clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	vehicle, err := h.Service.UpdateVehicle(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.DeleteVehicle(id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
