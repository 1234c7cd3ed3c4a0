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

type ReminderHandler struct {
	Service *services.ReminderService
}

func NewReminderHandler(s *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: s}
}

func (h *ReminderHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.Service.CreateRecord(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, record)
}

// ListRecords returns the service history, optionally for one vehicle
func (h *ReminderHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	vehicleID := 0
	if v := r.URL.Query().Get("vehicle_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "vehicle_id must be a number", http.StatusBadRequest)
			return
		}
		vehicleID = n
	}

	records, err := h.Service.ListRecords(vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, records)
}

// ListReminders returns due-service reminders filtered by ?window=
// (all, 15days, 60days, overdue)
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	window := models.ReminderWindow(r.URL.Query().Get("window"))
	if window == "" {
		window = models.WindowAll
	}
	switch window {
	case models.WindowAll, models.Window15Days, models.Window60Days, models.WindowOverdue:
	default:
		http.Error(w, "unknown reminder window", http.StatusBadRequest)
		return
	}

	reminders, err := h.Service.ListReminders(window)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, reminders)
}

func (h *ReminderHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.DeleteRecord(id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
