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

type EnquiryHandler struct {
	Service *services.EnquiryService
}

func NewEnquiryHandler(s *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{Service: s}
}

func (h *EnquiryHandler) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Services) == 0 {
		http.Error(w, "at least one service is required", http.StatusBadRequest)
		return
	}

	enquiry, err := h.Service.CreateEnquiry(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, enquiry)
}

func (h *EnquiryHandler) GetEnquiry(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	enquiry, err := h.Service.GetEnquiry(id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, enquiry)
}

func (h *EnquiryHandler) ListEnquiries(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.Service.ListEnquiries()
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, enquiries)
}

func (h *EnquiryHandler) UpdateEnquiry(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.UpdateEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	enquiry, err := h.Service.UpdateEnquiry(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, enquiry)
}

func (h *EnquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.UpdateEnquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	enquiry, err := h.Service.UpdateStatus(id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, enquiry)
}

func (h *EnquiryHandler) SaveEvaluation(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.SaveEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	enquiry, err := h.Service.SaveEvaluation(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, enquiry)
}

func (h *EnquiryHandler) SaveEstimates(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.SaveEstimatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	enquiry, err := h.Service.SaveEstimates(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, enquiry)
}

// ConvertToInvoice raises an invoice from the enquiry's estimate total and
// marks the enquiry completed
func (h *EnquiryHandler) ConvertToInvoice(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.ConvertEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	invoice, err := h.Service.ConvertToInvoice(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, invoice)
}

func (h *EnquiryHandler) DeleteEnquiry(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.DeleteEnquiry(id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
