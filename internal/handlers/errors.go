package handlers

import (
	"errors"
	"net/http"

	"garage-backend/internal/finance"
	"garage-backend/internal/repositories"
	"garage-backend/internal/services"
)

// writeError maps service errors to HTTP status codes. Validation failures
// are 400, business-rule rejections are 422, missing records are 404.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, finance.ErrInstallmentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, finance.ErrPaymentExceedsBalance),
		errors.Is(err, finance.ErrDiscountExceedsTotal):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, finance.ErrInvalidSchedule),
		errors.Is(err, finance.ErrInvalidDiscount),
		errors.Is(err, finance.ErrInvalidPayment),
		errors.Is(err, services.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
