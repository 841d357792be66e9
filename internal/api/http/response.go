package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// respondError maps domain errors onto HTTP statuses: malformed input is 422,
// a state or slot conflict is 409, everything unexpected is 500.
func respondError(w http.ResponseWriter, err error) {
	var transitionErr *booking.IllegalTransitionError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, booking.ErrInvalidInterval),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrVehicleNotRentable),
		errors.Is(err, service.ErrClientBlocked),
		errors.Is(err, service.ErrNotAQuote):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.As(err, &transitionErr),
		errors.Is(err, booking.ErrVehicleUnavailable),
		errors.Is(err, booking.ErrBalanceNotSettled),
		errors.Is(err, service.ErrVehicleConflict):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
