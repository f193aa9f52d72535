package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"autologic-fitment-api/internal/model"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// respondServiceError maps the service error taxonomy to HTTP status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, model.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, model.ErrConflict):
		respondError(w, http.StatusConflict, "conflict", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "Error interno del servidor")
	}
}
