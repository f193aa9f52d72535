package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"autologic-fitment-api/internal/model"
	"autologic-fitment-api/internal/service"
)

type CompatibilityHandler struct {
	svc *service.FitmentService
}

func NewCompatibilityHandler(svc *service.FitmentService) *CompatibilityHandler {
	return &CompatibilityHandler{svc: svc}
}

// List handles GET /compatibility?productId=&vehicleId=.
func (h *CompatibilityHandler) List(w http.ResponseWriter, r *http.Request) {
	var f model.CompatibilityFilter
	if raw := r.URL.Query().Get("productId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "productId debe ser un numero")
			return
		}
		f.ProductID = id
	}
	if raw := r.URL.Query().Get("vehicleId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "vehicleId debe ser un numero")
			return
		}
		f.VehicleID = id
	}

	records, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if records == nil {
		records = []model.Compatibility{}
	}
	respondJSON(w, http.StatusOK, records)
}

// GetByID handles GET /compatibility/{id}.
func (h *CompatibilityHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	record, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// Create handles POST /compatibility: 201 on success, 404 when a referenced
// id does not resolve, 409 on a duplicate pair.
func (h *CompatibilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c model.Compatibility
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "JSON invalido en el cuerpo de la peticion")
		return
	}
	if err := h.svc.Create(r.Context(), &c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// CreateBatch handles POST /compatibility/batch. The response always carries
// the per-record tally; bad rows never fail the import.
func (h *CompatibilityHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Records []model.Compatibility `json:"records"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "JSON invalido en el cuerpo de la peticion")
		return
	}

	result, err := h.svc.CreateBatch(r.Context(), body.Records)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// Update handles PUT /compatibility/{id}.
func (h *CompatibilityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var c model.Compatibility
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "JSON invalido en el cuerpo de la peticion")
		return
	}
	if err := h.svc.Update(r.Context(), id, &c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /compatibility/{id}.
func (h *CompatibilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Check handles GET /compatibility/check?productId=&vehicleId=.
func (h *CompatibilityHandler) Check(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.URL.Query().Get("productId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "productId es obligatorio")
		return
	}
	vehicleID, err := strconv.Atoi(r.URL.Query().Get("vehicleId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "vehicleId es obligatorio")
		return
	}

	compatible, err := h.svc.Check(r.Context(), productID, vehicleID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, model.CheckResponse{Compatible: compatible})
}

// CompatibleProducts handles GET /vehicles/{id}/products.
func (h *CompatibilityHandler) CompatibleProducts(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	products, err := h.svc.CompatibleProducts(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// CompatibleVehicles handles GET /products/{id}/vehicles.
func (h *CompatibilityHandler) CompatibleVehicles(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	vehicles, err := h.svc.CompatibleVehicles(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}
