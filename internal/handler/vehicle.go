package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"autologic-fitment-api/internal/model"
	"autologic-fitment-api/internal/service"
)

type VehicleHandler struct {
	svc *service.VehicleService
}

func NewVehicleHandler(svc *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

// filterFromQuery builds the YMME filter from query parameters. Absent
// parameters stay wildcards.
func filterFromQuery(r *http.Request) model.VehicleFilter {
	f := model.VehicleFilter{
		Make:   r.URL.Query().Get("make"),
		Model:  r.URL.Query().Get("model"),
		Engine: r.URL.Query().Get("engine"),
	}
	if year := r.URL.Query().Get("year"); year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			f.Year = y
		}
	}
	return f
}

// List handles GET /vehicles.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.svc.List(r.Context(), filterFromQuery(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	respondJSON(w, http.StatusOK, vehicles)
}

// Years handles GET /vehicles/year: all years, newest first.
func (h *VehicleHandler) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.svc.DistinctYears(r.Context(), model.VehicleFilter{})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, years)
}

// Makes handles GET /vehicles/make?year=.
func (h *VehicleHandler) Makes(w http.ResponseWriter, r *http.Request) {
	h.distinct(w, r, model.FieldMake)
}

// Models handles GET /vehicles/model?year=&make=.
func (h *VehicleHandler) Models(w http.ResponseWriter, r *http.Request) {
	h.distinct(w, r, model.FieldModel)
}

// Engines handles GET /vehicles/engine?year=&make=&model=.
func (h *VehicleHandler) Engines(w http.ResponseWriter, r *http.Request) {
	h.distinct(w, r, model.FieldEngine)
}

func (h *VehicleHandler) distinct(w http.ResponseWriter, r *http.Request, field model.VehicleField) {
	values, err := h.svc.DistinctValues(r.Context(), field, filterFromQuery(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, values)
}

// GetByID handles GET /vehicles/{id}.
func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	vehicle, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

// Create handles POST /vehicles.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var v model.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "JSON invalido en el cuerpo de la peticion")
		return
	}
	if err := h.svc.Create(r.Context(), &v); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// Update handles PUT /vehicles/{id}.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var v model.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "JSON invalido en el cuerpo de la peticion")
		return
	}
	if err := h.svc.Update(r.Context(), id, &v); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// Delete handles DELETE /vehicles/{id}.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "El ID debe ser un numero")
		return 0, false
	}
	return id, true
}
