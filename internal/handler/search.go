package handler

import (
	"encoding/json"
	"net/http"

	"autologic-fitment-api/internal/model"
	"autologic-fitment-api/internal/search"
)

type SearchHandler struct {
	searcher *search.Searcher
}

func NewSearchHandler(searcher *search.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// SearchRefaccion handles POST /search/refaccion. Provider problems never
// surface here; the searcher absorbs them, so the only client errors are
// malformed requests.
func (h *SearchHandler) SearchRefaccion(w http.ResponseWriter, r *http.Request) {
	var req model.PartSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "JSON invalido en el cuerpo de la peticion")
		return
	}
	if req.Refaccion == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "El campo 'refaccion' es obligatorio")
		return
	}

	results, err := h.searcher.Search(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if results == nil {
		results = []model.SearchResult{}
	}

	respondJSON(w, http.StatusOK, model.SearchResponse{
		Query:      req.Refaccion,
		Total:      len(results),
		Resultados: results,
	})
}
