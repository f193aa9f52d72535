package model

import "time"

// CheckResponse answers "does this product fit this vehicle".
type CheckResponse struct {
	Compatible bool `json:"compatible"`
}

// SearchResponse wraps the ranked result list for the search endpoint.
type SearchResponse struct {
	Query      string         `json:"query"`
	Total      int            `json:"total"`
	Resultados []SearchResult `json:"resultados"`
}

// HealthResponse represents the health check payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
