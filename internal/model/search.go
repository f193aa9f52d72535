package model

// PartSearchRequest carries a storefront part search. Only Refaccion is
// required; the vehicle fields sharpen matching when present.
type PartSearchRequest struct {
	Refaccion string `json:"refaccion"`
	Marca     string `json:"marca,omitempty"`
	Modelo    string `json:"modelo,omitempty"`
	Anio      int    `json:"anio,omitempty"`
}

// SearchResult is the product tuple returned by the external catalog search
// provider. It lives only for the duration of one search request and is never
// persisted.
type SearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ImageAlt    string `json:"imageAlt"`
	Price       string `json:"price"`
	VariantID   string `json:"variantId"`
}
