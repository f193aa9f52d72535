package model

import "time"

// Product represents one auto part owned by the catalog.
type Product struct {
	ID          int       `json:"id"`
	SKU         string    `json:"sku" csv:"sku"`
	Title       string    `json:"title" csv:"title"`
	Description string    `json:"description" csv:"description"`
	Price       float64   `json:"price" csv:"price"`
	Brand       string    `json:"brand" csv:"brand"`
	Category    string    `json:"category" csv:"category"`
	Stock       int       `json:"stock" csv:"stock"`
	InStock     bool      `json:"inStock" csv:"in_stock"`
	Images      []string  `json:"images" csv:"-"`
	CreatedAt   time.Time `json:"createdAt,omitempty" csv:"-"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" csv:"-"`
}
