package model

import "time"

// Compatibility is the bridge record asserting that a product fits a vehicle.
// At most one record may exist per (ProductID, VehicleID) pair.
type Compatibility struct {
	ID        int       `json:"id"`
	ProductID int       `json:"productId" csv:"product_id"`
	VehicleID int       `json:"vehicleId" csv:"vehicle_id"`
	Notes     string    `json:"notes,omitempty" csv:"notes"`
	CreatedAt time.Time `json:"createdAt,omitempty" csv:"-"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" csv:"-"`
}

// CompatibilityFilter narrows a compatibility listing. Zero values are
// wildcards, same convention as VehicleFilter.
type CompatibilityFilter struct {
	ProductID int
	VehicleID int
}

// BatchResult is the normal return shape of a bulk import: per-record
// successes and failures are tallied, never raised as an error.
type BatchResult struct {
	Success int `json:"success"`
	Errors  int `json:"errors"`
}
