package model

import "errors"

// Error taxonomy shared by services and handlers. Repositories and services
// wrap these with context; handlers map them to HTTP status via errors.Is.
var (
	// ErrNotFound means a referenced product, vehicle or record id does not
	// resolve. Rejected with no side effects.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a duplicate (productId, vehicleId) compatibility
	// pair. The existing record is left unchanged.
	ErrConflict = errors.New("already exists")

	// ErrValidation means a missing or malformed required field.
	ErrValidation = errors.New("invalid input")
)
