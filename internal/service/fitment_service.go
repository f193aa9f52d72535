package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"autologic-fitment-api/internal/model"
)

// CompatibilityStore persists product-vehicle compatibility records. Create
// must enforce (productID, vehicleID) uniqueness atomically and report a
// duplicate as model.ErrConflict.
type CompatibilityStore interface {
	Create(ctx context.Context, c *model.Compatibility) error
	GetByID(ctx context.Context, id int) (*model.Compatibility, error)
	List(ctx context.Context, f model.CompatibilityFilter) ([]model.Compatibility, error)
	Update(ctx context.Context, id int, c *model.Compatibility) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, productID, vehicleID int) (bool, error)
}

// ProductStore is the product catalog boundary the fitment index reads from.
type ProductStore interface {
	GetByID(ctx context.Context, id int) (*model.Product, error)
}

// VehicleGetter resolves vehicle ids for reference checks and reverse lookups.
type VehicleGetter interface {
	GetByID(ctx context.Context, id int) (*model.Vehicle, error)
}

// FitmentService owns the product-vehicle compatibility index.
type FitmentService struct {
	compat   CompatibilityStore
	products ProductStore
	vehicles VehicleGetter
	logger   *slog.Logger
}

func NewFitmentService(compat CompatibilityStore, products ProductStore, vehicles VehicleGetter, logger *slog.Logger) *FitmentService {
	return &FitmentService{
		compat:   compat,
		products: products,
		vehicles: vehicles,
		logger:   logger,
	}
}

// Create adds one compatibility record. It fails with model.ErrNotFound when
// either referenced id does not resolve and with model.ErrConflict when the
// (productID, vehicleID) pair is already indexed.
func (s *FitmentService) Create(ctx context.Context, c *model.Compatibility) error {
	if c.ProductID <= 0 || c.VehicleID <= 0 {
		return fmt.Errorf("productId and vehicleId are required: %w", model.ErrValidation)
	}
	if _, err := s.products.GetByID(ctx, c.ProductID); err != nil {
		return err
	}
	if _, err := s.vehicles.GetByID(ctx, c.VehicleID); err != nil {
		return err
	}
	return s.compat.Create(ctx, c)
}

// CreateBatch imports records one at a time, tallying successes and failures.
// A failing record never aborts the batch and never rolls back records already
// written: bulk imports are expected to carry some bad rows.
func (s *FitmentService) CreateBatch(ctx context.Context, records []model.Compatibility) (model.BatchResult, error) {
	if len(records) == 0 {
		return model.BatchResult{}, fmt.Errorf("records must be a non-empty array: %w", model.ErrValidation)
	}

	var result model.BatchResult
	for i := range records {
		if err := s.Create(ctx, &records[i]); err != nil {
			result.Errors++
			s.logger.Debug("batch record rejected",
				"productId", records[i].ProductID,
				"vehicleId", records[i].VehicleID,
				"error", err,
			)
			continue
		}
		result.Success++
	}
	return result, nil
}

func (s *FitmentService) GetByID(ctx context.Context, id int) (*model.Compatibility, error) {
	return s.compat.GetByID(ctx, id)
}

func (s *FitmentService) List(ctx context.Context, f model.CompatibilityFilter) ([]model.Compatibility, error) {
	return s.compat.List(ctx, f)
}

func (s *FitmentService) Update(ctx context.Context, id int, c *model.Compatibility) error {
	if c.ProductID <= 0 || c.VehicleID <= 0 {
		return fmt.Errorf("productId and vehicleId are required: %w", model.ErrValidation)
	}
	if _, err := s.products.GetByID(ctx, c.ProductID); err != nil {
		return err
	}
	if _, err := s.vehicles.GetByID(ctx, c.VehicleID); err != nil {
		return err
	}
	return s.compat.Update(ctx, id, c)
}

func (s *FitmentService) Delete(ctx context.Context, id int) error {
	return s.compat.Delete(ctx, id)
}

// Check reports whether the product is indexed as fitting the vehicle.
func (s *FitmentService) Check(ctx context.Context, productID, vehicleID int) (bool, error) {
	if productID <= 0 || vehicleID <= 0 {
		return false, fmt.Errorf("productId and vehicleId are required: %w", model.ErrValidation)
	}
	return s.compat.Exists(ctx, productID, vehicleID)
}

// CompatibleProducts returns the products indexed against the vehicle.
// References to products that no longer resolve are dropped silently, they are
// treated as soft-deleted.
func (s *FitmentService) CompatibleProducts(ctx context.Context, vehicleID int) ([]model.Product, error) {
	records, err := s.compat.List(ctx, model.CompatibilityFilter{VehicleID: vehicleID})
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(records))
	for _, rec := range records {
		p, err := s.products.GetByID(ctx, rec.ProductID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

// CompatibleVehicles is the reverse lookup, with the same soft-orphan
// treatment for vehicles that have been deleted.
func (s *FitmentService) CompatibleVehicles(ctx context.Context, productID int) ([]model.Vehicle, error) {
	records, err := s.compat.List(ctx, model.CompatibilityFilter{ProductID: productID})
	if err != nil {
		return nil, err
	}

	vehicles := make([]model.Vehicle, 0, len(records))
	for _, rec := range records {
		v, err := s.vehicles.GetByID(ctx, rec.VehicleID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				continue
			}
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, nil
}
