package service

import (
	"context"
	"fmt"
	"sort"

	"autologic-fitment-api/internal/model"
)

// VehicleStore is the persistence boundary for the vehicle catalog.
type VehicleStore interface {
	List(ctx context.Context, f model.VehicleFilter) ([]model.Vehicle, error)
	GetByID(ctx context.Context, id int) (*model.Vehicle, error)
	Create(ctx context.Context, v *model.Vehicle) error
	Update(ctx context.Context, id int, v *model.Vehicle) error
	Delete(ctx context.Context, id int) error
}

// VehicleService serves the YMME selector and vehicle CRUD.
//
// The cascading selector contract is caller-side: when an upstream field
// changes the caller must clear everything downstream of it (a year change
// clears make/model/engine, a make change clears model/engine, a model change
// clears engine). The service does not second-guess filters it receives.
type VehicleService struct {
	store VehicleStore
}

func NewVehicleService(store VehicleStore) *VehicleService {
	return &VehicleService{store: store}
}

func (s *VehicleService) List(ctx context.Context, f model.VehicleFilter) ([]model.Vehicle, error) {
	return s.store.List(ctx, f)
}

func (s *VehicleService) GetByID(ctx context.Context, id int) (*model.Vehicle, error) {
	return s.store.GetByID(ctx, id)
}

func (s *VehicleService) Create(ctx context.Context, v *model.Vehicle) error {
	if err := validateVehicle(v); err != nil {
		return err
	}
	return s.store.Create(ctx, v)
}

func (s *VehicleService) Update(ctx context.Context, id int, v *model.Vehicle) error {
	if err := validateVehicle(v); err != nil {
		return err
	}
	return s.store.Update(ctx, id, v)
}

// Delete removes the vehicle. Compatibility records referencing it are not
// cascade-deleted; reverse lookups drop the dangling references at read time.
func (s *VehicleService) Delete(ctx context.Context, id int) error {
	return s.store.Delete(ctx, id)
}

// DistinctYears returns the years present under the filter, newest first.
// The selector UI depends on this ordering.
func (s *VehicleService) DistinctYears(ctx context.Context, f model.VehicleFilter) ([]int, error) {
	vehicles, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})
	years := []int{}
	for _, v := range vehicles {
		if v.Year == 0 {
			continue
		}
		if _, dup := seen[v.Year]; dup {
			continue
		}
		seen[v.Year] = struct{}{}
		years = append(years, v.Year)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// DistinctValues returns the distinct non-empty values of a text field under
// the filter, sorted alphabetically.
func (s *VehicleService) DistinctValues(ctx context.Context, field model.VehicleField, f model.VehicleFilter) ([]string, error) {
	project, ok := vehicleFieldProjections[field]
	if !ok {
		return nil, fmt.Errorf("field %q: %w", field, model.ErrValidation)
	}

	vehicles, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	values := []string{}
	for _, v := range vehicles {
		value := project(v)
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}

	sort.Strings(values)
	return values, nil
}

var vehicleFieldProjections = map[model.VehicleField]func(model.Vehicle) string{
	model.FieldMake:   func(v model.Vehicle) string { return v.Make },
	model.FieldModel:  func(v model.Vehicle) string { return v.Model },
	model.FieldEngine: func(v model.Vehicle) string { return v.Engine },
}

func validateVehicle(v *model.Vehicle) error {
	if v.Year <= 0 {
		return fmt.Errorf("year is required: %w", model.ErrValidation)
	}
	if v.Make == "" || v.Model == "" {
		return fmt.Errorf("make and model are required: %w", model.ErrValidation)
	}
	return nil
}
