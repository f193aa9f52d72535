package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"autologic-fitment-api/internal/model"
)

// fakeVehicleStore serves a fixed vehicle set and applies the same exact-match
// filter semantics as the SQL layer.
type fakeVehicleStore struct {
	vehicles []model.Vehicle
	listErr  error
	created  []model.Vehicle
	updated  map[int]model.Vehicle
	deleted  []int
}

func (f *fakeVehicleStore) List(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Vehicle
	for _, v := range f.vehicles {
		if filter.Year != 0 && v.Year != filter.Year {
			continue
		}
		if filter.Make != "" && v.Make != filter.Make {
			continue
		}
		if filter.Model != "" && v.Model != filter.Model {
			continue
		}
		if filter.Engine != "" && v.Engine != filter.Engine {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVehicleStore) GetByID(ctx context.Context, id int) (*model.Vehicle, error) {
	for i := range f.vehicles {
		if f.vehicles[i].ID == id {
			return &f.vehicles[i], nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeVehicleStore) Create(ctx context.Context, v *model.Vehicle) error {
	v.ID = len(f.vehicles) + len(f.created) + 1
	f.created = append(f.created, *v)
	return nil
}

func (f *fakeVehicleStore) Update(ctx context.Context, id int, v *model.Vehicle) error {
	if f.updated == nil {
		f.updated = make(map[int]model.Vehicle)
	}
	f.updated[id] = *v
	return nil
}

func (f *fakeVehicleStore) Delete(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func selectorFixture() *fakeVehicleStore {
	return &fakeVehicleStore{vehicles: []model.Vehicle{
		{ID: 1, Year: 2019, Make: "Toyota", Model: "Corolla", Engine: "1.8L L4"},
		{ID: 2, Year: 2020, Make: "Toyota", Model: "Corolla", Engine: "1.8L L4"},
		{ID: 3, Year: 2020, Make: "Toyota", Model: "Corolla", Engine: "2.0L L4"},
		{ID: 4, Year: 2020, Make: "Honda", Model: "Civic", Engine: "1.5L Turbo"},
		{ID: 5, Year: 2019, Make: "Honda", Model: "Civic", Engine: "2.0L L4"},
	}}
}

func TestDistinctYearsNewestFirst(t *testing.T) {
	svc := NewVehicleService(selectorFixture())

	years, err := svc.DistinctYears(context.Background(), model.VehicleFilter{})
	if err != nil {
		t.Fatalf("DistinctYears returned error: %v", err)
	}
	if want := []int{2020, 2019}; !reflect.DeepEqual(years, want) {
		t.Errorf("DistinctYears = %v, want %v", years, want)
	}
}

func TestDistinctMakesSorted(t *testing.T) {
	svc := NewVehicleService(selectorFixture())

	makes, err := svc.DistinctValues(context.Background(), model.FieldMake, model.VehicleFilter{})
	if err != nil {
		t.Fatalf("DistinctValues returned error: %v", err)
	}
	if want := []string{"Honda", "Toyota"}; !reflect.DeepEqual(makes, want) {
		t.Errorf("makes = %v, want %v", makes, want)
	}
}

func TestDistinctValuesCascade(t *testing.T) {
	svc := NewVehicleService(selectorFixture())
	ctx := context.Background()

	models, err := svc.DistinctValues(ctx, model.FieldModel, model.VehicleFilter{Year: 2020, Make: "Toyota"})
	if err != nil {
		t.Fatalf("DistinctValues returned error: %v", err)
	}
	if want := []string{"Corolla"}; !reflect.DeepEqual(models, want) {
		t.Errorf("models for 2020 Toyota = %v, want %v", models, want)
	}

	engines, err := svc.DistinctValues(ctx, model.FieldEngine, model.VehicleFilter{Year: 2020, Make: "Toyota", Model: "Corolla"})
	if err != nil {
		t.Fatalf("DistinctValues returned error: %v", err)
	}
	if want := []string{"1.8L L4", "2.0L L4"}; !reflect.DeepEqual(engines, want) {
		t.Errorf("engines for 2020 Toyota Corolla = %v, want %v", engines, want)
	}
}

func TestDistinctValuesNoMatches(t *testing.T) {
	svc := NewVehicleService(selectorFixture())

	models, err := svc.DistinctValues(context.Background(), model.FieldModel, model.VehicleFilter{Year: 1999})
	if err != nil {
		t.Fatalf("DistinctValues returned error: %v", err)
	}
	if len(models) != 0 {
		t.Errorf("models for 1999 = %v, want empty", models)
	}
	if models == nil {
		t.Error("want empty slice, got nil")
	}
}

func TestDistinctValuesUnknownField(t *testing.T) {
	svc := NewVehicleService(selectorFixture())

	_, err := svc.DistinctValues(context.Background(), model.VehicleField("color"), model.VehicleFilter{})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("unknown field returned %v, want ErrValidation", err)
	}
}

func TestCreateVehicleValidation(t *testing.T) {
	store := selectorFixture()
	svc := NewVehicleService(store)
	ctx := context.Background()

	tests := []struct {
		name    string
		vehicle model.Vehicle
	}{
		{"missing year", model.Vehicle{Make: "Toyota", Model: "Corolla"}},
		{"missing make", model.Vehicle{Year: 2020, Model: "Corolla"}},
		{"missing model", model.Vehicle{Year: 2020, Make: "Toyota"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.vehicle
			if err := svc.Create(ctx, &v); !errors.Is(err, model.ErrValidation) {
				t.Errorf("Create(%+v) returned %v, want ErrValidation", tt.vehicle, err)
			}
		})
	}
	if len(store.created) != 0 {
		t.Errorf("invalid vehicles reached the store: %v", store.created)
	}

	valid := model.Vehicle{Year: 2021, Make: "Mazda", Model: "3", Engine: "2.5L L4"}
	if err := svc.Create(ctx, &valid); err != nil {
		t.Fatalf("Create(valid) returned error: %v", err)
	}
	if valid.ID == 0 {
		t.Error("Create did not assign an id")
	}
}

func TestUpdateVehicleValidation(t *testing.T) {
	store := selectorFixture()
	svc := NewVehicleService(store)

	bad := model.Vehicle{Make: "Toyota"}
	if err := svc.Update(context.Background(), 1, &bad); !errors.Is(err, model.ErrValidation) {
		t.Errorf("Update returned %v, want ErrValidation", err)
	}
	if len(store.updated) != 0 {
		t.Errorf("invalid update reached the store: %v", store.updated)
	}
}
