package model

import "time"

// Vehicle represents one YMME (year/make/model/engine) catalog entry.
type Vehicle struct {
	ID                int       `json:"id"`
	Year              int       `json:"year" csv:"year"`
	Make              string    `json:"make" csv:"make"`
	Model             string    `json:"model" csv:"model"`
	Submodel          string    `json:"submodel,omitempty" csv:"submodel"`
	Engine            string    `json:"engine,omitempty" csv:"engine"`
	Transmission      string    `json:"transmission,omitempty" csv:"transmission"`
	Trim              string    `json:"trim,omitempty" csv:"trim"`
	BodyType          string    `json:"bodyType,omitempty" csv:"body_type"`
	FuelType          string    `json:"fuelType,omitempty" csv:"fuel_type"`
	CylinderCount     int       `json:"cylinderCount,omitempty" csv:"cylinder_count"`
	Displacement      string    `json:"displacement,omitempty" csv:"displacement"`
	DriveType         string    `json:"driveType,omitempty" csv:"drive_type"`
	OriginCountry     string    `json:"originCountry,omitempty" csv:"origin_country"`
	IsImported        bool      `json:"isImported,omitempty" csv:"is_imported"`
	AvailableInMexico bool      `json:"availableInMexico" csv:"available_in_mexico"`
	MexicanName       string    `json:"mexicanName,omitempty" csv:"mexican_name"`
	CreatedAt         time.Time `json:"createdAt,omitempty" csv:"-"`
	UpdatedAt         time.Time `json:"updatedAt,omitempty" csv:"-"`
}

// VehicleFilter narrows a vehicle listing. Zero values are wildcards: a field
// left at its zero value does not constrain the result, every set field is an
// exact-match AND predicate.
type VehicleFilter struct {
	Year   int
	Make   string
	Model  string
	Engine string
}

// IsZero reports whether no field of the filter is set.
func (f VehicleFilter) IsZero() bool {
	return f.Year == 0 && f.Make == "" && f.Model == "" && f.Engine == ""
}

// VehicleField names a Vehicle column usable in distinct-value queries.
type VehicleField string

const (
	FieldYear   VehicleField = "year"
	FieldMake   VehicleField = "make"
	FieldModel  VehicleField = "model"
	FieldEngine VehicleField = "engine"
)
