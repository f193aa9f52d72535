package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"autologic-fitment-api/internal/model"
)

type VehicleRepo struct {
	db *pgxpool.Pool
}

func NewVehicleRepo(db *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{db: db}
}

const vehicleColumns = `
	id, year, make, model,
	COALESCE(submodel, ''), COALESCE(engine, ''), COALESCE(transmission, ''),
	COALESCE(trim, ''), COALESCE(body_type, ''), COALESCE(fuel_type, ''),
	COALESCE(cylinder_count, 0), COALESCE(displacement, ''), COALESCE(drive_type, ''),
	COALESCE(origin_country, ''), is_imported, available_in_mexico,
	COALESCE(mexican_name, ''), created_at, updated_at`

func scanVehicle(row pgx.Row) (model.Vehicle, error) {
	var v model.Vehicle
	err := row.Scan(
		&v.ID, &v.Year, &v.Make, &v.Model,
		&v.Submodel, &v.Engine, &v.Transmission,
		&v.Trim, &v.BodyType, &v.FuelType,
		&v.CylinderCount, &v.Displacement, &v.DriveType,
		&v.OriginCountry, &v.IsImported, &v.AvailableInMexico,
		&v.MexicanName, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

// List returns vehicles matching the filter. Set fields are exact-match AND
// predicates; zero-value fields do not constrain the result.
func (r *VehicleRepo) List(ctx context.Context, f model.VehicleFilter) ([]model.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`

	args := []interface{}{}
	argIndex := 1

	if f.Year != 0 {
		query += fmt.Sprintf(` AND year = $%d`, argIndex)
		args = append(args, f.Year)
		argIndex++
	}
	if f.Make != "" {
		query += fmt.Sprintf(` AND make = $%d`, argIndex)
		args = append(args, f.Make)
		argIndex++
	}
	if f.Model != "" {
		query += fmt.Sprintf(` AND model = $%d`, argIndex)
		args = append(args, f.Model)
		argIndex++
	}
	if f.Engine != "" {
		query += fmt.Sprintf(` AND engine = $%d`, argIndex)
		args = append(args, f.Engine)
		argIndex++
	}

	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []model.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

func (r *VehicleRepo) GetByID(ctx context.Context, id int) (*model.Vehicle, error) {
	row := r.db.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("vehicle %d: %w", id, model.ErrNotFound)
		}
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	query := `
		INSERT INTO vehicles (
			year, make, model, submodel, engine, transmission, trim,
			body_type, fuel_type, cylinder_count, displacement, drive_type,
			origin_country, is_imported, available_in_mexico, mexican_name
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		v.Year, v.Make, v.Model, v.Submodel, v.Engine, v.Transmission, v.Trim,
		v.BodyType, v.FuelType, v.CylinderCount, v.Displacement, v.DriveType,
		v.OriginCountry, v.IsImported, v.AvailableInMexico, v.MexicanName,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

func (r *VehicleRepo) Update(ctx context.Context, id int, v *model.Vehicle) error {
	query := `
		UPDATE vehicles SET
			year = $1, make = $2, model = $3, submodel = $4, engine = $5,
			transmission = $6, trim = $7, body_type = $8, fuel_type = $9,
			cylinder_count = $10, displacement = $11, drive_type = $12,
			origin_country = $13, is_imported = $14, available_in_mexico = $15,
			mexican_name = $16, updated_at = NOW()
		WHERE id = $17
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		v.Year, v.Make, v.Model, v.Submodel, v.Engine, v.Transmission, v.Trim,
		v.BodyType, v.FuelType, v.CylinderCount, v.Displacement, v.DriveType,
		v.OriginCountry, v.IsImported, v.AvailableInMexico, v.MexicanName, id,
	).Scan(&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("vehicle %d: %w", id, model.ErrNotFound)
		}
		return err
	}
	v.ID = id
	return nil
}

// Delete removes the vehicle row only. Compatibility records pointing at it
// are left in place and dropped at read time (soft-orphan).
func (r *VehicleRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %d: %w", id, model.ErrNotFound)
	}
	return nil
}
