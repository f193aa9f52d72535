package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"autologic-fitment-api/internal/model"
)

type CompatibilityRepo struct {
	db *pgxpool.Pool
}

func NewCompatibilityRepo(db *pgxpool.Pool) *CompatibilityRepo {
	return &CompatibilityRepo{db: db}
}

// Create inserts one compatibility record. The (product_id, vehicle_id)
// uniqueness is enforced by the table's unique index, so concurrent writers
// cannot slip a duplicate past a read-then-write check.
func (r *CompatibilityRepo) Create(ctx context.Context, c *model.Compatibility) error {
	query := `
		INSERT INTO compatibility (product_id, vehicle_id, notes)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, vehicle_id) DO NOTHING
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, c.ProductID, c.VehicleID, c.Notes).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("compatibility (%d, %d): %w", c.ProductID, c.VehicleID, model.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *CompatibilityRepo) GetByID(ctx context.Context, id int) (*model.Compatibility, error) {
	var c model.Compatibility
	err := r.db.QueryRow(ctx, `
		SELECT id, product_id, vehicle_id, COALESCE(notes, ''), created_at, updated_at
		FROM compatibility WHERE id = $1
	`, id).Scan(&c.ID, &c.ProductID, &c.VehicleID, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("compatibility %d: %w", id, model.ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

// List returns compatibility records matching the filter, zero values acting
// as wildcards.
func (r *CompatibilityRepo) List(ctx context.Context, f model.CompatibilityFilter) ([]model.Compatibility, error) {
	query := `
		SELECT id, product_id, vehicle_id, COALESCE(notes, ''), created_at, updated_at
		FROM compatibility WHERE 1=1
	`

	args := []interface{}{}
	argIndex := 1

	if f.ProductID != 0 {
		query += fmt.Sprintf(` AND product_id = $%d`, argIndex)
		args = append(args, f.ProductID)
		argIndex++
	}
	if f.VehicleID != 0 {
		query += fmt.Sprintf(` AND vehicle_id = $%d`, argIndex)
		args = append(args, f.VehicleID)
		argIndex++
	}

	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Compatibility
	for rows.Next() {
		var c model.Compatibility
		if err := rows.Scan(&c.ID, &c.ProductID, &c.VehicleID, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, c)
	}

	return records, rows.Err()
}

func (r *CompatibilityRepo) Update(ctx context.Context, id int, c *model.Compatibility) error {
	err := r.db.QueryRow(ctx, `
		UPDATE compatibility
		SET product_id = $1, vehicle_id = $2, notes = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING created_at, updated_at
	`, c.ProductID, c.VehicleID, c.Notes, id).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("compatibility %d: %w", id, model.ErrNotFound)
		}
		return err
	}
	c.ID = id
	return nil
}

func (r *CompatibilityRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM compatibility WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("compatibility %d: %w", id, model.ErrNotFound)
	}
	return nil
}

// Exists reports whether a record links the product to the vehicle.
func (r *CompatibilityRepo) Exists(ctx context.Context, productID, vehicleID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM compatibility WHERE product_id = $1 AND vehicle_id = $2
		)
	`, productID, vehicleID).Scan(&exists)
	return exists, err
}
