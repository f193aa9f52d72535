package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the catalog tables when they do not exist yet.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS vehicles (
			id SERIAL PRIMARY KEY,
			year INTEGER NOT NULL,
			make TEXT NOT NULL,
			model TEXT NOT NULL,
			submodel TEXT,
			engine TEXT,
			transmission TEXT,
			trim TEXT,
			body_type TEXT,
			fuel_type TEXT,
			cylinder_count INTEGER,
			displacement TEXT,
			drive_type TEXT,
			origin_country TEXT,
			is_imported BOOLEAN NOT NULL DEFAULT FALSE,
			available_in_mexico BOOLEAN NOT NULL DEFAULT TRUE,
			mexican_name TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create vehicles table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_vehicles_ymme
		ON vehicles (year, make, model, engine)
	`)
	if err != nil {
		return fmt.Errorf("failed to create idx_vehicles_ymme: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			sku TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			brand TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			stock INTEGER NOT NULL DEFAULT 0,
			in_stock BOOLEAN NOT NULL DEFAULT FALSE,
			images TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}

	// No foreign keys on purpose: a deleted vehicle or product leaves its
	// compatibility rows behind, reads drop the dangling references. The
	// unique index is what makes duplicate-pair detection race-free.
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS compatibility (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL,
			vehicle_id INTEGER NOT NULL,
			notes TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create compatibility table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_compatibility_pair
		ON compatibility (product_id, vehicle_id)
	`)
	if err != nil {
		return fmt.Errorf("failed to create idx_compatibility_pair: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_compatibility_vehicle
		ON compatibility (vehicle_id)
	`)
	if err != nil {
		return fmt.Errorf("failed to create idx_compatibility_vehicle: %w", err)
	}

	return nil
}
