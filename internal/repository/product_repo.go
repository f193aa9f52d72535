package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"autologic-fitment-api/internal/model"
)

type ProductRepo struct {
	db *pgxpool.Pool
}

func NewProductRepo(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `
	id, sku, title, description, price, brand, category,
	stock, in_stock, images, created_at, updated_at`

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Title, &p.Description, &p.Price, &p.Brand, &p.Category,
		&p.Stock, &p.InStock, &p.Images, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *ProductRepo) GetByID(ctx context.Context, id int) (*model.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, model.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

// GetByIDs fetches products for a set of ids. Ids that do not resolve are
// simply absent from the result.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []int) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (sku, title, description, price, brand, category, stock, in_stock, images)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		p.SKU, p.Title, p.Description, p.Price, p.Brand, p.Category, p.Stock, p.InStock, p.Images,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}
