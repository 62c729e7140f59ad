package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwaters/ec-api/internal/models"
)

// ProductsRepository performs database operations on the products table.
type ProductsRepository struct {
	db *pgxpool.Pool
}

func NewProductsRepository(db *pgxpool.Pool) *ProductsRepository {
	return &ProductsRepository{db: db}
}

// List returns all products ordered by id.
func (r *ProductsRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_name, price
		FROM products
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.ProductName, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetByID returns one product, or ErrNotFound.
func (r *ProductsRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(ctx, `
		SELECT id, product_name, price
		FROM products
		WHERE id = $1`, id).
		Scan(&p.ID, &p.ProductName, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a product and fills in the generated id.
func (r *ProductsRepository) Create(ctx context.Context, p *models.Product) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO products (product_name, price)
		VALUES ($1, $2)
		RETURNING id`, p.ProductName, p.Price).
		Scan(&p.ID)
}

// Update overwrites all mutable columns of a product, or returns
// ErrNotFound when the id does not exist.
func (r *ProductsRepository) Update(ctx context.Context, p *models.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET product_name = $1, price = $2
		WHERE id = $3`, p.ProductName, p.Price, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product and, via cascade, its order associations.
func (r *ProductsRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
