package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwaters/ec-api/internal/models"
)

// OrdersRepository performs database operations on the orders table and
// the order_product association table.
type OrdersRepository struct {
	db *pgxpool.Pool
}

func NewOrdersRepository(db *pgxpool.Pool) *OrdersRepository {
	return &OrdersRepository{db: db}
}

// Create inserts an order for a user and fills in the generated id and
// order date. A foreign key violation on user_id surfaces as a
// *pgconn.PgError for the caller to classify.
func (r *OrdersRepository) Create(ctx context.Context, o *models.Order) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO orders (user_id)
		VALUES ($1)
		RETURNING id, order_date`, o.UserID).
		Scan(&o.ID, &o.OrderDate)
}

// GetByID returns one order without its products, or ErrNotFound.
func (r *OrdersRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, order_date
		FROM orders
		WHERE id = $1`, id).
		Scan(&o.ID, &o.UserID, &o.OrderDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// ListByUser returns all orders of a user, each populated with its
// products. Products are fetched in a single second query and grouped
// in memory to avoid a query per order.
func (r *OrdersRepository) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, order_date
		FROM orders
		WHERE user_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	orderIDs := make([]int64, 0)
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.OrderDate); err != nil {
			return nil, err
		}
		o.Products = []models.Product{}
		orders = append(orders, o)
		orderIDs = append(orderIDs, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	productRows, err := r.db.Query(ctx, `
		SELECT op.order_id, p.id, p.product_name, p.price
		FROM order_product op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = ANY($1)
		ORDER BY op.order_id, p.id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer productRows.Close()

	byOrder := make(map[int64][]models.Product, len(orders))
	for productRows.Next() {
		var orderID int64
		var p models.Product
		if err := productRows.Scan(&orderID, &p.ID, &p.ProductName, &p.Price); err != nil {
			return nil, err
		}
		byOrder[orderID] = append(byOrder[orderID], p)
	}
	if err := productRows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if products, ok := byOrder[orders[i].ID]; ok {
			orders[i].Products = products
		}
	}
	return orders, nil
}

// ListProducts returns the products associated with one order.
func (r *OrdersRepository) ListProducts(ctx context.Context, orderID int64) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.product_name, p.price
		FROM order_product op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1
		ORDER BY p.id`, orderID)
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

// HasProduct reports whether a product is already associated with an
// order.
func (r *OrdersRepository) HasProduct(ctx context.Context, orderID, productID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM order_product
			WHERE order_id = $1 AND product_id = $2
		)`, orderID, productID).
		Scan(&exists)
	return exists, err
}

// AddProduct associates a product with an order. A duplicate pair
// violates the composite primary key and surfaces as a
// *pgconn.PgError.
func (r *OrdersRepository) AddProduct(ctx context.Context, orderID, productID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO order_product (order_id, product_id)
		VALUES ($1, $2)`, orderID, productID)
	return err
}

// RemoveProduct removes a product from an order, or returns ErrNotFound
// when the pair is not associated.
func (r *OrdersRepository) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM order_product
		WHERE order_id = $1 AND product_id = $2`, orderID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
