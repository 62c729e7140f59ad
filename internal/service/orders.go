package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mwaters/ec-api/internal/errs"
	"github.com/mwaters/ec-api/internal/lib/job"
	"github.com/mwaters/ec-api/internal/models"
	"github.com/mwaters/ec-api/internal/repository"
)

// OrdersStore is the repository surface the orders service depends on.
type OrdersStore interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Order, error)
	ListProducts(ctx context.Context, orderID int64) ([]models.Product, error)
	HasProduct(ctx context.Context, orderID, productID int64) (bool, error)
	AddProduct(ctx context.Context, orderID, productID int64) error
	RemoveProduct(ctx context.Context, orderID, productID int64) error
}

// OrderProductsStore is the product lookup the orders service uses for
// association existence checks.
type OrderProductsStore interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// OrdersService implements order management and the order–product
// association rules.
type OrdersService struct {
	repo     OrdersStore
	users    UsersStore
	products OrderProductsStore
	jobs     *job.JobService
	logger   *zerolog.Logger
}

func NewOrdersService(repo OrdersStore, users UsersStore, products OrderProductsStore, jobs *job.JobService, logger *zerolog.Logger) *OrdersService {
	return &OrdersService{
		repo:     repo,
		users:    users,
		products: products,
		jobs:     jobs,
		logger:   logger,
	}
}

// Create places an order for a user. A nonexistent user is a client
// mistake in the request body, so it is a 400, not a 404. On success an
// order confirmation email is enqueued fire-and-forget.
func (s *OrdersService) Create(ctx context.Context, userID int64) (*models.Order, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewBadRequestError("Invalid user id", nil, nil)
		}
		return nil, err
	}

	order := &models.Order{UserID: userID}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	order.Products = []models.Product{}

	if err := s.jobs.EnqueueOrderConfirmation(user.Email, user.Name, order.ID); err != nil {
		s.logger.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to enqueue order confirmation email")
	}

	return order, nil
}

// ListByUser returns all orders of a user with their products. A user
// with no orders yields a 404 with the documented message.
func (s *OrdersService) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewNotFoundError(fmt.Sprintf("No orders found under user id %d", userID), nil)
	}
	return orders, nil
}

// ListProducts returns the products of one order. A missing order is a
// 404 "Invalid order id"; an order with no products is a 404 with the
// documented message.
func (s *OrdersService) ListProducts(ctx context.Context, orderID int64) ([]models.Product, error) {
	if _, err := s.repo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError("Invalid order id", nil)
		}
		return nil, err
	}

	products, err := s.repo.ListProducts(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errs.NewNotFoundError(fmt.Sprintf("No products found under order id %d", orderID), nil)
	}
	return products, nil
}

// AddProduct associates a product with an order. The product is checked
// before the order, and a duplicate association is a 400.
func (s *OrdersService) AddProduct(ctx context.Context, orderID, productID int64) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewNotFoundError("Invalid product id", nil)
		}
		return err
	}

	if _, err := s.repo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewNotFoundError("Invalid order id", nil)
		}
		return err
	}

	exists, err := s.repo.HasProduct(ctx, orderID, productID)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewBadRequestError("Cannot add duplicate product to an order", nil, nil)
	}

	// The composite primary key still backstops a concurrent duplicate
	// insert; that race surfaces through the sql error funnel.
	return s.repo.AddProduct(ctx, orderID, productID)
}

// RemoveProduct dissociates a product from an order. Removing a product
// that is not in the order is a 400 with the documented message.
func (s *OrdersService) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewNotFoundError("Invalid product id", nil)
		}
		return err
	}

	if _, err := s.repo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewNotFoundError("Invalid order id", nil)
		}
		return err
	}

	if err := s.repo.RemoveProduct(ctx, orderID, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewBadRequestError(
				fmt.Sprintf("Product id %d is not in order id %d", productID, orderID), nil, nil)
		}
		return err
	}
	return nil
}
