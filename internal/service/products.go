package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mwaters/ec-api/internal/cache"
	"github.com/mwaters/ec-api/internal/errs"
	"github.com/mwaters/ec-api/internal/models"
	"github.com/mwaters/ec-api/internal/repository"
)

// ProductsStore is the repository surface the products service depends on.
type ProductsStore interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int64) error
}

// ProductsService implements product catalog management with an
// optional Redis read-through cache in front of the repository.
type ProductsService struct {
	repo   ProductsStore
	cache  *cache.ProductCache
	logger *zerolog.Logger
}

func NewProductsService(repo ProductsStore, productCache *cache.ProductCache, logger *zerolog.Logger) *ProductsService {
	return &ProductsService{
		repo:   repo,
		cache:  productCache,
		logger: logger,
	}
}

// List returns all products, serving from the cache when possible.
func (s *ProductsService) List(ctx context.Context) ([]models.Product, error) {
	if products, ok := s.cache.GetProducts(ctx); ok {
		return products, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	s.cache.SetProducts(ctx, products)
	return products, nil
}

// Get returns one product, or a 404 when the id does not exist.
func (s *ProductsService) Get(ctx context.Context, id int64) (*models.Product, error) {
	if product, ok := s.cache.GetProduct(ctx, id); ok {
		return product, nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError("Invalid product id", nil)
		}
		return nil, err
	}

	s.cache.SetProduct(ctx, product)
	return product, nil
}

// Create persists a new product and drops the cached listing.
func (s *ProductsService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, product.ID)
	return product, nil
}

// Update overwrites a product's fields, or returns a 404 when the id
// does not exist. The cache entry is invalidated on success.
func (s *ProductsService) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError("Invalid product id", nil)
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, product.ID)
	return product, nil
}

// Delete removes a product; association rows go via the foreign key
// cascade. The cache entry is invalidated on success.
func (s *ProductsService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewNotFoundError("Invalid product id", nil)
		}
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}
