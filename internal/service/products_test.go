package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaters/ec-api/internal/models"
	"github.com/mwaters/ec-api/internal/repository"
)

// fakeProductsStore is an in-memory ProductsStore.
type fakeProductsStore struct {
	products map[int64]*models.Product
	nextID   int64
}

func newFakeProductsStore() *fakeProductsStore {
	return &fakeProductsStore{products: map[int64]*models.Product{}, nextID: 1}
}

func (f *fakeProductsStore) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductsStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductsStore) Create(ctx context.Context, p *models.Product) error {
	p.ID = f.nextID
	f.nextID++
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductsStore) Update(ctx context.Context, p *models.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductsStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func newProductsFixture() (*ProductsService, *fakeProductsStore) {
	store := newFakeProductsStore()
	log := zerolog.Nop()
	// Nil cache: same degraded mode as running without Redis.
	return NewProductsService(store, nil, &log), store
}

func TestProductsCreateAndGet(t *testing.T) {
	svc, _ := newProductsFixture()

	created, err := svc.Create(context.Background(), &models.Product{
		ProductName: "Widget",
		Price:       9.99,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.ProductName)
	assert.Equal(t, 9.99, got.Price)
}

func TestProductsZeroPrice(t *testing.T) {
	svc, _ := newProductsFixture()

	created, err := svc.Create(context.Background(), &models.Product{
		ProductName: "Freebie",
		Price:       0,
	})
	require.NoError(t, err)
	assert.Zero(t, created.Price)
}

func TestProductsGetNotFound(t *testing.T) {
	svc, _ := newProductsFixture()

	_, err := svc.Get(context.Background(), 99)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Invalid product id", httpErr.Message)
}

func TestProductsListEmpty(t *testing.T) {
	svc, _ := newProductsFixture()

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductsUpdateNotFound(t *testing.T) {
	svc, _ := newProductsFixture()

	_, err := svc.Update(context.Background(), &models.Product{
		ID:          99,
		ProductName: "Widget",
		Price:       1,
	})
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestProductsDelete(t *testing.T) {
	svc, store := newProductsFixture()
	_, err := svc.Create(context.Background(), &models.Product{ProductName: "Widget", Price: 9.99})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, store.products)

	err = svc.Delete(context.Background(), 1)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
