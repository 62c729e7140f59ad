package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaters/ec-api/internal/errs"
	"github.com/mwaters/ec-api/internal/models"
	"github.com/mwaters/ec-api/internal/repository"
)

// fakeOrdersStore is an in-memory OrdersStore.
type fakeOrdersStore struct {
	orders       map[int64]*models.Order
	associations map[[2]int64]bool
	products     map[int64]*models.Product
	nextID       int64
}

func newFakeOrdersStore() *fakeOrdersStore {
	return &fakeOrdersStore{
		orders:       map[int64]*models.Order{},
		associations: map[[2]int64]bool{},
		products:     map[int64]*models.Product{},
		nextID:       1,
	}
}

func (f *fakeOrdersStore) Create(ctx context.Context, o *models.Order) error {
	o.ID = f.nextID
	f.nextID++
	o.OrderDate = time.Now().UTC()
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrdersStore) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrdersStore) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			copy := *o
			copy.Products = []models.Product{}
			for pair := range f.associations {
				if pair[0] == o.ID {
					copy.Products = append(copy.Products, *f.products[pair[1]])
				}
			}
			out = append(out, copy)
		}
	}
	return out, nil
}

func (f *fakeOrdersStore) ListProducts(ctx context.Context, orderID int64) ([]models.Product, error) {
	var out []models.Product
	for pair := range f.associations {
		if pair[0] == orderID {
			out = append(out, *f.products[pair[1]])
		}
	}
	return out, nil
}

func (f *fakeOrdersStore) HasProduct(ctx context.Context, orderID, productID int64) (bool, error) {
	return f.associations[[2]int64{orderID, productID}], nil
}

func (f *fakeOrdersStore) AddProduct(ctx context.Context, orderID, productID int64) error {
	f.associations[[2]int64{orderID, productID}] = true
	return nil
}

func (f *fakeOrdersStore) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	pair := [2]int64{orderID, productID}
	if !f.associations[pair] {
		return repository.ErrNotFound
	}
	delete(f.associations, pair)
	return nil
}

// fakeProductLookup serves product existence checks from the shared map.
type fakeProductLookup struct {
	products map[int64]*models.Product
}

func (f *fakeProductLookup) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func newOrdersFixture() (*OrdersService, *fakeOrdersStore, *fakeUsersStore) {
	orders := newFakeOrdersStore()
	users := newFakeUsersStore()
	products := &fakeProductLookup{products: orders.products}
	log := zerolog.Nop()
	svc := NewOrdersService(orders, users, products, nil, &log)
	return svc, orders, users
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestOrdersCreate(t *testing.T) {
	svc, _, users := newOrdersFixture()
	users.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})

	order, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, int64(1), order.UserID)
	assert.NotZero(t, order.OrderDate)
	assert.Empty(t, order.Products)
}

func TestOrdersCreateUnknownUser(t *testing.T) {
	svc, _, _ := newOrdersFixture()

	_, err := svc.Create(context.Background(), 99)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid user id", httpErr.Message)
}

func TestOrdersListByUserEmpty(t *testing.T) {
	svc, _, users := newOrdersFixture()
	users.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})

	_, err := svc.ListByUser(context.Background(), 1)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "No orders found under user id 1", httpErr.Message)
}

func TestOrdersListByUser(t *testing.T) {
	svc, store, users := newOrdersFixture()
	users.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})
	store.products[1] = &models.Product{ID: 1, ProductName: "Widget", Price: 9.99}

	order, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, svc.AddProduct(context.Background(), order.ID, 1))

	orders, err := svc.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Products, 1)
	assert.Equal(t, "Widget", orders[0].Products[0].ProductName)
}

func TestOrdersListProductsMissingOrder(t *testing.T) {
	svc, _, _ := newOrdersFixture()

	_, err := svc.ListProducts(context.Background(), 7)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Invalid order id", httpErr.Message)
}

func TestOrdersListProductsEmpty(t *testing.T) {
	svc, _, users := newOrdersFixture()
	users.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})

	order, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.ListProducts(context.Background(), order.ID)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "No products found under order id 1", httpErr.Message)
}

func TestOrdersAddProduct(t *testing.T) {
	svc, store, users := newOrdersFixture()
	users.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})
	store.products[1] = &models.Product{ID: 1, ProductName: "Widget", Price: 9.99}

	order, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.AddProduct(context.Background(), order.ID, 1))

	products, err := svc.ListProducts(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestOrdersAddProductDuplicate(t *testing.T) {
	svc, store, users := newOrdersFixture()
	users.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})
	store.products[1] = &models.Product{ID: 1, ProductName: "Widget", Price: 9.99}

	order, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, svc.AddProduct(context.Background(), order.ID, 1))

	err = svc.AddProduct(context.Background(), order.ID, 1)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Cannot add duplicate product to an order", httpErr.Message)
}

func TestOrdersAddProductMissingProduct(t *testing.T) {
	svc, _, users := newOrdersFixture()
	users.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})

	order, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)

	err = svc.AddProduct(context.Background(), order.ID, 42)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Invalid product id", httpErr.Message)
}

func TestOrdersAddProductMissingOrder(t *testing.T) {
	svc, store, _ := newOrdersFixture()
	store.products[1] = &models.Product{ID: 1, ProductName: "Widget", Price: 9.99}

	err := svc.AddProduct(context.Background(), 42, 1)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Invalid order id", httpErr.Message)
}

func TestOrdersRemoveProductNotAssociated(t *testing.T) {
	svc, store, users := newOrdersFixture()
	users.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})
	store.products[1] = &models.Product{ID: 1, ProductName: "Widget", Price: 9.99}

	order, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)

	err = svc.RemoveProduct(context.Background(), order.ID, 1)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Product id 1 is not in order id 1", httpErr.Message)
}

func TestOrdersRemoveProduct(t *testing.T) {
	svc, store, users := newOrdersFixture()
	users.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})
	store.products[1] = &models.Product{ID: 1, ProductName: "Widget", Price: 9.99}

	order, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, svc.AddProduct(context.Background(), order.ID, 1))

	require.NoError(t, svc.RemoveProduct(context.Background(), order.ID, 1))

	exists, err := store.HasProduct(context.Background(), order.ID, 1)
	require.NoError(t, err)
	assert.False(t, exists)
}
