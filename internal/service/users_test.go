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

// fakeUsersStore is an in-memory UsersStore.
type fakeUsersStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUsersStore() *fakeUsersStore {
	return &fakeUsersStore{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUsersStore) add(u *models.User) *models.User {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return u
}

func (f *fakeUsersStore) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsersStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsersStore) Create(ctx context.Context, u *models.User) error {
	f.add(u)
	return nil
}

func (f *fakeUsersStore) Update(ctx context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsersStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func newUsersFixture() (*UsersService, *fakeUsersStore) {
	store := newFakeUsersStore()
	log := zerolog.Nop()
	return NewUsersService(store, nil, &log), store
}

func TestUsersListEmpty(t *testing.T) {
	svc, _ := newUsersFixture()

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUsersCreateAndGet(t *testing.T) {
	svc, _ := newUsersFixture()

	created, err := svc.Create(context.Background(), &models.User{
		Name:    "Jane",
		Address: "1 Main St",
		Email:   "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)
}

func TestUsersGetNotFound(t *testing.T) {
	svc, _ := newUsersFixture()

	_, err := svc.Get(context.Background(), 99)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Invalid user id", httpErr.Message)
}

func TestUsersUpdateNotFound(t *testing.T) {
	svc, _ := newUsersFixture()

	_, err := svc.Update(context.Background(), &models.User{
		ID:      99,
		Name:    "Jane",
		Address: "1 Main St",
		Email:   "jane@example.com",
	})
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestUsersUpdate(t *testing.T) {
	svc, store := newUsersFixture()
	store.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})

	updated, err := svc.Update(context.Background(), &models.User{
		ID:      1,
		Name:    "Janet",
		Address: "2 Oak Ave",
		Email:   "janet@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.Name)
	assert.Equal(t, "Janet", store.users[1].Name)
}

func TestUsersDelete(t *testing.T) {
	svc, store := newUsersFixture()
	store.add(&models.User{Name: "Jane", Address: "1 Main St", Email: "jane@example.com"})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, store.users)

	err := svc.Delete(context.Background(), 1)
	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
