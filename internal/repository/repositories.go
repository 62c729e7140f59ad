package repository

import (
	"github.com/mwaters/ec-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users    *UsersRepository
	Products *ProductsRepository
	Orders   *OrdersRepository
}

// NewRepositories constructs the repository container from the shared
// database pool on the application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:    NewUsersRepository(s.DB.Pool),
		Products: NewProductsRepository(s.DB.Pool),
		Orders:   NewOrdersRepository(s.DB.Pool),
	}
}
