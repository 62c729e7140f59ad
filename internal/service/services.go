package service

import (
	"github.com/mwaters/ec-api/internal/cache"
	"github.com/mwaters/ec-api/internal/lib/job"
	"github.com/mwaters/ec-api/internal/repository"
	"github.com/mwaters/ec-api/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Users    *UsersService
	Products *ProductsService
	Orders   *OrdersService
	Job      *job.JobService
}

// NewServices constructs the service container. The product cache is
// nil when Redis is not configured; services treat it as disabled.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	productCache := cache.NewProductCache(s.Redis, s.Logger)

	return &Services{
		Users:    NewUsersService(repos.Users, s.Job, s.Logger),
		Products: NewProductsService(repos.Products, productCache, s.Logger),
		Orders:   NewOrdersService(repos.Orders, repos.Users, repos.Products, s.Job, s.Logger),
		Job:      s.Job,
	}, nil
}
