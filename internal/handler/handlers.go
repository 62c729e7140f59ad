package handler

import (
	"github.com/mwaters/ec-api/internal/server"
	"github.com/mwaters/ec-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health   *HealthHandler
	Users    *UsersHandler
	Products *ProductsHandler
	Orders   *OrdersHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Users:    NewUsersHandler(s, services.Users),
		Products: NewProductsHandler(s, services.Products),
		Orders:   NewOrdersHandler(s, services.Orders),
	}
}
