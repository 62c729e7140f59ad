package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mwaters/ec-api/internal/handler"
)

// registerAPIRoutes maps the resource endpoints to their handlers
// through the shared typed pipeline.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	users := e.Group("/users")
	users.GET("", handler.Handle(h.Users.Handler, h.Users.List, http.StatusOK))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.Get, http.StatusOK))
	users.POST("", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated))
	users.PUT("/:id", handler.Handle(h.Users.Handler, h.Users.Update, http.StatusOK))
	users.DELETE("/:id", handler.Handle(h.Users.Handler, h.Users.Delete, http.StatusOK))

	products := e.Group("/products")
	products.GET("", handler.Handle(h.Products.Handler, h.Products.List, http.StatusOK))
	products.GET("/:id", handler.Handle(h.Products.Handler, h.Products.Get, http.StatusOK))
	products.POST("", handler.Handle(h.Products.Handler, h.Products.Create, http.StatusCreated))
	products.PUT("/:id", handler.Handle(h.Products.Handler, h.Products.Update, http.StatusOK))
	products.DELETE("/:id", handler.Handle(h.Products.Handler, h.Products.Delete, http.StatusOK))

	orders := e.Group("/orders")
	orders.POST("", handler.Handle(h.Orders.Handler, h.Orders.Create, http.StatusCreated))
	orders.GET("/user/:user_id", handler.Handle(h.Orders.Handler, h.Orders.ListByUser, http.StatusOK))
	orders.GET("/:order_id/products", handler.Handle(h.Orders.Handler, h.Orders.ListProducts, http.StatusOK))
	orders.POST("/:order_id/add_product/:product_id", handler.Handle(h.Orders.Handler, h.Orders.AddProduct, http.StatusOK))
	orders.DELETE("/:order_id/remove_product/:product_id", handler.Handle(h.Orders.Handler, h.Orders.RemoveProduct, http.StatusOK))
}
