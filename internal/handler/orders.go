package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/mwaters/ec-api/internal/models"
	"github.com/mwaters/ec-api/internal/server"
	"github.com/mwaters/ec-api/internal/service"
	"github.com/mwaters/ec-api/internal/validation"
)

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

func (r *CreateOrderRequest) Validate() error { return validation.Struct(r) }

// CreateOrderResponse confirms order creation.
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// ListUserOrdersRequest identifies a user by path parameter.
type ListUserOrdersRequest struct {
	UserID int64 `param:"user_id"`
}

func (r *ListUserOrdersRequest) Validate() error { return validation.Struct(r) }

// ListOrderProductsRequest identifies an order by path parameter.
type ListOrderProductsRequest struct {
	OrderID int64 `param:"order_id"`
}

func (r *ListOrderProductsRequest) Validate() error { return validation.Struct(r) }

// OrderProductRequest identifies an order–product pair by path
// parameters, shared by the add and remove association endpoints.
type OrderProductRequest struct {
	OrderID   int64 `param:"order_id"`
	ProductID int64 `param:"product_id"`
}

func (r *OrderProductRequest) Validate() error { return validation.Struct(r) }

// OrdersHandler serves the /orders endpoints.
type OrdersHandler struct {
	Handler
	orders *service.OrdersService
}

func NewOrdersHandler(s *server.Server, orders *service.OrdersService) *OrdersHandler {
	return &OrdersHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

func (h *OrdersHandler) Create(c echo.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	order, err := h.orders.Create(c.Request().Context(), req.UserID)
	if err != nil {
		return nil, err
	}
	return &CreateOrderResponse{
		Message: "Order created successfully",
		OrderID: order.ID,
	}, nil
}

func (h *OrdersHandler) ListByUser(c echo.Context, req *ListUserOrdersRequest) ([]models.Order, error) {
	return h.orders.ListByUser(c.Request().Context(), req.UserID)
}

func (h *OrdersHandler) ListProducts(c echo.Context, req *ListOrderProductsRequest) ([]models.Product, error) {
	return h.orders.ListProducts(c.Request().Context(), req.OrderID)
}

func (h *OrdersHandler) AddProduct(c echo.Context, req *OrderProductRequest) (*MessageResponse, error) {
	if err := h.orders.AddProduct(c.Request().Context(), req.OrderID, req.ProductID); err != nil {
		return nil, err
	}
	return &MessageResponse{
		Message: fmt.Sprintf("Product id %d has been added to order id %d", req.ProductID, req.OrderID),
	}, nil
}

func (h *OrdersHandler) RemoveProduct(c echo.Context, req *OrderProductRequest) (*MessageResponse, error) {
	if err := h.orders.RemoveProduct(c.Request().Context(), req.OrderID, req.ProductID); err != nil {
		return nil, err
	}
	return &MessageResponse{
		Message: fmt.Sprintf("Product id %d has been removed from order id %d", req.ProductID, req.OrderID),
	}, nil
}
