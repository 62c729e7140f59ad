package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mwaters/ec-api/internal/models"
	"github.com/mwaters/ec-api/internal/server"
	"github.com/mwaters/ec-api/internal/service"
	"github.com/mwaters/ec-api/internal/validation"
)

// ListProductsRequest has no inputs.
type ListProductsRequest struct{}

func (r *ListProductsRequest) Validate() error { return nil }

// GetProductRequest identifies a product by path parameter.
type GetProductRequest struct {
	ID int64 `param:"id"`
}

func (r *GetProductRequest) Validate() error { return validation.Struct(r) }

// CreateProductRequest is the payload for creating a product. Price is
// a pointer so an explicit zero passes the required check; negative
// prices are rejected here and backstopped by the table check
// constraint.
type CreateProductRequest struct {
	ProductName string   `json:"product_name" validate:"required,max=200"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

func (r *CreateProductRequest) Validate() error { return validation.Struct(r) }

// UpdateProductRequest is the payload for replacing a product's fields.
type UpdateProductRequest struct {
	ID          int64    `param:"id"`
	ProductName string   `json:"product_name" validate:"required,max=200"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

func (r *UpdateProductRequest) Validate() error { return validation.Struct(r) }

// DeleteProductRequest identifies a product by path parameter.
type DeleteProductRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteProductRequest) Validate() error { return validation.Struct(r) }

// ProductsHandler serves the /products endpoints.
type ProductsHandler struct {
	Handler
	products *service.ProductsService
}

func NewProductsHandler(s *server.Server, products *service.ProductsService) *ProductsHandler {
	return &ProductsHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

func (h *ProductsHandler) List(c echo.Context, req *ListProductsRequest) ([]models.Product, error) {
	return h.products.List(c.Request().Context())
}

func (h *ProductsHandler) Get(c echo.Context, req *GetProductRequest) (*models.Product, error) {
	return h.products.Get(c.Request().Context(), req.ID)
}

func (h *ProductsHandler) Create(c echo.Context, req *CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ProductName: req.ProductName,
		Price:       *req.Price,
	}
	return h.products.Create(c.Request().Context(), product)
}

func (h *ProductsHandler) Update(c echo.Context, req *UpdateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ID:          req.ID,
		ProductName: req.ProductName,
		Price:       *req.Price,
	}
	return h.products.Update(c.Request().Context(), product)
}

func (h *ProductsHandler) Delete(c echo.Context, req *DeleteProductRequest) (*MessageResponse, error) {
	if err := h.products.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{
		Message: "Successfully deleted product " + formatID(req.ID),
	}, nil
}
