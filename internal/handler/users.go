package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mwaters/ec-api/internal/models"
	"github.com/mwaters/ec-api/internal/server"
	"github.com/mwaters/ec-api/internal/service"
	"github.com/mwaters/ec-api/internal/validation"
)

// MessageResponse is the body of endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListUsersRequest has no inputs.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error { return nil }

// GetUserRequest identifies a user by path parameter.
type GetUserRequest struct {
	ID int64 `param:"id"`
}

func (r *GetUserRequest) Validate() error { return validation.Struct(r) }

// CreateUserRequest is the payload for creating a user. Field limits
// mirror the column sizes.
type CreateUserRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"required,max=500"`
	Email   string `json:"email" validate:"required,email,max=200"`
}

func (r *CreateUserRequest) Validate() error { return validation.Struct(r) }

// UpdateUserRequest is the payload for replacing a user's fields.
type UpdateUserRequest struct {
	ID      int64  `param:"id"`
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"required,max=500"`
	Email   string `json:"email" validate:"required,email,max=200"`
}

func (r *UpdateUserRequest) Validate() error { return validation.Struct(r) }

// DeleteUserRequest identifies a user by path parameter.
type DeleteUserRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteUserRequest) Validate() error { return validation.Struct(r) }

// UsersHandler serves the /users endpoints.
type UsersHandler struct {
	Handler
	users *service.UsersService
}

func NewUsersHandler(s *server.Server, users *service.UsersService) *UsersHandler {
	return &UsersHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UsersHandler) List(c echo.Context, req *ListUsersRequest) ([]models.User, error) {
	return h.users.List(c.Request().Context())
}

func (h *UsersHandler) Get(c echo.Context, req *GetUserRequest) (*models.User, error) {
	return h.users.Get(c.Request().Context(), req.ID)
}

func (h *UsersHandler) Create(c echo.Context, req *CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}
	return h.users.Create(c.Request().Context(), user)
}

func (h *UsersHandler) Update(c echo.Context, req *UpdateUserRequest) (*models.User, error) {
	user := &models.User{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}
	return h.users.Update(c.Request().Context(), user)
}

func (h *UsersHandler) Delete(c echo.Context, req *DeleteUserRequest) (*MessageResponse, error) {
	if err := h.users.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{
		Message: "Successfully deleted user " + formatID(req.ID),
	}, nil
}
