package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("Invalid user id", nil, nil)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "Invalid user id", err.Message)

	code := "USER_ALREADY_EXISTS"
	err = NewBadRequestError("A User with this Email already exists", &code, nil)
	assert.Equal(t, "USER_ALREADY_EXISTS", err.Code)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Invalid order id", nil)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("price must be positive"))
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: price must be positive", err.Message)
	assert.Equal(t, "BAD_REQUEST", err.Code)
}

func TestHTTPErrorIs(t *testing.T) {
	err := NewNotFoundError("gone", nil)
	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("original", nil, []FieldError{{Field: "email", Error: "is required"}})
	copy := base.WithMessage("replaced")

	assert.Equal(t, "replaced", copy.Message)
	assert.Equal(t, base.Code, copy.Code)
	assert.Equal(t, base.Errors, copy.Errors)
	assert.Equal(t, "original", base.Message)
}
