package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaters/ec-api/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "users_email_key"`,
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        `insert or update on table "orders" violates foreign key constraint "orders_user_id_fkey"`,
		TableName:      "orders",
		ConstraintName: "orders_user_id_fkey",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ORDER_NOT_FOUND", httpErr.Code)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		Message:    `null value in column "product_name" violates not-null constraint`,
		TableName:  "products",
		ColumnName: "product_name",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PRODUCT_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Product Name is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "product_name", httpErr.Errors[0].Field)
}

func TestHandleErrorCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23514",
		Message:        `new row for relation "products" violates check constraint "products_price_check"`,
		TableName:      "products",
		ConstraintName: "products_price_check",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PRODUCT_INVALID", httpErr.Code)
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorPassthrough(t *testing.T) {
	original := errs.NewNotFoundError("Invalid user id", nil)

	assert.Same(t, original, HandleError(original).(*errs.HTTPError))
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestHandleErrorUnknownPgError(t *testing.T) {
	// A syntax error must not leak SQL details to the client.
	pgErr := &pgconn.PgError{Severity: "ERROR", Code: "42601", Message: "syntax error"}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "syntax")
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"users_email_key", "email"},
		{"unique_users_email", "email"},
		{"order_product_pkey", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractColumnForUniqueViolation(tt.constraint), tt.constraint)
	}
}
