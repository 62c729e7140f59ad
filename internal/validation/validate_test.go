package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaters/ec-api/internal/errs"
)

type createUserPayload struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"required,max=500"`
	Email   string `json:"email" validate:"required,email,max=200"`
}

func (p *createUserPayload) Validate() error { return Struct(p) }

type idPayload struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (p *idPayload) Validate() error { return Struct(p) }

func newContext(t *testing.T, method, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, http.MethodPost,
		`{"name":"Jane","address":"1 Main St","email":"jane@example.com"}`)

	payload := new(createUserPayload)
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "Jane", payload.Name)
	assert.Equal(t, "jane@example.com", payload.Email)
}

func TestBindAndValidateMissingFields(t *testing.T) {
	c := newContext(t, http.MethodPost, `{"name":"Jane"}`)

	err := BindAndValidate(c, new(createUserPayload))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 2)

	fields := []string{httpErr.Errors[0].Field, httpErr.Errors[1].Field}
	assert.Contains(t, fields, "address")
	assert.Contains(t, fields, "email")
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestBindAndValidateBadEmail(t *testing.T) {
	c := newContext(t, http.MethodPost,
		`{"name":"Jane","address":"1 Main St","email":"not-an-email"}`)

	err := BindAndValidate(c, new(createUserPayload))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
	assert.Equal(t, "must be a valid email address", httpErr.Errors[0].Error)
}

func TestBindAndValidateMaxLength(t *testing.T) {
	c := newContext(t, http.MethodPost,
		`{"name":"`+strings.Repeat("x", 201)+`","address":"1 Main St","email":"jane@example.com"}`)

	err := BindAndValidate(c, new(createUserPayload))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "must not exceed 200 characters", httpErr.Errors[0].Error)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(t, http.MethodPost, `{"name":`)

	err := BindAndValidate(c, new(createUserPayload))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid request body", httpErr.Message)
}

func TestBindAndValidatePathParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	payload := new(idPayload)
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, int64(42), payload.ID)
}

func TestBindAndValidateNonNumericParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := BindAndValidate(c, new(idPayload))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Invalid request body", httpErr.Message)
}
