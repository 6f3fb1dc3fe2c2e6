package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createThingRequest struct {
	Name   string `json:"name" validate:"required,max=5"`
	UserID int64  `json:"userId" validate:"required,min=1"`
}

func (r *createThingRequest) Validate() error {
	return Struct(r)
}

type pairRequest struct {
	A int `json:"a"`
	B int `json:"b"`
}

func (r *pairRequest) Validate() error {
	if r.A > r.B {
		return CustomValidationErrors{{Field: "a", Message: "must not exceed b"}}
	}
	return nil
}

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate_OK(t *testing.T) {
	req := &createThingRequest{}
	require.NoError(t, BindAndValidate(newContext(`{"name":"abc","userId":3}`), req))
	assert.Equal(t, "abc", req.Name)
	assert.Equal(t, int64(3), req.UserID)
}

func TestBindAndValidate_FieldErrorsUseJSONNames(t *testing.T) {
	err := BindAndValidate(newContext(`{"name":"toolong"}`), &createThingRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "must not exceed 5 characters"},
		{Field: "userId", Error: "is required"},
	}, httpErr.Errors)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	err := BindAndValidate(newContext(`{"name":`), &createThingRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{"a":3,"b":1}`), &pairRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, []errs.FieldError{{Field: "a", Error: "must not exceed b"}}, httpErr.Errors)
}
