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

	"github.com/deppfellow/movies-api/internal/errs"
)

type samplePayload struct {
	ID    string `param:"id" json:"-"`
	Name  string `json:"name" validate:"required,notblank,max=5"`
	Count int    `json:"count" validate:"min=1"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "window", Message: "must end after it starts"}}
}

func newContext(method, body, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/samples/7", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c, rec
}

func requireHTTPError(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T: %v", err, err)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestIsValidRelease(t *testing.T) {
	valid := []string{"20/06/2002", "2002-06-20", "2002"}
	invalid := []string{"", "abc", "31/02/2002", "2002/06/20", "0000", "20021", "-200", " 2002 ", "2002\n"}

	for _, v := range valid {
		assert.True(t, IsValidRelease(v), v)
	}
	for _, v := range invalid {
		assert.False(t, IsValidRelease(v), v)
	}
}

func TestBindAndValidate_Success(t *testing.T) {
	c, _ := newContext(http.MethodPut, `{"id":"99","name":"abc","count":2}`, echo.MIMEApplicationJSON)

	var p samplePayload
	require.NoError(t, BindAndValidate(c, &p))
	assert.Equal(t, "7", p.ID)
	assert.Equal(t, "abc", p.Name)
	assert.Equal(t, 2, p.Count)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	c, _ := newContext(http.MethodPost, `{"name":"toolong","count":0}`, echo.MIMEApplicationJSON)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}), http.StatusBadRequest)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "must not exceed 5 characters"},
		{Field: "count", Error: "must be at least 1"},
	}, httpErr.Errors)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c, _ := newContext(http.MethodPost, `{"name":`, echo.MIMEApplicationJSON)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}), http.StatusBadRequest)
	assert.Equal(t, "Invalid request payload", httpErr.Message)
}

func TestBindAndValidate_WrongType(t *testing.T) {
	c, _ := newContext(http.MethodPost, `{"name":"ok","count":"two"}`, echo.MIMEApplicationJSON)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}), http.StatusBadRequest)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "count", Error: "has an invalid type"}}, httpErr.Errors)
}

func TestBindAndValidate_WrongTopLevelType(t *testing.T) {
	c, _ := newContext(http.MethodPost, `[1,2]`, echo.MIMEApplicationJSON)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}), http.StatusBadRequest)
	assert.Equal(t, []errs.FieldError{{Field: "body", Error: "has an invalid type"}}, httpErr.Errors)
	assert.NotContains(t, httpErr.Message, "samplePayload")
}

func TestBindAndValidate_UnsupportedMediaTypeIsBadRequest(t *testing.T) {
	c, _ := newContext(http.MethodPost, `name=abc`, "text/plain")

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}), http.StatusBadRequest)
	assert.Equal(t, []errs.FieldError{{Field: "body", Error: "must be sent as application/json"}}, httpErr.Errors)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c, _ := newContext(http.MethodGet, "", "")

	httpErr := requireHTTPError(t, BindAndValidate(c, &customPayload{}), http.StatusBadRequest)
	assert.Equal(t, []errs.FieldError{{Field: "window", Error: "must end after it starts"}}, httpErr.Errors)
}
