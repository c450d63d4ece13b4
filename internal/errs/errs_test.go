package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Movie not found", false, nil)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)

	code := "MOVIE_NOT_FOUND"
	err = NewNotFoundError("Movie not found", false, &code)
	assert.Equal(t, "MOVIE_NOT_FOUND", err.Code)
	assert.Equal(t, "Movie not found", err.Error())
}

func TestNewBadRequestError(t *testing.T) {
	fields := []FieldError{{Field: "title", Error: "is required"}}
	err := NewBadRequestError("Validation failed", true, nil, fields)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.True(t, err.Override)
	assert.Equal(t, fields, err.Errors)
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := NewTooManyRequestsError("slow down")
	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.False(t, err.Override)
}

func TestHTTPError_WithMessage(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	custom := base.WithMessage("Movie not found")

	assert.Equal(t, "Resource not found", base.Message)
	assert.Equal(t, "Movie not found", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}

func TestHTTPError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("loading movie: %w", NewNotFoundError("Movie not found", false, nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}
