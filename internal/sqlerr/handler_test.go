package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/movies-api/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	code := "MOVIE_NOT_FOUND"
	original := errs.NewNotFoundError("Movie not found", false, &code)

	got := asHTTPError(t, HandleError(original))
	assert.Same(t, original, got)
}

func TestHandleError_NoRows(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "table hint",
			err:     fmt.Errorf("failed to get movie by id=3 table:movies: %w", pgx.ErrNoRows),
			message: "Movie not found",
		},
		{
			name:    "pgx without hint",
			err:     pgx.ErrNoRows,
			message: "Resource not found",
		},
		{
			name:    "database/sql",
			err:     sql.ErrNoRows,
			message: "Resource not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(tt.err))
			assert.Equal(t, http.StatusNotFound, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestHandleError_PgErrors(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		status  int
		code    string
		message string
	}{
		{
			name:    "not null",
			pgErr:   &pgconn.PgError{Code: "23502", Severity: "ERROR", TableName: "movies", ColumnName: "title"},
			status:  http.StatusBadRequest,
			code:    "MOVIE_REQUIRED",
			message: "The Title is required",
		},
		{
			name:    "unique",
			pgErr:   &pgconn.PgError{Code: "23505", Severity: "ERROR", TableName: "movies", ConstraintName: "movies_title_key"},
			status:  http.StatusBadRequest,
			code:    "MOVIE_ALREADY_EXISTS",
			message: "A Movie with this Title already exists",
		},
		{
			name:    "string too long",
			pgErr:   &pgconn.PgError{Code: "22001", Severity: "ERROR", TableName: "movies", ColumnName: "description"},
			status:  http.StatusBadRequest,
			code:    "MOVIE_INVALID",
			message: "The Description value does not meet required conditions",
		},
		{
			name:    "unknown sqlstate",
			pgErr:   &pgconn.PgError{Code: "08006", Severity: "FATAL"},
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert: %w", tt.pgErr)))
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestHandleError_NotNullFieldErrors(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "movies", ColumnName: "Release"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "release", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestHandleError_Unknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection refused")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "connection refused")
}

func TestConvertPgError(t *testing.T) {
	src := &pgconn.PgError{
		Code:       "23514",
		Severity:   "ERROR",
		Message:    "violates check constraint",
		TableName:  "movies",
		ColumnName: "title",
	}

	converted := ConvertPgError(src)
	assert.Equal(t, CheckViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, "23514", converted.DatabaseCode)
	assert.ErrorIs(t, converted, src)

	wrapped := fmt.Errorf("update: %w", converted)
	assert.Equal(t, CheckViolation, ErrCode(wrapped))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("ERROR"))
	assert.Equal(t, SeverityError, MapSeverity("unexpected"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
	assert.True(t, IsNotFound(sql.ErrNoRows))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "title", extractColumnForUniqueViolation("unique_movies_title"))
	assert.Equal(t, "title", extractColumnForUniqueViolation("movies_title_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("movies_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
