// Package movie holds the movie domain types shared by the repository,
// service and handler layers.
package movie

import (
	"math"
	"strconv"
	"time"

	"github.com/deppfellow/movies-api/internal/errs"
)

// Movie is a stored movie record.
type Movie struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Release     string    `json:"release" db:"release"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Patch holds the fields of a partial update. Nil fields are left as-is.
type Patch struct {
	Title       *string
	Description *string
	Release     *string
}

// Apply returns a copy of m with the patch applied.
func (p Patch) Apply(m Movie) Movie {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Release != nil {
		m.Release = *p.Release
	}
	return m
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Release == nil
}

// EventKind names a movie lifecycle change.
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// NotFoundCode is the error code returned when a movie does not exist.
const NotFoundCode = "MOVIE_NOT_FOUND"

// NotFoundMessage is the fixed message of a missing movie.
const NotFoundMessage = "Movie not found"

// NotFoundError returns the 404 error for a missing movie.
func NotFoundError() *errs.HTTPError {
	code := NotFoundCode
	return errs.NewNotFoundError(NotFoundMessage, false, &code)
}

// ValidID reports whether id can exist in the movies table (SERIAL).
func ValidID(id int64) bool {
	return id >= 1 && id <= math.MaxInt32
}

// ParseID parses a path id. ok is false when raw can't name a stored movie.
func ParseID(raw string) (id int64, ok bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || !ValidID(id) {
		return 0, false
	}
	return id, true
}
