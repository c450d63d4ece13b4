package movie

import "github.com/deppfellow/movies-api/internal/validation"

// ListMoviesRequest has no inputs.
type ListMoviesRequest struct{}

func (r *ListMoviesRequest) Validate() error {
	return nil
}

// CreateMovieRequest is the body of POST /movies.
type CreateMovieRequest struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank,max=200"`
	Release     string `json:"release" validate:"required,release"`
}

func (r *CreateMovieRequest) Validate() error {
	return validation.Struct(r)
}

// GetMovieRequest identifies a movie by path id. Unparsable ids are a
// not-found, not a validation failure.
type GetMovieRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *GetMovieRequest) Validate() error {
	return nil
}

// UpdateMovieRequest is the body of PUT /movies/:id. Every field is
// optional but must be valid when present.
type UpdateMovieRequest struct {
	ID          string  `param:"id" json:"-"`
	Title       *string `json:"title" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank,max=200"`
	Release     *string `json:"release" validate:"omitempty,release"`
}

func (r *UpdateMovieRequest) Validate() error {
	return validation.Struct(r)
}

// Patch returns the requested changes.
func (r *UpdateMovieRequest) Patch() Patch {
	return Patch{
		Title:       r.Title,
		Description: r.Description,
		Release:     r.Release,
	}
}

// DeleteMovieRequest identifies the movie to delete.
type DeleteMovieRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *DeleteMovieRequest) Validate() error {
	return nil
}
