package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/movies-api/internal/model/movie"
)

// DBTX is the subset of pgxpool.Pool (or pgx.Tx) the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type MovieRepository struct {
	db DBTX
}

func NewMovieRepository(db DBTX) *MovieRepository {
	return &MovieRepository{db: db}
}

const movieColumns = `id, title, description, release, created_at`

// ListMovies returns every movie ordered by id. It never returns nil.
func (r *MovieRepository) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	stmt := `SELECT ` + movieColumns + ` FROM movies ORDER BY id`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list movies query: %w", err)
	}

	movies, err := pgx.CollectRows(rows, pgx.RowToStructByName[movie.Movie])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:movies: %w", err)
	}

	if movies == nil {
		movies = []movie.Movie{}
	}

	return movies, nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, payload *movie.CreateMovieRequest) (*movie.Movie, error) {
	stmt := `
		INSERT INTO movies (title, description, release)
		VALUES (@title, @description, @release)
		RETURNING ` + movieColumns

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{
		"title":       payload.Title,
		"description": payload.Description,
		"release":     payload.Release,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create movie query for title=%q: %w", payload.Title, err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[movie.Movie])
	if err != nil {
		return nil, fmt.Errorf("failed to collect created row for title=%q from table:movies: %w", payload.Title, err)
	}

	return &created, nil
}

func (r *MovieRepository) GetMovieByID(ctx context.Context, id int64) (*movie.Movie, error) {
	stmt := `SELECT ` + movieColumns + ` FROM movies WHERE id = @id`

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get movie query for id=%d: %w", id, err)
	}

	found, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[movie.Movie])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row for id=%d from table:movies: %w", id, err)
	}

	return &found, nil
}

// UpdateMovie applies patch in a single statement and returns the merged
// row. Nil patch fields keep their stored value.
func (r *MovieRepository) UpdateMovie(ctx context.Context, id int64, patch movie.Patch) (*movie.Movie, error) {
	stmt := `
		UPDATE movies
		SET
			title = COALESCE(@title, title),
			description = COALESCE(@description, description),
			release = COALESCE(@release, release)
		WHERE id = @id
		RETURNING ` + movieColumns

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{
		"id":          id,
		"title":       patch.Title,
		"description": patch.Description,
		"release":     patch.Release,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update movie query for id=%d: %w", id, err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[movie.Movie])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row for id=%d from table:movies: %w", id, err)
	}

	return &updated, nil
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	stmt := `DELETE FROM movies WHERE id = @id`

	tag, err := r.db.Exec(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete movie query for id=%d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete movie id=%d table:movies: %w", id, pgx.ErrNoRows)
	}

	return nil
}
