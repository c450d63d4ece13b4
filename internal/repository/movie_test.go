package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/movies-api/internal/database"
	"github.com/deppfellow/movies-api/internal/model/movie"
	"github.com/deppfellow/movies-api/internal/sqlerr"
)

// TestDatabaseURLEnv points the repository tests at a disposable database.
const TestDatabaseURLEnv = "MOVIES_TEST_DATABASE_URL"

func setupMovieRepository(t *testing.T) *MovieRepository {
	t.Helper()

	dsn := os.Getenv(TestDatabaseURLEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping repository tests", TestDatabaseURLEnv)
	}

	ctx := context.Background()
	logger := zerolog.Nop()
	require.NoError(t, database.MigrateWithDSN(ctx, &logger, dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE movies RESTART IDENTITY`)
	require.NoError(t, err)

	return NewMovieRepository(pool)
}

func strPtr(s string) *string { return &s }

func TestMovieRepository_CRUD(t *testing.T) {
	repo := setupMovieRepository(t)
	ctx := context.Background()

	movies, err := repo.ListMovies(ctx)
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)

	created, err := repo.CreateMovie(ctx, &movie.CreateMovieRequest{
		Title:       "Movie Title",
		Description: "Movie Description",
		Release:     "20/06/2002",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "20/06/2002", created.Release)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.GetMovieByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, found.Title)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt))

	updated, err := repo.UpdateMovie(ctx, created.ID, movie.Patch{Title: strPtr("Update Movie Title")})
	require.NoError(t, err)
	assert.Equal(t, "Update Movie Title", updated.Title)
	assert.Equal(t, "Movie Description", updated.Description)
	assert.Equal(t, "20/06/2002", updated.Release)

	unchanged, err := repo.UpdateMovie(ctx, created.ID, movie.Patch{})
	require.NoError(t, err)
	assert.Equal(t, updated.Title, unchanged.Title)

	movies, err = repo.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 1)

	require.NoError(t, repo.DeleteMovie(ctx, created.ID))

	_, err = repo.GetMovieByID(ctx, created.ID)
	assert.True(t, sqlerr.IsNotFound(err))
}

func TestMovieRepository_MissingRows(t *testing.T) {
	repo := setupMovieRepository(t)
	ctx := context.Background()

	_, err := repo.GetMovieByID(ctx, 999)
	assert.True(t, sqlerr.IsNotFound(err))

	_, err = repo.UpdateMovie(ctx, 999, movie.Patch{Title: strPtr("X")})
	assert.True(t, sqlerr.IsNotFound(err))

	err = repo.DeleteMovie(ctx, 999)
	assert.True(t, sqlerr.IsNotFound(err))
}

func TestMovieRepository_ListOrdersByID(t *testing.T) {
	repo := setupMovieRepository(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := repo.CreateMovie(ctx, &movie.CreateMovieRequest{
			Title:       title,
			Description: "Description",
			Release:     "2002",
		})
		require.NoError(t, err)
	}

	movies, err := repo.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, "First", movies[0].Title)
	assert.Equal(t, "Third", movies[2].Title)
	assert.Less(t, movies[0].ID, movies[1].ID)
}

func TestMovieRepository_DescriptionTooLong(t *testing.T) {
	repo := setupMovieRepository(t)

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}

	_, err := repo.CreateMovie(context.Background(), &movie.CreateMovieRequest{
		Title:       "Title",
		Description: string(long),
		Release:     "2002",
	})
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, sqlerr.StringTooLong, sqlerr.ConvertPgError(pgErr).Code)
}
