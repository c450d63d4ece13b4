package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/movies-api/internal/model/movie"
	"github.com/deppfellow/movies-api/internal/sqlerr"
)

// MovieRepository is the storage the movie service needs.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]movie.Movie, error)
	CreateMovie(ctx context.Context, payload *movie.CreateMovieRequest) (*movie.Movie, error)
	GetMovieByID(ctx context.Context, id int64) (*movie.Movie, error)
	UpdateMovie(ctx context.Context, id int64, patch movie.Patch) (*movie.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// EventPublisher receives movie lifecycle events.
type EventPublisher interface {
	PublishMovieEvent(ctx context.Context, kind movie.EventKind, m movie.Movie) error
}

type MovieService struct {
	repo   MovieRepository
	events EventPublisher
	logger *zerolog.Logger
}

// NewMovieService creates the service. events may be nil.
func NewMovieService(repo MovieRepository, events EventPublisher, logger *zerolog.Logger) *MovieService {
	return &MovieService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// log prefers the request-scoped logger carried by ctx.
func (s *MovieService) log(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() != zerolog.Disabled || s.logger == nil {
		return l
	}
	return s.logger
}

func (s *MovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	movies, err := s.repo.ListMovies(ctx)
	if err != nil {
		s.log(ctx).Error().Err(err).Msg("failed to list movies")
		return nil, err
	}

	return movies, nil
}

func (s *MovieService) CreateMovie(ctx context.Context, payload *movie.CreateMovieRequest) (*movie.Movie, error) {
	created, err := s.repo.CreateMovie(ctx, payload)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("title", payload.Title).Msg("failed to create movie")
		return nil, err
	}

	s.log(ctx).Info().
		Int64("movie_id", created.ID).
		Str("title", created.Title).
		Msg("movie created")

	s.publish(ctx, movie.EventCreated, *created)

	return created, nil
}

// GetMovie returns the movie with id, or the movie not-found error.
func (s *MovieService) GetMovie(ctx context.Context, id int64) (*movie.Movie, error) {
	if !movie.ValidID(id) {
		return nil, movie.NotFoundError()
	}

	found, err := s.repo.GetMovieByID(ctx, id)
	if err != nil {
		return nil, s.notFoundOr(ctx, id, err, "failed to get movie")
	}

	return found, nil
}

// UpdateMovie applies patch to the movie with id and returns the merged
// movie. An empty patch returns the stored movie unchanged.
func (s *MovieService) UpdateMovie(ctx context.Context, id int64, patch movie.Patch) (*movie.Movie, error) {
	if !movie.ValidID(id) {
		return nil, movie.NotFoundError()
	}

	if patch.Empty() {
		return s.GetMovie(ctx, id)
	}

	updated, err := s.repo.UpdateMovie(ctx, id, patch)
	if err != nil {
		return nil, s.notFoundOr(ctx, id, err, "failed to update movie")
	}

	s.log(ctx).Info().Int64("movie_id", id).Msg("movie updated")

	s.publish(ctx, movie.EventUpdated, *updated)

	return updated, nil
}

// DeleteMovie removes the movie with id. Deleting a missing movie is a
// not-found error.
func (s *MovieService) DeleteMovie(ctx context.Context, id int64) error {
	if !movie.ValidID(id) {
		return movie.NotFoundError()
	}

	if err := s.repo.DeleteMovie(ctx, id); err != nil {
		return s.notFoundOr(ctx, id, err, "failed to delete movie")
	}

	s.log(ctx).Info().Int64("movie_id", id).Msg("movie deleted")

	s.publish(ctx, movie.EventDeleted, movie.Movie{ID: id})

	return nil
}

func (s *MovieService) notFoundOr(ctx context.Context, id int64, err error, msg string) error {
	if sqlerr.IsNotFound(err) {
		return movie.NotFoundError()
	}

	s.log(ctx).Error().Err(err).Int64("movie_id", id).Msg(msg)
	return err
}

// publish is best effort: a failed enqueue is logged and never fails the
// request.
func (s *MovieService) publish(ctx context.Context, kind movie.EventKind, m movie.Movie) {
	if s.events == nil {
		return
	}

	if err := s.events.PublishMovieEvent(ctx, kind, m); err != nil {
		s.log(ctx).Warn().
			Err(err).
			Str("event", string(kind)).
			Int64("movie_id", m.ID).
			Msg("failed to publish movie event")
	}
}
