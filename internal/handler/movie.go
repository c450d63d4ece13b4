package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movies-api/internal/model/movie"
	"github.com/deppfellow/movies-api/internal/server"
	"github.com/deppfellow/movies-api/internal/service"
)

type MovieHandler struct {
	Handler
	movieService *service.MovieService
}

func NewMovieHandler(s *server.Server, movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{
		Handler:      NewHandler(s),
		movieService: movieService,
	}
}

func (h *MovieHandler) ListMovies(c echo.Context, _ *movie.ListMoviesRequest) ([]movie.Movie, error) {
	return h.movieService.ListMovies(c.Request().Context())
}

func (h *MovieHandler) CreateMovie(c echo.Context, req *movie.CreateMovieRequest) (*movie.Movie, error) {
	return h.movieService.CreateMovie(c.Request().Context(), req)
}

func (h *MovieHandler) GetMovie(c echo.Context, req *movie.GetMovieRequest) (*movie.Movie, error) {
	id, ok := movie.ParseID(req.ID)
	if !ok {
		return nil, movie.NotFoundError()
	}
	return h.movieService.GetMovie(c.Request().Context(), id)
}

func (h *MovieHandler) UpdateMovie(c echo.Context, req *movie.UpdateMovieRequest) (*movie.Movie, error) {
	id, ok := movie.ParseID(req.ID)
	if !ok {
		return nil, movie.NotFoundError()
	}
	return h.movieService.UpdateMovie(c.Request().Context(), id, req.Patch())
}

func (h *MovieHandler) DeleteMovie(c echo.Context, req *movie.DeleteMovieRequest) error {
	id, ok := movie.ParseID(req.ID)
	if !ok {
		return movie.NotFoundError()
	}
	return h.movieService.DeleteMovie(c.Request().Context(), id)
}
