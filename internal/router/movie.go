package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movies-api/internal/handler"
	"github.com/deppfellow/movies-api/internal/model/movie"
)

func registerMovieRoutes(r *echo.Echo, h *handler.Handlers) {
	movies := r.Group("/movies")

	movies.GET("", handler.Handle(
		h.Movie.Handler,
		h.Movie.ListMovies,
		http.StatusOK,
		&movie.ListMoviesRequest{},
	))

	movies.POST("", handler.Handle(
		h.Movie.Handler,
		h.Movie.CreateMovie,
		http.StatusCreated,
		&movie.CreateMovieRequest{},
	))

	movies.GET("/:id", handler.Handle(
		h.Movie.Handler,
		h.Movie.GetMovie,
		http.StatusOK,
		&movie.GetMovieRequest{},
	))

	movies.PUT("/:id", handler.Handle(
		h.Movie.Handler,
		h.Movie.UpdateMovie,
		http.StatusOK,
		&movie.UpdateMovieRequest{},
	))

	movies.DELETE("/:id", handler.HandleNoContent(
		h.Movie.Handler,
		h.Movie.DeleteMovie,
		http.StatusNoContent,
		&movie.DeleteMovieRequest{},
	))
}
