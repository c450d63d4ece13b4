package handler

import (
	"github.com/deppfellow/movies-api/internal/server"
	"github.com/deppfellow/movies-api/internal/service"
)

// Handlers groups every HTTP handler.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Movie   *MovieHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Movie:   NewMovieHandler(s, services.Movie),
	}
}
