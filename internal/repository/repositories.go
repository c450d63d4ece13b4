package repository

import (
	"github.com/deppfellow/movies-api/internal/server"
)

// Repositories groups every repository.
type Repositories struct {
	Movie *MovieRepository
}

// NewRepositories builds the repositories on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Movie: NewMovieRepository(s.DB.Pool),
	}
}
