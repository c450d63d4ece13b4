package service

import (
	"github.com/deppfellow/movies-api/internal/lib/job"
	"github.com/deppfellow/movies-api/internal/repository"
	"github.com/deppfellow/movies-api/internal/server"
)

// Services groups every service.
type Services struct {
	Movie *MovieService
	Job   *job.JobService
}

// NewServices wires the services. Lifecycle events are only published when
// the job runner is enabled.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var events EventPublisher
	if s.Job != nil {
		events = s.Job
	}

	return &Services{
		Movie: NewMovieService(repos.Movie, events, s.Logger),
		Job:   s.Job,
	}, nil
}
