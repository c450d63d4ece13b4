// Package job runs background work on asynq, a Redis-backed task queue.
//
// The HTTP side enqueues tasks through JobService.Client; the worker side
// (asynq.Server) pulls them from Redis and dispatches them by task type.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/movies-api/internal/config"
	loggerPkg "github.com/deppfellow/movies-api/internal/logger"
	"github.com/deppfellow/movies-api/internal/model/movie"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// EventRecorder receives movie events for APM reporting.
type EventRecorder interface {
	RecordCustomEvent(eventType string, params map[string]interface{})
}

// JobService holds the asynq client used to enqueue and the server that
// runs the workers.
type JobService struct {
	Client *asynq.Client

	server   *asynq.Server
	logger   *zerolog.Logger
	recorder EventRecorder
	now      func() time.Time
}

// NewJobService creates the asynq client and worker server for the
// configured Redis address. Nothing connects until Start or the first
// enqueue.
func NewJobService(logger *zerolog.Logger, cfg *config.Config, loggerService *loggerPkg.LoggerService) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	jobLogger := logger.With().Str("component", "jobs").Logger()

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Jobs.Concurrency,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger:   &asynqLogger{log: jobLogger},
			LogLevel: asynq.WarnLevel,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				jobLogger.Error().
					Str("type", task.Type()).
					Err(err).
					Msg("background task failed")
			}),
		},
	)

	return &JobService{
		Client:   client,
		server:   server,
		logger:   &jobLogger,
		recorder: loggerService,
		now:      time.Now,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskMovieEvent, j.handleMovieEventTask)
	return mux
}

// Start starts the workers in the background. It returns once the server
// is running.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return fmt.Errorf("starting job server: %w", err)
	}

	return nil
}

// Stop waits for in-flight tasks and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// PublishMovieEvent enqueues a lifecycle event for m.
func (j *JobService) PublishMovieEvent(ctx context.Context, kind movie.EventKind, m movie.Movie) error {
	task, err := NewMovieEventTask(MovieEventPayload{
		Event:      kind,
		MovieID:    m.ID,
		Title:      m.Title,
		OccurredAt: j.now().UTC(),
	})
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskMovieEvent, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("event", string(kind)).
		Int64("movie_id", m.ID).
		Msg("enqueued movie event")

	return nil
}

// asynqLogger adapts zerolog to asynq.Logger.
type asynqLogger struct {
	log zerolog.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) { l.log.Debug().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...interface{})  { l.log.Info().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...interface{})  { l.log.Warn().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...interface{}) { l.log.Error().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Fatal(args ...interface{}) { l.log.Fatal().Msg(fmt.Sprint(args...)) }
