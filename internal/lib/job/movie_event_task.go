package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/movies-api/internal/model/movie"
)

// TaskMovieEvent is the asynq task type for movie lifecycle events.
const TaskMovieEvent = "movie:event"

// MovieEventPayload is the JSON payload stored in Redis.
type MovieEventPayload struct {
	Event      movie.EventKind `json:"event"`
	MovieID    int64           `json:"movie_id"`
	Title      string          `json:"title"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewMovieEventTask builds the task for p. Events are low priority and
// retried a few times.
func NewMovieEventTask(p MovieEventPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal movie event payload: %w", err)
	}

	return asynq.NewTask(
		TaskMovieEvent,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueLow),
		asynq.Timeout(30*time.Second),
	), nil
}
