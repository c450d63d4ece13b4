package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// MovieEventType is the New Relic custom event type for lifecycle events.
const MovieEventType = "MovieLifecycle"

func (j *JobService) handleMovieEventTask(ctx context.Context, t *asynq.Task) error {
	var p MovieEventPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload never succeeds, so don't retry it.
		return fmt.Errorf("failed to unmarshal movie event payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("event", string(p.Event)).
		Int64("movie_id", p.MovieID).
		Str("title", p.Title).
		Time("occurred_at", p.OccurredAt).
		Msg("processing movie event")

	if j.recorder != nil {
		j.recorder.RecordCustomEvent(MovieEventType, map[string]interface{}{
			"event":       string(p.Event),
			"movie_id":    p.MovieID,
			"title":       p.Title,
			"occurred_at": p.OccurredAt.Unix(),
		})
	}

	return nil
}
