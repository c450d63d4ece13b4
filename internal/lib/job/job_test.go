package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/movies-api/internal/model/movie"
)

type recordedEvent struct {
	eventType string
	params    map[string]interface{}
}

type fakeRecorder struct {
	events []recordedEvent
}

func (f *fakeRecorder) RecordCustomEvent(eventType string, params map[string]interface{}) {
	f.events = append(f.events, recordedEvent{eventType: eventType, params: params})
}

func newTestJobService(recorder EventRecorder) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, recorder: recorder, now: time.Now}
}

func TestNewMovieEventTask(t *testing.T) {
	occurred := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	task, err := NewMovieEventTask(MovieEventPayload{
		Event:      movie.EventCreated,
		MovieID:    42,
		Title:      "Movie Title",
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	assert.Equal(t, TaskMovieEvent, task.Type())

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, "created", decoded["event"])
	assert.EqualValues(t, 42, decoded["movie_id"])
	assert.Equal(t, "2024-03-01T12:00:00Z", decoded["occurred_at"])
}

func TestHandleMovieEventTask_RecordsEvent(t *testing.T) {
	recorder := &fakeRecorder{}
	j := newTestJobService(recorder)

	task, err := NewMovieEventTask(MovieEventPayload{
		Event:      movie.EventDeleted,
		MovieID:    7,
		Title:      "Gone",
		OccurredAt: time.Unix(1700000000, 0).UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, j.handleMovieEventTask(context.Background(), task))

	require.Len(t, recorder.events, 1)
	assert.Equal(t, MovieEventType, recorder.events[0].eventType)
	assert.Equal(t, "deleted", recorder.events[0].params["event"])
	assert.Equal(t, int64(7), recorder.events[0].params["movie_id"])
	assert.Equal(t, int64(1700000000), recorder.events[0].params["occurred_at"])
}

func TestHandleMovieEventTask_MalformedPayloadSkipsRetry(t *testing.T) {
	j := newTestJobService(&fakeRecorder{})

	err := j.handleMovieEventTask(context.Background(), asynq.NewTask(TaskMovieEvent, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestMux_RoutesMovieEvents(t *testing.T) {
	recorder := &fakeRecorder{}
	j := newTestJobService(recorder)

	task, err := NewMovieEventTask(MovieEventPayload{Event: movie.EventUpdated, MovieID: 1})
	require.NoError(t, err)

	require.NoError(t, j.Mux().ProcessTask(context.Background(), task))
	assert.Len(t, recorder.events, 1)
}
