package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/movies-api/internal/config"
)

func TestShutdown_ReleasesEverythingWhenHTTPShutdownFails(t *testing.T) {
	logger := zerolog.Nop()

	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &Server{
		Config: &config.Config{},
		Logger: &logger,
		Redis:  redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}),
		httpServer: &http.Server{
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				close(entered)
				<-release
			}),
		},
	}

	go func() { _ = s.httpServer.Serve(ln) }()
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			resp.Body.Close()
		}
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the handler")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.Shutdown(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, s.Redis.Ping(context.Background()).Err(), redis.ErrClosed)
}

func TestShutdown_NothingStarted(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &logger}

	assert.NoError(t, s.Shutdown(context.Background()))
}
