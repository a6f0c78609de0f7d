package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/config"
)

type stubCorpus struct {
	stats faq.InitStats
	err   error
	calls int
}

func (s *stubCorpus) Initialize(context.Context) (faq.InitStats, error) {
	s.calls++
	return s.stats, s.err
}

func newTestApp(corpus CorpusInitializer) *App {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	server := &http.Server{Addr: cfg.HTTP.Address, Handler: http.NotFoundHandler()}
	return NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), corpus, server)
}

func TestRunRefusesToServeWithoutCorpus(t *testing.T) {
	corpus := &stubCorpus{err: errors.New("corpus missing")}

	err := newTestApp(corpus).Run(context.Background())
	require.ErrorContains(t, err, "corpus missing")
	require.Equal(t, 1, corpus.calls)
}

func TestRunStopsOnCancel(t *testing.T) {
	corpus := &stubCorpus{stats: faq.InitStats{Entries: 3}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- newTestApp(corpus).Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
