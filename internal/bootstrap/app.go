package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/config"
)

// CorpusInitializer prepares the FAQ corpus before traffic is accepted.
type CorpusInitializer interface {
	Initialize(ctx context.Context) (faq.InitStats, error)
}

// App encapsulates the corpus warm-up and the HTTP server lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	corpus CorpusInitializer
	server *http.Server
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, corpus CorpusInitializer, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), corpus: corpus, server: server}
}

// Run initializes the corpus, then starts the HTTP server and blocks until
// shutdown. The server never starts on a corpus failure.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	stats, err := a.corpus.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("initialize faq corpus: %w", err)
	}
	a.logger.Info("faq corpus initialized",
		"entries", stats.Entries,
		"embedded", stats.Embedded,
		"from_cache", stats.FromCache,
		"persisted", stats.Persisted,
		"latency", time.Since(start),
	)

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
