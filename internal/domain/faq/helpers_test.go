package faq

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	return Config{HighThreshold: 0.80, LowThreshold: 0.70, Index: IndexLinear}
}

type stubRepo struct {
	mu      sync.Mutex
	entries []Entry
	saved   [][]Entry
	loadErr error
	saveErr error
}

func (r *stubRepo) Load(context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *stubRepo) Save(_ context.Context, entries []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, entries)
	r.entries = entries
	return nil
}

// stubEmbedder returns fixed vectors per text, or fallback (default
// {0,0,1}).
type stubEmbedder struct {
	model    string
	vectors  map[string][]float32
	fallback []float32
	err      error
	calls    [][]string
}

const stubModel = "stub-embedding"

func (e *stubEmbedder) Model() string {
	if e.model == "" {
		return stubModel
	}
	return e.model
}

func (e *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	e.calls = append(e.calls, texts)
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := e.vectors[t]; ok {
			out[i] = v
			continue
		}
		if e.fallback != nil {
			out[i] = e.fallback
			continue
		}
		out[i] = []float32{0, 0, 1}
	}
	return out, nil
}

type memCache struct {
	data   map[string][]float32
	getErr error
}

func (c *memCache) key(loc locale.Locale, q string) string { return string(loc) + "|" + q }

func (c *memCache) Get(_ context.Context, loc locale.Locale, q string) ([]float32, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[c.key(loc, q)]
	return v, ok, nil
}

func (c *memCache) Put(_ context.Context, loc locale.Locale, q string, v []float32) error {
	if c.data == nil {
		c.data = make(map[string][]float32)
	}
	c.data[c.key(loc, q)] = v
	return nil
}

// scopedCache is a memCache namespaced by an embedding model.
type scopedCache struct {
	memCache
	model string
}

func (c *scopedCache) Model() string { return c.model }

var errBoom = errors.New("boom")
