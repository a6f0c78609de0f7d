package faq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

// ErrNotInitialized is returned by lookups before Initialize succeeded.
var ErrNotInitialized = errors.New("faq corpus not initialized")

// InitStats summarises a startup backfill.
type InitStats struct {
	Entries   int
	Embedded  int
	FromCache int
	// Stale counts entries whose stored vectors came from another model
	// or had the wrong dimension and were recomputed.
	Stale     int
	Persisted bool
}

type snapshot struct {
	entries []Entry
	index   Index
	dim     int
}

// CorpusStore owns the FAQ corpus. It is filled once by Initialize and is
// read-only afterwards, so lookups take no locks.
type CorpusStore struct {
	cfg      Config
	repo     CorpusRepository
	cache    EmbeddingCache
	embedder Embedder
	logger   *slog.Logger

	initMu  sync.Mutex
	current atomic.Pointer[snapshot]
}

// NewCorpusStore wires the store; cache may be nil.
func NewCorpusStore(cfg Config, repo CorpusRepository, cache EmbeddingCache, embedder Embedder, logger *slog.Logger) *CorpusStore {
	return &CorpusStore{
		cfg:      cfg,
		repo:     repo,
		cache:    cache,
		embedder: embedder,
		logger:   logger.With("component", "faq.store"),
	}
}

// modelScoped is implemented by caches whose keys are namespaced by an
// embedding model.
type modelScoped interface {
	Model() string
}

type pendingEmbedding struct {
	position int
	loc      locale.Locale
	text     string
}

// Initialize loads the corpus, computes only the missing embeddings and
// persists the corpus when anything changed. Vectors stamped with another
// model, and vectors whose dimension differs from the active embedder, are
// recomputed. Calling it again is a no-op write when nothing is missing.
func (s *CorpusStore) Initialize(ctx context.Context) (InitStats, error) {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	entries, err := s.repo.Load(ctx)
	if err != nil {
		return InitStats{}, apperrors.Wrap(apperrors.CodeCorpus, "load faq corpus", err)
	}
	stats := InitStats{Entries: len(entries)}
	if len(entries) == 0 {
		s.logger.Warn("faq corpus is empty, retrieval will never match")
	}

	model := s.embedder.Model()
	if scoped, ok := s.cache.(modelScoped); ok && scoped.Model() != model {
		s.logger.Warn("faq embedding cache scoped to another model, ignoring it", "cache_model", scoped.Model(), "model", model)
		s.cache = nil
	}
	for pos := range entries {
		if entries[pos].EmbeddingModel != model && entries[pos].hasEmbedding() {
			s.logger.Warn("faq embeddings from another model, recomputing", "position", pos, "stored_model", entries[pos].EmbeddingModel, "model", model)
			entries[pos].clearEmbeddings()
			stats.Stale++
		}
	}

	pending, err := s.collectPending(ctx, entries, &stats, true)
	if err != nil {
		return InitStats{}, err
	}
	dim, err := s.embedPending(ctx, entries, pending, &stats)
	if err != nil {
		return InitStats{}, err
	}

	live := dim > 0
	if !live {
		dim = storedDimension(entries)
	}
	if mismatched := dimensionMismatches(entries, dim); len(mismatched) > 0 {
		s.logger.Warn("faq embeddings have the wrong dimension, recomputing", "expected", dim, "entries", len(mismatched))
		for _, pos := range mismatched {
			entries[pos].clearEmbeddings()
		}
		if !live {
			// The first stored vector may itself be stale; rebuild everything
			// against the live embedder.
			for pos := range entries {
				entries[pos].clearEmbeddings()
			}
			mismatched = allPositions(len(entries))
		}
		stats.Stale += len(mismatched)

		pending, err := s.collectPending(ctx, entries, &stats, false)
		if err != nil {
			return InitStats{}, err
		}
		if dim, err = s.embedPending(ctx, entries, pending, &stats); err != nil {
			return InitStats{}, err
		}
		if len(dimensionMismatches(entries, dim)) > 0 {
			return InitStats{}, apperrors.Wrap(apperrors.CodeEmbedding, "embedder returned vectors of different dimensions", nil)
		}
	}

	stamped := false
	for pos := range entries {
		if entries[pos].EmbeddingModel != model {
			entries[pos].EmbeddingModel = model
			stamped = true
		}
	}

	if stamped || stats.Embedded+stats.FromCache > 0 {
		if err := s.repo.Save(ctx, entries); err != nil {
			return InitStats{}, apperrors.Wrap(apperrors.CodeStorage, "persist faq corpus", err)
		}
		stats.Persisted = true
	}

	s.current.Store(&snapshot{entries: entries, index: s.buildIndex(entries), dim: dim})
	s.logger.Info("faq corpus ready", "entries", stats.Entries, "embedded", stats.Embedded, "from_cache", stats.FromCache,
		"stale", stats.Stale, "persisted", stats.Persisted, "index", s.cfg.Index, "model", model, "dimension", dim)
	return stats, nil
}

// collectPending lists every missing (entry, locale) vector, filling what it
// can from the cache first when useCache is set.
func (s *CorpusStore) collectPending(ctx context.Context, entries []Entry, stats *InitStats, useCache bool) ([]pendingEmbedding, error) {
	var pending []pendingEmbedding
	for pos := range entries {
		for _, loc := range Locales {
			if len(entries[pos].Embedding(loc)) > 0 {
				continue
			}
			text := strings.TrimSpace(entries[pos].Question(loc))
			if text == "" {
				return nil, apperrors.Wrap(apperrors.CodeCorpus, fmt.Sprintf("faq entry %d has no question text", pos), nil)
			}
			if useCache {
				if vector, ok := s.cached(ctx, loc, text); ok {
					entries[pos].setEmbedding(loc, vector)
					stats.FromCache++
					continue
				}
			}
			pending = append(pending, pendingEmbedding{position: pos, loc: loc, text: text})
		}
	}
	return pending, nil
}

// embedPending computes pending vectors in one call and returns their
// dimension, or 0 when nothing was pending.
func (s *CorpusStore) embedPending(ctx context.Context, entries []Entry, pending []pendingEmbedding, stats *InitStats) (int, error) {
	if len(pending) == 0 {
		return 0, nil
	}
	texts := make([]string, len(pending))
	for i, p := range pending {
		texts[i] = p.text
	}
	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeEmbedding, "embed faq corpus", err)
	}
	if len(vectors) != len(pending) {
		return 0, apperrors.Wrap(apperrors.CodeEmbedding, fmt.Sprintf("embedder returned %d vectors for %d questions", len(vectors), len(pending)), nil)
	}
	for i, p := range pending {
		if len(vectors[i]) == 0 {
			return 0, apperrors.Wrap(apperrors.CodeEmbedding, fmt.Sprintf("empty embedding for faq entry %d (%s)", p.position, p.loc), nil)
		}
		entries[p.position].setEmbedding(p.loc, vectors[i])
		s.remember(ctx, p.loc, p.text, vectors[i])
	}
	stats.Embedded += len(pending)
	return len(vectors[0]), nil
}

func storedDimension(entries []Entry) int {
	for _, entry := range entries {
		for _, loc := range Locales {
			if v := entry.Embedding(loc); len(v) > 0 {
				return len(v)
			}
		}
	}
	return 0
}

// dimensionMismatches returns positions holding a vector whose length is
// not dim.
func dimensionMismatches(entries []Entry, dim int) []int {
	var out []int
	for pos, entry := range entries {
		for _, loc := range Locales {
			if len(entry.Embedding(loc)) != dim {
				out = append(out, pos)
				break
			}
		}
	}
	return out
}

func allPositions(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Ready reports whether Initialize has completed.
func (s *CorpusStore) Ready() bool {
	return s.current.Load() != nil
}

// Nearest finds the best entry for a query vector in loc.
func (s *CorpusStore) Nearest(loc locale.Locale, query []float32) (Entry, Match, error) {
	snap := s.current.Load()
	if snap == nil {
		return Entry{}, Match{}, ErrNotInitialized
	}
	if snap.dim > 0 && len(query) != snap.dim {
		s.logger.Warn("query embedding dimension does not match corpus", "query_dim", len(query), "corpus_dim", snap.dim)
		return Entry{}, Match{Position: -1}, nil
	}
	match, ok := snap.index.Nearest(loc, query)
	if !ok {
		return Entry{}, Match{Position: -1}, nil
	}
	return snap.entries[match.Position], match, nil
}

func (s *CorpusStore) buildIndex(entries []Entry) Index {
	if s.cfg.Index == IndexLSH {
		return NewLSHIndex(entries, s.cfg.LSHPlanes)
	}
	return NewLinearIndex(entries)
}

func (s *CorpusStore) cached(ctx context.Context, loc locale.Locale, question string) ([]float32, bool) {
	if s.cache == nil {
		return nil, false
	}
	vector, ok, err := s.cache.Get(ctx, loc, question)
	if err != nil {
		s.logger.Warn("faq embedding cache read failed", "locale", loc, "error", err)
		return nil, false
	}
	return vector, ok && len(vector) > 0
}

func (s *CorpusStore) remember(ctx context.Context, loc locale.Locale, question string, vector []float32) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, loc, question, vector); err != nil {
		s.logger.Warn("faq embedding cache write failed", "locale", loc, "error", err)
	}
}
