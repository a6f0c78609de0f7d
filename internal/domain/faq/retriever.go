package faq

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

// Retriever answers an utterance from the FAQ corpus by semantic similarity.
type Retriever struct {
	cfg      Config
	store    *CorpusStore
	embedder Embedder
	logger   *slog.Logger
}

// NewRetriever builds a retriever over an initialized store.
func NewRetriever(cfg Config, store *CorpusStore, embedder Embedder, logger *slog.Logger) *Retriever {
	return &Retriever{
		cfg:      cfg,
		store:    store,
		embedder: embedder,
		logger:   logger.With("component", "faq.retriever"),
	}
}

// Retrieve embeds the utterance and ranks the corpus. Capability failures
// are logged and reported as no match.
func (r *Retriever) Retrieve(ctx context.Context, utterance string) RetrievalResult {
	text := strings.TrimSpace(utterance)
	if text == "" {
		return RetrievalResult{Band: BandNone}
	}
	loc := locale.Detect(text)

	vectors, err := r.embedder.Embed(ctx, []string{text})
	if err != nil {
		r.logger.Warn("query embedding failed", "error", err)
		return RetrievalResult{Band: BandNone}
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		r.logger.Warn("query embedding empty")
		return RetrievalResult{Band: BandNone}
	}
	return r.RetrieveVector(loc, vectors[0])
}

// RetrieveVector ranks the corpus for an already computed query vector.
func (r *Retriever) RetrieveVector(loc locale.Locale, query []float32) RetrievalResult {
	entry, match, err := r.store.Nearest(loc, query)
	if err != nil {
		r.logger.Error("faq lookup failed", "error", err)
		return RetrievalResult{Band: BandNone}
	}
	if match.Position < 0 {
		return RetrievalResult{Band: BandNone}
	}

	band := r.cfg.Classify(match.Score)
	result := RetrievalResult{
		Confidence: match.Score,
		Band:       band,
		Question:   entry.Question(loc),
	}
	switch band {
	case BandHigh:
		result.Answer = entry.Answer(loc)
		result.Matched = true
	case BandLow:
		result.Answer = entry.Answer(loc) + Disclaimer(loc)
		result.Matched = true
	}
	r.logger.Debug("faq ranked", "locale", loc, "position", match.Position, "score", match.Score, "band", band)
	return result
}
