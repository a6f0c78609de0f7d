package faq

import (
	"context"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

// Embedder produces embeddings for free form text. Model identifies the
// vector space; vectors from different models are never compared.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}

// CorpusRepository loads and persists the FAQ corpus.
type CorpusRepository interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

// EmbeddingCache remembers corpus embeddings keyed by (locale, question).
type EmbeddingCache interface {
	Get(ctx context.Context, loc locale.Locale, question string) ([]float32, bool, error)
	Put(ctx context.Context, loc locale.Locale, question string, vector []float32) error
}
