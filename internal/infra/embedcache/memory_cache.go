package embedcache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

const defaultMemorySize = 4096

// MemoryCache is a bounded in-process cache for development and tests.
type MemoryCache struct {
	model string
	lru   *expirable.LRU[string, []float32]
}

// NewMemoryCache builds an LRU holding at most size vectors. A zero ttl
// disables expiry.
func NewMemoryCache(model string, size int, ttl time.Duration) *MemoryCache {
	if size <= 0 {
		size = defaultMemorySize
	}
	return &MemoryCache{
		model: model,
		lru:   expirable.NewLRU[string, []float32](size, nil, ttl),
	}
}

func (c *MemoryCache) Get(_ context.Context, loc locale.Locale, question string) ([]float32, bool, error) {
	vector, ok := c.lru.Get(cacheKey("mem", c.model, loc, question))
	if !ok {
		return nil, false, nil
	}
	out := make([]float32, len(vector))
	copy(out, vector)
	return out, true, nil
}

func (c *MemoryCache) Put(_ context.Context, loc locale.Locale, question string, vector []float32) error {
	stored := make([]float32, len(vector))
	copy(stored, vector)
	c.lru.Add(cacheKey("mem", c.model, loc, question), stored)
	return nil
}

// Len reports the number of cached vectors.
// Model is the embedding model the keys are scoped to.
func (c *MemoryCache) Model() string {
	return c.model
}

var _ faq.EmbeddingCache = (*MemoryCache)(nil)
