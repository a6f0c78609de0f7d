package embedcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

// ValkeyCache stores corpus embeddings in a Valkey-compatible database so
// restarts and replicas skip the embedding API.
type ValkeyCache struct {
	client valkey.Client
	prefix string
	model  string
	ttl    time.Duration
}

// NewValkeyCache constructs a cache backed by Valkey. A zero ttl keeps
// entries forever.
func NewValkeyCache(client valkey.Client, prefix, model string, ttl time.Duration) *ValkeyCache {
	if prefix == "" {
		prefix = "flightbot"
	}
	return &ValkeyCache{client: client, prefix: prefix, model: model, ttl: ttl}
}

// Model is the embedding model the keys are scoped to.
func (c *ValkeyCache) Model() string {
	return c.model
}

func (c *ValkeyCache) Get(ctx context.Context, loc locale.Locale, question string) ([]float32, bool, error) {
	cmd := c.client.B().Get().Key(cacheKey(c.prefix, c.model, loc, question)).Build()
	payload, err := c.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var vector []float32
	if err := json.Unmarshal([]byte(payload), &vector); err != nil {
		return nil, false, err
	}
	return vector, len(vector) > 0, nil
}

func (c *ValkeyCache) Put(ctx context.Context, loc locale.Locale, question string, vector []float32) error {
	payload, err := json.Marshal(vector)
	if err != nil {
		return err
	}
	builder := c.client.B().Set().Key(cacheKey(c.prefix, c.model, loc, question)).Value(string(payload))
	var cmd valkey.Completed
	if c.ttl > 0 {
		ttl := c.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

var _ faq.EmbeddingCache = (*ValkeyCache)(nil)
