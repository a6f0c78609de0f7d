package embedder

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/llm/chatgpt"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "text-embedding-3-large"

// maxBatchTokens stays well below the provider's per-request cap.
const maxBatchTokens = 200_000

// EmbeddingClient is the subset of the ChatGPT client used here.
type EmbeddingClient interface {
	CreateEmbedding(ctx context.Context, req chatgpt.EmbeddingRequest) (chatgpt.EmbeddingResponse, error)
}

// ChatGPTEmbedder calls the OpenAI-compatible embeddings API in
// token-bounded batches.
type ChatGPTEmbedder struct {
	client EmbeddingClient
	model  string
	logger *slog.Logger

	once        sync.Once
	countTokens func(string) int
}

// NewChatGPTEmbedder constructs an embedder backed by the ChatGPT client.
func NewChatGPTEmbedder(client EmbeddingClient, model string, logger *slog.Logger) *ChatGPTEmbedder {
	if logger == nil {
		logger = slog.Default()
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	return &ChatGPTEmbedder{
		client: client,
		model:  model,
		logger: logger.With("component", "embedder.chatgpt"),
	}
}

// Model is the provider model name sent with every request.
func (e *ChatGPTEmbedder) Model() string { return e.model }

// Embed returns one vector per text, in input order.
func (e *ChatGPTEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	e.once.Do(e.initTokenizer)

	var (
		out         = make([][]float32, 0, len(texts))
		batch       []string
		batchTokens int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		start := time.Now()
		resp, err := e.client.CreateEmbedding(ctx, chatgpt.EmbeddingRequest{Model: e.model, Input: batch})
		if err != nil {
			return apperrors.Wrap(apperrors.CodeEmbedding, "create embedding", err)
		}
		if len(resp.Data) != len(batch) {
			return apperrors.Wrap(apperrors.CodeEmbedding,
				fmt.Sprintf("embedding result count mismatch: expected=%d got=%d", len(batch), len(resp.Data)), nil)
		}
		data := append([]chatgpt.EmbeddingData(nil), resp.Data...)
		sort.SliceStable(data, func(i, j int) bool { return data[i].Index < data[j].Index })
		for _, item := range data {
			vec := make([]float32, len(item.Embedding))
			copy(vec, item.Embedding)
			out = append(out, vec)
		}
		if usage := resp.Usage.Metrics(); !usage.IsZero() {
			e.logger.Debug("embedding usage", append(usage.LogAttrs(), "inputs", len(batch), "latency", time.Since(start))...)
		}
		batch = batch[:0]
		batchTokens = 0
		return nil
	}

	for _, text := range texts {
		tokens := e.countTokens(text)
		if tokens > maxBatchTokens {
			return nil, apperrors.Wrap(apperrors.CodeEmbedding, fmt.Sprintf("text too large for embedding request: tokens=%d", tokens), nil)
		}
		if batchTokens+tokens > maxBatchTokens && len(batch) > 0 {
			if err := flush(); err != nil {
				return nil, err
			}
		}
		batch = append(batch, text)
		batchTokens += tokens
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *ChatGPTEmbedder) initTokenizer() {
	if e.countTokens != nil {
		return
	}
	enc, err := tiktoken.EncodingForModel(e.model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	}
	if err != nil {
		e.logger.Warn("tokenizer unavailable, estimating token counts", "error", err)
		e.countTokens = estimateTokens
		return
	}
	e.countTokens = func(text string) int {
		return len(enc.Encode(text, nil, nil))
	}
}

// estimateTokens provides a rough, upper-biased token count.
func estimateTokens(text string) int {
	if text == "" {
		return 0
	}
	runes := utf8.RuneCountInString(text)
	words := len(strings.Fields(text))
	byRunes := (runes + 1) / 2
	if byRunes < words {
		return words
	}
	return byRunes
}

var _ faq.Embedder = (*ChatGPTEmbedder)(nil)
