package chatgpt

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by Disabled for every call.
var ErrNotConfigured = errors.New("chatgpt api key not configured")

// Disabled stands in for Client when no API key is set, so the service
// can start offline and report model failures per request.
type Disabled struct{}

func (Disabled) CreateChatCompletion(context.Context, ChatCompletionRequest) (ChatCompletionResponse, error) {
	return ChatCompletionResponse{}, ErrNotConfigured
}

func (Disabled) CreateEmbedding(context.Context, EmbeddingRequest) (EmbeddingResponse, error) {
	return EmbeddingResponse{}, ErrNotConfigured
}
