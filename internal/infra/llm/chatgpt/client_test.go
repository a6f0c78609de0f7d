package chatgpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("  ", "")
	require.Error(t, err)

	client, err := NewClient("key", "")
	require.NoError(t, err)
	require.Equal(t, defaultBaseURL, client.baseURL)
}

func TestCreateChatCompletionDecodesToolCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Tools, 1)
		require.Equal(t, "auto", req.ToolChoice)

		_, _ = w.Write([]byte(`{
			"choices":[{"message":{"role":"assistant","content":"","tool_calls":[
				{"id":"call_1","type":"function","function":{"name":"search_flights","arguments":"{\"from_city\":\"delhi\",\"to_city\":\"doha\"}"}}
			]},"finish_reason":"tool_calls"}],
			"usage":{"prompt_tokens":12,"completion_tokens":5,"total_tokens":17}
		}`))
	}))
	defer server.Close()

	client, err := NewClient("secret", server.URL+"/v1/")
	require.NoError(t, err)

	resp, err := client.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Model:      "gpt-4o-mini",
		Messages:   []Message{{Role: "user", Content: "delhi to doha"}},
		Tools:      []Tool{{Type: "function", Function: ToolFunction{Name: "search_flights"}}},
		ToolChoice: "auto",
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)
	require.Len(t, resp.Choices[0].Message.ToolCalls, 1)
	require.Equal(t, "search_flights", resp.Choices[0].Message.ToolCalls[0].Function.Name)
	require.Equal(t, 17, resp.Usage.Metrics().TotalTokens)
}

func TestCreateEmbeddingSurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/embeddings", r.URL.Path)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	client, err := NewClient("secret", server.URL)
	require.NoError(t, err)

	_, err = client.CreateEmbedding(context.Background(), EmbeddingRequest{Model: "m", Input: []string{"hi"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=429")
	require.True(t, apperrors.IsCode(err, apperrors.CodeUpstream))
}

func TestCreateEmbeddingDecodesVectors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"index":0,"embedding":[0.5,-0.25]}],"usage":{"prompt_tokens":2,"total_tokens":2}}`))
	}))
	defer server.Close()

	client, err := NewClient("secret", server.URL)
	require.NoError(t, err)

	resp, err := client.CreateEmbedding(context.Background(), EmbeddingRequest{Model: "m", Input: []string{"hi"}})
	require.NoError(t, err)
	require.Equal(t, []float32{0.5, -0.25}, resp.Data[0].Embedding)
}
