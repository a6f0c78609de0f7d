package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenUsageAddAndIsZero(t *testing.T) {
	var total TokenUsage
	require.True(t, total.IsZero())

	total = total.Add(TokenUsage{PromptTokens: 12, CompletionTokens: 3, TotalTokens: 15})
	total = total.Add(TokenUsage{PromptTokens: 8, TotalTokens: 8})

	require.False(t, total.IsZero())
	require.Equal(t, TokenUsage{PromptTokens: 20, CompletionTokens: 3, TotalTokens: 23}, total)
}

func TestTokenUsageLogAttrs(t *testing.T) {
	attrs := TokenUsage{PromptTokens: 5, CompletionTokens: 2, TotalTokens: 7}.LogAttrs()

	require.Equal(t, []any{
		"prompt_tokens", 5,
		"completion_tokens", 2,
		"total_tokens", 7,
	}, attrs)
}
