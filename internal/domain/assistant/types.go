package assistant

import (
	"context"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/intent"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/llm/chatgpt"
)

// Source tells the caller which strategy produced an answer.
type Source string

const (
	SourceGreeting        Source = "Greeting"
	SourceBlocked         Source = "Blocked"
	SourceRAG             Source = "RAG"
	SourceBooking         Source = "Booking"
	SourceAI              Source = "AI"
	SourceError           Source = "Error"
	SourceManualSearch    Source = "Manual-Search"
	SourceAITool          Source = "AI-Tool"
	SourcePersonaOverride Source = "Persona-Override"
)

// Envelope is the only shape returned to transports.
type Envelope struct {
	Answer string `json:"answer"`
	Source Source `json:"source"`
}

// Request is the transport payload for one utterance.
type Request struct {
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
}

// Config holds model settings for the orchestrator.
type Config struct {
	Model       string
	Temperature float32
	Persona     string
}

// ChatClient is the language-model capability.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Gate is the keyword pre-filter.
type Gate interface {
	Check(text string, loc locale.Locale) intent.Result
	MentionsBlockedTopic(text string) (string, bool)
}

// Retriever answers from the FAQ corpus.
type Retriever interface {
	Retrieve(ctx context.Context, utterance string) faq.RetrievalResult
}

var (
	_ Gate      = (*intent.Gate)(nil)
	_ Retriever = (*faq.Retriever)(nil)
)
