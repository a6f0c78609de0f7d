package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/intent"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/llm/chatgpt"
)

var errBoom = errors.New("boom")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGate() *intent.Gate {
	return intent.NewGate(intent.Config{
		GreetingMode: intent.GreetingExact,
		Greetings:    intent.DefaultGreetings,
		BlockTerms:   intent.DefaultBlockTerms,
		AllowTerms:   intent.DefaultAllowTerms,
	}, testLogger())
}

type stubChat struct {
	mu       sync.Mutex
	resp     chatgpt.ChatCompletionResponse
	err      error
	panicMsg string
	requests []chatgpt.ChatCompletionRequest
}

func (s *stubChat) CreateChatCompletion(_ context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.resp, s.err
}

func (s *stubChat) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func textResponse(content string) chatgpt.ChatCompletionResponse {
	return chatgpt.ChatCompletionResponse{
		Choices: []chatgpt.Choice{{Message: chatgpt.Message{Role: "assistant", Content: content}}},
		Usage:   chatgpt.Usage{PromptTokens: 12, CompletionTokens: 8, TotalTokens: 20},
	}
}

func toolResponse(content string, calls ...chatgpt.ToolCall) chatgpt.ChatCompletionResponse {
	return chatgpt.ChatCompletionResponse{
		Choices: []chatgpt.Choice{{Message: chatgpt.Message{Role: "assistant", Content: content, ToolCalls: calls}}},
	}
}

func toolCall(name, arguments string) chatgpt.ToolCall {
	return chatgpt.ToolCall{
		ID:       "call_1",
		Type:     "function",
		Function: chatgpt.ToolCallDefinition{Name: name, Arguments: arguments},
	}
}

type stubSearcher struct {
	result flight.SearchResult
	args   []flight.SearchArgs
}

func (s *stubSearcher) SearchFlights(_ context.Context, args flight.SearchArgs) flight.SearchResult {
	s.args = append(s.args, args)
	return s.result
}

type stubBooker struct {
	result flight.BookResult
	args   []flight.BookArgs
}

func (s *stubBooker) BookFlight(_ context.Context, args flight.BookArgs) flight.BookResult {
	s.args = append(s.args, args)
	return s.result
}

type stubRetriever struct {
	result faq.RetrievalResult
	calls  int
}

func (s *stubRetriever) Retrieve(context.Context, string) faq.RetrievalResult {
	s.calls++
	return s.result
}

type fixture struct {
	chat      *stubChat
	searcher  *stubSearcher
	booker    *stubBooker
	retriever *stubRetriever
	service   *Service
}

func newFixture() *fixture {
	f := &fixture{
		chat:      &stubChat{},
		searcher:  &stubSearcher{},
		booker:    &stubBooker{},
		retriever: &stubRetriever{result: faq.RetrievalResult{Band: faq.BandNone}},
	}
	gate := testGate()
	orch := NewOrchestrator(Config{Model: "gpt-4o-mini"}, f.chat, gate, f.searcher, f.booker, testLogger())
	f.service = NewService(gate, f.retriever, orch, testLogger())
	return f
}
