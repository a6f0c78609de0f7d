package assistant

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/intent"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

func TestReplyGreetingSkipsEverything(t *testing.T) {
	f := newFixture()

	env := f.service.Reply(context.Background(), "Hello!")
	require.Equal(t, Envelope{Answer: intent.GreetingReply(locale.English), Source: SourceGreeting}, env)

	env = f.service.Reply(context.Background(), "مرحبا")
	require.Equal(t, SourceGreeting, env.Source)
	require.Equal(t, intent.GreetingReply(locale.Arabic), env.Answer)

	require.Zero(t, f.retriever.calls)
	require.Zero(t, f.chat.calls())
}

func TestReplyBlockedTopic(t *testing.T) {
	f := newFixture()

	env := f.service.Reply(context.Background(), "give me a pasta recipe")
	require.Equal(t, SourceBlocked, env.Source)
	require.Equal(t, intent.RefusalReply(locale.English), env.Answer)
	require.Zero(t, f.chat.calls())

	env = f.service.Reply(context.Background(), "can I carry food in my baggage")
	require.NotEqual(t, SourceBlocked, env.Source)
}

func TestReplyManualSearch(t *testing.T) {
	f := newFixture()
	f.searcher.result = flight.SearchResult{Flights: json.RawMessage(`[{"id":7}]`)}

	env := f.service.Reply(context.Background(), "jaipur to doha")
	require.Equal(t, SourceManualSearch, env.Source)
	require.JSONEq(t, `{"flights":[{"id":7}]}`, env.Answer)
	require.Equal(t, []flight.SearchArgs{{FromCity: "jaipur", ToCity: "doha"}}, f.searcher.args)
	require.Zero(t, f.retriever.calls)
	require.Zero(t, f.chat.calls())
}

func TestReplyManualSearchCityNamedLikeBlockTerm(t *testing.T) {
	f := newFixture()
	f.searcher.result = flight.SearchResult{Flights: json.RawMessage(`[]`)}

	env := f.service.Reply(context.Background(), "Stockholm to Doha")
	require.Equal(t, SourceManualSearch, env.Source)
	require.Equal(t, []flight.SearchArgs{{FromCity: "stockholm", ToCity: "doha"}}, f.searcher.args)
}

func TestReplyManualSearchFailureStillAnswers(t *testing.T) {
	f := newFixture()
	f.searcher.result = flight.SearchResult{Error: "No flights found"}

	env := f.service.Reply(context.Background(), "from delhi to dubai")
	require.Equal(t, SourceManualSearch, env.Source)
	require.JSONEq(t, `{"error":"No flights found"}`, env.Answer)
}

func TestReplyFAQMatch(t *testing.T) {
	f := newFixture()
	f.retriever.result = faq.RetrievalResult{Answer: "7 kg cabin bag", Matched: true, Band: faq.BandHigh, Confidence: 0.91}

	env := f.service.Reply(context.Background(), "what is the cabin baggage allowance")
	require.Equal(t, Envelope{Answer: "7 kg cabin bag", Source: SourceRAG}, env)
	require.Zero(t, f.chat.calls())
}

func TestReplyFallsThroughToModel(t *testing.T) {
	f := newFixture()
	f.chat.resp = textResponse("Most airlines open check-in 24 hours before departure.")

	env := f.service.Reply(context.Background(), "when does check in open")
	require.Equal(t, SourceAI, env.Source)
	require.Equal(t, "Most airlines open check-in 24 hours before departure.", env.Answer)
	require.Equal(t, 1, f.retriever.calls)
	require.Equal(t, 1, f.chat.calls())
}

func TestReplyEmptyInput(t *testing.T) {
	f := newFixture()

	env := f.service.Reply(context.Background(), "   ")
	require.Equal(t, SourceError, env.Source)
	require.Zero(t, f.chat.calls())
}

func TestReplyRecoversPanics(t *testing.T) {
	f := newFixture()
	f.chat.panicMsg = "unexpected"

	env := f.service.Reply(context.Background(), "متى يفتح تسجيل الوصول")
	require.Equal(t, SourceError, env.Source)
	require.Equal(t, errorAR, env.Answer)
}

func TestReplyCancelledContextSkipsModel(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := f.service.Reply(ctx, "when does check in open")
	require.Equal(t, SourceError, env.Source)
	require.Zero(t, f.chat.calls())
}
