package intent

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

func newTestGate(mode GreetingMode) *Gate {
	return NewGate(Config{
		GreetingMode: mode,
		Greetings:    DefaultGreetings,
		BlockTerms:   DefaultBlockTerms,
		AllowTerms:   DefaultAllowTerms,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGateGreetsEveryCanonicalGreeting(t *testing.T) {
	for _, mode := range []GreetingMode{GreetingExact, GreetingContains} {
		gate := newTestGate(mode)
		for _, greeting := range DefaultGreetings {
			loc := locale.Detect(greeting)
			res := gate.Check(greeting, loc)
			require.Equal(t, DecisionGreeting, res.Decision, "mode=%s greeting=%q", mode, greeting)
			require.Equal(t, GreetingReply(loc), res.Reply)
			require.NotEmpty(t, res.Reply)
		}
	}
}

func TestGateGreetingReplyFollowsLocale(t *testing.T) {
	gate := newTestGate(GreetingExact)

	require.Equal(t, greetingEN, gate.Check("Hello", locale.English).Reply)
	require.Equal(t, greetingAR, gate.Check("مرحبا", locale.Arabic).Reply)
}

func TestGateExactModeToleratesPunctuationOnly(t *testing.T) {
	gate := newTestGate(GreetingExact)

	require.Equal(t, DecisionGreeting, gate.Check("  Hello!!! ", locale.English).Decision)
	require.Equal(t, DecisionGreeting, gate.Check("Thank you.", locale.English).Decision)
	require.Equal(t, DecisionPass, gate.Check("hi, I need a flight to Doha", locale.English).Decision)
	require.Equal(t, DecisionPass, gate.Check("book a flight", locale.English).Decision)
}

func TestGateContainsModeMatchesWholeWords(t *testing.T) {
	gate := newTestGate(GreetingContains)

	require.Equal(t, DecisionGreeting, gate.Check("hi, I need a flight to Doha", locale.English).Decision)
	// "ok" inside "book" and "hi" inside "this" must not count.
	require.Equal(t, DecisionPass, gate.Check("book this flight", locale.English).Decision)
}

func TestGateBlocksOffTopic(t *testing.T) {
	gate := newTestGate(GreetingExact)

	cases := []string{
		"what is the best pasta recipe",
		"who won the football match",
		"tell me about the prime minister",
		"ما هي أفضل وصفة طعام",
	}
	for _, text := range cases {
		res := gate.Check(text, locale.Detect(text))
		require.Equal(t, DecisionBlocked, res.Decision, text)
		require.Equal(t, RefusalReply(locale.Detect(text)), res.Reply)
	}
}

func TestGateAllowListOverridesBlock(t *testing.T) {
	gate := newTestGate(GreetingExact)

	cases := []string{
		"book a flight, not a football field",
		"can I carry food in my baggage",
		"is there a restaurant at the airport",
		"حجز رحلة بعد مباراة كرة القدم",
	}
	for _, text := range cases {
		require.Equal(t, DecisionPass, gate.Check(text, locale.Detect(text)).Decision, text)
	}
}

func TestGateIgnoresBlockTermsInsideOtherWords(t *testing.T) {
	gate := newTestGate(GreetingExact)

	// "pm" matches whole words only, never inside "npm".
	require.Equal(t, DecisionPass, gate.Check("install npm packages", locale.English).Decision)
	require.Equal(t, DecisionBlocked, gate.Check("see you at 5 pm", locale.English).Decision)
	require.Equal(t, DecisionBlocked, gate.Check("latest stocks and shares", locale.English).Decision)
}

func TestGatePassesRoutesThroughCitiesStartingWithBlockTerms(t *testing.T) {
	gate := newTestGate(GreetingExact)

	for _, text := range []string{
		"stockholm to doha",
		"delhi to stockholm",
		"songkhla to bangkok",
		"from bankstown to filmore",
	} {
		res := gate.Check(text, locale.English)
		require.Equal(t, DecisionPass, res.Decision, "%s blocked by %q", text, res.Term)
	}
}

func TestGatePassesEmptyText(t *testing.T) {
	gate := newTestGate(GreetingExact)
	require.Equal(t, DecisionPass, gate.Check("   ", locale.English).Decision)
}

func TestMentionsBlockedTopicIgnoresAllowList(t *testing.T) {
	gate := newTestGate(GreetingExact)

	term, ok := gate.MentionsBlockedTopic("Your flight refund goes to your bank account.")
	require.True(t, ok)
	require.Equal(t, "bank", term)

	_, ok = gate.MentionsBlockedTopic("Check-in closes 60 minutes before departure.")
	require.False(t, ok)

	_, ok = gate.MentionsBlockedTopic("Flights to Stockholm leave daily.")
	require.False(t, ok)
}
