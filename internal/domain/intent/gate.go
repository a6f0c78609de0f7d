package intent

import (
	"log/slog"
	"strings"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

// GreetingMode selects how greetings are recognised.
type GreetingMode string

const (
	// GreetingExact requires the whole normalized message to be a greeting.
	GreetingExact GreetingMode = "exact"
	// GreetingContains accepts a greeting phrase anywhere as whole words.
	GreetingContains GreetingMode = "contains"
)

// Decision is the outcome of the gate.
type Decision string

const (
	DecisionPass     Decision = "pass"
	DecisionGreeting Decision = "greeting"
	DecisionBlocked  Decision = "blocked"
)

// Config lists the tunable vocabularies of the gate.
type Config struct {
	GreetingMode GreetingMode
	Greetings    []string
	BlockTerms   []string
	AllowTerms   []string
}

// Result carries the gate decision and, when it short-circuits, the reply.
type Result struct {
	Decision Decision
	Reply    string
	Term     string
}

// Gate is the keyword pre-filter run before any network call.
type Gate struct {
	mode      GreetingMode
	greetings map[string]struct{}
	greetingM *Matcher
	block     *Matcher
	allow     *Matcher
	logger    *slog.Logger
}

// NewGate compiles the configured vocabularies.
func NewGate(cfg Config, logger *slog.Logger) *Gate {
	mode := cfg.GreetingMode
	if mode != GreetingContains {
		mode = GreetingExact
	}
	greetings := make(map[string]struct{}, len(cfg.Greetings))
	for _, g := range cfg.Greetings {
		if n := Normalize(g); n != "" {
			greetings[n] = struct{}{}
		}
	}
	// Block terms match whole words only so city names such as Stockholm
	// or Songkhla never trip "stock" or "song". Allow terms keep prefix
	// matching ("flight" covers "flights").
	g := &Gate{
		mode:      mode,
		greetings: greetings,
		greetingM: NewMatcher(cfg.Greetings, false),
		block:     NewMatcher(cfg.BlockTerms, false),
		allow:     NewMatcher(cfg.AllowTerms, true),
		logger:    logger.With("component", "intent.gate"),
	}
	g.logger.Debug("gate compiled", "mode", mode, "greetings", g.greetingM.Len(), "block_terms", g.block.Len(), "allow_terms", g.allow.Len())
	return g
}

// Check runs the greeting then the block check.
func (g *Gate) Check(text string, loc locale.Locale) Result {
	normalized := Normalize(text)
	tokens := strings.Fields(normalized)

	if term, ok := g.isGreeting(normalized, tokens); ok {
		return Result{Decision: DecisionGreeting, Reply: GreetingReply(loc), Term: term}
	}

	if term, ok := g.block.Match(tokens); ok {
		if allowed, hit := g.allow.Match(tokens); hit {
			g.logger.Debug("block term overridden by flight term", "block", term, "allow", allowed)
			return Result{Decision: DecisionPass}
		}
		return Result{Decision: DecisionBlocked, Reply: RefusalReply(loc), Term: term}
	}

	return Result{Decision: DecisionPass}
}

// MentionsBlockedTopic reports block-list vocabulary without the allow-list
// override; used to police generated text.
func (g *Gate) MentionsBlockedTopic(text string) (string, bool) {
	return g.block.MatchText(text)
}

func (g *Gate) isGreeting(normalized string, tokens []string) (string, bool) {
	if normalized == "" {
		return "", false
	}
	if g.mode == GreetingContains {
		return g.greetingM.Match(tokens)
	}
	if _, ok := g.greetings[normalized]; ok {
		return normalized, true
	}
	return "", false
}
