package assistant

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/intent"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/llm/chatgpt"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

// Orchestrator asks the model for either a free-text answer or one of the
// registered actions, then executes that action.
type Orchestrator struct {
	cfg      Config
	client   ChatClient
	gate     Gate
	searcher flight.Searcher
	booker   flight.Booker
	tools    []chatgpt.Tool
	actions  map[Action]actionHandler
	logger   *slog.Logger
}

// NewOrchestrator wires the model client to the flight actions.
func NewOrchestrator(cfg Config, client ChatClient, gate Gate, searcher flight.Searcher, booker flight.Booker, logger *slog.Logger) *Orchestrator {
	if strings.TrimSpace(cfg.Persona) == "" {
		cfg.Persona = DefaultPersona
	}
	o := &Orchestrator{
		cfg:      cfg,
		client:   client,
		gate:     gate,
		searcher: searcher,
		booker:   booker,
		tools:    toolSchema(),
		logger:   logger.With("component", "assistant.orchestrator"),
	}
	o.actions = map[Action]actionHandler{
		ActionSearchFlights: o.handleSearch,
		ActionBookFlight:    o.handleBook,
	}
	return o
}

// Respond runs one model round trip for the utterance.
func (o *Orchestrator) Respond(ctx context.Context, utterance string, loc locale.Locale) Envelope {
	req := chatgpt.ChatCompletionRequest{
		Model: o.cfg.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: o.cfg.Persona},
			{Role: "user", Content: utterance},
		},
		Temperature: o.cfg.Temperature,
		Tools:       o.tools,
		ToolChoice:  "auto",
	}

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		o.logger.Error("chat completion failed", "error", err, "latency", time.Since(start))
		return errorEnvelope(loc)
	}
	if usage := resp.Usage.Metrics(); !usage.IsZero() {
		o.logger.Info("chat completion usage", append(usage.LogAttrs(), "model", o.cfg.Model, "latency", time.Since(start))...)
	}
	if len(resp.Choices) == 0 {
		o.logger.Error("chat completion returned no choices")
		return errorEnvelope(loc)
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		if len(msg.ToolCalls) > 1 {
			o.logger.Warn("ignoring extra tool calls", "count", len(msg.ToolCalls))
		}
		call := msg.ToolCalls[0]
		env, err := o.dispatch(ctx, loc, call)
		if err == nil {
			o.logger.Info("action executed", "action", call.Function.Name, "source", env.Source)
			return env
		}
		o.logger.Warn("action failed", "action", call.Function.Name, "code", apperrors.CodeOf(err), "error", err)
		if !apperrors.IsCode(err, apperrors.CodeMalformedArguments) || strings.TrimSpace(msg.Content) == "" {
			return errorEnvelope(loc)
		}
	}
	return o.freeText(loc, msg.Content)
}

// SearchDirect runs search_flights without consulting the model.
func (o *Orchestrator) SearchDirect(ctx context.Context, loc locale.Locale, args flight.SearchArgs) Envelope {
	env, err := o.search(ctx, args, SourceManualSearch)
	if err != nil {
		o.logger.Error("manual search failed", "error", err)
		return errorEnvelope(loc)
	}
	return env
}

func (o *Orchestrator) freeText(loc locale.Locale, content string) Envelope {
	text := strings.TrimSpace(content)
	if text == "" {
		o.logger.Warn("model returned empty content")
		return errorEnvelope(loc)
	}
	if term, ok := o.gate.MentionsBlockedTopic(text); ok {
		o.logger.Info("model answer overridden", "term", term)
		return Envelope{Answer: intent.RefusalReply(loc), Source: SourcePersonaOverride}
	}
	return Envelope{Answer: text, Source: SourceAI}
}
