package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/intent"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

// Service runs the routing pipeline: gate, manual route, FAQ retrieval,
// then the model. Every path ends in an Envelope.
type Service struct {
	gate         Gate
	retriever    Retriever
	orchestrator *Orchestrator
	logger       *slog.Logger
}

// NewService constructs the pipeline.
func NewService(gate Gate, retriever Retriever, orchestrator *Orchestrator, logger *slog.Logger) *Service {
	return &Service{
		gate:         gate,
		retriever:    retriever,
		orchestrator: orchestrator,
		logger:       logger.With("component", "assistant.service"),
	}
}

// Reply answers one utterance. It never returns an error; failures become
// an Error envelope in the utterance's language.
func (s *Service) Reply(ctx context.Context, utterance string) (env Envelope) {
	loc := locale.Detect(utterance)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("pipeline panic", "panic", fmt.Sprint(r))
			env = errorEnvelope(loc)
		}
		s.logger.Info("reply", "source", env.Source, "locale", loc, "latency", time.Since(start))
	}()

	text := strings.TrimSpace(utterance)
	if text == "" {
		return errorEnvelope(loc)
	}

	switch res := s.gate.Check(text, loc); res.Decision {
	case intent.DecisionGreeting:
		return Envelope{Answer: res.Reply, Source: SourceGreeting}
	case intent.DecisionBlocked:
		s.logger.Info("blocked topic", "term", res.Term)
		return Envelope{Answer: res.Reply, Source: SourceBlocked}
	}

	if args, ok := ExtractRoute(text); ok {
		return s.orchestrator.SearchDirect(ctx, loc, args)
	}

	if result := s.retriever.Retrieve(ctx, text); result.Matched {
		s.logger.Debug("faq match", "confidence", result.Confidence, "band", result.Band)
		return Envelope{Answer: result.Answer, Source: SourceRAG}
	}

	if err := ctx.Err(); err != nil {
		s.logger.Warn("request cancelled before model call", "error", err)
		return errorEnvelope(loc)
	}
	return s.orchestrator.Respond(ctx, text, loc)
}
