package bootstrap

import (
	"log/slog"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/assistant"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/config"
)

// Toolkit is the operator CLI's view of the application graph.
type Toolkit struct {
	Config    *config.Config
	Logger    *slog.Logger
	Corpus    *faq.CorpusStore
	Retriever *faq.Retriever
	Assistant *assistant.Service
}

// NewToolkit is used by Wire to build the CLI graph.
func NewToolkit(cfg *config.Config, logger *slog.Logger, corpus *faq.CorpusStore, retriever *faq.Retriever, svc *assistant.Service) *Toolkit {
	return &Toolkit{Config: cfg, Logger: logger, Corpus: corpus, Retriever: retriever, Assistant: svc}
}
