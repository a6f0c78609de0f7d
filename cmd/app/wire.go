//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/bootstrap"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/assistant"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/config"
	httpiface "github.com/Rajveer-VIT/flight-chatbot-backend/internal/interface/http"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		bootstrap.ProvideLogger,
		bootstrap.AssistantSet,
		httpiface.NewHandler,
		httpiface.NewChatSocket,
		httpiface.NewRouter,
		bootstrap.NewApp,
		wire.Bind(new(httpiface.Replier), new(*assistant.Service)),
		wire.Bind(new(httpiface.ReadinessChecker), new(*faq.CorpusStore)),
		wire.Bind(new(bootstrap.CorpusInitializer), new(*faq.CorpusStore)),
	)
	return nil, nil, nil
}
