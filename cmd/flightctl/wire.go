//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/bootstrap"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/config"
)

func initializeToolkit() (*bootstrap.Toolkit, func(), error) {
	wire.Build(
		config.Load,
		bootstrap.ProvideLogger,
		bootstrap.AssistantSet,
		bootstrap.NewToolkit,
	)
	return nil, nil, nil
}
