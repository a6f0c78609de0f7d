package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/assistant"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/intent"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/config"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/corpusrepo"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/embedcache"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/embedder"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/flightapi"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/llm/chatgpt"
	"github.com/Rajveer-VIT/flight-chatbot-backend/pkg/logger"
)

// CorpusSet builds the FAQ corpus store and everything it depends on.
var CorpusSet = wire.NewSet(
	ProvideFAQConfig,
	ProvideEmbedder,
	ProvideCorpusRepository,
	ProvideEmbeddingCache,
	faq.NewCorpusStore,
)

// AssistantSet builds the routing pipeline on top of CorpusSet.
var AssistantSet = wire.NewSet(
	CorpusSet,
	ProvideGateConfig,
	ProvideAssistantConfig,
	ProvideChatClient,
	ProvideFlightClient,
	intent.NewGate,
	faq.NewRetriever,
	flightapi.NewLocalBooker,
	assistant.NewOrchestrator,
	assistant.NewService,
	wire.Bind(new(assistant.Gate), new(*intent.Gate)),
	wire.Bind(new(assistant.Retriever), new(*faq.Retriever)),
	wire.Bind(new(flight.Searcher), new(*flightapi.Client)),
	wire.Bind(new(flight.Booker), new(*flightapi.LocalBooker)),
)

// ProvideLogger exposes the process logger to wire.
func ProvideLogger() *slog.Logger {
	return logger.New()
}

func ProvideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		HighThreshold: cfg.FAQ.HighThreshold,
		LowThreshold:  cfg.FAQ.LowThreshold,
		Index:         faq.IndexKind(cfg.FAQ.Index),
		LSHPlanes:     cfg.FAQ.LSHPlanes,
	}
}

func ProvideGateConfig(cfg *config.Config) intent.Config {
	return intent.Config{
		GreetingMode: cfg.Assistant.GreetingMode,
		Greetings:    cfg.Assistant.Greetings,
		BlockTerms:   cfg.Assistant.BlockTerms,
		AllowTerms:   cfg.Assistant.AllowTerms,
	}
}

func ProvideAssistantConfig(cfg *config.Config) assistant.Config {
	return assistant.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Persona:     cfg.Assistant.Persona,
	}
}

// ProvideChatClient returns the ChatGPT client, or a disabled client when no
// API key is configured so offline runs still answer greetings and FAQs.
func ProvideChatClient(cfg *config.Config, logger *slog.Logger) (assistant.ChatClient, error) {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Warn("llm api key not set, model calls will fail")
		return chatgpt.Disabled{}, nil
	}
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func ProvideEmbedder(cfg *config.Config, logger *slog.Logger) (faq.Embedder, error) {
	if cfg.EmbedderDriver() == config.EmbedderDeterministic {
		logger.Info("using deterministic embedder")
		return embedder.NewDeterministicEmbedder(0), nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		return nil, err
	}
	return embedder.NewChatGPTEmbedder(client, cfg.LLM.EmbeddingModel, logger), nil
}

func ProvideFlightClient(cfg *config.Config, logger *slog.Logger) (*flightapi.Client, error) {
	return flightapi.NewClient(cfg.Flights.APIBaseURL, cfg.Flights.Timeout, logger)
}

// ProvideCorpusRepository opens the configured corpus storage. Unlike the
// cache, storage failures are fatal: there is nothing to serve without it.
func ProvideCorpusRepository(cfg *config.Config, logger *slog.Logger) (faq.CorpusRepository, func(), error) {
	switch cfg.FAQ.Storage {
	case config.StoragePostgres:
		pool, err := openPostgres(cfg.FAQ.Postgres)
		if err != nil {
			return nil, nil, err
		}
		repo := corpusrepo.NewPostgresRepository(pool)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("faq postgres repository enabled")
		return repo, pool.Close, nil
	case config.StorageS3:
		repo, err := corpusrepo.NewObjectRepository(corpusrepo.ObjectConfig{
			Endpoint:  cfg.FAQ.S3.Endpoint,
			AccessKey: cfg.FAQ.S3.AccessKey,
			SecretKey: cfg.FAQ.S3.SecretKey,
			Bucket:    cfg.FAQ.S3.Bucket,
			Region:    cfg.FAQ.S3.Region,
			Key:       cfg.FAQ.S3.Key,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("faq object repository enabled", "bucket", cfg.FAQ.S3.Bucket, "key", cfg.FAQ.S3.Key)
		return repo, func() {}, nil
	default:
		logger.Info("faq file repository enabled", "path", cfg.FAQ.CorpusPath)
		return corpusrepo.NewFileRepository(cfg.FAQ.CorpusPath), func() {}, nil
	}
}

func openPostgres(cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("init postgres pool: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return pool, nil
}

// ProvideEmbeddingCache prefers Valkey and falls back to process memory when
// it is disabled or unreachable. Keys are scoped by the active embedder's
// model, so offline vectors never land under a provider model name.
func ProvideEmbeddingCache(cfg *config.Config, emb faq.Embedder, logger *slog.Logger) (faq.EmbeddingCache, func()) {
	cacheCfg := cfg.FAQ.EmbeddingCache
	model := emb.Model()
	memory := embedcache.NewMemoryCache(model, 0, cacheCfg.TTL)
	if !cacheCfg.Enabled {
		return memory, func() {}
	}
	opt, err := buildValkeyOptions(cacheCfg.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return memory, func() {}
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return memory, func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return memory, func() {}
	}
	logger.Info("faq valkey embedding cache enabled", "addr", cacheCfg.Addr, "model", model)
	return embedcache.NewValkeyCache(client, cacheCfg.Prefix, model, cacheCfg.TTL), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
