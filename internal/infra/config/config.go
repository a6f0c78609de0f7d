package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/assistant"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/intent"
)

// MaxFlightTimeout caps a single inventory call.
const MaxFlightTimeout = 20 * time.Second

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	LLM       LLMConfig       `yaml:"llm"`
	Assistant AssistantConfig `yaml:"assistant"`
	FAQ       FAQConfig       `yaml:"faq"`
	Flights   FlightsConfig   `yaml:"flights"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	CORSOrigins  []string        `yaml:"corsOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey         string  `yaml:"apiKey"`
	BaseURL        string  `yaml:"baseUrl"`
	Model          string  `yaml:"model"`
	EmbeddingModel string  `yaml:"embeddingModel"`
	Temperature    float32 `yaml:"temperature"`
}

// AssistantConfig holds the persona and the intent gate vocabularies.
type AssistantConfig struct {
	Persona      string              `yaml:"persona"`
	GreetingMode intent.GreetingMode `yaml:"greetingMode"`
	Greetings    []string            `yaml:"greetings"`
	BlockTerms   []string            `yaml:"blockTerms"`
	AllowTerms   []string            `yaml:"allowTerms"`
}

// Storage drivers for the FAQ corpus.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageS3       = "s3"
)

// Embedder drivers.
const (
	EmbedderOpenAI        = "openai"
	EmbedderDeterministic = "deterministic"
)

// FAQConfig controls the FAQ corpus and retrieval.
type FAQConfig struct {
	CorpusPath     string               `yaml:"corpusPath"`
	HighThreshold  float64              `yaml:"highThreshold"`
	LowThreshold   float64              `yaml:"lowThreshold"`
	Index          string               `yaml:"index"`
	LSHPlanes      int                  `yaml:"lshPlanes"`
	Storage        string               `yaml:"storage"`
	Embedder       string               `yaml:"embedder"`
	EmbeddingCache EmbeddingCacheConfig `yaml:"embeddingCache"`
	Postgres       PostgresConfig       `yaml:"postgres"`
	S3             S3Config             `yaml:"s3"`
}

// EmbeddingCacheConfig contains connection information for the vector cache.
type EmbeddingCacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	Prefix  string        `yaml:"prefix"`
	TTL     time.Duration `yaml:"ttl"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// S3Config addresses the corpus object in S3-compatible storage.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Key       string `yaml:"key"`
}

// FlightsConfig points at the flight inventory service.
type FlightsConfig struct {
	APIBaseURL string        `yaml:"apiBaseUrl"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Load reads configuration from a .env file, a YAML file and environment
// variables, in that order of increasing precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := firstEnv("LLM_API_KEY", "OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("ASSISTANT_PERSONA"); v != "" {
		cfg.Assistant.Persona = v
	}
	if v := os.Getenv("ASSISTANT_GREETING_MODE"); v != "" {
		cfg.Assistant.GreetingMode = intent.GreetingMode(strings.ToLower(v))
	}
	if v := os.Getenv("ASSISTANT_BLOCK_TERMS"); v != "" {
		cfg.Assistant.BlockTerms = splitList(v)
	}
	if v := os.Getenv("ASSISTANT_ALLOW_TERMS"); v != "" {
		cfg.Assistant.AllowTerms = splitList(v)
	}
	if v := os.Getenv("FAQ_CORPUS_PATH"); v != "" {
		cfg.FAQ.CorpusPath = v
	}
	if v := os.Getenv("FAQ_HIGH_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FAQ.HighThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_LOW_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FAQ.LowThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_INDEX"); v != "" {
		cfg.FAQ.Index = strings.ToLower(v)
	}
	if v := os.Getenv("FAQ_STORAGE"); v != "" {
		cfg.FAQ.Storage = strings.ToLower(v)
	}
	if v := os.Getenv("FAQ_EMBEDDER"); v != "" {
		cfg.FAQ.Embedder = strings.ToLower(v)
	}
	if v := os.Getenv("FAQ_CACHE_ENABLED"); v != "" {
		cfg.FAQ.EmbeddingCache.Enabled = parseBool(v)
	}
	if v := os.Getenv("FAQ_CACHE_ADDR"); v != "" {
		cfg.FAQ.EmbeddingCache.Addr = v
	}
	if v := os.Getenv("FAQ_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.FAQ.EmbeddingCache.TTL = parsed
		}
	}
	if v := os.Getenv("FAQ_POSTGRES_DSN"); v != "" {
		cfg.FAQ.Postgres.DSN = v
	}
	if v := os.Getenv("FAQ_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_S3_ENDPOINT"); v != "" {
		cfg.FAQ.S3.Endpoint = v
	}
	if v := os.Getenv("FAQ_S3_ACCESS_KEY"); v != "" {
		cfg.FAQ.S3.AccessKey = v
	}
	if v := os.Getenv("FAQ_S3_SECRET_KEY"); v != "" {
		cfg.FAQ.S3.SecretKey = v
	}
	if v := os.Getenv("FAQ_S3_BUCKET"); v != "" {
		cfg.FAQ.S3.Bucket = v
	}
	if v := firstEnv("FLIGHTS_API_BASE_URL", "FLIGHT_API_BASE_URL"); v != "" {
		cfg.Flights.APIBaseURL = v
	}
	if v := os.Getenv("FLIGHTS_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Flights.Timeout = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			CORSOrigins: []string{"*"},
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-large",
			Temperature:    0.2,
		},
		Assistant: AssistantConfig{
			Persona:      assistant.DefaultPersona,
			GreetingMode: intent.GreetingExact,
			Greetings:    intent.DefaultGreetings,
			BlockTerms:   intent.DefaultBlockTerms,
			AllowTerms:   intent.DefaultAllowTerms,
		},
		FAQ: FAQConfig{
			CorpusPath:    "data/faqs.json",
			HighThreshold: 0.80,
			LowThreshold:  0.70,
			Index:         "linear",
			LSHPlanes:     12,
			Storage:       StorageFile,
			EmbeddingCache: EmbeddingCacheConfig{
				Prefix: "flightbot",
			},
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
			S3: S3Config{
				Key: "faqs.json",
			},
		},
		Flights: FlightsConfig{
			APIBaseURL: "http://localhost:9000",
			Timeout:    MaxFlightTimeout,
		},
	}
}

// EmbedderDriver resolves the configured embedder, defaulting to the
// deterministic one when no API key is set.
func (c *Config) EmbedderDriver() string {
	if c.FAQ.Embedder != "" {
		return c.FAQ.Embedder
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return EmbedderDeterministic
	}
	return EmbedderOpenAI
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if strings.TrimSpace(c.LLM.EmbeddingModel) == "" {
		return errors.New("llm.embeddingModel cannot be empty")
	}
	switch c.Assistant.GreetingMode {
	case intent.GreetingExact, intent.GreetingContains:
	default:
		return fmt.Errorf("assistant.greetingMode %q is not one of exact, contains", c.Assistant.GreetingMode)
	}
	if len(c.Assistant.Greetings) == 0 {
		return errors.New("assistant.greetings cannot be empty")
	}
	if len(c.Assistant.BlockTerms) == 0 {
		return errors.New("assistant.blockTerms cannot be empty")
	}
	if strings.TrimSpace(c.FAQ.CorpusPath) == "" && c.FAQ.Storage == StorageFile {
		return errors.New("faq.corpusPath cannot be empty")
	}
	if c.FAQ.LowThreshold < -1 || c.FAQ.HighThreshold > 1 || c.FAQ.LowThreshold > c.FAQ.HighThreshold {
		return errors.New("faq thresholds must satisfy -1 <= lowThreshold <= highThreshold <= 1")
	}
	switch c.FAQ.Index {
	case "linear":
	case "lsh":
		if c.FAQ.LSHPlanes <= 0 || c.FAQ.LSHPlanes > 64 {
			return errors.New("faq.lshPlanes must be within 1..64")
		}
	default:
		return fmt.Errorf("faq.index %q is not one of linear, lsh", c.FAQ.Index)
	}
	switch c.FAQ.Storage {
	case StorageFile:
	case StoragePostgres:
		if strings.TrimSpace(c.FAQ.Postgres.DSN) == "" {
			return errors.New("faq.postgres.dsn cannot be empty when storage is postgres")
		}
	case StorageS3:
		if strings.TrimSpace(c.FAQ.S3.Endpoint) == "" || strings.TrimSpace(c.FAQ.S3.Bucket) == "" {
			return errors.New("faq.s3.endpoint and faq.s3.bucket are required when storage is s3")
		}
	default:
		return fmt.Errorf("faq.storage %q is not one of file, postgres, s3", c.FAQ.Storage)
	}
	switch c.EmbedderDriver() {
	case EmbedderDeterministic:
	case EmbedderOpenAI:
		if strings.TrimSpace(c.LLM.APIKey) == "" {
			return errors.New("llm.apiKey is required for the openai embedder")
		}
	default:
		return fmt.Errorf("faq.embedder %q is not one of openai, deterministic", c.FAQ.Embedder)
	}
	if c.FAQ.EmbeddingCache.Enabled && strings.TrimSpace(c.FAQ.EmbeddingCache.Addr) == "" {
		return errors.New("faq.embeddingCache.addr cannot be empty when the cache is enabled")
	}
	if strings.TrimSpace(c.Flights.APIBaseURL) == "" {
		return errors.New("flights.apiBaseUrl cannot be empty")
	}
	if c.Flights.Timeout <= 0 || c.Flights.Timeout > MaxFlightTimeout {
		return fmt.Errorf("flights.timeout must be within (0, %s]", MaxFlightTimeout)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
