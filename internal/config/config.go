package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the TalkLens server.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	AI         AIConfig
	Retrieval  RetrievalConfig
	Transcribe TranscribeConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	URL string
}

type AIConfig struct {
	Provider         string
	InferenceTimeout time.Duration
	OpenAI           OpenAIConfig
	DashScope        DashScopeConfig
}

type OpenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type DashScopeConfig struct {
	APIKey string
	Model  string
}

// RetrievalConfig configures the vector index query plus the embedding call
// that precedes it.
type RetrievalConfig struct {
	IndexURL     string
	APIKey       string
	TopK         int
	Timeout      time.Duration
	EmbedBaseURL string
	EmbedAPIKey  string
	EmbedModel   string
}

type TranscribeConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

var validProviders = map[string]bool{
	"openai":    true,
	"dashscope": true,
}

// Load reads configuration from environment variables and returns a validated Config.
// Returns an error with a descriptive message if any required value is missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("TALKLENS_PORT", 8080),
			Env:  envString("TALKLENS_ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		AI: AIConfig{
			Provider:         os.Getenv("AI_PROVIDER"),
			InferenceTimeout: envDurationSecs("AI_INFERENCE_TIMEOUT_SECS", 60*time.Second),
			OpenAI: OpenAIConfig{
				BaseURL: envString("OPENAI_BASE_URL", "https://api.openai.com"),
				APIKey:  os.Getenv("OPENAI_API_KEY"),
				Model:   envString("OPENAI_MODEL", "gpt-4o-mini"),
			},
			DashScope: DashScopeConfig{
				APIKey: os.Getenv("DASHSCOPE_API_KEY"),
				Model:  envString("DASHSCOPE_MODEL", "qwen-plus"),
			},
		},
		Retrieval: RetrievalConfig{
			IndexURL:     os.Getenv("RETRIEVAL_INDEX_URL"),
			APIKey:       os.Getenv("RETRIEVAL_API_KEY"),
			TopK:         envInt("RETRIEVAL_TOP_K", 5),
			Timeout:      envDuration("RETRIEVAL_TIMEOUT", 30*time.Second),
			EmbedBaseURL: envString("EMBEDDING_BASE_URL", "https://api.openai.com"),
			EmbedAPIKey:  os.Getenv("EMBEDDING_API_KEY"),
			EmbedModel:   envString("EMBEDDING_MODEL", "text-embedding-3-small"),
		},
		Transcribe: TranscribeConfig{
			BaseURL: envString("TRANSCRIBE_BASE_URL", "https://api.openai.com"),
			APIKey:  os.Getenv("TRANSCRIBE_API_KEY"),
			Model:   envString("TRANSCRIBE_MODEL", "whisper-1"),
			Timeout: envDuration("TRANSCRIBE_TIMEOUT", 60*time.Second),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if c.AI.Provider == "" {
		return fmt.Errorf("AI_PROVIDER is required")
	}
	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("AI_PROVIDER must be one of openai, dashscope; got %q", c.AI.Provider)
	}
	if c.AI.Provider == "openai" && c.AI.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER is openai")
	}
	if c.AI.Provider == "dashscope" && c.AI.DashScope.APIKey == "" {
		return fmt.Errorf("DASHSCOPE_API_KEY is required when AI_PROVIDER is dashscope")
	}

	if c.Retrieval.IndexURL == "" {
		return fmt.Errorf("RETRIEVAL_INDEX_URL is required")
	}
	if !strings.HasPrefix(c.Retrieval.IndexURL, "http://") && !strings.HasPrefix(c.Retrieval.IndexURL, "https://") {
		return fmt.Errorf("RETRIEVAL_INDEX_URL must start with http:// or https://, got %q", c.Retrieval.IndexURL)
	}
	if c.Retrieval.EmbedAPIKey == "" {
		return fmt.Errorf("EMBEDDING_API_KEY is required")
	}
	if c.Retrieval.TopK < 1 {
		return fmt.Errorf("RETRIEVAL_TOP_K must be at least 1; got %d", c.Retrieval.TopK)
	}

	if c.Transcribe.APIKey == "" {
		return fmt.Errorf("TRANSCRIBE_API_KEY is required")
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func envDurationSecs(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
