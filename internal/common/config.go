package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	News        NewsConfig      `toml:"news"`
	Scraper     ScraperConfig   `toml:"scraper"`
	Firecrawl   FirecrawlConfig `toml:"firecrawl"`
	Gemini      GeminiConfig    `toml:"gemini"`
	Claude      ClaudeConfig    `toml:"claude"`
	LLM         LLMConfig       `toml:"llm"`
	Sentiment   SentimentConfig `toml:"sentiment"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs
}

// NewsConfig contains the news search backend configuration
type NewsConfig struct {
	APIKey         string        `toml:"api_key"`          // NewsAPI key
	BaseURL        string        `toml:"base_url"`         // Override for testing
	WindowDays     int           `toml:"window_days"`      // Search window size in days (default: 7)
	IndustryPages  int           `toml:"industry_pages"`   // Page size for industry sweeps (default: 100)
	MarketPages    int           `toml:"market_pages"`     // Page size for focused market queries (default: 5)
	RequestTimeout time.Duration `toml:"request_timeout"`  // HTTP request timeout
}

// ScraperConfig controls the article scrape stage
type ScraperConfig struct {
	Strategy       string        `toml:"strategy"`        // "firecrawl" or "article" (local extraction)
	Concurrency    int           `toml:"concurrency"`     // Worker pool size for the URL fan-out
	RequestTimeout time.Duration `toml:"request_timeout"` // Per-URL fetch timeout
	UserAgent      string        `toml:"user_agent"`      // User agent for local article fetches
	MaxBodySize    int           `toml:"max_body_size"`   // Maximum response body size in bytes
}

// FirecrawlConfig contains the markdown scraping backend configuration
type FirecrawlConfig struct {
	APIKey         string        `toml:"api_key"`
	BaseURL        string        `toml:"base_url"`
	RequestTimeout time.Duration `toml:"request_timeout"`
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`     // Google Gemini API key
	Model       string  `toml:"model"`       // Model for synthesis (default: "gemini-2.0-flash")
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string (default: "2m")
	Temperature float32 `toml:"temperature"` // Completion temperature (default: 0.2)
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`       // Model for synthesis (default: "claude-haiku-3-5-20241022")
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response (default: 8192)
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string (default: "2m")
	Temperature float32 `toml:"temperature"` // Completion temperature (default: 0.2)
}

// LLMProvider represents the AI provider type
type LLMProvider string

const (
	// LLMProviderGemini uses Google Gemini API
	LLMProviderGemini LLMProvider = "gemini"
	// LLMProviderClaude uses Anthropic Claude API
	LLMProviderClaude LLMProvider = "claude"
)

// LLMConfig selects the synthesis provider
type LLMConfig struct {
	DefaultProvider LLMProvider `toml:"default_provider"` // "gemini" or "claude" (default: "gemini")
}

// SentimentConfig contains the sentiment scoring backend configuration
type SentimentConfig struct {
	URL            string        `toml:"url"`             // Scoring endpoint
	RequestTimeout time.Duration `toml:"request_timeout"` // HTTP request timeout
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability;
// only user-facing settings should be exposed in sentio.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8001,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		News: NewsConfig{
			BaseURL:        "https://newsapi.org/v2",
			WindowDays:     7,
			IndustryPages:  100,
			MarketPages:    5,
			RequestTimeout: 30 * time.Second,
		},
		Scraper: ScraperConfig{
			Strategy:       "article",
			Concurrency:    3,
			RequestTimeout: 30 * time.Second,
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			MaxBodySize:    10 * 1024 * 1024, // 10MB
		},
		Firecrawl: FirecrawlConfig{
			BaseURL:        "https://api.firecrawl.dev/v1",
			RequestTimeout: 60 * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:      "",
			Model:       "gemini-2.0-flash",
			Timeout:     "2m",
			Temperature: 0.2,
		},
		Claude: ClaudeConfig{
			APIKey:      "",
			Model:       "claude-haiku-3-5-20241022",
			MaxTokens:   8192,
			Timeout:     "2m",
			Temperature: 0.2,
		},
		LLM: LLMConfig{
			DefaultProvider: LLMProviderGemini,
		},
		Sentiment: SentimentConfig{
			URL:            "https://kidusshun-buildspace-sentiment.hf.space/sentiment",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env -> CLI
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("SENTIO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("SENTIO_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("SENTIO_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Logging configuration
	if level := os.Getenv("SENTIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	// News backend configuration
	// NEWS_API_KEY is the key name the original deployment used; keep both
	if apiKey := os.Getenv("SENTIO_NEWS_API_KEY"); apiKey != "" {
		config.News.APIKey = apiKey
	} else if apiKey := os.Getenv("NEWS_API_KEY"); apiKey != "" {
		config.News.APIKey = apiKey
	}
	if baseURL := os.Getenv("SENTIO_NEWS_BASE_URL"); baseURL != "" {
		config.News.BaseURL = baseURL
	}
	if days := os.Getenv("SENTIO_NEWS_WINDOW_DAYS"); days != "" {
		if d, err := strconv.Atoi(days); err == nil && d > 0 {
			config.News.WindowDays = d
		}
	}

	// Scraper configuration
	if strategy := os.Getenv("SENTIO_SCRAPER_STRATEGY"); strategy != "" {
		config.Scraper.Strategy = strategy
	}
	if concurrency := os.Getenv("SENTIO_SCRAPER_CONCURRENCY"); concurrency != "" {
		if c, err := strconv.Atoi(concurrency); err == nil && c > 0 {
			config.Scraper.Concurrency = c
		}
	}
	if timeout := os.Getenv("SENTIO_SCRAPER_REQUEST_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.Scraper.RequestTimeout = t
		}
	}

	// Firecrawl configuration
	if apiKey := os.Getenv("SENTIO_FIRECRAWL_API_KEY"); apiKey != "" {
		config.Firecrawl.APIKey = apiKey
	} else if apiKey := os.Getenv("FIRECRAWL_API_KEY"); apiKey != "" {
		config.Firecrawl.APIKey = apiKey
	}
	if baseURL := os.Getenv("SENTIO_FIRECRAWL_BASE_URL"); baseURL != "" {
		config.Firecrawl.BaseURL = baseURL
	}

	// Gemini configuration
	if apiKey := os.Getenv("SENTIO_GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	} else if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("SENTIO_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if timeout := os.Getenv("SENTIO_GEMINI_TIMEOUT"); timeout != "" {
		config.Gemini.Timeout = timeout
	}

	// Claude configuration
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}
	if apiKey := os.Getenv("SENTIO_CLAUDE_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey // SENTIO_ prefix takes priority
	}
	if model := os.Getenv("SENTIO_CLAUDE_MODEL"); model != "" {
		config.Claude.Model = model
	}

	// LLM provider configuration
	if provider := os.Getenv("SENTIO_LLM_DEFAULT_PROVIDER"); provider != "" {
		config.LLM.DefaultProvider = LLMProvider(provider)
	}

	// Sentiment backend configuration
	if url := os.Getenv("SENTIO_SENTIMENT_URL"); url != "" {
		config.Sentiment.URL = url
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
