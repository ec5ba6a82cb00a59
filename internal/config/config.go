package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all runtime settings for the analysis service. Values are
// read from the environment once at startup; a .env file is honored when
// present but never required.
type Config struct {
	Port string `json:"port"`

	LLMProvider    string `json:"llm_provider"`
	OpenAIAPIKey   string `json:"-"`
	OpenAIModel    string `json:"openai_model"`
	OpenAIBaseURL  string `json:"openai_base_url"`
	DeepSeekAPIKey string `json:"-"`
	DeepSeekModel  string `json:"deepseek_model"`
	MaxTokens      int    `json:"max_tokens"`

	CacheEnabled bool          `json:"cache_enabled"`
	CacheTTL     time.Duration `json:"cache_ttl"`

	Debug            bool `json:"debug"`
	EinoDebugEnabled bool `json:"eino_debug_enabled"`
	EinoDebugPort    int  `json:"eino_debug_port"`

	// Longport is an optional realtime quote provider; Yahoo is used when
	// these are absent.
	LongportAppKey      string `json:"-"`
	LongportAppSecret   string `json:"-"`
	LongportAccessToken string `json:"-"`
}

// Load reads configuration from the environment with defaults applied.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: envOr("PORT", "8000"),

		LLMProvider:    envOr("LLM_PROVIDER", "openai"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    envOr("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		DeepSeekAPIKey: os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekModel:  envOr("DEEPSEEK_MODEL", "deepseek-chat"),
		MaxTokens:      envInt("LLM_MAX_TOKENS", 8192),

		CacheEnabled: envBool("CACHE_ENABLED", true),
		CacheTTL:     time.Duration(envInt("CACHE_TTL_MINUTES", 5)) * time.Minute,

		Debug:            envBool("DEBUG", false),
		EinoDebugEnabled: envBool("EINO_DEBUG", false),
		EinoDebugPort:    envInt("EINO_DEBUG_PORT", 52538),

		LongportAppKey:      os.Getenv("LONGPORT_APP_KEY"),
		LongportAppSecret:   os.Getenv("LONGPORT_APP_SECRET"),
		LongportAccessToken: os.Getenv("LONGPORT_ACCESS_TOKEN"),
	}
}

// APIKey returns the credential for the active provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == "deepseek" {
		return c.DeepSeekAPIKey
	}
	return c.OpenAIAPIKey
}

// APIKeyConfigured reports whether the active provider has a credential.
func (c *Config) APIKeyConfigured() bool {
	return c.APIKey() != ""
}

// LongportConfigured reports whether all Longport credentials are present.
func (c *Config) LongportConfigured() bool {
	return c.LongportAppKey != "" && c.LongportAppSecret != "" && c.LongportAccessToken != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
