package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseServiceKey     string
	SupabaseJWTSecret      string

	// Database
	DatabaseURL string

	// Language model
	LLMProvider    string
	LLMAPIURL      string
	LLMAPIKeyEnv   string
	LLMModel       string
	LLMTemperature float32
	LLMMaxTokens   int
	LLMTimeout     time.Duration

	// Reviews
	ReviewsRequireApproval bool
	TestimonialsPageSize   int

	// Server
	Port        string
	Environment string
	BaseURL     string
	LogLevel    string
}

// Load reads the configuration from the environment, after merging in a
// .env file when one is present.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseServiceKey:     getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		LLMProvider:  getEnv("LLM_PROVIDER", ProviderOpenAI),
		LLMAPIURL:    getEnv("LLM_API_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		LLMAPIKeyEnv: getEnv("LLM_API_KEY_ENV", "LOVABLE_API_KEY"),
		LLMModel:     getEnv("LLM_MODEL", "google/gemini-3-flash-preview"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.LLMTemperature, err = getFloat32("LLM_TEMPERATURE", 0.7); err != nil {
		return nil, err
	}
	if cfg.LLMMaxTokens, err = getInt("LLM_MAX_TOKENS", 300); err != nil {
		return nil, err
	}
	if cfg.LLMTimeout, err = getDuration("LLM_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.ReviewsRequireApproval, err = getBool("REVIEWS_REQUIRE_APPROVAL", true); err != nil {
		return nil, err
	}
	if cfg.TestimonialsPageSize, err = getInt("TESTIMONIALS_PAGE_SIZE", 6); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	switch c.LLMProvider {
	case ProviderOpenAI:
		if c.LLMAPIURL == "" {
			return fmt.Errorf("LLM_API_URL is required for provider %q", c.LLMProvider)
		}
	case ProviderGemini:
	default:
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.LLMProvider)
	}
	if c.LLMAPIKeyEnv == "" {
		return fmt.Errorf("LLM_API_KEY_ENV is required")
	}
	if c.LLMMaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive")
	}
	if c.TestimonialsPageSize < 1 || c.TestimonialsPageSize > 10 {
		return fmt.Errorf("TESTIMONIALS_PAGE_SIZE must be between 1 and 10")
	}
	return nil
}

// StoreKey is the key used for PostgREST access. The service key bypasses
// row level security; without it the publishable key is used.
func (c *Config) StoreKey() string {
	if c.SupabaseServiceKey != "" {
		return c.SupabaseServiceKey
	}
	return c.SupabasePublishableKey
}

// LLMAPIKey reads the upstream credential. It is looked up on every call so
// a rotated key takes effect without a restart.
func (c *Config) LLMAPIKey() string {
	return os.Getenv(c.LLMAPIKeyEnv)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func getFloat32(key string, defaultValue float32) (float32, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return float32(v), nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return v, nil
}
