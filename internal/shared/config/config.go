package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port             string
	CORSAllowOrigin  []string
	Env              string
	LLMProvider      string
	LLMModel         string
	GeminiAPIKey     string
	OpenRouterAPIKey string
	Temperature      float32
	TopP             float32
	TopK             float32
	MaxOutputTokens  int32
}

const (
	defaultGeminiModel = "gemini-2.0-flash"
	defaultTemperature = 0.7
	defaultMaxTokens   = 4096
)

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	provider := normalizeProvider(getEnv("LLM_PROVIDER", "gemini"))
	model := getEnv("LLM_MODEL", "")
	if model == "" && provider == "gemini" {
		model = defaultGeminiModel
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:              normalizeEnv(getEnv("ENV", "dev")),
		LLMProvider:      provider,
		LLMModel:         model,
		GeminiAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		Temperature:      getEnvFloat("MODEL_TEMPERATURE", defaultTemperature),
		TopP:             getEnvFloat("MODEL_TOP_P", 1),
		TopK:             getEnvFloat("MODEL_TOP_K", 1),
		MaxOutputTokens:  int32(getEnvInt("MODEL_MAX_OUTPUT_TOKENS", defaultMaxTokens)),
	}
}

// Credential returns the API key for the configured provider.
func (c Config) Credential() string {
	if c.LLMProvider == "openrouter" {
		return c.OpenRouterAPIKey
	}
	return c.GeminiAPIKey
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvFloat(key string, def float32) float32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return def
	}
	return float32(parsed)
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openrouter":
		return "openrouter"
	default:
		return "gemini"
	}
}
