package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	GeminiAPIKey  string
	GeminiModelID string

	MongoURI       string
	MongoDatabase  string
	UseMemoryStore bool

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	// LLMRetryMaxAttempts and LLMRetryBaseDelay drive the shared
	// retry-then-fallback policy applied to live-chat gateway calls.
	LLMRetryMaxAttempts int
	LLMRetryBaseDelay   time.Duration
	LLMTimeout          time.Duration

	// KnowledgeBaseLimit caps how many knowledge-base characters are
	// embedded into chat prompts.
	KnowledgeBaseLimit int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-1.5-flash"),

		MongoURI:       getEnv("MONGODB_URI", ""),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "turiniq"),
		UseMemoryStore: getEnvAsBool("USE_MEMORY_STORE", false),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", 5*time.Minute),

		LLMRetryMaxAttempts: getEnvAsInt("LLM_RETRY_MAX_ATTEMPTS", 3),
		LLMRetryBaseDelay:   getEnvAsDuration("LLM_RETRY_BASE_DELAY", time.Second),
		LLMTimeout:          getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),

		KnowledgeBaseLimit: getEnvAsInt("KNOWLEDGE_BASE_LIMIT", 1000),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
