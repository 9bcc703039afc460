package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// LLM move provider
	LLMProvider      string
	LLMModel         string
	OpenAIAPIKey     string
	AnthropicAPIKey  string
	OpenRouterAPIKey string
	OpenAIBaseURL    string
	AIMoveTimeout    time.Duration

	// Optional game history store
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int

	// Optional save/resume store
	RedisURL      string
	RedisPassword string
	SaveSlot      string

	// Optional spectator server
	WatchAddr string
}

func LoadConfig() *Config {
	return &Config{
		LLMProvider:      GetEnv("LLM_PROVIDER", "openai"),
		LLMModel:         GetEnv("LLM_MODEL", ""),
		OpenAIAPIKey:     GetEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey:  GetEnv("ANTHROPIC_API_KEY", ""),
		OpenRouterAPIKey: GetEnv("OPENROUTER_API_KEY", ""),
		OpenAIBaseURL:    GetEnv("OPENAI_BASE_URL", ""),
		AIMoveTimeout:    GetEnvAsDuration("AI_MOVE_TIMEOUT_SECONDS", 30*time.Second),

		DatabaseURL:          GetEnv("DATABASE_URL", ""),
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 5),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),

		RedisURL:      GetEnv("REDIS_URL", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		SaveSlot:      GetEnv("SAVE_SLOT", "default"),

		WatchAddr: GetEnv("WATCH_ADDR", ""),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads a whole number of seconds from the
// environment.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid duration value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
