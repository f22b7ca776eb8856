package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime settings, read from the environment with optional
// .env overrides.
type Config struct {
	LogLevel           string
	ServerPort         string
	HTTPTimeoutSeconds int
	StopwordsPath      string // empty means the embedded default list
	TopN               int
	UserAgent          string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:           getEnv("WORDSCOPE_LOG_LEVEL", "info"),
		ServerPort:         getEnv("WORDSCOPE_SERVER_PORT", "8080"),
		HTTPTimeoutSeconds: getEnvInt("WORDSCOPE_HTTP_TIMEOUT_SECONDS", 30),
		StopwordsPath:      getEnv("WORDSCOPE_STOPWORDS_PATH", ""),
		TopN:               getEnvInt("WORDSCOPE_TOP_N", 20),
		UserAgent:          getEnv("WORDSCOPE_USER_AGENT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
