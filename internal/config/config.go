package config

import (
	"os"
	"time"
)

type Config struct {
	ListenAddr        string
	ClaudeAPIKey      string
	OpenAIAPIKey      string
	GeminiAPIKey      string
	BraveAPIKey       string
	LogLevel          string
	LogFile           string
	VisionTimeout     time.Duration
	SearchTimeout     time.Duration
	TranscribeTimeout time.Duration
}

func Load() *Config {
	return &Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		ClaudeAPIKey:      getEnv("CLAUDE_API_KEY", ""),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		BraveAPIKey:       getEnv("BRAVE_SEARCH_API_KEY", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           getEnv("LOG_FILE", ""),
		VisionTimeout:     getDuration("VISION_TIMEOUT", 60*time.Second),
		SearchTimeout:     getDuration("SEARCH_TIMEOUT", 5*time.Second),
		TranscribeTimeout: getDuration("TRANSCRIBE_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
