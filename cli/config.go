package cli

import (
	"os"
	"strconv"

	"jump61/meta"
)

// Config holds CLI configuration
type Config struct {
	Size     int
	Depth    int
	LogLevel string
}

// DefaultConfig returns a Config with defaults taken from the environment
func DefaultConfig() *Config {
	return &Config{
		Size:     getIntEnvOrDefault("JUMP61_SIZE", meta.BOARD_SIZE),
		Depth:    getIntEnvOrDefault("JUMP61_DEPTH", meta.SEARCH_DEPTH),
		LogLevel: getEnvOrDefault("JUMP61_LOG_LEVEL", "info"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnvOrDefault(key string, defaultVal int) int {
	val, err := strconv.Atoi(getEnvOrDefault(key, ""))
	if err != nil {
		return defaultVal
	}
	return val
}
