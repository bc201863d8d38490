package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel string
	Locale   string
	Seed     int64
	OutDir   string
}

func Load() *Config {
	return &Config{
		LogLevel: getEnv("TABULA_LOG_LEVEL", "info"),
		Locale:   getEnv("TABULA_LOCALE", "en_US"),
		Seed:     getEnvInt64("TABULA_SEED", 20),
		OutDir:   getEnv("TABULA_OUT_DIR", "."),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
