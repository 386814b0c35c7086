package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type AppConfig struct {
	Name      string
	Env       string
	Port      string
	LogLevel  string
	LogFormat string
	RateLimit RateLimitConfig
}

// RateLimitConfig bounds requests per client on the HTTP transport.
type RateLimitConfig struct {
	Max        int
	Expiration time.Duration
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = appConfigFromEnv()
	})
	return appConfig
}

func appConfigFromEnv() *AppConfig {
	return &AppConfig{
		Name:      getEnv("APP_NAME", "useresume-gateway"),
		Env:       getEnv("APP_ENV", "development"),
		Port:      getEnv("APP_PORT", ":8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		RateLimit: RateLimitConfig{
			Max:        getEnvInt("RATE_LIMIT_MAX", 50),
			Expiration: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

func (c *AppConfig) IsProduction() bool { return c.Env == "production" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
