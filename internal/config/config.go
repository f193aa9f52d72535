package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Database DatabaseConfig
	Shopify  ShopifyConfig
	Redis    RedisConfig
	APIPort  string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type ShopifyConfig struct {
	Domain         string
	FallbackDomain string
	APIVersion     string
	AccessToken    string
	RequestTimeout time.Duration
	RateLimit      float64
	PageSize       int
}

// RedisConfig configures the optional search response cache. An empty Addr
// disables caching entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "autologic"),
			User:     getEnv("DB_USER", "autologic"),
			Password: getEnv("DB_PASSWORD", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Shopify: ShopifyConfig{
			Domain:         getEnv("SHOPIFY_DOMAIN", "autologic.mx"),
			FallbackDomain: getEnv("SHOPIFY_FALLBACK_DOMAIN", "autologicshop.myshopify.com"),
			APIVersion:     getEnv("SHOPIFY_API_VERSION", "2023-10"),
			AccessToken:    getEnv("SHOPIFY_API_TOKEN", ""),
			RequestTimeout: getEnvDuration("SHOPIFY_REQUEST_TIMEOUT", 5*time.Second),
			RateLimit:      getEnvFloat("SHOPIFY_RATE_LIMIT", 4),
			PageSize:       getEnvInt("SHOPIFY_PAGE_SIZE", 10),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: getEnvDuration("SEARCH_CACHE_TTL", 5*time.Minute),
		},
		APIPort:  getEnv("API_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
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
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
