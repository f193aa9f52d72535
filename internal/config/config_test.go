package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("database defaults = %s:%d, want localhost:5432", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Database.Name != "autologic" {
		t.Errorf("database name = %q, want autologic", cfg.Database.Name)
	}
	if cfg.Shopify.APIVersion != "2023-10" {
		t.Errorf("shopify api version = %q, want 2023-10", cfg.Shopify.APIVersion)
	}
	if cfg.Shopify.RequestTimeout != 5*time.Second {
		t.Errorf("shopify timeout = %v, want 5s", cfg.Shopify.RequestTimeout)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis addr = %q, want empty (cache disabled)", cfg.Redis.Addr)
	}
	if cfg.APIPort != "8080" {
		t.Errorf("api port = %q, want 8080", cfg.APIPort)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("SHOPIFY_REQUEST_TIMEOUT", "10s")
	t.Setenv("SHOPIFY_RATE_LIMIT", "2.5")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("SEARCH_CACHE_TTL", "1m")
	t.Setenv("API_PORT", "9090")

	cfg := Load()

	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 6543 {
		t.Errorf("database = %s:%d, want db.internal:6543", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Shopify.RequestTimeout != 10*time.Second {
		t.Errorf("shopify timeout = %v, want 10s", cfg.Shopify.RequestTimeout)
	}
	if cfg.Shopify.RateLimit != 2.5 {
		t.Errorf("shopify rate limit = %v, want 2.5", cfg.Shopify.RateLimit)
	}
	if cfg.Redis.Addr != "redis.internal:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
	if cfg.Redis.CacheTTL != time.Minute {
		t.Errorf("cache ttl = %v, want 1m", cfg.Redis.CacheTTL)
	}
	if cfg.APIPort != "9090" {
		t.Errorf("api port = %q, want 9090", cfg.APIPort)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("SHOPIFY_REQUEST_TIMEOUT", "soon")

	cfg := Load()

	if cfg.Database.Port != 5432 {
		t.Errorf("malformed DB_PORT produced %d, want the default 5432", cfg.Database.Port)
	}
	if cfg.Shopify.RequestTimeout != 5*time.Second {
		t.Errorf("malformed SHOPIFY_REQUEST_TIMEOUT produced %v, want the default 5s", cfg.Shopify.RequestTimeout)
	}
}
