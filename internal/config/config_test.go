package config

import (
	"testing"
	"time"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8085")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "15")
	t.Setenv("REFRESH_TOKEN_TTL_DAYS", "7")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("SEED_FIXTURES", "false")

	cfg := Load()
	if cfg.Env != "test" || cfg.Port != "8085" || cfg.JWTSecret != "s3cret" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.AccessTTLMin != 15 || cfg.RefreshTTLDays != 7 || cfg.BcryptCost != 10 {
		t.Errorf("unexpected int fields: %+v", cfg)
	}
	if cfg.SeedFixtures {
		t.Error("expected fixtures disabled")
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("cache should default to enabled")
	}
	if !cfg.Methods["GET"] {
		t.Error("GET should be cacheable by default")
	}
	if cfg.TTL != 30*time.Second {
		t.Errorf("unexpected default TTL: %v", cfg.TTL)
	}
}

func TestLoadRateLimitConfigClampsValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "-3")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "0")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 || cfg.RefillTokens != 1 {
		t.Errorf("expected clamped capacity/refill, got %+v", cfg)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Errorf("TTL not raised to minimum: %+v", cfg)
	}
}
