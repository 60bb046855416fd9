package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"FUZZY_PORT", "FUZZY_METRICS_PORT", "FUZZY_ADMIN_TOKEN", "FUZZY_RATE_LIMIT",
	"FUZZY_DATABASE_URL", "FUZZY_HERMES_URL", "FUZZY_STATS_INTERVAL_MS",
	"FUZZY_CACHE_SIZE", "FUZZY_LOG_LEVEL", "FUZZY_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimit != 600 {
		t.Errorf("expected rate limit 600, got %d", cfg.Server.RateLimit)
	}
	if cfg.Database.URL != "" {
		t.Errorf("expected empty database URL, got %s", cfg.Database.URL)
	}
	if cfg.Hermes.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Hermes.URL)
	}
	if cfg.Advisor.CacheSize != 256 {
		t.Errorf("expected cache size 256, got %d", cfg.Advisor.CacheSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	w := cfg.Advisor.Weights
	if math.Abs(w.Health-0.6) > 0.001 || math.Abs(w.Safety-0.4) > 0.001 {
		t.Errorf("unexpected default weights %+v", w)
	}

	if cfg.StatsInterval() != 30*time.Second {
		t.Errorf("expected StatsInterval 30s, got %v", cfg.StatsInterval())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FUZZY_PORT", "9000")
	t.Setenv("FUZZY_METRICS_PORT", "9001")
	t.Setenv("FUZZY_ADMIN_TOKEN", "secret-token")
	t.Setenv("FUZZY_RATE_LIMIT", "10")
	t.Setenv("FUZZY_DATABASE_URL", "postgres://localhost/fuzzy_test")
	t.Setenv("FUZZY_HERMES_URL", "nats://nats:4222")
	t.Setenv("FUZZY_STATS_INTERVAL_MS", "2000")
	t.Setenv("FUZZY_CACHE_SIZE", "16")
	t.Setenv("FUZZY_LOG_LEVEL", "debug")
	t.Setenv("FUZZY_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Server.RateLimit != 10 {
		t.Errorf("expected rate limit 10, got %d", cfg.Server.RateLimit)
	}
	if cfg.Database.URL != "postgres://localhost/fuzzy_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Hermes.URL != "nats://nats:4222" {
		t.Errorf("expected hermes URL, got '%s'", cfg.Hermes.URL)
	}
	if cfg.StatsInterval() != 2*time.Second {
		t.Errorf("expected stats interval 2s, got %v", cfg.StatsInterval())
	}
	if cfg.Advisor.CacheSize != 16 {
		t.Errorf("expected cache size 16, got %d", cfg.Advisor.CacheSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected log format 'text', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "fuzzy.yaml")
	data := []byte(`
server:
  port: 7000
advisor:
  cache_size: 0
  weights:
    health: 1
    safety: 3
logging:
  level: warn
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port to survive, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Advisor.CacheSize != 0 {
		t.Errorf("expected cache size 0, got %d", cfg.Advisor.CacheSize)
	}
	if cfg.Advisor.Weights.Safety != 3 {
		t.Errorf("expected safety weight 3, got %f", cfg.Advisor.Weights.Safety)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
