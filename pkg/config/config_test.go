package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
environment: test
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 10s
  shutdown_timeout: 5s
metrics:
  enabled: true
  path: /metrics
logging:
  level: info
  format: json
  output: stdout
worldbank:
  base_url: https://api.worldbank.org/v2
  timeout: 15s
cache:
  backend: memory
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("unexpected port %d", cfg.Server.Port)
	}
	if cfg.WorldBank.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.WorldBank.Timeout)
	}
	// per_page defaults when absent
	if cfg.WorldBank.PerPage != 1000 {
		t.Fatalf("unexpected per_page %d", cfg.WorldBank.PerPage)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("WORLDBANK_BASE_URL", "http://localhost:9999/v2")
	t.Setenv("PORT", "8181")

	cfg, err := LoadWithEnv(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WorldBank.BaseURL != "http://localhost:9999/v2" {
		t.Fatalf("unexpected base url %q", cfg.WorldBank.BaseURL)
	}
	if cfg.Server.Port != 8181 {
		t.Fatalf("unexpected port %d", cfg.Server.Port)
	}
}

func TestValidateRejectsBadBackend(t *testing.T) {
	bad := sampleYAML + "\n"
	cfg, err := Load(writeConfig(t, bad))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Cache.Backend = "memcached"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidateRequiresBaseURL(t *testing.T) {
	body := "environment: test\ncache:\n  backend: memory\n"
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected error for missing base_url")
	}
}
