package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "BANK_CODE", "BASE_URL", "ENABLE_LOGS", "ENABLE_ANALYTICS", "SIMULATE_LATENCY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.Identity.BankCode != "A" || cfg.Identity.BaseURL != "https://dev.api.bank.com" {
		t.Fatalf("expected build identity defaults, got %+v", cfg.Identity)
	}
	if !cfg.Identity.LoggingEnabled || cfg.Identity.AnalyticsEnabled {
		t.Fatalf("unexpected build flags: %+v", cfg.Identity)
	}
	if !cfg.SimulateLatency {
		t.Fatalf("expected latency simulation by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("BANK_CODE", "C")
	t.Setenv("BASE_URL", "https://qa.api.bank.com")
	t.Setenv("ENABLE_ANALYTICS", "true")
	t.Setenv("ENABLE_LOGS", "false")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.Identity.BankCode != "C" || cfg.Identity.BaseURL != "https://qa.api.bank.com" {
		t.Fatalf("expected identity from environment, got %+v", cfg.Identity)
	}
	if !cfg.Identity.AnalyticsEnabled || cfg.Identity.LoggingEnabled {
		t.Fatalf("expected flags from environment, got %+v", cfg.Identity)
	}
}

func TestLoadRejectsInvalidEnvBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENABLE_LOGS", "sometimes")

	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for invalid boolean")
	}
}

func TestLoadYAMLOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANK_CODE", "C")

	path := writeYAML(t, `
port: "7070"
write_timeout: 3s
enable_request_logging: false
simulate_latency: false
rate_limit:
  rps: 0
bank:
  code: B
  base_url: https://pp.api.bank.com
  enable_analytics: true
`)

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Fatalf("expected port from YAML, got %s", cfg.Port)
	}
	if cfg.WriteTimeout != 3*time.Second {
		t.Fatalf("expected write timeout from YAML, got %s", cfg.WriteTimeout)
	}
	if cfg.EnableRequestLogging || cfg.SimulateLatency {
		t.Fatalf("expected YAML booleans to apply")
	}
	if cfg.RateLimitRPS != 0 {
		t.Fatalf("expected rate limit disabled, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("expected burst to keep its default, got %d", cfg.RateLimitBurst)
	}
	if cfg.Identity.BankCode != "B" || cfg.Identity.BaseURL != "https://pp.api.bank.com" || !cfg.Identity.AnalyticsEnabled {
		t.Fatalf("expected identity from YAML, got %+v", cfg.Identity)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing file")
	}

	bad := writeYAML(t, "idle_timeout: soon\n")
	if _, err := Load(&CLIOverrides{ConfigFile: bad}); err == nil {
		t.Fatalf("expected error for invalid duration")
	}

	malformed := writeYAML(t, "port: [\n")
	if _, err := Load(&CLIOverrides{ConfigFile: malformed}); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestLoadCLIOverridesWin(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANK_CODE", "C")

	path := writeYAML(t, "bank:\n  code: B\n")
	port := "6060"
	bank := "A"
	url := "https://stg.api.bank.com"
	rps := 5.0
	burst := 7

	cfg, err := Load(&CLIOverrides{
		ConfigFile:     path,
		Port:           &port,
		BankCode:       &bank,
		BaseURL:        &url,
		RateLimitRPS:   &rps,
		RateLimitBurst: &burst,
		NoLatency:      true,
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != port || cfg.Identity.BankCode != bank || cfg.Identity.BaseURL != url {
		t.Fatalf("expected CLI overrides to win, got %+v", cfg)
	}
	if cfg.RateLimitRPS != rps || cfg.RateLimitBurst != burst {
		t.Fatalf("expected CLI rate limits, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.SimulateLatency {
		t.Fatalf("expected latency simulation disabled")
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.RateLimitRPS = -1
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("expected error for negative rps")
	}

	cfg = defaultConfig()
	cfg.RateLimitBurst = -1
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("expected error for negative burst")
	}

	cfg = defaultConfig()
	cfg.Port = " "
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("expected error for empty port")
	}
}
