package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d: expected error", port)
		}
	}
}

func TestValidate_RedirectStatus(t *testing.T) {
	for _, status := range []int{302, 307} {
		cfg := validConfig()
		cfg.Router.RedirectStatus = status
		if err := cfg.Validate(); err != nil {
			t.Errorf("status %d: unexpected error %v", status, err)
		}
	}

	cfg := validConfig()
	cfg.Router.RedirectStatus = 301
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for 301")
	}
	expected := "router.redirect_status must be 302 or 307, got 301"
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ShortcutKey(t *testing.T) {
	for _, key := range []string{"kk", ""} {
		cfg := validConfig()
		cfg.Search.ShortcutKey = key
		if err := cfg.Validate(); err == nil {
			t.Errorf("key %q: expected error", key)
		}
	}
}

func TestValidate_Driver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "memcached"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestValidate_NegativeRPS(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.RPS = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative rps")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("ReadTimeoutSec = %d, want 10", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Router.RedirectStatus != 307 {
		t.Errorf("RedirectStatus = %d, want 307", cfg.Router.RedirectStatus)
	}
	if len(cfg.Router.ExcludePrefixes) != 2 {
		t.Errorf("ExcludePrefixes = %v", cfg.Router.ExcludePrefixes)
	}
	if cfg.Search.ShortcutKey != "k" {
		t.Errorf("ShortcutKey = %q", cfg.Search.ShortcutKey)
	}
	if cfg.Database.Driver != "valkey" {
		t.Errorf("Driver = %q", cfg.Database.Driver)
	}
	if cfg.Database.Enabled() {
		t.Error("database should be disabled without addrs")
	}
	if cfg.Stats.KeyPrefix != "docnav:" {
		t.Errorf("KeyPrefix = %q", cfg.Stats.KeyPrefix)
	}
	if cfg.RateLimit.Burst != 0 {
		t.Errorf("Burst = %d, want 0 when rate limiting is off", cfg.RateLimit.Burst)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		Router:    RouterConfig{RedirectStatus: 302, ExcludePrefixes: []string{}},
		Search:    SearchConfig{ShortcutKey: "/", MaxSessions: 5},
		RateLimit: RateLimitConfig{RPS: 0.5},
	}
	cfg.ApplyDefaults()

	if cfg.Router.RedirectStatus != 302 {
		t.Errorf("RedirectStatus = %d", cfg.Router.RedirectStatus)
	}
	if len(cfg.Router.ExcludePrefixes) != 0 {
		t.Errorf("explicit empty exclusions overridden: %v", cfg.Router.ExcludePrefixes)
	}
	if cfg.Search.ShortcutKey != "/" || cfg.Search.MaxSessions != 5 {
		t.Errorf("search overridden: %+v", cfg.Search)
	}
	if cfg.RateLimit.Burst != 1 {
		t.Errorf("Burst = %d, want 1", cfg.RateLimit.Burst)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DOCNAV_TEST_PASSWORD", "s3cret")

	in := []byte("password: ${DOCNAV_TEST_PASSWORD}\nport: ${DOCNAV_TEST_UNSET:-8080}\nempty: ${DOCNAV_TEST_UNSET}")
	got := string(expandEnvVars(in))
	want := "password: s3cret\nport: 8080\nempty: "
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "http:\n  port: ${DOCNAV_TEST_PORT:-9090}\nrouter:\n  redirect_status: 302\n"
	if err := os.WriteFile(filepath.Join(dir, "config", "unittest.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("unittest")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.Router.RedirectStatus != 302 {
		t.Errorf("RedirectStatus = %d, want 302", cfg.Router.RedirectStatus)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if GetEnv() != "local" {
		t.Errorf("GetEnv() = %q, want local", GetEnv())
	}
	t.Setenv("ENV", "prod")
	if GetEnv() != "prod" {
		t.Errorf("GetEnv() = %q, want prod", GetEnv())
	}
}
