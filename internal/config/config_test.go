package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  session_ttl: "12h"

limits:
  free_max_folders: 2
  free_max_evaluations: 25

log:
  level: "debug"
  format: "text"

rate_limit:
  auth_per_minute: 5
`

// validConfig returns a Config that passes Validate.
func validConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			JWTSecret:         strings.Repeat("s", 32),
			SessionTTL:        time.Hour,
			PasswordMinLength: 8,
			BcryptCost:        10,
		},
		Limits:    LimitsConfig{FreeMaxFolders: 1, FreeMaxEvaluations: 10},
		Log:       LogConfig{Level: "info", Format: "json"},
		RateLimit: RateLimitConfig{AuthPerMinute: 20},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("server.Addr() = %q", cfg.Server.Addr())
	}

	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("auth.session_ttl = %v, want 12h", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.JWTIssuer != "taitoarvio" {
		t.Errorf("auth.jwt_issuer = %q, want default", cfg.Auth.JWTIssuer)
	}

	if cfg.Limits.FreeMaxFolders != 2 {
		t.Errorf("limits.free_max_folders = %d, want 2", cfg.Limits.FreeMaxFolders)
	}
	if cfg.Limits.FreeMaxEvaluations != 25 {
		t.Errorf("limits.free_max_evaluations = %d, want 25", cfg.Limits.FreeMaxEvaluations)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.RateLimit.AuthPerMinute != 5 {
		t.Errorf("rate_limit.auth_per_minute = %d, want 5", cfg.RateLimit.AuthPerMinute)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LIMITS_FREE_MAX_FOLDERS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Limits.FreeMaxFolders != 3 {
		t.Errorf("limits.free_max_folders = %d, want 3 (ENV override)", cfg.Limits.FreeMaxFolders)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Limits.FreeMaxFolders != 1 {
		t.Errorf("limits.free_max_folders = %d, want 1 (default)", cfg.Limits.FreeMaxFolders)
	}
	if cfg.Limits.FreeMaxEvaluations != 10 {
		t.Errorf("limits.free_max_evaluations = %d, want 10 (default)", cfg.Limits.FreeMaxEvaluations)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("auth.session_ttl = %v, want 24h (default)", cfg.Auth.SessionTTL)
	}
}

func TestLoad_BlankConfigPathFallsBackToEnv(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "   ")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Limits.FreeMaxEvaluations != 10 {
		t.Errorf("limits.free_max_evaluations = %d, want 10 (default)", cfg.Limits.FreeMaxEvaluations)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "server: [unclosed")
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantSub string
	}{
		{"jwt secret too short", func(c *Config) { c.Auth.JWTSecret = "short" }, "jwt_secret"},
		{"jwt secret empty", func(c *Config) { c.Auth.JWTSecret = "" }, "jwt_secret"},
		{"session ttl zero", func(c *Config) { c.Auth.SessionTTL = 0 }, "session_ttl"},
		{"password min length too low", func(c *Config) { c.Auth.PasswordMinLength = 4 }, "password_min_length"},
		{"bcrypt cost too low", func(c *Config) { c.Auth.BcryptCost = 1 }, "bcrypt_cost"},
		{"bcrypt cost too high", func(c *Config) { c.Auth.BcryptCost = 99 }, "bcrypt_cost"},
		{"folder limit zero", func(c *Config) { c.Limits.FreeMaxFolders = 0 }, "free_max_folders"},
		{"evaluation limit negative", func(c *Config) { c.Limits.FreeMaxEvaluations = -1 }, "free_max_evaluations"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"rate limit zero", func(c *Config) { c.RateLimit.AuthPerMinute = 0 }, "auth_per_minute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantSub)
			}
		})
	}
}
