package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if c.Auth.PasswordMinLength < 8 {
		return fmt.Errorf("auth.password_min_length must be >= 8 (got %d)", c.Auth.PasswordMinLength)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Limits.validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (l *LimitsConfig) validate() error {
	if l.FreeMaxFolders < 1 {
		return fmt.Errorf("free_max_folders must be >= 1 (got %d)", l.FreeMaxFolders)
	}
	if l.FreeMaxEvaluations < 1 {
		return fmt.Errorf("free_max_evaluations must be >= 1 (got %d)", l.FreeMaxEvaluations)
	}
	return nil
}
