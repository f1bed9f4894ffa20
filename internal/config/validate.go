package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be positive")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	if err := c.Progress.validate(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (p *ProgressConfig) validate() error {
	if p.MinutesPerCigarette <= 0 {
		return fmt.Errorf("minutes_per_cigarette must be > 0 (got %d)", p.MinutesPerCigarette)
	}
	if p.QuitDateGrace < 0 {
		return fmt.Errorf("quit_date_grace must be >= 0 (got %s)", p.QuitDateGrace)
	}
	if p.QuitDateMaxAhead <= 0 {
		return fmt.Errorf("quit_date_max_ahead must be > 0 (got %s)", p.QuitDateMaxAhead)
	}
	return nil
}
