package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Archive.RetentionDays <= 0 {
		return fmt.Errorf("archive.retention_days must be > 0 (got %d)", c.Archive.RetentionDays)
	}

	if c.Locale.Language == "" {
		return fmt.Errorf("locale.language must not be empty")
	}

	return nil
}
