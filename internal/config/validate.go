package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d,%d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must exceed access_token_ttl")
	}

	// Google OAuth is optional, but a half-configured provider is a deploy mistake.
	if (c.Auth.GoogleClientID == "") != (c.Auth.GoogleClientSecret == "") {
		return fmt.Errorf("auth: google_client_id and google_client_secret must be set together")
	}

	if err := c.Content.validate(); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	return nil
}

func (c *ContentConfig) validate() error {
	if c.MaxTitleLen <= 0 {
		return fmt.Errorf("max_title_len must be > 0 (got %d)", c.MaxTitleLen)
	}
	if c.MaxBodyLen <= 0 {
		return fmt.Errorf("max_body_len must be > 0 (got %d)", c.MaxBodyLen)
	}
	if c.MaxExcerptLen <= 0 {
		return fmt.Errorf("max_excerpt_len must be > 0 (got %d)", c.MaxExcerptLen)
	}
	if c.DefaultReadingTime < 1 || c.DefaultReadingTime > 60 {
		return fmt.Errorf("default_reading_time must be in [1,60] (got %d)", c.DefaultReadingTime)
	}
	return nil
}
