package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every field the server cannot run without is
// present. Optional integrations (Redis, GitHub credentials, S3) are not
// checked here; their absence disables the feature instead.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return ValidationError{Field: "JWT_SECRET", Message: "is required"}
	}
	if cfg.TokenTTLHours <= 0 {
		return ValidationError{Field: "TOKEN_TTL_HOURS", Message: "must be positive"}
	}
	if cfg.DBHost == "" {
		return ValidationError{Field: "DB_HOST", Message: "is required"}
	}
	if cfg.DBName == "" {
		return ValidationError{Field: "DB_NAME", Message: "is required"}
	}
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "is required"}
	}
	return nil
}
