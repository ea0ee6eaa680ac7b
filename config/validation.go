package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration against the requirements of
// the current environment. Development and test tolerate missing
// secrets so the server can run against local defaults; production
// does not.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.LLMTimeout <= 0 {
		errors = append(errors, "LLM_TIMEOUT must be positive")
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			errors = append(errors, "JWT_SECRET is required in production")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
		if cfg.DeepSeekAPIKey == "" {
			errors = append(errors, "DEEPSEEK_API_KEY is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
