package config

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
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

// ValidationErrors collects every problem found in a Config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// ValidateConfig checks the configuration and returns ValidationErrors when any field is invalid
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("must be a port number, got %q", cfg.ServerPort)})
	}

	if !logLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, ValidationError{Field: "LOG_LEVEL", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)})
	}

	for _, f := range cfg.ScaleFactors {
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			errs = append(errs, ValidationError{Field: "SCALE_FACTORS", Message: fmt.Sprintf("factor %v must be positive and finite", f)})
		}
	}

	if cfg.RedisEnabled() {
		if cfg.RateLimit <= 0 {
			errs = append(errs, ValidationError{Field: "RATE_LIMIT", Message: "must be greater than zero"})
		}
		if cfg.RateLimitWindow <= 0 {
			errs = append(errs, ValidationError{Field: "RATE_LIMIT_WINDOW", Message: "must be greater than zero"})
		}
		if cfg.RedisDB < 0 {
			errs = append(errs, ValidationError{Field: "REDIS_DB", Message: "must not be negative"})
		}
	}

	for _, origin := range cfg.CORSOrigins {
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{Field: "CORS_ORIGINS", Message: fmt.Sprintf("invalid origin %q", origin)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
