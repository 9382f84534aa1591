package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultScaleFactors are the factors offered when SCALE_FACTORS is not set.
var DefaultScaleFactors = []float64{0.5, 2, 3}

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost string
	ServerPort string
	LogLevel   string

	// Recipe behaviour
	ScaleFactors         []float64
	ResetChecksThreshold bool
	SeedFile             string

	// Redis configuration, used by the rate limiter
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Rate limiting
	RateLimit       int
	RateLimitWindow time.Duration

	CORSOrigins []string
}

// RedisEnabled reports whether a Redis backend has been configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{
		Environment: env,
		ServerHost:  getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SeedFile:    os.Getenv("SEED_FILE"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RedisHost:   os.Getenv("REDIS_HOST"),
		RedisPort:   getEnv("REDIS_PORT", "6379"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
	}

	var err error
	if cfg.ScaleFactors, err = loadScaleFactors(); err != nil {
		return nil, err
	}
	if cfg.ResetChecksThreshold, err = getBool("RESET_CHECKS_THRESHOLD", false); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getInt("RATE_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}

	// Production reads the Redis password from Docker secrets
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if env.IsProduction() {
		if secret := readSecret("redis_password"); secret != "" {
			cfg.RedisPassword = secret
		}
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadScaleFactors parses SCALE_FACTORS. An explicitly empty value lifts the
// whitelist.
func loadScaleFactors() ([]float64, error) {
	raw, ok := os.LookupEnv("SCALE_FACTORS")
	if !ok {
		return append([]float64(nil), DefaultScaleFactors...), nil
	}
	var factors []float64
	for _, part := range splitList(raw) {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SCALE_FACTORS entry %q: %w", part, err)
		}
		factors = append(factors, f)
	}
	return factors, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
