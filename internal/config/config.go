package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir                string
	LogLevel               string
	QuestionTimeoutSeconds int
	MaxAttemptsPerDay      int
	MaxCertAttemptsPerDay  int
	DefaultPassMark        int
	NegativeMark           float64
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		DataDir:                envOr("DATA_DIR", "."),
		LogLevel:               envOr("LOG_LEVEL", "INFO"),
		QuestionTimeoutSeconds: envIntOr("QUESTION_TIMEOUT_SECONDS", 5),
		MaxAttemptsPerDay:      envIntOr("MAX_ATTEMPTS_PER_DAY", 3),
		MaxCertAttemptsPerDay:  envIntOr("MAX_CERT_ATTEMPTS_PER_DAY", 1),
		DefaultPassMark:        envIntOr("DEFAULT_PASS_MARK", 70),
		NegativeMark:           envFloatOr("NEGATIVE_MARK", 0.25),
	}
}

// Validate checks that the loaded configuration is usable.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR cannot be empty")
	}
	if c.QuestionTimeoutSeconds <= 0 {
		return fmt.Errorf("QUESTION_TIMEOUT_SECONDS must be positive, got %d", c.QuestionTimeoutSeconds)
	}
	if c.MaxAttemptsPerDay <= 0 {
		return fmt.Errorf("MAX_ATTEMPTS_PER_DAY must be positive, got %d", c.MaxAttemptsPerDay)
	}
	if c.MaxCertAttemptsPerDay <= 0 {
		return fmt.Errorf("MAX_CERT_ATTEMPTS_PER_DAY must be positive, got %d", c.MaxCertAttemptsPerDay)
	}
	if c.DefaultPassMark < 0 || c.DefaultPassMark > 100 {
		return fmt.Errorf("DEFAULT_PASS_MARK must be between 0 and 100, got %d", c.DefaultPassMark)
	}
	if c.NegativeMark < 0 {
		return fmt.Errorf("NEGATIVE_MARK cannot be negative, got %v", c.NegativeMark)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}
