package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNonLoopbackAddr is returned by Validate for any listen host other
	// than a literal loopback IP.
	ErrNonLoopbackAddr = errors.New("listen address must be a loopback IP address")
	// ErrInvalidLogLevel is returned when LogLevel is not a slog level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Env            string
	Addr           string
	OutputDir      string
	LogLevel       string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads Config from PASSFILE_* environment variables, falling back
// to defaults for unset or unparsable values.
func Load() Config {
	return Config{
		Env:            getEnv("PASSFILE_ENV", "development"),
		Addr:           getEnv("PASSFILE_ADDR", "127.0.0.1:8080"),
		OutputDir:      getEnv("PASSFILE_OUTPUT_DIR", ""),
		LogLevel:       getEnv("PASSFILE_LOG_LEVEL", "info"),
		RateLimitRPS:   getEnvFloat("PASSFILE_RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("PASSFILE_RATE_LIMIT_BURST", 10),
	}
}

// Validate rejects settings that would expose the web front end beyond
// the local machine or that cannot be parsed.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	host, _, err := net.SplitHostPort(c.Addr)
	if err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Addr, err)
	}
	// Host names are rejected: what they resolve to can change.
	ip := net.ParseIP(host)
	if ip == nil || !ip.IsLoopback() {
		return fmt.Errorf("%w: %q", ErrNonLoopbackAddr, c.Addr)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// IsProduction reports whether Env is "production".
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}
