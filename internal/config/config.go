package config

import (
	"fmt"
	"os"
	"time"
)

// DefaultAnimationURL is the loading animation shown while the map renders
const DefaultAnimationURL = "https://assets5.lottiefiles.com/packages/lf20_fcfjwiyb.json"

// Config holds all service settings, populated from environment variables.
type Config struct {
	DatabaseURL      string
	AnimationURL     string
	Port             string
	Env              string
	CORSAllowOrigins string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	readTimeout, err := parseDuration("READ_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	writeTimeout, err := parseDuration("WRITE_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		AnimationURL:     getEnv("ANIMATION_URL", DefaultAnimationURL),
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("GO_ENV", "development"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		ReadTimeout:      readTimeout,
		WriteTimeout:     writeTimeout,
		ShutdownTimeout:  shutdownTimeout,
	}

	return cfg, nil
}

// IsProduction reports whether GO_ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive duration", key)
	}
	return d, nil
}
