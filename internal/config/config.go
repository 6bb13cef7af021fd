package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	InitialCountdown  time.Duration `yaml:"initial_countdown"`
	CountdownInterval time.Duration `yaml:"countdown_interval"`
	ToastDuration     time.Duration `yaml:"toast_duration"`
	StateFile         string        `yaml:"state_file"`
	LogLevel          string        `yaml:"log_level"`
	Version           string        `yaml:"version"`
	Sound             bool          `yaml:"sound"`
}

func Default() Config {
	return Config{
		InitialCountdown:  60 * time.Second,
		CountdownInterval: time.Second,
		ToastDuration:     3500 * time.Millisecond,
		LogLevel:          "info",
		Version:           "1.0",
		Sound:             true,
	}
}

// Load reads the YAML file at path over the defaults and then applies
// TF_* environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.InitialCountdown = getEnvAsDuration("TF_INITIAL_COUNTDOWN", cfg.InitialCountdown)
	cfg.CountdownInterval = getEnvAsDuration("TF_COUNTDOWN_INTERVAL", cfg.CountdownInterval)
	cfg.StateFile = getEnv("TF_STATE_FILE", cfg.StateFile)
	cfg.LogLevel = getEnv("TF_LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.InitialCountdown <= 0 {
		return fmt.Errorf("%w: initial_countdown must be positive, got %v", ErrInvalidConfig, c.InitialCountdown)
	}
	if c.CountdownInterval <= 0 {
		return fmt.Errorf("%w: countdown_interval must be positive, got %v", ErrInvalidConfig, c.CountdownInterval)
	}
	if c.CountdownInterval > c.InitialCountdown {
		return fmt.Errorf("%w: countdown_interval %v exceeds initial_countdown %v", ErrInvalidConfig, c.CountdownInterval, c.InitialCountdown)
	}
	if c.ToastDuration < 0 {
		return fmt.Errorf("%w: toast_duration must not be negative", ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
