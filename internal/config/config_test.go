package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timefighter.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
initial_countdown: 30s
countdown_interval: 500ms
state_file: /tmp/tf.json
version: "2.1"
sound: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.InitialCountdown = 30 * time.Second
	want.CountdownInterval = 500 * time.Millisecond
	want.StateFile = "/tmp/tf.json"
	want.Version = "2.1"
	want.Sound = false
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "initial_countdown: 30s\n")
	t.Setenv("TF_INITIAL_COUNTDOWN", "10s")
	t.Setenv("TF_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InitialCountdown != 10*time.Second {
		t.Errorf("env should override file: expected 10s, got %v", cfg.InitialCountdown)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestLoad_BadEnvIgnored(t *testing.T) {
	t.Setenv("TF_COUNTDOWN_INTERVAL", "soon")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CountdownInterval != time.Second {
		t.Errorf("expected default interval, got %v", cfg.CountdownInterval)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := Load(writeConfig(t, "initial_countdown: [")); err == nil {
		t.Error("expected parse error")
	}

	_, err := Load(writeConfig(t, "initial_countdown: 1s\ncountdown_interval: 2s\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.InitialCountdown = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = Default()
	cfg.ToastDuration = -time.Second
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
