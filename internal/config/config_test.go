package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PollIntervalMS != 16 {
		t.Errorf("expected PollIntervalMS to be 16, got %d", cfg.PollIntervalMS)
	}

	if cfg.EdgeThreshold != 1 {
		t.Errorf("expected EdgeThreshold to be 1, got %d", cfg.EdgeThreshold)
	}

	if cfg.DefaultMonitor != 0 {
		t.Errorf("expected DefaultMonitor to be 0 (monitor under cursor), got %d", cfg.DefaultMonitor)
	}

	if !cfg.Notifications {
		t.Error("expected Notifications to be true by default")
	}

	if !cfg.Beep {
		t.Error("expected Beep to be true by default")
	}
}

func TestInterval(t *testing.T) {
	cfg := Config{PollIntervalMS: 16}

	if cfg.Interval() != 16*time.Millisecond {
		t.Errorf("expected 16ms, got %s", cfg.Interval())
	}
}

func TestGetConfigDir(t *testing.T) {
	dir := GetConfigDir()

	if dir == "" {
		t.Error("expected non-empty config directory")
	}

	if !strings.Contains(dir, DefaultConfigDir) {
		t.Errorf("expected config dir to contain %q, got %q", DefaultConfigDir, dir)
	}
}

func TestLoad_NoFile(t *testing.T) {
	// Loading without a config file returns the defaults
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config to be returned")
	}

	if cfg.PollIntervalMS == 0 {
		t.Error("expected PollIntervalMS to be set to a default")
	}
}
