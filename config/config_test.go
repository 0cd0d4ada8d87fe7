package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("Expected 800x600 default window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Simulation.TickRate != 60 {
		t.Errorf("Expected 60 tick rate, got %d", cfg.Simulation.TickRate)
	}
	if step := cfg.FixedStep(); step != 1.0/60.0 {
		t.Errorf("Expected fixed step 1/60, got %v", step)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got error: %v", err)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Error("Expected default config for missing file")
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ember2d.toml")
	body := `
[window]
width = 1024
height = 768
title = "test"

[simulation]
tick_rate = 120
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("Expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Simulation.TickRate != 120 {
		t.Errorf("Expected tick rate 120, got %d", cfg.Simulation.TickRate)
	}
	// Untouched sections keep defaults
	if cfg.Simulation.Speed != Default().Simulation.Speed {
		t.Errorf("Expected default speed retained, got %v", cfg.Simulation.Speed)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[window]\nwidth = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for zero window width")
	}
}

func TestSpeedPerTick(t *testing.T) {
	cfg := Default()
	want := cfg.Simulation.Speed / 60.0
	if got := cfg.SpeedPerTick(); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
