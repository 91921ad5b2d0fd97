package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLightcycleEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadLightcycle("")
	if err != nil {
		t.Fatalf("LoadLightcycle() failed: %v", err)
	}

	def := DefaultLightcycleConfig()
	if cfg != def {
		t.Errorf("embedded default = %+v, expected %+v", cfg, def)
	}
}

func TestLoadLightcycleCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
grid:
  cell_size: 10
gameplay:
  policy: mutual_death
  move_every_ticks: 2
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadLightcycle(path)
	if err != nil {
		t.Fatalf("LoadLightcycle() failed: %v", err)
	}

	if cfg.Grid.CellSize != 10 {
		t.Errorf("CellSize = %d, expected 10", cfg.Grid.CellSize)
	}
	if cfg.Gameplay.Policy != "mutual_death" {
		t.Errorf("Policy = %q, expected mutual_death", cfg.Gameplay.Policy)
	}
	if cfg.Gameplay.MoveEveryTicks != 2 {
		t.Errorf("MoveEveryTicks = %d, expected 2", cfg.Gameplay.MoveEveryTicks)
	}
	// Unset keys keep their defaults
	if cfg.Players.One.Color != "bright_cyan" {
		t.Errorf("Players.One.Color = %q, expected default bright_cyan", cfg.Players.One.Color)
	}
	if cfg.Grid.Cols != 40 {
		t.Errorf("Cols = %d, expected default 40", cfg.Grid.Cols)
	}
}

func TestLoadLightcycleErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLightcycle(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadLightcycle(bad); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestLoadLightcycleUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	data := []byte("gameplay:\n  allow_reverse: true\n")
	if err := os.WriteFile(filepath.Join(dir, "lightcycle.yaml"), data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadLightcycle("")
	if err != nil {
		t.Fatalf("LoadLightcycle() failed: %v", err)
	}
	if !cfg.Gameplay.AllowReverse {
		t.Error("user config should enable allow_reverse")
	}
}

func TestNormalize(t *testing.T) {
	cfg := normalize(LightcycleConfig{})
	if cfg.Grid.CellSize != 20 || cfg.Grid.Cols != 40 || cfg.Grid.Rows != 30 {
		t.Errorf("normalize() grid = %+v, expected defaults", cfg.Grid)
	}
	if cfg.Gameplay.MoveEveryTicks != 1 {
		t.Errorf("normalize() MoveEveryTicks = %d, expected 1", cfg.Gameplay.MoveEveryTicks)
	}
}

func TestApplyLightcyclePreset(t *testing.T) {
	tests := []struct {
		preset   SpeedPreset
		expected int
	}{
		{SpeedSlow, 8},
		{SpeedNormal, 5},
		{SpeedFast, 3},
		{SpeedFixed, 7},
		{"", 7},
	}

	for _, tc := range tests {
		cfg := DefaultLightcycleConfig()
		cfg.Gameplay.MoveEveryTicks = 7
		ApplyLightcyclePreset(&cfg, tc.preset)
		if cfg.Gameplay.MoveEveryTicks != tc.expected {
			t.Errorf("preset %q: MoveEveryTicks = %d, expected %d", tc.preset, cfg.Gameplay.MoveEveryTicks, tc.expected)
		}
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("lightcycle")) == 0 {
		t.Error("expected embedded YAML for lightcycle")
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("expected nil for an unknown game")
	}
}

func TestSpeedPresetValid(t *testing.T) {
	for _, p := range []SpeedPreset{"", SpeedSlow, SpeedNormal, SpeedFast, SpeedFixed} {
		if !p.Valid() {
			t.Errorf("SpeedPreset(%q).Valid() = false, expected true", p)
		}
	}
	if SpeedPreset("ludicrous").Valid() {
		t.Error("unknown preset should not be valid")
	}
}
