package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLightcycle loads light cycle configuration.
// Search order: customPath -> ~/.arcade/configs/lightcycle.yaml -> ./configs/lightcycle.yaml -> embedded default
// Values missing from a file fall back to the defaults.
func LoadLightcycle(customPath string) (LightcycleConfig, error) {
	cfg := DefaultLightcycleConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("lightcycle.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
			cfg = DefaultLightcycleConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/lightcycle.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
		cfg = DefaultLightcycleConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLightcycleYAML, &cfg); err != nil {
		return DefaultLightcycleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize replaces unusable values with defaults.
func normalize(cfg LightcycleConfig) LightcycleConfig {
	def := DefaultLightcycleConfig()
	if cfg.Grid.CellSize <= 0 {
		cfg.Grid.CellSize = def.Grid.CellSize
	}
	if cfg.Grid.Cols < 3 {
		cfg.Grid.Cols = def.Grid.Cols
	}
	if cfg.Grid.Rows < 1 {
		cfg.Grid.Rows = def.Grid.Rows
	}
	if cfg.Gameplay.MoveEveryTicks < 1 {
		cfg.Gameplay.MoveEveryTicks = 1
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyLightcyclePreset modifies the config based on a speed preset.
func ApplyLightcyclePreset(cfg *LightcycleConfig, preset SpeedPreset) {
	if IsFixedPreset(preset) {
		return
	}
	if ticks := MoveEveryTicksForPreset(preset); ticks > 0 {
		cfg.Gameplay.MoveEveryTicks = ticks
	}
}
