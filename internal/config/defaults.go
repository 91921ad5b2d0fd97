package config

import (
	_ "embed"
)

//go:embed defaults/lightcycle.yaml
var defaultLightcycleYAML []byte

// DefaultLightcycleConfig returns the default light cycle configuration.
func DefaultLightcycleConfig() LightcycleConfig {
	return LightcycleConfig{
		Grid: GridConfig{
			CellSize: 20,
			Cols:     40,
			Rows:     30,
		},
		Players: PlayersConfig{
			One: PlayerConfig{Name: "Blue", Color: "bright_cyan"},
			Two: PlayerConfig{Name: "Red", Color: "bright_magenta"},
		},
		Gameplay: GameplayConfig{
			Policy:         "last_survivor",
			MoveEveryTicks: 5,
			AllowReverse:   false,
			BannerColor:    "white",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "lightcycle", "lightcycle_survival":
		return defaultLightcycleYAML
	default:
		return nil
	}
}
