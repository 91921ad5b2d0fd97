// Package config provides YAML-based game configuration loading and
// speed preset management for the light cycle arcade.
package config

// LightcycleConfig contains all configuration for the light cycle game.
type LightcycleConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Players  PlayersConfig  `yaml:"players"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// GridConfig defines the playfield geometry.
type GridConfig struct {
	CellSize int `yaml:"cell_size"` // Pixel-scaled size of one cell
	Cols     int `yaml:"cols"`      // Headless playfield width in cells
	Rows     int `yaml:"rows"`      // Headless playfield height in cells
}

// PlayersConfig defines both riders.
type PlayersConfig struct {
	One PlayerConfig `yaml:"one"`
	Two PlayerConfig `yaml:"two"`
}

// PlayerConfig defines one rider's look.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// GameplayConfig defines round rules and pacing.
type GameplayConfig struct {
	Policy         string `yaml:"policy"`           // "last_survivor" or "mutual_death"
	MoveEveryTicks int    `yaml:"move_every_ticks"` // Platform ticks per cycle step
	AllowReverse   bool   `yaml:"allow_reverse"`    // Accept direct U-turns
	BannerColor    string `yaml:"banner_color"`
}

// SpeedPreset represents a named movement cadence.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedFixed  SpeedPreset = "fixed"
)

// MoveEveryTicksForPreset returns the cadence for a preset, or 0 when the
// preset keeps the configured value.
func MoveEveryTicksForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 8
	case SpeedNormal:
		return 5
	case SpeedFast:
		return 3
	default:
		return 0
	}
}

// Valid reports whether p names a known preset. The empty preset is valid.
func (p SpeedPreset) Valid() bool {
	switch p {
	case "", SpeedSlow, SpeedNormal, SpeedFast, SpeedFixed:
		return true
	}
	return false
}

// IsFixedPreset returns true if the preset keeps the config's cadence.
func IsFixedPreset(preset SpeedPreset) bool {
	return preset == SpeedFixed || preset == ""
}
