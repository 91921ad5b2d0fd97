package lightcycle

import (
	"fmt"

	"github.com/vovakirdan/lightcycle/internal/casting"
	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// SpawnPoints returns the starting cells of both cycles on a cols x rows
// playfield: one and two thirds across, half way down, scaled by cellSize.
func SpawnPoints(cols, rows, cellSize int) (core.Point, core.Point) {
	p1 := core.NewPoint(cols/3, rows/2).Scale(cellSize)
	p2 := core.NewPoint(cols*2/3, rows/2).Scale(cellSize)
	return p1, p2
}

// NewCast builds the cast of a fresh round: two stationary cycles and the
// status banner.
func NewCast(cfg config.LightcycleConfig, cols, rows int) (*casting.Cast, error) {
	color1, err := core.ParseColor(cfg.Players.One.Color)
	if err != nil {
		return nil, fmt.Errorf("lightcycle: player one: %w", err)
	}
	color2, err := core.ParseColor(cfg.Players.Two.Color)
	if err != nil {
		return nil, fmt.Errorf("lightcycle: player two: %w", err)
	}
	bannerColor, err := core.ParseColor(cfg.Gameplay.BannerColor)
	if err != nil {
		return nil, fmt.Errorf("lightcycle: banner: %w", err)
	}

	cell := cfg.Grid.CellSize
	p1, p2 := SpawnPoints(cols, rows, cell)

	cycle1 := casting.NewCycle(core.Player1, p1, color1, cell)
	cycle2 := casting.NewCycle(core.Player2, p2, color2, cell)
	cycle1.SetAllowReverse(cfg.Gameplay.AllowReverse)
	cycle2.SetAllowReverse(cfg.Gameplay.AllowReverse)

	banner := casting.NewBanner(bannerColor)
	banner.SetText(fmt.Sprintf("%s (P1) vs %s (P2) - steer to start", cfg.Players.One.Name, cfg.Players.Two.Name))

	cast := casting.NewCast()
	cast.Add(casting.RoleCycle1, cycle1)
	cast.Add(casting.RoleCycle2, cycle2)
	cast.Add(casting.RoleBanners, banner)
	return cast, nil
}
