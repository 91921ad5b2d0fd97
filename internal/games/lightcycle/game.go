// Package lightcycle implements the two-player light cycle game on top of
// the directing simulation core.
package lightcycle

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lightcycle/internal/casting"
	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/directing"
	"github.com/vovakirdan/lightcycle/internal/registry"
)

// Mode selects the round termination rule.
type Mode string

const (
	ModeClassic  Mode = "classic"  // Configured policy, last survivor by default
	ModeSurvival Mode = "survival" // Ride on until both have crashed
)

// Minimum playfield in cells.
const (
	MinCols = 12
	MinRows = 6
)

// Package-level settings applied on the next Reset (like the other games).
var (
	configPath  string
	speedPreset string
	logger      = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset sets the speed preset (slow, normal, fast, fixed).
func SetSpeedPreset(preset string) {
	speedPreset = preset
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the light cycle arcade game.
type Game struct {
	mode   Mode
	cfg    config.LightcycleConfig
	policy directing.Policy

	cast     *casting.Cast
	director *directing.Director
	display  *ScreenDisplay
	input    *frameInput

	tick       uint64
	moveTicker int
	round      int
	wins       map[core.PlayerID]int
	last       directing.RoundResult
	err        error // Fatal round setup error, shown instead of the playfield

	paused   bool
	tooSmall bool
}

// New creates a classic light cycle game.
func New() *Game {
	return &Game{mode: ModeClassic, wins: make(map[core.PlayerID]int)}
}

// NewSurvival creates a game where a round ends only when both cycles crashed.
func NewSurvival() *Game {
	return &Game{mode: ModeSurvival, wins: make(map[core.PlayerID]int)}
}

func init() {
	registry.Register("lightcycle", func() registry.Game {
		return New()
	})
	registry.Register("lightcycle_survival", func() registry.Game {
		return NewSurvival()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSurvival {
		return "lightcycle_survival"
	}
	return "lightcycle"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSurvival {
		return "Light Cycle (Survival)"
	}
	return "Light Cycle"
}

// Reset loads configuration and starts the first round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.tick = 0
	g.round = 0
	g.wins = make(map[core.PlayerID]int)
	g.paused = false
	g.err = nil

	cfg, err := config.LoadLightcycle(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultLightcycleConfig()
	}
	config.ApplyLightcyclePreset(&cfg, config.SpeedPreset(speedPreset))
	g.cfg = cfg

	g.policy, err = directing.ParsePolicy(cfg.Gameplay.Policy)
	if err != nil {
		logger.Warn("using last_survivor policy", "error", err)
	}
	if g.mode == ModeSurvival {
		g.policy = directing.PolicyMutualDeath
	}

	g.display = NewScreenDisplay(runtime.ScreenW, runtime.ScreenH, cfg.Grid.CellSize)
	g.input = newFrameInput()
	g.director = directing.NewDirector(g.input, g.display, directing.Config{
		CellSize: cfg.Grid.CellSize,
		Policy:   g.policy,
		Logger:   logger.With("game", g.ID()),
	})

	g.newRound()
}

// newRound rebuilds the cast and draws the starting frame. Win tallies are kept.
func (g *Game) newRound() {
	g.round++
	g.moveTicker = 0
	g.last = directing.RoundResult{}
	g.input.reset()
	g.director.Reset()

	g.tooSmall = g.display.Cols() < MinCols || g.display.Rows() < MinRows
	if g.tooSmall {
		return
	}

	cast, err := NewCast(g.cfg, g.display.Cols(), g.display.Rows())
	if err == nil {
		err = g.director.Prepare(cast)
	}
	if err != nil {
		logger.Error("cannot start round", "error", err)
		g.err = err
		return
	}
	g.cast = cast

	g.display.Open()
	g.display.Clear()
	g.display.Draw(cast.All())
	g.display.Flush()
	logger.Debug("round started", "round", g.round, "policy", g.policy)
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.last.Over {
		g.newRound()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.last.Over {
		g.paused = !g.paused
	}

	if g.err != nil || g.last.Over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.input.Latch(in)

	// Cycles step on their own cadence
	g.moveTicker++
	if g.moveTicker < g.cfg.Gameplay.MoveEveryTicks {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	result, err := g.director.Tick(g.cast)
	if err != nil {
		logger.Error("tick failed", "error", err)
		g.err = err
		return core.StepResult{State: g.State()}
	}
	g.last = result
	if result.Over && result.Winner != core.NoPlayer {
		g.wins[result.Winner]++
	}

	return core.StepResult{State: g.State()}
}

// Render draws the last frame and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch {
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", MinCols, MinRows+HUDRows))
		return
	case g.err != nil:
		g.renderOverlay(dst, "Cannot start round", g.err.Error())
		return
	}

	dst.CopyFrom(g.display.Screen())
	g.renderScore(dst)

	switch {
	case g.last.Over:
		g.renderOverlay(dst, g.last.Status, "Press R for the next round")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderScore draws the win tally at the right end of the HUD row.
func (g *Game) renderScore(dst *core.Screen) {
	score := fmt.Sprintf("Round %d  %d:%d ", g.round, g.wins[core.Player1], g.wins[core.Player2])
	dst.DrawText(dst.Width()-len(score), 0, score)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.last.Tick),
		GameOver: g.last.Over,
		Paused:   g.paused,
		Winner:   g.last.Winner,
	}
}

// Wins returns how many rounds player has won since Reset.
func (g *Game) Wins(player core.PlayerID) int {
	return g.wins[player]
}

// Cast exposes the current round's cast.
func (g *Game) Cast() *casting.Cast {
	return g.cast
}
