package lightcycle

import (
	"github.com/vovakirdan/lightcycle/internal/casting"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateWaiting     GameStateType = "waiting" // Cycles not yet steered
	StateRiding      GameStateType = "riding"
	StateRoundOver   GameStateType = "round_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateFailed      GameStateType = "failed"
)

// CycleSnapshot captures one cycle.
type CycleSnapshot struct {
	Pos      core.Point
	Velocity core.Point
	Alive    bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64 // Platform ticks
	RoundTick  uint64 // Cycle steps in the current round
	Round      int
	Mode       string
	Cycle1     CycleSnapshot
	Cycle2     CycleSnapshot
	TrailCount int
	Winner     core.PlayerID
	Wins1      int
	Wins2      int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRiding
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.err != nil:
		state = StateFailed
	case g.last.Over:
		state = StateRoundOver
	case g.paused:
		state = StatePaused
	case g.last.Tick == 0:
		state = StateWaiting
	}

	snap := Snapshot{
		Tick:      g.tick,
		RoundTick: g.last.Tick,
		Round:     g.round,
		Mode:      string(g.mode),
		Winner:    g.last.Winner,
		Wins1:     g.wins[core.Player1],
		Wins2:     g.wins[core.Player2],
		State:     state,
	}
	if g.cast == nil {
		return snap
	}

	snap.TrailCount = g.cast.Count(casting.RoleTrails)
	if c, err := casting.CycleFor(g.cast, core.Player1); err == nil {
		snap.Cycle1 = cycleSnapshot(c)
	}
	if c, err := casting.CycleFor(g.cast, core.Player2); err == nil {
		snap.Cycle2 = cycleSnapshot(c)
	}
	return snap
}

func cycleSnapshot(c *casting.Cycle) CycleSnapshot {
	return CycleSnapshot{
		Pos:      c.Position(),
		Velocity: c.Velocity(),
		Alive:    c.Alive(),
	}
}
