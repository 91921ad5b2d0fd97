package casting

import "github.com/vovakirdan/lightcycle/internal/core"

// Glyphs used for cycles and trail segments.
const (
	CycleGlyph     = "◆"
	DeadCycleGlyph = "✖"
	TrailGlyph     = "█"
)

// Cycle is an Actor steered by one player. It never leaves the Cast; a
// crashed cycle is only tagged dead.
type Cycle struct {
	*Actor
	player       core.PlayerID
	cellSize     int
	allowReverse bool
}

// NewCycle creates a stationary cycle for player at position.
func NewCycle(player core.PlayerID, position core.Point, color core.Color, cellSize int) *Cycle {
	return &Cycle{
		Actor:    NewActor(position, color, CycleGlyph),
		player:   player,
		cellSize: cellSize,
	}
}

// Player returns the owning player.
func (c *Cycle) Player() core.PlayerID {
	return c.player
}

// CellSize returns the step length of the cycle.
func (c *Cycle) CellSize() int {
	return c.cellSize
}

// SetAllowReverse controls whether Steer accepts a direct U-turn.
func (c *Cycle) SetAllowReverse(allow bool) {
	c.allowReverse = allow
}

// Steer maps a unit direction to a velocity of one cell.
// A zero direction keeps the current velocity. A direct reversal is ignored
// unless allowed.
// Returns true if the velocity changed.
func (c *Cycle) Steer(dir core.Point) bool {
	if dir.IsZero() {
		return false
	}
	v := dir.Scale(c.cellSize)
	if v == c.velocity {
		return false
	}
	if !c.allowReverse && !c.velocity.IsZero() && v == c.velocity.Neg() {
		return false
	}
	c.velocity = v
	return true
}

// MoveNext advances the cycle one cell. At an edge it saturates on the last
// whole cell, so a cycle left outside a shrunk playfield is pulled back onto
// the grid.
func (c *Cycle) MoveNext(maxX, maxY int) {
	c.moveWithin(maxX, maxY, c.cellSize)
}

// Die marks the cycle as crashed. It stays in the Cast and keeps its position.
func (c *Cycle) Die() {
	c.alive = false
	c.text = DeadCycleGlyph
}

// EmitTrail returns the segment for the cell vacated by the latest move.
func (c *Cycle) EmitTrail() Trail {
	return NewTrail(c.previousPosition, c.color, c.player)
}
