// Package directing runs a light cycle round: it polls input, moves the
// cycles, grows their trails, resolves collisions and hands each frame to
// the display.
package directing

import (
	"github.com/vovakirdan/lightcycle/internal/casting"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// InputService reports each player's directional intent.
type InputService interface {
	// PollDirection returns a unit direction vector, or core.Zero for
	// "no change". It must not block.
	PollDirection(player core.PlayerID) core.Point
}

// DisplayService receives frames and defines the playfield size.
type DisplayService interface {
	Open()
	IsOpen() bool
	Close()

	// Width and Height are in pixel-scaled units and are read every tick.
	Width() int
	Height() int

	Clear()
	Draw(entities []casting.Entity)
	Flush()
}
