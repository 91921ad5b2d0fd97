// Package casting holds the entities of a light cycle round and the Cast
// registry that groups them by role.
package casting

import "github.com/vovakirdan/lightcycle/internal/core"

// Entity is anything the Cast can hold and a display can draw.
type Entity interface {
	Position() core.Point
	Color() core.Color
	Text() string
}

// Actor is the base moving entity: it advances one step per tick.
type Actor struct {
	position         core.Point
	previousPosition core.Point
	velocity         core.Point
	color            core.Color
	text             string
	alive            bool
}

// NewActor creates a live actor at position with zero velocity.
func NewActor(position core.Point, color core.Color, text string) *Actor {
	return &Actor{
		position:         position,
		previousPosition: position,
		color:            color,
		text:             text,
		alive:            true,
	}
}

// Position returns the current cell.
func (a *Actor) Position() core.Point {
	return a.position
}

// PreviousPosition returns the cell held before the latest MoveNext.
func (a *Actor) PreviousPosition() core.Point {
	return a.previousPosition
}

// Velocity returns the per-tick step.
func (a *Actor) Velocity() core.Point {
	return a.velocity
}

// Color returns the draw color.
func (a *Actor) Color() core.Color {
	return a.color
}

// Text returns the glyph or label drawn for the actor.
func (a *Actor) Text() string {
	return a.text
}

// Alive reports whether the actor is still in play.
func (a *Actor) Alive() bool {
	return a.alive
}

// SetPosition places the actor without recording a move.
func (a *Actor) SetPosition(p core.Point) {
	a.position = p
	a.previousPosition = p
}

// SetVelocity sets the per-tick step.
func (a *Actor) SetVelocity(v core.Point) {
	a.velocity = v
}

// SetColor changes the draw color.
func (a *Actor) SetColor(c core.Color) {
	a.color = c
}

// SetText changes the glyph or label.
func (a *Actor) SetText(text string) {
	a.text = text
}

// MoveNext advances the actor by its velocity, saturating at the edges of
// the [0, maxX) x [0, maxY) playfield.
func (a *Actor) MoveNext(maxX, maxY int) {
	a.moveWithin(maxX, maxY, 1)
}

func (a *Actor) moveWithin(maxX, maxY, cell int) {
	a.previousPosition = a.position
	a.position = a.position.Add(a.velocity).Bound(a.position, maxX, maxY, cell)
}

// Moved reports whether the latest MoveNext changed the position.
func (a *Actor) Moved() bool {
	return a.position != a.previousPosition
}
