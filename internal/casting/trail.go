package casting

import "github.com/vovakirdan/lightcycle/internal/core"

// Trail is a permanent segment occupying one cell. It is a value type and
// is never changed once created.
type Trail struct {
	position core.Point
	color    core.Color
	owner    core.PlayerID
}

// NewTrail creates a segment at position.
func NewTrail(position core.Point, color core.Color, owner core.PlayerID) Trail {
	return Trail{position: position, color: color, owner: owner}
}

// Position returns the occupied cell.
func (t Trail) Position() core.Point {
	return t.position
}

// Color returns the owner's color.
func (t Trail) Color() core.Color {
	return t.color
}

// Text returns the trail glyph.
func (t Trail) Text() string {
	return TrailGlyph
}

// Owner returns the player whose cycle laid the segment.
func (t Trail) Owner() core.PlayerID {
	return t.owner
}
