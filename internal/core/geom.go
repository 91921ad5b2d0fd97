// Package core provides fundamental types and utilities for the light cycle arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Point is an immutable 2D integer coordinate.
// Positions are pixel-scaled: multiples of the configured cell size.
type Point struct {
	X, Y int
}

// Zero is the zero vector. A cycle with zero velocity stands still.
var Zero = Point{}

// NewPoint creates a point at (x, y).
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Scale multiplies both components by factor (usually the cell size).
func (p Point) Scale(factor int) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Equals reports whether both coordinates match.
func (p Point) Equals(other Point) bool {
	return p == other
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p == Zero
}

// Bound keeps p inside [0, maxX) x [0, maxY) when it was produced by adding
// a single step to from. An axis that left the playfield is held at from's
// coordinate, clamped to the last whole cell of that axis, so movement
// saturates at the edge cell and stays on the cell grid.
func (p Point) Bound(from Point, maxX, maxY, cell int) Point {
	if p.X < 0 || p.X >= maxX {
		p.X = Clamp(from.X, 0, lastCell(maxX, cell))
	}
	if p.Y < 0 || p.Y >= maxY {
		p.Y = Clamp(from.Y, 0, lastCell(maxY, cell))
	}
	return p
}

// lastCell returns the origin of the last cell that fits below max.
func lastCell(max, cell int) int {
	if cell <= 0 {
		cell = 1
	}
	if max <= cell {
		return 0
	}
	return (max - 1) / cell * cell
}

// Cell converts a pixel-scaled point into grid column and row.
func (p Point) Cell(cellSize int) (col, row int) {
	if cellSize <= 0 {
		return p.X, p.Y
	}
	return p.X / cellSize, p.Y / cellSize
}

// String returns "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Unit direction vectors. Multiply by the cell size to get a velocity.
var (
	DirUp    = Point{X: 0, Y: -1}
	DirDown  = Point{X: 0, Y: 1}
	DirLeft  = Point{X: -1, Y: 0}
	DirRight = Point{X: 1, Y: 0}
)

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
