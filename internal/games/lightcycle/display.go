package lightcycle

import (
	"github.com/vovakirdan/lightcycle/internal/casting"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 2

// ScreenDisplay is a display service backed by a character buffer.
// Row 0 holds the banner, row 1 a separator; the playfield starts below.
// One playfield cell is one character.
type ScreenDisplay struct {
	back     *core.Screen
	front    *core.Screen
	cellSize int
	open     bool

	frames     int
	frameLimit int // Close after this many flushes, 0 = never
}

// NewScreenDisplay creates a display for a cols x rows character screen.
func NewScreenDisplay(cols, rows, cellSize int) *ScreenDisplay {
	return &ScreenDisplay{
		back:     core.NewScreen(cols, rows),
		front:    core.NewScreen(cols, rows),
		cellSize: cellSize,
	}
}

// SetFrameLimit closes the display after n flushes, simulating a window
// closed by the user. Used by headless runs.
func (d *ScreenDisplay) SetFrameLimit(n int) {
	d.frameLimit = n
}

// Open marks the display as accepting frames.
func (d *ScreenDisplay) Open() {
	d.open = true
	d.frames = 0
}

// IsOpen reports whether the display accepts frames.
func (d *ScreenDisplay) IsOpen() bool {
	return d.open
}

// Close stops the display.
func (d *ScreenDisplay) Close() {
	d.open = false
}

// Width returns the playfield width in pixel-scaled units.
func (d *ScreenDisplay) Width() int {
	return d.back.Width() * d.cellSize
}

// Height returns the playfield height in pixel-scaled units.
func (d *ScreenDisplay) Height() int {
	return core.Max(d.back.Height()-HUDRows, 0) * d.cellSize
}

// Cols returns the playfield width in cells.
func (d *ScreenDisplay) Cols() int {
	return d.back.Width()
}

// Rows returns the playfield height in cells.
func (d *ScreenDisplay) Rows() int {
	return core.Max(d.back.Height()-HUDRows, 0)
}

// Resize changes the character screen size.
func (d *ScreenDisplay) Resize(cols, rows int) {
	d.back.Resize(cols, rows)
	d.front.Resize(cols, rows)
}

// Clear blanks the back buffer and redraws the HUD separator.
func (d *ScreenDisplay) Clear() {
	d.back.Clear()
	d.back.DrawHLine(0, HUDRows-1, d.back.Width(), '─')
}

// Draw renders entities into the back buffer. Cycles are drawn last so a
// crashed cycle stays visible on top of the segment it hit.
func (d *ScreenDisplay) Draw(entities []casting.Entity) {
	var cycles []casting.Entity
	for _, e := range entities {
		switch e.(type) {
		case *casting.Banner:
			d.back.DrawTextColored(1, 0, e.Text(), e.Color())
		case *casting.Cycle:
			cycles = append(cycles, e)
		default:
			d.drawCell(e)
		}
	}
	for _, e := range cycles {
		d.drawCell(e)
	}
}

func (d *ScreenDisplay) drawCell(e casting.Entity) {
	glyph := ' '
	for _, r := range e.Text() {
		glyph = r
		break
	}
	col, row := e.Position().Cell(d.cellSize)
	if row < 0 || row >= d.Rows() {
		return
	}
	d.back.SetColored(col, row+HUDRows, glyph, e.Color())
}

// Flush publishes the back buffer as the current frame.
func (d *ScreenDisplay) Flush() {
	d.front.CopyFrom(d.back)
	d.frames++
	if d.frameLimit > 0 && d.frames >= d.frameLimit {
		d.open = false
	}
}

// Frames returns the number of flushes since Open.
func (d *ScreenDisplay) Frames() int {
	return d.frames
}

// Screen returns the last flushed frame.
func (d *ScreenDisplay) Screen() *core.Screen {
	return d.front
}
