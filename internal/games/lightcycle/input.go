package lightcycle

import "github.com/vovakirdan/lightcycle/internal/core"

// frameInput latches the latest direction each player pressed between two
// cycle steps. Platform ticks run faster than the cycles move.
type frameInput struct {
	pending map[core.PlayerID]core.Point
}

func newFrameInput() *frameInput {
	return &frameInput{pending: make(map[core.PlayerID]core.Point)}
}

// Latch records the movement keys of one platform frame.
func (f *frameInput) Latch(in core.MultiInputFrame) {
	for _, id := range core.Players {
		if dir := in.Player(id).Direction(); !dir.IsZero() {
			f.pending[id] = dir
		}
	}
}

// PollDirection returns and consumes the latched direction.
func (f *frameInput) PollDirection(player core.PlayerID) core.Point {
	dir, ok := f.pending[player]
	if !ok {
		return core.Zero
	}
	delete(f.pending, player)
	return dir
}

func (f *frameInput) reset() {
	clear(f.pending)
}
