package replay

import "github.com/vovakirdan/lightcycle/internal/core"

type key struct {
	tick   uint64
	player core.PlayerID
}

// Player feeds a Script to the Director as its input service.
type Player struct {
	moves map[key]core.Point
	clock func() uint64
}

// NewPlayer creates an input service for s. clock returns the number of
// ticks already completed; the display frame counter is the usual source.
// A later step for the same tick and player replaces an earlier one.
func NewPlayer(s *Script, clock func() uint64) *Player {
	p := &Player{
		moves: make(map[key]core.Point, len(s.Steps)),
		clock: clock,
	}
	for _, st := range s.Steps {
		dir, err := ParseDirection(st.Dir)
		if err != nil {
			continue
		}
		p.moves[key{tick: st.Tick, player: st.Player}] = dir
	}
	return p
}

// PollDirection returns the scripted direction for the tick in progress.
func (p *Player) PollDirection(player core.PlayerID) core.Point {
	dir, ok := p.moves[key{tick: p.clock() + 1, player: player}]
	if !ok {
		return core.Zero
	}
	return dir
}

// LastTick returns the tick of the final scripted step.
func (p *Player) LastTick() uint64 {
	var last uint64
	for k := range p.moves {
		last = max(last, k.tick)
	}
	return last
}
