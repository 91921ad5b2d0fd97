package directing

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lightcycle/internal/casting"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// DefaultCellSize is the grid step used when Config leaves it unset.
const DefaultCellSize = 20

// Config controls how a Director runs rounds.
type Config struct {
	CellSize int
	Policy   Policy
	Logger   *log.Logger // nil discards log output

	// Observe, if set, is called after every completed tick.
	Observe func(RoundResult, *casting.Cast)
}

// Director owns the per-tick control loop of a round.
type Director struct {
	input   InputService
	display DisplayService
	policy  Policy
	cell    int
	logger  *log.Logger
	observe func(RoundResult, *casting.Cast)

	state State
	tick  uint64
	last  RoundResult
}

// NewDirector creates a Director reading from input and drawing to display.
func NewDirector(input InputService, display DisplayService, cfg Config) *Director {
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultCellSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Director{
		input:   input,
		display: display,
		policy:  cfg.Policy,
		cell:    cfg.CellSize,
		logger:  logger,
		observe: cfg.Observe,
	}
}

// State returns the current round state.
func (d *Director) State() State {
	return d.state
}

// Last returns the result of the most recent tick.
func (d *Director) Last() RoundResult {
	return d.last
}

// Reset prepares the Director for a new round.
func (d *Director) Reset() {
	d.state = StateRunning
	d.tick = 0
	d.last = RoundResult{}
}

// Prepare checks that both players have a cycle in the cast.
func (d *Director) Prepare(cast *casting.Cast) error {
	_, err := d.cycles(cast)
	return err
}

// StartGame opens the display and ticks until the round is over or the
// display is closed from outside. The display is closed when the round ends.
func (d *Director) StartGame(cast *casting.Cast) (RoundResult, error) {
	if err := d.Prepare(cast); err != nil {
		return RoundResult{}, err
	}

	d.display.Open()
	d.logger.Info("round started", "policy", d.policy, "cell", d.cell)

	for d.display.IsOpen() {
		result, err := d.Tick(cast)
		if err != nil {
			d.display.Close()
			return result, err
		}
		if result.Over {
			d.display.Close()
			return result, nil
		}
	}
	return d.last, nil
}

// Tick runs one input, update and output pass.
func (d *Director) Tick(cast *casting.Cast) (RoundResult, error) {
	if d.state == StateGameOver {
		return d.last, fmt.Errorf("%w: tick after round %s", ErrInvalidTransition, d.state)
	}

	cycles, err := d.cycles(cast)
	if err != nil {
		return d.last, err
	}

	d.getInputs(cycles)
	result := d.doUpdates(cast, cycles)
	d.doOutputs(cast)

	d.last = result
	if result.Over {
		d.state = StateGameOver
		d.logger.Info("round over", "tick", result.Tick, "winner", result.Winner, "status", result.Status)
	}
	if d.observe != nil {
		d.observe(result, cast)
	}
	return result, nil
}

// cycles looks up both players' cycles in tick order.
func (d *Director) cycles(cast *casting.Cast) ([]*casting.Cycle, error) {
	cycles := make([]*casting.Cycle, 0, len(core.Players))
	for _, id := range core.Players {
		c, err := casting.CycleFor(cast, id)
		if err != nil {
			return nil, fmt.Errorf("directing: missing cycle for %s: %w", id, err)
		}
		cycles = append(cycles, c)
	}
	return cycles, nil
}

// getInputs applies each live player's directional intent.
func (d *Director) getInputs(cycles []*casting.Cycle) {
	for _, c := range cycles {
		if !c.Alive() {
			continue
		}
		c.Steer(d.input.PollDirection(c.Player()))
	}
}

// bounds returns the playfield size trimmed to whole cells.
func (d *Director) bounds() (maxX, maxY int) {
	maxX, maxY = d.display.Width(), d.display.Height()
	return maxX - maxX%d.cell, maxY - maxY%d.cell
}

// doUpdates moves the cycles, lays their trails and resolves collisions.
func (d *Director) doUpdates(cast *casting.Cast, cycles []*casting.Cycle) RoundResult {
	d.tick++
	maxX, maxY := d.bounds()

	for _, c := range cycles {
		if c.Alive() {
			c.MoveNext(maxX, maxY)
		}
	}

	// Segments go on the vacated cells, so a head never sits on its own
	// fresh segment. A cycle that has not started moving lays nothing, and
	// neither does one the playfield shrank away from.
	for _, c := range cycles {
		if c.Alive() && c.Moved() && inField(c.PreviousPosition(), maxX, maxY) {
			cast.Add(casting.RoleTrails, c.EmitTrail())
		}
	}

	var diedNow []core.PlayerID
	for _, c := range cycles {
		if !c.Alive() {
			continue
		}
		cause := ""
		switch {
		case !inField(c.PreviousPosition(), maxX, maxY):
			cause = "wall"
		case !c.Velocity().IsZero() && !c.Moved():
			cause = "wall"
		case cast.Occupied(casting.RoleTrails, c.Position()):
			cause = "trail"
		}
		if cause == "" {
			continue
		}
		c.Die()
		diedNow = append(diedNow, c.Player())
		d.logger.Debug("cycle crashed", "player", c.Player(), "cause", cause, "pos", c.Position(), "tick", d.tick)
	}

	alive := make(map[core.PlayerID]bool, len(cycles))
	for _, c := range cycles {
		alive[c.Player()] = c.Alive()
	}
	over, winner := d.policy.decide(alive, diedNow)

	result := RoundResult{
		Tick:   d.tick,
		Over:   over,
		Winner: winner,
		alive:  alive,
	}
	result.Status = statusLine(result)

	for _, e := range cast.Get(casting.RoleBanners) {
		if b, ok := e.(*casting.Banner); ok {
			b.SetText(result.Status)
		}
	}
	return result
}

// inField reports whether p lies on the [0, maxX) x [0, maxY) playfield.
func inField(p core.Point, maxX, maxY int) bool {
	return p.X >= 0 && p.X < maxX && p.Y >= 0 && p.Y < maxY
}

// doOutputs redraws the whole cast.
func (d *Director) doOutputs(cast *casting.Cast) {
	d.display.Clear()
	d.display.Draw(cast.All())
	d.display.Flush()
}

// statusLine composes the banner text for a tick.
func statusLine(r RoundResult) string {
	if r.Over {
		if r.Winner == core.NoPlayer {
			return fmt.Sprintf("Draw! Both cycles crashed (tick %d)", r.Tick)
		}
		return fmt.Sprintf("%s wins! (tick %d)", r.Winner, r.Tick)
	}

	parts := make([]string, 0, len(core.Players)+1)
	for _, id := range core.Players {
		state := "riding"
		if !r.IsAlive(id) {
			state = "crashed"
		}
		parts = append(parts, fmt.Sprintf("%s %s", id, state))
	}
	parts = append(parts, fmt.Sprintf("tick %d", r.Tick))
	return strings.Join(parts, " | ")
}
