package directing

import (
	"fmt"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// Policy decides when a round is over.
type Policy int

const (
	// PolicyLastSurvivor ends the round as soon as one cycle is dead.
	PolicyLastSurvivor Policy = iota
	// PolicyMutualDeath ends the round only when both cycles are dead.
	PolicyMutualDeath
)

// String returns the config name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyLastSurvivor:
		return "last_survivor"
	case PolicyMutualDeath:
		return "mutual_death"
	default:
		return "unknown"
	}
}

// ParsePolicy resolves a config name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "last_survivor":
		return PolicyLastSurvivor, nil
	case "mutual_death":
		return PolicyMutualDeath, nil
	default:
		return PolicyLastSurvivor, fmt.Errorf("directing: unknown policy %q", name)
	}
}

// RoundResult is the outcome of one tick. It is a value; the Director keeps
// no other status the loop driver has to read. Survival is read through
// IsAlive; the underlying map is built fresh each tick and never written
// after the result is returned.
type RoundResult struct {
	Tick   uint64
	Over   bool
	Winner core.PlayerID // NoPlayer while running or on a draw
	Status string

	alive map[core.PlayerID]bool
}

// Draw reports whether the round ended without a winner.
func (r RoundResult) Draw() bool {
	return r.Over && r.Winner == core.NoPlayer
}

// IsAlive reports whether player's cycle survived this tick.
func (r RoundResult) IsAlive(player core.PlayerID) bool {
	return r.alive[player]
}

// decide applies the policy to this tick's deaths.
// diedNow holds the players who crashed during this tick.
func (p Policy) decide(alive map[core.PlayerID]bool, diedNow []core.PlayerID) (over bool, winner core.PlayerID) {
	var survivors []core.PlayerID
	for _, id := range core.Players {
		if alive[id] {
			survivors = append(survivors, id)
		}
	}

	switch p {
	case PolicyMutualDeath:
		if len(survivors) > 0 {
			return false, core.NoPlayer
		}
		// The cycle that crashed last outlasted the other one.
		if len(diedNow) == 1 {
			return true, diedNow[0]
		}
		return true, core.NoPlayer
	default:
		if len(survivors) == len(core.Players) {
			return false, core.NoPlayer
		}
		if len(survivors) == 1 {
			return true, survivors[0]
		}
		return true, core.NoPlayer
	}
}
