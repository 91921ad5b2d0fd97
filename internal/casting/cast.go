package casting

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// Role names used by the light cycle round.
const (
	RoleCycle1  = "cycle1"
	RoleCycle2  = "cycle2"
	RoleTrails  = "trails"
	RoleBanners = "banners"
)

// ErrNotFound is returned when a required role or actor is missing.
var ErrNotFound = errors.New("casting: not found")

// CycleRole returns the role a player's cycle is registered under.
func CycleRole(player core.PlayerID) string {
	switch player {
	case core.Player1:
		return RoleCycle1
	case core.Player2:
		return RoleCycle2
	default:
		return fmt.Sprintf("cycle%d", int(player))
	}
}

// Cast groups entities by role. Insertion order is kept within a role.
// Every role also keeps a count of entities per cell so membership tests
// on large trail sets stay O(1).
type Cast struct {
	roles  []string // Role creation order, for stable All()
	byRole map[string][]Entity
	cells  map[string]map[core.Point]int
}

// NewCast creates an empty cast.
func NewCast() *Cast {
	return &Cast{
		byRole: make(map[string][]Entity),
		cells:  make(map[string]map[core.Point]int),
	}
}

// Add appends e to role.
func (c *Cast) Add(role string, e Entity) {
	if _, ok := c.byRole[role]; !ok {
		c.roles = append(c.roles, role)
		c.cells[role] = make(map[core.Point]int)
	}
	c.byRole[role] = append(c.byRole[role], e)
	c.cells[role][e.Position()]++
}

// Remove deletes the first occurrence of e from role.
// Removing an absent entity is a no-op.
func (c *Cast) Remove(role string, e Entity) {
	entities := c.byRole[role]
	for i, existing := range entities {
		if existing != e {
			continue
		}
		c.byRole[role] = append(entities[:i:i], entities[i+1:]...)
		cells := c.cells[role]
		pos := existing.Position()
		if cells[pos] <= 1 {
			delete(cells, pos)
		} else {
			cells[pos]--
		}
		return
	}
}

// Get returns a copy of the entities in role, empty if the role is unknown.
func (c *Cast) Get(role string) []Entity {
	entities := c.byRole[role]
	out := make([]Entity, len(entities))
	copy(out, entities)
	return out
}

// First returns the first entity in role.
func (c *Cast) First(role string) (Entity, error) {
	entities := c.byRole[role]
	if len(entities) == 0 {
		return nil, fmt.Errorf("%w: role %q is empty", ErrNotFound, role)
	}
	return entities[0], nil
}

// All returns every entity, role by role in creation order.
func (c *Cast) All() []Entity {
	var out []Entity
	for _, role := range c.roles {
		out = append(out, c.byRole[role]...)
	}
	return out
}

// Count returns the number of entities in role.
func (c *Cast) Count(role string) int {
	return len(c.byRole[role])
}

// Roles returns the known roles in creation order.
func (c *Cast) Roles() []string {
	out := make([]string, len(c.roles))
	copy(out, c.roles)
	return out
}

// Occupied reports whether any entity of role was added at p.
// The index uses the position at insertion time, which is exact for
// immutable entities such as trail segments.
func (c *Cast) Occupied(role string, p core.Point) bool {
	return c.cells[role][p] > 0
}

// CycleFor returns the cycle registered for player.
func CycleFor(c *Cast, player core.PlayerID) (*Cycle, error) {
	role := CycleRole(player)
	e, err := c.First(role)
	if err != nil {
		return nil, err
	}
	cycle, ok := e.(*Cycle)
	if !ok {
		return nil, fmt.Errorf("%w: role %q holds %T, not a cycle", ErrNotFound, role, e)
	}
	return cycle, nil
}
