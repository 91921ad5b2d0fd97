package directing

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/lightcycle/internal/casting"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// queueInput hands out one queued direction per poll, then core.Zero.
type queueInput struct {
	queue map[core.PlayerID][]core.Point
}

func newQueueInput() *queueInput {
	return &queueInput{queue: make(map[core.PlayerID][]core.Point)}
}

func (q *queueInput) push(player core.PlayerID, dirs ...core.Point) {
	q.queue[player] = append(q.queue[player], dirs...)
}

func (q *queueInput) PollDirection(player core.PlayerID) core.Point {
	dirs := q.queue[player]
	if len(dirs) == 0 {
		return core.Zero
	}
	q.queue[player] = dirs[1:]
	return dirs[0]
}

// recordingDisplay counts frames and can close itself after a number of flushes.
type recordingDisplay struct {
	width, height int
	open          bool
	opened        int
	frames        int
	closeAfter    int
	lastDraw      []casting.Entity
}

func (r *recordingDisplay) Open()        { r.open = true; r.opened++ }
func (r *recordingDisplay) IsOpen() bool { return r.open }
func (r *recordingDisplay) Close()       { r.open = false }
func (r *recordingDisplay) Width() int   { return r.width }
func (r *recordingDisplay) Height() int  { return r.height }
func (r *recordingDisplay) Clear()       { r.lastDraw = nil }
func (r *recordingDisplay) Draw(entities []casting.Entity) {
	r.lastDraw = append(r.lastDraw, entities...)
}
func (r *recordingDisplay) Flush() {
	r.frames++
	if r.closeAfter > 0 && r.frames >= r.closeAfter {
		r.open = false
	}
}

// newRound builds the 800x600, cell 20 setup with cycles at (100,300) and (500,300).
func newRound(policy Policy) (*Director, *casting.Cast, *queueInput, *recordingDisplay, *casting.Cycle, *casting.Cycle) {
	cast := casting.NewCast()
	c1 := casting.NewCycle(core.Player1, core.NewPoint(100, 300), core.ColorCyan, 20)
	c2 := casting.NewCycle(core.Player2, core.NewPoint(500, 300), core.ColorMagenta, 20)
	cast.Add(casting.RoleCycle1, c1)
	cast.Add(casting.RoleCycle2, c2)
	cast.Add(casting.RoleBanners, casting.NewBanner(core.ColorWhite))

	input := newQueueInput()
	display := &recordingDisplay{width: 800, height: 600}
	d := NewDirector(input, display, Config{CellSize: 20, Policy: policy})
	return d, cast, input, display, c1, c2
}

func mustTick(t *testing.T, d *Director, cast *casting.Cast) RoundResult {
	t.Helper()
	result, err := d.Tick(cast)
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	return result
}

func TestFirstTickScenario(t *testing.T) {
	d, cast, input, _, c1, c2 := newRound(PolicyLastSurvivor)
	input.push(core.Player1, core.DirRight)
	input.push(core.Player2, core.DirLeft)

	result := mustTick(t, d, cast)

	if c1.Position() != core.NewPoint(120, 300) {
		t.Errorf("cycle1 at %v, expected (120,300)", c1.Position())
	}
	if c2.Position() != core.NewPoint(480, 300) {
		t.Errorf("cycle2 at %v, expected (480,300)", c2.Position())
	}

	trails := cast.Get(casting.RoleTrails)
	if len(trails) != 2 {
		t.Fatalf("expected 2 trail segments, got %d", len(trails))
	}
	if trails[0].Position() != core.NewPoint(100, 300) || trails[1].Position() != core.NewPoint(500, 300) {
		t.Errorf("trails at %v and %v, expected (100,300) and (500,300)", trails[0].Position(), trails[1].Position())
	}

	if !c1.Alive() || !c2.Alive() {
		t.Error("both cycles should be alive after tick 1")
	}
	if result.Over {
		t.Error("round should still be running")
	}
	if result.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", result.Tick)
	}
}

func TestHeadOnRunScenario(t *testing.T) {
	d, cast, input, _, c1, c2 := newRound(PolicyLastSurvivor)
	input.push(core.Player1, core.DirRight)
	input.push(core.Player2, core.DirLeft)

	var result RoundResult
	deathTick := uint64(0)
	for i := 0; i < 30 && !result.Over; i++ {
		result = mustTick(t, d, cast)
		if !c1.Alive() && deathTick == 0 {
			deathTick = result.Tick
		}
		if result.Tick == 10 && c1.Position() != c2.Position() {
			t.Errorf("tick 10: heads at %v and %v, expected both at (300,300)", c1.Position(), c2.Position())
		}
	}

	// Heads share (300,300) on tick 10 without a trail there; on tick 11 each
	// cycle enters the cell the other one just vacated.
	if deathTick != 11 {
		t.Fatalf("cycle1 died on tick %d, expected tick 11", deathTick)
	}
	if c1.Position() != core.NewPoint(320, 300) {
		t.Errorf("cycle1 crashed at %v, expected (320,300)", c1.Position())
	}
	if c2.Alive() {
		t.Error("cycle2 should crash on the same tick")
	}
	if !result.Over || !result.Draw() {
		t.Errorf("result = %+v, expected a finished draw", result)
	}
	if d.State() != StateGameOver {
		t.Errorf("State() = %v, expected game_over", d.State())
	}

	if _, err := d.Tick(cast); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Tick() after game over error = %v, expected ErrInvalidTransition", err)
	}
}

func TestSelfCollision(t *testing.T) {
	d, cast, input, _, c1, c2 := newRound(PolicyLastSurvivor)
	c1.SetPosition(core.NewPoint(100, 100))
	input.push(core.Player1, core.DirRight, core.DirDown, core.DirLeft, core.DirUp)

	for tick := 1; tick <= 3; tick++ {
		result := mustTick(t, d, cast)
		if !c1.Alive() || result.Over {
			t.Fatalf("cycle1 died early on tick %d at %v", tick, c1.Position())
		}
	}

	result := mustTick(t, d, cast)
	if c1.Alive() {
		t.Fatalf("cycle1 re-entered (100,100) at %v but is still alive", c1.Position())
	}
	if c1.Position() != core.NewPoint(100, 100) {
		t.Errorf("cycle1 at %v, expected (100,100)", c1.Position())
	}
	if !result.Over || result.Winner != core.Player2 {
		t.Errorf("result = %+v, expected P2 to win", result)
	}
	if !c2.Alive() {
		t.Error("stationary cycle2 should survive")
	}
}

func TestNoSameTickFalsePositive(t *testing.T) {
	d, cast, input, _, c1, c2 := newRound(PolicyLastSurvivor)
	c1.SetPosition(core.NewPoint(0, 0))
	c2.SetPosition(core.NewPoint(0, 580))
	input.push(core.Player1, core.DirRight)
	input.push(core.Player2, core.DirRight)

	for tick := 1; tick <= 39; tick++ {
		result := mustTick(t, d, cast)
		if result.Over {
			t.Fatalf("round ended on tick %d: %s", tick, result.Status)
		}

		trails := cast.Get(casting.RoleTrails)
		own := trails[len(trails)-2]
		if own.Position() == c1.Position() {
			t.Fatalf("tick %d: cycle1 head sits on its own fresh segment %v", tick, own.Position())
		}
	}
}

func TestTrailPersistence(t *testing.T) {
	d, cast, input, _, c1, _ := newRound(PolicyLastSurvivor)
	input.push(core.Player1, core.DirUp)
	input.push(core.Player2, core.DirDown)

	mustTick(t, d, cast)
	first := cast.Get(casting.RoleTrails)

	for i := 0; i < 5; i++ {
		mustTick(t, d, cast)
	}

	later := cast.Get(casting.RoleTrails)
	if len(later) != len(first)+10 {
		t.Errorf("expected %d segments, got %d", len(first)+10, len(later))
	}
	for i, e := range first {
		if later[i] != e {
			t.Errorf("segment %d changed from %+v to %+v", i, e, later[i])
		}
		if !cast.Occupied(casting.RoleTrails, e.Position()) {
			t.Errorf("segment %d at %v no longer occupies its cell", i, e.Position())
		}
	}
	if !c1.Alive() {
		t.Error("cycle1 should still be riding")
	}
}

func TestWallCollision(t *testing.T) {
	d, cast, input, _, c1, _ := newRound(PolicyLastSurvivor)
	c1.SetPosition(core.NewPoint(740, 300))
	input.push(core.Player1, core.DirRight)

	mustTick(t, d, cast) // 760
	mustTick(t, d, cast) // 780, last cell
	if !c1.Alive() {
		t.Fatal("cycle1 should be alive on the last cell")
	}

	result := mustTick(t, d, cast)
	if c1.Alive() {
		t.Fatal("cycle1 should crash into the right wall")
	}
	if c1.Position() != core.NewPoint(780, 300) {
		t.Errorf("cycle1 at %v, expected to stay on the edge cell (780,300)", c1.Position())
	}
	if result.Winner != core.Player2 {
		t.Errorf("Winner = %v, expected P2", result.Winner)
	}
}

func TestShrunkFieldIsWallCrash(t *testing.T) {
	d, cast, input, display, c1, c2 := newRound(PolicyLastSurvivor)
	input.push(core.Player2, core.DirRight)

	mustTick(t, d, cast) // cycle2 at 520, trail at 500
	display.width = 400

	result := mustTick(t, d, cast)
	if c2.Alive() {
		t.Fatal("cycle2 should crash when the playfield shrinks past it")
	}
	if c2.Position() != core.NewPoint(380, 300) {
		t.Errorf("cycle2 at %v, expected the last cell (380,300)", c2.Position())
	}
	if cast.Occupied(casting.RoleTrails, core.NewPoint(520, 300)) {
		t.Error("no segment should be laid outside the playfield")
	}
	if n := len(cast.Get(casting.RoleTrails)); n != 1 {
		t.Errorf("expected 1 trail segment, got %d", n)
	}
	if !c1.Alive() || !result.Over || result.Winner != core.Player1 {
		t.Errorf("result = %+v, expected P1 to win", result)
	}
}

func TestMutualDeathPolicy(t *testing.T) {
	d, cast, input, _, c1, c2 := newRound(PolicyMutualDeath)
	c1.SetPosition(core.NewPoint(740, 300))
	c2.SetPosition(core.NewPoint(100, 100))
	input.push(core.Player1, core.DirRight)
	input.push(core.Player2, core.DirLeft)

	var result RoundResult
	for i := 0; i < 3; i++ {
		result = mustTick(t, d, cast)
	}
	if c1.Alive() {
		t.Fatal("cycle1 should have hit the wall on tick 3")
	}
	if result.Over {
		t.Fatal("round must continue while cycle2 rides")
	}
	crashedAt := c1.Position()

	for !result.Over && result.Tick < 20 {
		result = mustTick(t, d, cast)
	}
	if !result.Over {
		t.Fatal("round should end once both cycles crashed")
	}
	if result.Tick != 6 {
		t.Errorf("round ended on tick %d, expected 6", result.Tick)
	}
	if result.Winner != core.Player2 {
		t.Errorf("Winner = %v, expected P2 (crashed last)", result.Winner)
	}
	if c1.Position() != crashedAt {
		t.Errorf("dead cycle1 moved from %v to %v", crashedAt, c1.Position())
	}
	if c2.Alive() {
		t.Error("cycle2 should be dead")
	}
}

func TestStationaryCyclesLayNoTrail(t *testing.T) {
	d, cast, _, _, c1, c2 := newRound(PolicyLastSurvivor)
	for i := 0; i < 5; i++ {
		mustTick(t, d, cast)
	}
	if cast.Count(casting.RoleTrails) != 0 {
		t.Errorf("stationary cycles laid %d segments", cast.Count(casting.RoleTrails))
	}
	if !c1.Alive() || !c2.Alive() {
		t.Error("stationary cycles should not crash")
	}
}

func TestStartGameClosesOnGameOver(t *testing.T) {
	d, cast, input, display, _, _ := newRound(PolicyLastSurvivor)
	input.push(core.Player1, core.DirRight)
	input.push(core.Player2, core.DirLeft)

	result, err := d.StartGame(cast)
	if err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	if !result.Over || result.Tick != 11 {
		t.Errorf("result = %+v, expected round over on tick 11", result)
	}
	if display.IsOpen() {
		t.Error("display should be closed after game over")
	}
	if display.opened != 1 || display.frames != 11 {
		t.Errorf("opened=%d frames=%d, expected 1 and 11", display.opened, display.frames)
	}
	if len(display.lastDraw) != cast.Count(casting.RoleCycle1)+cast.Count(casting.RoleCycle2)+
		cast.Count(casting.RoleBanners)+cast.Count(casting.RoleTrails) {
		t.Errorf("last frame drew %d entities, expected the whole cast", len(display.lastDraw))
	}
}

func TestStartGameStopsOnExternalClose(t *testing.T) {
	d, cast, _, display, _, _ := newRound(PolicyLastSurvivor)
	display.closeAfter = 3

	result, err := d.StartGame(cast)
	if err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	if result.Over {
		t.Error("externally closed round should not be over")
	}
	if result.Tick != 3 {
		t.Errorf("Tick = %d, expected 3", result.Tick)
	}
}

func TestObserveSeesEveryTick(t *testing.T) {
	cast := casting.NewCast()
	cast.Add(casting.RoleCycle1, casting.NewCycle(core.Player1, core.NewPoint(100, 300), core.ColorCyan, 20))
	cast.Add(casting.RoleCycle2, casting.NewCycle(core.Player2, core.NewPoint(500, 300), core.ColorMagenta, 20))

	input := newQueueInput()
	input.push(core.Player1, core.DirRight)
	input.push(core.Player2, core.DirLeft)

	var seen []RoundResult
	d := NewDirector(input, &recordingDisplay{width: 800, height: 600}, Config{
		CellSize: 20,
		Observe: func(r RoundResult, c *casting.Cast) {
			if c != cast {
				t.Error("Observe() got a different cast")
			}
			seen = append(seen, r)
		},
	})

	if _, err := d.StartGame(cast); err != nil {
		t.Fatalf("StartGame() failed: %v", err)
	}
	if len(seen) != 11 {
		t.Fatalf("Observe() called %d times, expected 11", len(seen))
	}
	for i, r := range seen {
		if r.Tick != uint64(i+1) {
			t.Errorf("observation %d has Tick %d", i, r.Tick)
		}
	}
	if !seen[10].Over {
		t.Error("last observation should be the final result")
	}
	if !seen[0].IsAlive(core.Player1) || !seen[0].IsAlive(core.Player2) {
		t.Error("first observation should still report both cycles alive after later crashes")
	}
	if seen[10].IsAlive(core.Player1) && seen[10].IsAlive(core.Player2) {
		t.Error("final observation should report a crashed cycle")
	}
}

func TestMissingCycleIsNotFound(t *testing.T) {
	cast := casting.NewCast()
	cast.Add(casting.RoleCycle1, casting.NewCycle(core.Player1, core.NewPoint(100, 300), core.ColorCyan, 20))
	display := &recordingDisplay{width: 800, height: 600}
	d := NewDirector(newQueueInput(), display, Config{})

	if err := d.Prepare(cast); !errors.Is(err, casting.ErrNotFound) {
		t.Errorf("Prepare() error = %v, expected ErrNotFound", err)
	}
	if _, err := d.StartGame(cast); !errors.Is(err, casting.ErrNotFound) {
		t.Errorf("StartGame() error = %v, expected ErrNotFound", err)
	}
	if display.opened != 0 {
		t.Error("display must not open without both players")
	}
}

func TestBannerStatus(t *testing.T) {
	d, cast, input, _, _, _ := newRound(PolicyLastSurvivor)
	input.push(core.Player1, core.DirRight)

	result := mustTick(t, d, cast)
	e, err := cast.First(casting.RoleBanners)
	if err != nil {
		t.Fatalf("First(banners) failed: %v", err)
	}
	if e.Text() != result.Status {
		t.Errorf("banner text %q, expected %q", e.Text(), result.Status)
	}
	if !strings.Contains(result.Status, "tick 1") {
		t.Errorf("Status = %q, expected it to mention the tick", result.Status)
	}
}

func TestResetStartsNewRound(t *testing.T) {
	d, cast, input, _, c1, _ := newRound(PolicyLastSurvivor)
	c1.SetPosition(core.NewPoint(780, 0))
	input.push(core.Player1, core.DirUp)

	result := mustTick(t, d, cast)
	if !result.Over {
		t.Fatal("cycle1 should crash into the top wall on tick 1")
	}

	d.Reset()
	if d.State() != StateRunning || d.Last().Tick != 0 {
		t.Errorf("Reset() left state=%v tick=%d", d.State(), d.Last().Tick)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name     string
		expected Policy
		wantErr  bool
	}{
		{"", PolicyLastSurvivor, false},
		{"last_survivor", PolicyLastSurvivor, false},
		{"mutual_death", PolicyMutualDeath, false},
		{"sudden_death", PolicyLastSurvivor, true},
	}

	for _, tc := range tests {
		got, err := ParsePolicy(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePolicy(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}
