package tilelink

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tilelink/internal/config"
	"github.com/vovakirdan/tui-tilelink/internal/core"
	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
	"github.com/vovakirdan/tui-tilelink/internal/registry"
)

var monoMode = config.Mode{
	ID:      "mono",
	Title:   "Mono",
	Rows:    3,
	Columns: 3,
	Types:   []string{"blue"},
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: seed}
}

// newTestGame isolates config lookup from the developer's home and working directory.
func newTestGame(t *testing.T, mode config.Mode, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")

	g := New(mode)
	g.Reset(testRuntime(seed))
	if g.Err() != nil {
		t.Fatalf("Reset() error = %v", g.Err())
	}
	return g
}

func classicMode(t *testing.T) config.Mode {
	t.Helper()
	m, err := config.Default().Mode("classic")
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// pointerAt returns a pointer event at the center of grid cell p.
func pointerAt(g *Game, kind core.PointerKind, p board.Pos) core.PointerEvent {
	r := g.layout.CellRect(p)
	x, y := r.Center()
	return core.PointerEvent{Kind: kind, X: x, Y: y}
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"classic", "spectrum", "grand"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}

	g, err := registry.Create("classic")
	if err != nil {
		t.Fatalf("Create(classic) error = %v", err)
	}
	if g.Title() != "Classic" {
		t.Errorf("Title() = %q, expected Classic", g.Title())
	}
}

func TestDeterministicDeal(t *testing.T) {
	a := newTestGame(t, classicMode(t), 42)
	b := newTestGame(t, classicMode(t), 42)

	if !reflect.DeepEqual(a.Snapshot().Types, b.Snapshot().Types) {
		t.Error("same seed should deal the same board")
	}

	snap := a.Snapshot()
	if snap.Rows != 5 || snap.Cols != 5 {
		t.Errorf("board size = %dx%d, expected 5x5", snap.Rows, snap.Cols)
	}
	for _, row := range snap.Types {
		for _, typ := range row {
			if typ != board.TypeBlue && typ != board.TypeBrown {
				t.Errorf("classic board holds %v", typ)
			}
		}
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(80, 24, 5, 5)

	if !l.Fits() {
		t.Fatal("5x5 board should fit 80x24")
	}

	tests := []struct {
		name     string
		x, y     int
		expected board.Pos
		ok       bool
	}{
		{"top-left corner", l.Board.X, l.Board.Y, board.P(0, 0), true},
		{"inside first tile", l.Board.X + CellW - 1, l.Board.Y + CellH - 1, board.P(0, 0), true},
		{"second column", l.Board.X + CellW, l.Board.Y, board.P(0, 1), true},
		{"last tile", l.Board.Right() - 1, l.Board.Bottom() - 1, board.P(4, 4), true},
		{"left of board", l.Board.X - 1, l.Board.Y, board.Pos{}, false},
		{"below board", l.Board.X, l.Board.Bottom(), board.Pos{}, false},
		{"hud", l.Board.X, 0, board.Pos{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.CellAt(tt.x, tt.y)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("CellAt(%d, %d) = %v, %v, expected %v, %v", tt.x, tt.y, got, ok, tt.expected, tt.ok)
			}
		})
	}

	if small := NewLayout(20, 10, 5, 5); small.Fits() {
		t.Error("5x5 board should not fit 20x10")
	}
}

func TestPointerDragClearsAndSettles(t *testing.T) {
	g := newTestGame(t, monoMode, 1)

	in := core.NewInputFrame()
	in.Push(pointerAt(g, core.PointerDown, board.P(0, 0)))
	in.Push(pointerAt(g, core.PointerMove, board.P(0, 1)))
	in.Push(pointerAt(g, core.PointerMove, board.P(1, 2)))
	in.Push(core.PointerEvent{Kind: core.PointerUp})

	res := g.Step(in)
	if !res.State.Busy {
		t.Fatal("board should be settling after a clear")
	}

	snap := g.Snapshot()
	if snap.Pending != 3 {
		t.Errorf("Pending = %d, expected 3", snap.Pending)
	}
	if snap.State != StateSettling {
		t.Errorf("State = %v, expected %v", snap.State, StateSettling)
	}
	if snap.Cursor != board.P(1, 2) {
		t.Errorf("Cursor = %v, expected pointer cell (1,2)", snap.Cursor)
	}

	settled := 0
	for i := 0; i < 30; i++ {
		settled += g.Step(core.NewInputFrame()).Settled
	}
	if settled != 3 {
		t.Errorf("settled %d steps, expected 3", settled)
	}
	if g.State().Busy {
		t.Error("board should be idle after settling")
	}
	if g.Controller().Grid().EmptyCount() != 0 {
		t.Error("board should have no empty tiles after settling")
	}
}

func TestKeyboardDrag(t *testing.T) {
	g := newTestGame(t, monoMode, 1)

	g.Step(frameWith(core.ActionConfirm))
	if !g.Snapshot().Holding {
		t.Fatal("Confirm should start holding")
	}
	g.Step(frameWith(core.ActionRight))
	g.Step(frameWith(core.ActionDown))
	g.Step(frameWith(core.ActionDown))

	snap := g.Snapshot()
	expected := []board.Pos{board.P(0, 0), board.P(0, 1), board.P(1, 1), board.P(2, 1)}
	if !reflect.DeepEqual(snap.Chain, expected) {
		t.Errorf("Chain = %v, expected %v", snap.Chain, expected)
	}

	g.Step(frameWith(core.ActionDown))
	if g.Snapshot().Cursor != board.P(2, 1) {
		t.Errorf("Cursor = %v, expected clamp at (2,1)", g.Snapshot().Cursor)
	}

	g.Step(frameWith(core.ActionConfirm))
	snap = g.Snapshot()
	if snap.Holding || len(snap.Chain) != 0 {
		t.Errorf("Confirm should release: holding=%v chain=%v", snap.Holding, snap.Chain)
	}
	if got := g.Controller().LastCommit(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("LastCommit() = %v, expected [0 1]", got)
	}
}

func TestPauseFreezesBoard(t *testing.T) {
	g := newTestGame(t, monoMode, 1)

	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	in := core.NewInputFrame()
	in.Push(pointerAt(g, core.PointerDown, board.P(0, 0)))
	g.Step(in)
	if g.Controller().Chain().Len() != 0 {
		t.Error("pointer input should be ignored while paused")
	}

	g.Step(frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("second Pause should resume")
	}
}

func TestRestartDealsNewBoard(t *testing.T) {
	g := newTestGame(t, classicMode(t), 3)
	before := g.Snapshot().Types

	g.Step(frameWith(core.ActionRestart))
	after := g.Snapshot().Types

	if reflect.DeepEqual(before, after) {
		t.Error("Restart should deal a different board")
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, classicMode(t), 7)
	before := g.Snapshot().Types

	g.Resize(120, 50)
	if !reflect.DeepEqual(before, g.Snapshot().Types) {
		t.Error("Resize should keep the board")
	}

	g.Resize(10, 5)
	if !g.State().Paused || g.Snapshot().State != StatePausedSmall {
		t.Error("tiny window should pause the game")
	}
}

func TestRenderDrawsTilesAndIndicators(t *testing.T) {
	g := newTestGame(t, monoMode, 1)

	in := core.NewInputFrame()
	in.Push(pointerAt(g, core.PointerDown, board.P(0, 0)))
	in.Push(pointerAt(g, core.PointerMove, board.P(0, 1)))
	g.Step(in)

	screen := core.NewScreen(80, 40)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "T I L E L I N K") {
		t.Errorf("row 0 = %q, expected title", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "chain 2 blue") {
		t.Errorf("row 1 = %q, expected chain status", screen.Row(1))
	}

	first := g.layout.CellRect(board.P(0, 0))
	if got := screen.Get(first.X+CellW/2, first.Y+CellH/2); got != Glyph(board.TypeBlue) {
		t.Errorf("tile glyph = %q, expected %q", got, Glyph(board.TypeBlue))
	}
	if got := screen.GetCell(first.X+CellW/2, first.Y+CellH/2).Color; got != "33" {
		t.Errorf("tile color = %q, expected 33", got)
	}
	if got := screen.Get(first.X+CellW-1, first.Y+CellH/2); got != '─' {
		t.Errorf("right indicator = %q, expected '─'", got)
	}

	second := g.layout.CellRect(board.P(0, 1))
	if got := screen.Get(second.X, second.Y+CellH/2); got != '─' {
		t.Errorf("left indicator = %q, expected '─'", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, classicMode(t), 1)
	g.Resize(20, 6)

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}
}
