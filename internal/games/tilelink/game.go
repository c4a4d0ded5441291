// Package tilelink implements the Tilelink puzzle for the terminal platform.
// The board rules live in the board subpackage; this package maps pointer
// and keyboard input onto the board and draws it into a core.Screen.
package tilelink

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tilelink/internal/config"
	"github.com/vovakirdan/tui-tilelink/internal/core"
	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink/board"
	"github.com/vovakirdan/tui-tilelink/internal/registry"
)

// Package-level settings shared by every mode, set by the CLI before games are created.
var (
	settingsMu sync.RWMutex
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetLogger sets the logger used by new games. Nil discards output.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func currentSettings() (string, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return configPath, logger
}

func init() {
	RegisterModes(config.Default())
}

// RegisterModes registers every mode of cfg that is not registered yet.
func RegisterModes(cfg config.Config) {
	for _, m := range cfg.Modes {
		if registry.Exists(m.ID) {
			continue
		}
		mode := m
		registry.Register(mode.ID, func() registry.Game {
			return New(mode)
		})
	}
}

// Game is one Tilelink board bound to a configured mode.
type Game struct {
	mode    config.Mode
	runtime core.RuntimeConfig
	ctrl    *board.Controller
	layout  Layout
	logger  *log.Logger
	err     error // Set when the mode could not build a board

	tick     uint64
	cursor   board.Pos
	holding  bool // Keyboard press in progress
	paused   bool
	tooSmall bool
}

// New creates a game for the given mode. The board is built on Reset.
func New(mode config.Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode.Title == "" {
		return g.mode.ID
	}
	return g.mode.Title
}

// Description returns the mode description shown in the menu.
func (g *Game) Description() string {
	return g.mode.Description
}

// Mode returns the configured mode.
func (g *Game) Mode() config.Mode {
	return g.mode
}

// Reset loads the configuration and deals a new board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	path, l := currentSettings()
	g.logger = l.With("mode", g.mode.ID)

	cfg, err := config.Load(path)
	if err != nil {
		g.logger.Warn("falling back to default config", "err", err)
		cfg = config.Default()
	}
	// A config file may redefine the mode this game was registered with.
	if m, err := cfg.Mode(g.mode.ID); err == nil {
		g.mode = m
	}

	g.tick = 0
	g.holding = false
	g.paused = false
	g.cursor = board.P(0, 0)
	g.ctrl, g.err = g.newController(cfg, runtime.Seed)
	if g.err != nil {
		g.logger.Error("cannot build board", "err", g.err)
	}
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

func (g *Game) newController(cfg config.Config, seed int64) (*board.Controller, error) {
	settings, err := cfg.Resolve(g.mode.ID)
	if err != nil {
		// The mode came from the registry, not from this config.
		settings, err = config.Config{Palette: cfg.Palette, Modes: []config.Mode{g.mode}}.Resolve(g.mode.ID)
		if err != nil {
			return nil, err
		}
	}
	settings.Rand = rand.New(rand.NewSource(seed))
	settings.Logger = g.logger
	settings.Observer = &logObserver{logger: g.logger}
	return board.NewController(settings)
}

// Resize adapts the layout to a new screen size and keeps the board.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.ctrl == nil {
		g.tooSmall = true
		return
	}
	grid := g.ctrl.Grid()
	g.layout = NewLayout(width, height, grid.Rows(), grid.Cols())
	g.tooSmall = !g.layout.Fits()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.ctrl.Reset()
		g.holding = false
		g.logger.Debug("board dealt")
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.handleKeys(in)
	for _, ev := range in.Pointers {
		g.handlePointer(ev)
	}

	dt := time.Second / time.Duration(g.runtime.TickRate)
	settled := g.ctrl.Advance(dt)

	return core.StepResult{State: g.State(), Settled: settled}
}

// handleKeys moves the cursor and turns Confirm into a press or release.
func (g *Game) handleKeys(in core.InputFrame) {
	grid := g.ctrl.Grid()
	moved := false

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
		moved = true
	case in.Has(core.ActionDown):
		g.cursor.Row++
		moved = true
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.Col--
		moved = true
	case in.Has(core.ActionRight):
		g.cursor.Col++
		moved = true
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, grid.Rows()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, grid.Cols()-1)

	if moved && g.holding {
		g.ctrl.Handle(board.Move(g.cursor))
	}

	if in.Has(core.ActionConfirm) {
		if g.holding {
			g.ctrl.Handle(board.Up())
			g.holding = false
		} else {
			g.ctrl.Handle(board.Down(g.cursor))
			g.holding = true
		}
	}
}

// handlePointer resolves a screen position to a cell and feeds the board.
func (g *Game) handlePointer(ev core.PointerEvent) {
	cell, ok := g.layout.CellAt(ev.X, ev.Y)
	if ok {
		g.cursor = cell
	}

	var target *board.Pos
	if ok {
		target = &cell
	}

	switch ev.Kind {
	case core.PointerDown:
		g.holding = false
		g.ctrl.Handle(board.Event{Kind: board.EventDown, Cell: target})
	case core.PointerMove:
		g.ctrl.Handle(board.Event{Kind: board.EventMove, Cell: target})
	case core.PointerUp:
		g.ctrl.Handle(board.Up())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	busy := false
	if g.ctrl != nil {
		busy = g.ctrl.Cascades().Busy()
	}
	return core.GameState{
		Paused: g.paused || g.tooSmall,
		Busy:   busy,
	}
}

// Controller exposes the board controller, or nil when the mode failed to build.
func (g *Game) Controller() *board.Controller {
	return g.ctrl
}

// Err returns the error that prevented the board from being built.
func (g *Game) Err() error {
	return g.err
}

// logObserver writes board notifications to the debug log.
type logObserver struct {
	logger *log.Logger
}

func (o *logObserver) IndicatorOn(p board.Pos, d board.Direction) {
	o.logger.Debug("indicator on", "pos", p, "dir", d)
}

func (o *logObserver) IndicatorOff(p board.Pos, d board.Direction) {
	o.logger.Debug("indicator off", "pos", p, "dir", d)
}

func (o *logObserver) IndicatorsCleared(p board.Pos) {
	o.logger.Debug("indicators cleared", "pos", p)
}

// Placed and Cleared fire for every tile on each deal and settle step; they are not logged.
func (o *logObserver) Placed(board.Pos, board.TileData) {}
func (o *logObserver) Cleared(board.Pos)                {}
