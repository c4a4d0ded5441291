// Package registry keeps the playable game modes. Each mode registers a
// factory from an init() function so the CLI, the menu and the SSH server
// can list and create modes without knowing their packages.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tilelink/internal/core"
)

// Game is the interface the platform drives. Implementations hold pure
// logic; input mapping, timing and terminal output belong to the platform.
type Game interface {
	// ID returns the mode identifier used on the command line (e.g. "classic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset deals a new board. The RuntimeConfig provides screen size,
	// tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without dealing a new board.
type Resizer interface {
	Resize(width, height int)
}

// Describer is implemented by games that carry a one-line description
// for menus and listings.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a mode.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	order     []string
)

// Register adds a factory to the registry.
// Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	factories[id] = f
	infos[id] = info
	order = append(order, id)
}

// List returns all registered modes in registration order.
// Use ListSorted for an alphabetical listing.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, infos[id])
	}
	return result
}

// ListSorted returns all registered modes sorted by ID.
func ListSorted() []GameInfo {
	result := List()
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
