package board

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// SettleDelay is the simulated time a cascade waits before each settle step.
const SettleDelay = 150 * time.Millisecond

// cascadeTask refills one column, one tracked empty row per step.
type cascadeTask struct {
	col   int
	empty []int // bottom-up; the last entry is the top-most empty row
	wait  time.Duration
	steps int
}

// CascadeEngine runs per-column refill tasks driven by Advance.
// Tasks of different columns interleave; steps within a column are ordered.
type CascadeEngine struct {
	grid   *Grid
	source *TileSource
	tasks  []*cascadeTask // indexed by column, nil when idle
	logger *log.Logger
}

// NewCascadeEngine creates an engine refilling g from src.
// A nil logger discards output.
func NewCascadeEngine(g *Grid, src *TileSource, logger *log.Logger) *CascadeEngine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CascadeEngine{
		grid:   g,
		source: src,
		tasks:  make([]*cascadeTask, g.Cols()),
		logger: logger,
	}
}

// Cascade schedules a refill of col. Columns without empty tiles schedule
// nothing. A column that is already settling has its empty list rebuilt
// from a fresh scan.
func (e *CascadeEngine) Cascade(col int) {
	rows, err := e.grid.EmptyRows(col)
	if err != nil {
		e.logger.Warn("cascade rejected", "col", col, "err", err)
		return
	}

	if task := e.tasks[col]; task != nil {
		task.empty = rows
		if len(rows) == 0 {
			e.finish(task)
		}
		return
	}
	if len(rows) == 0 {
		return
	}

	e.tasks[col] = &cascadeTask{col: col, empty: rows}
	e.logger.Debug("cascade scheduled", "col", col, "empty", len(rows))
}

// Advance moves simulated time forward by dt and runs every settle step
// that became due. It returns the number of steps performed.
func (e *CascadeEngine) Advance(dt time.Duration) int {
	steps := 0
	for _, task := range e.tasks {
		if task == nil {
			continue
		}
		task.wait += dt
		for task.wait >= SettleDelay && len(task.empty) > 0 {
			task.wait -= SettleDelay
			e.step(task)
			steps++
		}
		if len(task.empty) == 0 {
			e.finish(task)
		}
	}
	return steps
}

// Flush runs every remaining step immediately and returns how many ran.
func (e *CascadeEngine) Flush() int {
	steps := 0
	for _, task := range e.tasks {
		if task == nil {
			continue
		}
		for len(task.empty) > 0 {
			e.step(task)
			steps++
		}
		e.finish(task)
	}
	return steps
}

// Pending returns the number of settle steps still scheduled.
func (e *CascadeEngine) Pending() int {
	n := 0
	for _, task := range e.tasks {
		if task != nil {
			n += len(task.empty)
		}
	}
	return n
}

// Busy reports whether any column is settling.
func (e *CascadeEngine) Busy() bool {
	for _, task := range e.tasks {
		if task != nil {
			return true
		}
	}
	return false
}

// ColumnBusy reports whether col is settling.
func (e *CascadeEngine) ColumnBusy(col int) bool {
	if col < 0 || col >= len(e.tasks) {
		return false
	}
	return e.tasks[col] != nil
}

// step shifts everything above the top-most tracked empty row down by one
// and places a fresh tile in row 0.
func (e *CascadeEngine) step(task *cascadeTask) {
	last := len(task.empty) - 1
	r := task.empty[last]
	palette := e.source.Palette()

	for j := r; j >= 0; j-- {
		dst := e.grid.At(j, task.col)
		if j-1 < 0 {
			dst.Place(e.source.Next())
			continue
		}
		src := e.grid.At(j-1, task.col)
		typ := src.Type()
		dst.Place(TileData{Type: typ, Color: palette.ColorOf(typ)})
		src.Reset()
	}

	task.empty = task.empty[:last]
	task.steps++
}

func (e *CascadeEngine) finish(task *cascadeTask) {
	if e.tasks[task.col] != task {
		return
	}
	e.tasks[task.col] = nil
	e.logger.Debug("cascade settled", "col", task.col, "steps", task.steps)
}
