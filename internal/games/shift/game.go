// Package shift adapts the puzzle engine to the terminal: it lays the board
// out in character cells, turns mouse gestures and keys into engine input,
// and renders snapshots into a core.Screen.
package shift

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/shift-shift/internal/config"
	"github.com/vovakirdan/shift-shift/internal/core"
	"github.com/vovakirdan/shift-shift/internal/games/shift/puzzle"
)

// Options configure one play session.
type Options struct {
	Player        string // Three-letter initials shown in the HUD
	PersonalBest  int
	InitialLevel  int
	PriorScore    int // Session total carried into this shift
	TutorialDone  bool
	ForceTutorial bool

	OnLevelComplete    func(puzzle.LevelResult)
	OnSessionEnd       func(score, maxLevel int)
	OnTutorialComplete func()
}

// Game runs one shift session inside the platform tick loop.
type Game struct {
	cfg  config.ShiftConfig
	opts Options

	engine   *puzzle.Engine
	tick     uint64
	tickRate int
	labels   *labeler

	// Screen dimensions
	screenW int
	screenH int
	layout  layout

	cursorRow, cursorCol int
	pointer              pointerTracker
	peekToggled          bool // Space toggles; terminals report no key-up
	peekButtonHeld       bool // Mouse held on the PEEK button

	snap puzzle.Snapshot
}

// New creates a game. The configuration is validated here so Reset cannot
// fail later.
func New(cfg config.ShiftConfig, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, opts: opts}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "shift"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Shift/Shift"
}

// Reset starts a new session with a fresh engine.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.engine != nil {
		g.engine.Close()
	}

	engine, err := puzzle.NewEngine(g.cfg, rand.New(rand.NewSource(cfg.Seed)), puzzle.Callbacks{
		OnLevelComplete:    g.onLevelComplete,
		OnSessionEnd:       g.opts.OnSessionEnd,
		OnTutorialComplete: g.onTutorialComplete,
	})
	if err != nil {
		panic(err) // Validated in New
	}

	g.engine = engine
	g.tick = 0
	g.tickRate = max(cfg.TickRate, 1)
	g.labels = newLabeler(cfg.Seed)
	g.pointer = pointerTracker{}
	g.peekToggled = false
	g.peekButtonHeld = false
	g.cursorRow, g.cursorCol = 0, 0

	g.engine.StartSession(puzzle.SessionOptions{
		InitialLevel:  g.opts.InitialLevel,
		PriorScore:    g.opts.PriorScore,
		TutorialDone:  g.opts.TutorialDone,
		ForceTutorial: g.opts.ForceTutorial,
	})
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize lays the board out for a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.refresh()
}

// Close releases the engine's timers.
func (g *Game) Close() {
	if g.engine != nil {
		g.engine.Close()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.handleActions(in)
	g.engine.Advance(time.Second / time.Duration(g.tickRate))
	g.refresh()

	return core.StepResult{State: g.State()}
}

func (g *Game) handleActions(in core.InputFrame) {
	switch {
	case in.Has(core.ActionEnd):
		g.engine.EndSession()
		return
	case in.Has(core.ActionRestart):
		g.engine.ResetLevel()
	case in.Has(core.ActionConfirm):
		g.engine.Confirm()
	case in.Has(core.ActionSkip):
		g.engine.Skip()
	}

	if in.Has(core.ActionPeek) {
		g.peekToggled = !g.peekToggled
		g.updatePeek()
	}

	rows, cols := max(g.snap.Config.Rows, 1), max(g.snap.Config.Cols, 1)
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Mod(g.cursorRow-1, rows)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Mod(g.cursorRow+1, rows)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Mod(g.cursorCol-1, cols)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Mod(g.cursorCol+1, cols)
	case in.Has(core.ActionShiftLeft):
		g.nudge(puzzle.AxisRow, g.cursorRow, -1)
	case in.Has(core.ActionShiftRight):
		g.nudge(puzzle.AxisRow, g.cursorRow, 1)
	case in.Has(core.ActionShiftUp):
		g.nudge(puzzle.AxisColumn, g.cursorCol, -1)
	case in.Has(core.ActionShiftDown):
		g.nudge(puzzle.AxisColumn, g.cursorCol, 1)
	}
}

// nudge shifts the cursor's line and moves the cursor with its cell when
// the engine accepts the move.
func (g *Game) nudge(axis puzzle.Axis, index, dir int) {
	g.engine.Nudge(axis, index, dir)
	v := g.engine.Snapshot().Drag
	if !v.Captured || v.Axis != axis || v.Index != index {
		return
	}
	if axis == puzzle.AxisRow {
		g.cursorCol = core.Mod(g.cursorCol+dir, max(g.snap.Config.Cols, 1))
	} else {
		g.cursorRow = core.Mod(g.cursorRow+dir, max(g.snap.Config.Rows, 1))
	}
}

func (g *Game) updatePeek() {
	g.engine.SetPeek(g.peekToggled || g.peekButtonHeld)
}

// refresh takes a new snapshot and keeps layout, labels and cursor in step
// with the board.
func (g *Game) refresh() {
	g.snap = g.engine.Snapshot()
	rows, cols := max(g.snap.Config.Rows, 1), max(g.snap.Config.Cols, 1)
	g.layout = computeLayout(g.screenW, g.screenH, rows, cols)
	g.engine.SetCellSize(float64(g.layout.cellW), float64(g.layout.cellH))
	g.labels.update(g.snap)
	g.cursorRow = core.Clamp(g.cursorRow, 0, rows-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, cols-1)
}

func (g *Game) onLevelComplete(r puzzle.LevelResult) {
	if g.opts.OnLevelComplete != nil {
		g.opts.OnLevelComplete(r)
	}
}

func (g *Game) onTutorialComplete() {
	g.peekToggled = false
	g.updatePeek()
	if g.opts.OnTutorialComplete != nil {
		g.opts.OnTutorialComplete()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.SessionScore,
		Level:    g.snap.Level,
		Paused:   g.layout.tooSmall,
		GameOver: g.snap.Phase == puzzle.PhaseShiftOver,
	}
}

// Snapshot returns the engine state as of the last tick.
func (g *Game) Snapshot() puzzle.Snapshot {
	return g.snap
}

// Cursor returns the keyboard cursor cell.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}
