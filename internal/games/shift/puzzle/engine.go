package puzzle

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/shift-shift/internal/config"
)

// Phase is the top-level game state.
type Phase string

const (
	PhaseNone          Phase = ""               // Before StartSession
	PhaseMemorize      Phase = "memorize"       // Solved board on display
	PhasePlaying       Phase = "playing"        // Scrambled, accepting drags
	PhaseLevelComplete Phase = "level_complete" // Solved, next level pending
	PhaseShiftOver     Phase = "shift_over"     // Session ended
)

// Callbacks receive results from the engine. Any of them may be nil.
type Callbacks struct {
	OnLevelComplete    func(LevelResult)
	OnSessionEnd       func(sessionScore, maxLevel int)
	OnTutorialComplete func()
}

// SessionOptions configure StartSession.
type SessionOptions struct {
	InitialLevel  int  // 1 if zero
	PriorScore    int  // Session total to continue from
	TutorialDone  bool // Player has finished the tutorial before
	ForceTutorial bool // Run the tutorial regardless
}

// Engine owns the phase machine, its timers, and the level state. It is not
// safe for concurrent use; drive it from one goroutine.
type Engine struct {
	cfg    config.ShiftConfig
	rng    *rand.Rand
	cb     Callbacks
	levels *LevelGenerator

	clock        *Clock
	phaseTimer   *Timer
	stepTimer    *Timer
	stopwatch    *Stopwatch
	drag         *DragController
	bannerUntil  time.Duration
	tutorialDone bool
	closed       bool

	phase        Phase
	level        int
	levelCfg     LevelConfig
	grid         *Grid
	target       *Grid
	moves        int
	sessionScore int
	lastResult   LevelResult
	peekHeld     bool

	tutorial *tutorialRun
}

// NewEngine validates the configuration and creates an engine waiting for
// StartSession.
func NewEngine(cfg config.ShiftConfig, rng *rand.Rand, cb Callbacks) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	levels, err := NewLevelGenerator(cfg.Levels)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		cfg:    cfg,
		rng:    rng,
		cb:     cb,
		levels: levels,
		clock:  NewClock(),
		level:  1,
	}
	e.phaseTimer = e.clock.NewTimer()
	e.stepTimer = e.clock.NewTimer()
	e.stopwatch = NewStopwatch(e.clock)
	e.drag = NewDragController(e.clock, cfg.Drag, e.canCapture, e.onCommit)
	return e, nil
}

// StartSession begins a session, running the tutorial first unless the
// player has completed it. Any previous session is abandoned silently.
func (e *Engine) StartSession(opts SessionOptions) {
	if e.closed {
		return
	}
	e.cancelAll()
	e.level = max(1, opts.InitialLevel)
	e.sessionScore = opts.PriorScore
	e.lastResult = LevelResult{}
	e.tutorialDone = opts.TutorialDone && !opts.ForceTutorial

	if !e.tutorialDone {
		e.startTutorial()
		return
	}
	e.enterMemorize()
}

// Press starts a pointer gesture on a cell.
func (e *Engine) Press(row, col int) {
	if !e.active() || e.grid == nil {
		return
	}
	if row < 0 || row >= e.grid.Rows() || col < 0 || col >= e.grid.Cols() {
		return
	}
	e.drag.Press(row, col)
}

// Move reports the pointer displacement since Press and its velocity.
func (e *Engine) Move(dx, dy, vx, vy float64) {
	if e.active() {
		e.drag.Move(dx, dy, vx, vy)
	}
}

// Release ends the pointer gesture.
func (e *Engine) Release() {
	if e.active() {
		e.drag.Release()
	}
}

// Nudge shifts one line by a single cell, as if dragged.
func (e *Engine) Nudge(axis Axis, index, dir int) {
	if e.active() {
		e.drag.Nudge(axis, index, dir)
	}
}

// SetPeek sets the hold-to-peek signal. Peeking never mutates state.
func (e *Engine) SetPeek(held bool) {
	e.peekHeld = held
}

// SetCellSize sets pointer units per cell for drag snapping.
func (e *Engine) SetCellSize(width, height float64) {
	e.drag.SetCellSize(width, height)
}

// ResetLevel regenerates the current level and returns to memorize. Only
// valid while memorizing or playing outside the tutorial.
func (e *Engine) ResetLevel() {
	if !e.active() || e.tutorial != nil {
		return
	}
	if e.phase == PhaseMemorize || e.phase == PhasePlaying {
		e.enterMemorize()
	}
}

// EndSession ends the session from any live phase and reports the total.
func (e *Engine) EndSession() {
	if !e.active() {
		return
	}
	e.cancelAll()
	e.tutorial = nil
	e.phase = PhaseShiftOver
	if e.cb.OnSessionEnd != nil {
		e.cb.OnSessionEnd(e.sessionScore, e.level)
	}
}

// Close cancels every timer and animation. The engine ignores all input
// afterwards.
func (e *Engine) Close() {
	e.cancelAll()
	e.closed = true
}

// Advance moves the engine clock forward, firing due phase, tutorial and
// animation timers.
func (e *Engine) Advance(d time.Duration) {
	if e.closed {
		return
	}
	e.clock.Advance(d)
}

// Now returns the engine clock time.
func (e *Engine) Now() time.Duration {
	return e.clock.Now()
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

func (e *Engine) active() bool {
	return !e.closed && e.phase != PhaseNone && e.phase != PhaseShiftOver
}

func (e *Engine) cancelAll() {
	e.phaseTimer.Stop()
	e.stepTimer.Stop()
	e.drag.Reset()
	e.stopwatch.Stop()
}

// enterMemorize builds a fresh board for the current level and shows it
// solved until the memorize timer fires.
func (e *Engine) enterMemorize() {
	e.cancelAll()
	e.stopwatch.Reset()
	e.levelCfg = e.levels.Config(e.level)
	e.target = RandomGrid(e.levelCfg.Rows, e.levelCfg.Cols, e.levelCfg.Density, e.rng)
	e.grid = e.target.Clone()
	e.drag.SetBoard(e.levelCfg.Rows, e.levelCfg.Cols)
	e.moves = 0
	e.phase = PhaseMemorize
	e.phaseTimer.Schedule(e.cfg.Timing.Memorize, e.enterPlaying)
}

func (e *Engine) enterPlaying() {
	if e.cfg.Levels.AvoidIdentityScramble {
		e.grid, _ = ScrambleAvoidingIdentity(e.target, e.levelCfg.ScrambleSteps, e.rng)
	} else {
		e.grid, _ = Scramble(e.target, e.levelCfg.ScrambleSteps, e.rng)
	}
	e.moves = 0
	e.stopwatch.Reset()
	e.stopwatch.Start()
	e.bannerUntil = e.clock.Now() + e.cfg.Timing.Banner
	e.phase = PhasePlaying
}

func (e *Engine) completeLevel() {
	e.phaseTimer.Stop()
	e.stopwatch.Stop()
	e.drag.Reset()

	minMoves := MinMoves(e.cfg.Scoring, e.levelCfg, false)
	e.lastResult = ScoreLevel(e.cfg.Scoring, e.level, minMoves, e.moves, e.stopwatch.Seconds())
	e.sessionScore += e.lastResult.LevelScore
	e.phase = PhaseLevelComplete
	e.phaseTimer.Schedule(e.cfg.Timing.LevelComplete, e.nextLevel)

	if e.cb.OnLevelComplete != nil {
		e.cb.OnLevelComplete(e.lastResult)
	}
}

func (e *Engine) nextLevel() {
	e.level++
	e.enterMemorize()
}

// canCapture gates drag capture: the tutorial decides while it runs,
// otherwise only the playing phase accepts drags.
func (e *Engine) canCapture(axis Axis, index int) bool {
	if !e.active() {
		return false
	}
	if e.tutorial != nil {
		return e.tutorial.allows(axis, index)
	}
	return e.phase == PhasePlaying
}

// onCommit applies a finished non-zero shift. The grid changes before the
// win check runs.
func (e *Engine) onCommit(c Commit) {
	if !e.active() {
		return
	}
	if e.tutorial != nil {
		e.tutorialCommit(c)
		return
	}
	if e.phase != PhasePlaying {
		return
	}
	e.grid.Apply(c.Shift)
	e.moves++
	if e.grid.Equal(e.target) {
		e.completeLevel()
	}
}
