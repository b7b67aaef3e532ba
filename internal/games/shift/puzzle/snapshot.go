package puzzle

import "time"

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Grid   *Grid // Current board (copy)
	Target *Grid // Solved board (copy)
	Phase  Phase

	Tutorial  TutorialStep
	Overlay   *Overlay // Tutorial text for the current step, nil if none
	Modal     bool     // Overlay waits for Confirm
	Skippable bool

	Level        int
	Config       LevelConfig
	MinMoves     int
	Moves        int
	Seconds      int
	SessionScore int
	LastResult   LevelResult // Most recent completed level

	Drag           DragView
	Peeking        bool          // Target should be shown instead of the board
	Banner         bool          // Start-of-play banner is up
	PhaseRemaining time.Duration // Until the pending phase transition, or zero
}

// Snapshot returns the current state. Grids are copies; mutating them does
// not affect the engine.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:          e.phase,
		Level:          e.level,
		Config:         e.levelCfg,
		MinMoves:       MinMoves(e.cfg.Scoring, e.levelCfg, e.tutorial != nil),
		Moves:          e.moves,
		Seconds:        e.stopwatch.Seconds(),
		SessionScore:   e.sessionScore,
		LastResult:     e.lastResult,
		Drag:           e.drag.View(),
		Peeking:        e.peekHeld && e.phase == PhasePlaying,
		PhaseRemaining: e.phaseTimer.Remaining(),
	}
	if e.grid != nil {
		s.Grid = e.grid.Clone()
		s.Target = e.target.Clone()
	}
	if e.tutorial != nil {
		step := e.tutorial.current
		s.Tutorial = step.id
		s.Modal = step.modal
		s.Skippable = step.skippable
		if step.overlay != nil {
			o := *step.overlay
			s.Overlay = &o
		}
	} else {
		s.Banner = e.phase == PhasePlaying && e.clock.Now() < e.bannerUntil
	}
	return s
}

// Excludes reports whether a cell is owned by the captured column, so its
// row must not draw or move it.
func (e *Engine) Excludes(row, col int) bool {
	return e.drag.Excludes(row, col)
}
