package puzzle

import (
	"fmt"

	"github.com/vovakirdan/shift-shift/internal/config"
)

// TutorialStep identifies a step of the scripted onboarding.
type TutorialStep string

const (
	StepNone       TutorialStep = ""
	StepWatch      TutorialStep = "watch"
	StepScrambling TutorialStep = "scrambling"
	StepFixColInfo TutorialStep = "fix_col_info"
	StepFixCol     TutorialStep = "fix_col"
	StepFixRowInfo TutorialStep = "fix_row_info"
	StepFixRow     TutorialStep = "fix_row"
	StepPeekInfo   TutorialStep = "peek_info"
	StepFinish     TutorialStep = "finish"
)

// Overlay is the text shown over the board during a tutorial step.
type Overlay struct {
	Title  string
	Text   string
	Action string // Confirm button label; empty when the step does not wait
}

// tutorialStepDef describes one step. The driver interprets the table; no
// step is special-cased.
type tutorialStepDef struct {
	id        TutorialStep
	phase     Phase
	overlay   *Overlay
	modal     bool          // Waits for Confirm
	skippable bool          // Skip exits the tutorial
	watch     bool          // Auto-advances after the watch duration
	script    []Shift       // Shifts played back without input
	gate      func(Axis, int) bool
	accept    func(Shift) bool
	next      TutorialStep // StepNone ends the tutorial
}

type tutorialRun struct {
	steps   map[TutorialStep]*tutorialStepDef
	current *tutorialStepDef
	played  int // Script shifts committed in the current step
}

func (t *tutorialRun) allows(axis Axis, index int) bool {
	return t.current.gate != nil && t.current.gate(axis, index)
}

func tutorialScript(cfg config.TutorialConfig) []*tutorialStepDef {
	row, col := cfg.Row, cfg.Column
	return []*tutorialStepDef{
		{
			id:        StepWatch,
			phase:     PhaseMemorize,
			overlay:   &Overlay{Title: "Watch Carefully...", Text: "See how the shifts change the schedule."},
			skippable: true,
			watch:     true,
			next:      StepScrambling,
		},
		{
			id:     StepScrambling,
			phase:  PhasePlaying,
			script: []Shift{{Axis: AxisRow, Index: row, Amount: 1}, {Axis: AxisColumn, Index: col, Amount: 1}},
			next:   StepFixColInfo,
		},
		{
			id:    StepFixColInfo,
			phase: PhasePlaying,
			overlay: &Overlay{
				Title:  "Fix the Column",
				Text:   fmt.Sprintf("Column %d (%s) was shifted down. Drag it UP to fix it.", col+1, Weekday(col)),
				Action: "I'm on it",
			},
			modal:     true,
			skippable: true,
			next:      StepFixCol,
		},
		{
			id:     StepFixCol,
			phase:  PhasePlaying,
			gate:   func(a Axis, i int) bool { return a == AxisColumn && i == col },
			accept: func(s Shift) bool { return s.Axis == AxisColumn && s.Index == col && s.Amount < 0 },
			next:   StepFixRowInfo,
		},
		{
			id:    StepFixRowInfo,
			phase: PhasePlaying,
			overlay: &Overlay{
				Title:  "Fix the Row",
				Text:   fmt.Sprintf("Row %d was shifted right. Drag it LEFT to fix it.", row+1),
				Action: "Got it",
			},
			modal:     true,
			skippable: true,
			next:      StepFixRow,
		},
		{
			id:     StepFixRow,
			phase:  PhasePlaying,
			gate:   func(a Axis, i int) bool { return a == AxisRow && i == row },
			accept: func(s Shift) bool { return s.Axis == AxisRow && s.Index == row && s.Amount < 0 },
			next:   StepPeekInfo,
		},
		{
			id:    StepPeekInfo,
			phase: PhasePlaying,
			overlay: &Overlay{
				Title:  "Need a Hint?",
				Text:   "Hold the PEEK button (or Spacebar) to see the goal schedule underneath.",
				Action: "Got it",
			},
			modal:     true,
			skippable: true,
			next:      StepFinish,
		},
		{
			id:    StepFinish,
			phase: PhasePlaying,
			overlay: &Overlay{
				Title:  "Excellent Work!",
				Text:   "The schedule is back to how it was. Now it's your turn to beat the clock.",
				Action: "START",
			},
			modal: true,
			next:  StepNone,
		},
	}
}

// weekdays label board columns; boards wider than five cycle through them.
var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// Weekday returns the column header for a column index.
func Weekday(col int) string {
	return weekdays[col%len(weekdays)]
}

// startTutorial sets up the tutorial board and enters its first step.
func (e *Engine) startTutorial() {
	tc := e.cfg.Tutorial
	steps := tutorialScript(tc)
	run := &tutorialRun{steps: make(map[TutorialStep]*tutorialStepDef, len(steps))}
	for _, s := range steps {
		run.steps[s.id] = s
	}
	e.tutorial = run

	e.stopwatch.Reset()
	e.levelCfg = LevelConfig{Rows: tc.Rows, Cols: tc.Cols, Density: tc.Density}
	e.target = RandomGrid(tc.Rows, tc.Cols, tc.Density, e.rng)
	e.grid = e.target.Clone()
	e.drag.SetBoard(tc.Rows, tc.Cols)
	e.moves = 0
	e.enterStep(steps[0].id)
}

// enterStep cancels the previous step's timer and runs the step's entry
// action.
func (e *Engine) enterStep(id TutorialStep) {
	e.stepTimer.Stop()
	e.drag.Reset()
	if id == StepNone {
		e.finishTutorial()
		return
	}

	step := e.tutorial.steps[id]
	e.tutorial.current = step
	e.tutorial.played = 0
	e.phase = step.phase

	switch {
	case step.watch:
		e.stepTimer.Schedule(e.cfg.Tutorial.Watch, e.advanceStep)
	case len(step.script) > 0:
		e.drag.Play(step.script[0], e.cfg.Tutorial.Animation)
	}
}

func (e *Engine) advanceStep() {
	e.enterStep(e.tutorial.current.next)
}

// tutorialCommit handles a finished shift while the tutorial runs. Scripted
// shifts always apply; player shifts apply only when the step accepts them,
// otherwise they are dropped like a zero shift.
func (e *Engine) tutorialCommit(c Commit) {
	step := e.tutorial.current
	if c.Scripted {
		e.grid.Apply(c.Shift)
		e.tutorial.played++
		if e.tutorial.played < len(step.script) {
			next := step.script[e.tutorial.played]
			e.stepTimer.Schedule(e.cfg.Tutorial.Pause, func() {
				e.drag.Play(next, e.cfg.Tutorial.Animation)
			})
			return
		}
		e.stepTimer.Schedule(e.cfg.Tutorial.FixDelay, e.advanceStep)
		return
	}

	if step.accept == nil || !step.accept(c.Shift) {
		return
	}
	e.grid.Apply(c.Shift)
	e.moves++
	e.advanceStep()
}

// Confirm acknowledges a modal tutorial step.
func (e *Engine) Confirm() {
	if !e.active() || e.tutorial == nil || !e.tutorial.current.modal {
		return
	}
	e.advanceStep()
}

// Skip leaves the tutorial from any skippable step.
func (e *Engine) Skip() {
	if !e.active() || e.tutorial == nil || !e.tutorial.current.skippable {
		return
	}
	e.finishTutorial()
}

// finishTutorial exits tutorial mode for good and starts level 1. The
// session score is kept; the tutorial itself is never scored.
func (e *Engine) finishTutorial() {
	e.stepTimer.Stop()
	e.tutorial = nil
	e.tutorialDone = true
	e.level = 1
	if e.cb.OnTutorialComplete != nil {
		e.cb.OnTutorialComplete()
	}
	if e.active() {
		e.enterMemorize()
	}
}
