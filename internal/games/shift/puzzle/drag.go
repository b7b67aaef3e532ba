package puzzle

import (
	"math"
	"time"

	"github.com/vovakirdan/shift-shift/internal/config"
)

// DragState is the lifecycle of one gesture.
type DragState string

const (
	DragIdle     DragState = "idle"     // No gesture
	DragPressed  DragState = "pressed"  // Pointer down, below the threshold
	DragRejected DragState = "rejected" // Gesture refused by the gate, inert until release
	DragDragging DragState = "dragging" // Axis captured, tracking the pointer
	DragSettling DragState = "settling" // Animating to the snapped offset
)

// Commit is a discrete shift produced by a finished gesture.
type Commit struct {
	Shift    Shift
	Scripted bool // Played by the tutorial rather than the player
}

// DragView is the read-only drag state for rendering.
type DragView struct {
	State    DragState
	Captured bool
	Axis     Axis
	Index    int
	Offset   float64 // Current offset of the captured line, in cells
}

// DragController turns one continuous gesture on a row or column into a
// committed shift. Only one line is captured at a time.
type DragController struct {
	params config.DragConfig
	timer  *Timer
	clock  *Clock

	// gate decides whether a line may be captured; commit receives finished
	// non-zero shifts after the capture is released.
	gate   func(axis Axis, index int) bool
	commit func(Commit)

	rows, cols   int
	cellW, cellH float64

	state              DragState
	pressRow, pressCol int
	axis               Axis
	index              int
	offset             float64 // Pointer units, wrapped into (-tile, tile)
	velocity           float64 // Pointer units per second along the axis

	// Settle animation
	from, to    float64
	settleStart time.Duration
	settleLen   time.Duration
	scripted    bool
}

// NewDragController creates an idle controller with one pointer unit per cell.
func NewDragController(clock *Clock, params config.DragConfig, gate func(Axis, int) bool, commit func(Commit)) *DragController {
	return &DragController{
		params: params,
		clock:  clock,
		timer:  clock.NewTimer(),
		gate:   gate,
		commit: commit,
		cellW:  1,
		cellH:  1,
		state:  DragIdle,
	}
}

// SetBoard sets the board dimensions used to wrap the drag offset.
func (d *DragController) SetBoard(rows, cols int) {
	d.rows = rows
	d.cols = cols
}

// SetCellSize sets how many pointer units one cell spans on each axis.
func (d *DragController) SetCellSize(width, height float64) {
	if width > 0 {
		d.cellW = width
	}
	if height > 0 {
		d.cellH = height
	}
}

// State returns the gesture state.
func (d *DragController) State() DragState {
	return d.state
}

// Captured reports whether a line is captured (dragging or settling).
func (d *DragController) Captured() bool {
	return d.state == DragDragging || d.state == DragSettling
}

// Press starts a gesture on a cell. Ignored unless idle.
func (d *DragController) Press(row, col int) {
	if d.state != DragIdle {
		return
	}
	d.state = DragPressed
	d.pressRow = row
	d.pressCol = col
	d.offset = 0
	d.velocity = 0
}

// Move reports the pointer displacement since Press and its velocity, in
// pointer units. The first move past the threshold locks the gesture to the
// dominant axis.
func (d *DragController) Move(dx, dy, vx, vy float64) {
	switch d.state {
	case DragPressed:
		if math.Abs(dx) <= d.params.Threshold && math.Abs(dy) <= d.params.Threshold {
			return
		}
		axis, index := AxisRow, d.pressRow
		if math.Abs(dy) > math.Abs(dx) {
			axis, index = AxisColumn, d.pressCol
		}
		if !d.gate(axis, index) {
			d.state = DragRejected
			return
		}
		d.state = DragDragging
		d.axis = axis
		d.index = index
		fallthrough
	case DragDragging:
		along, v := dx, vx
		if d.axis == AxisColumn {
			along, v = dy, vy
		}
		d.offset = math.Mod(along, d.tile())
		d.velocity = v
	}
}

// Release ends the gesture. A captured line settles on the cell nearest to
// its predicted landing point; anything else returns to idle.
func (d *DragController) Release() {
	switch d.state {
	case DragPressed, DragRejected:
		d.state = DragIdle
	case DragDragging:
		cell := d.cellSize(d.axis)
		predicted := d.offset + d.velocity*d.params.Damping
		snap := math.Round(predicted/cell) * cell
		d.settle(d.offset, snap, d.params.Settle, false)
	}
}

// Nudge shifts a line by one cell in dir through the same gate and commit
// path as a drag.
func (d *DragController) Nudge(axis Axis, index, dir int) {
	if d.state != DragIdle || dir == 0 || !d.validLine(axis, index) || !d.gate(axis, index) {
		return
	}
	d.axis = axis
	d.index = index
	step := 1.0
	if dir < 0 {
		step = -1
	}
	d.settle(0, step*d.cellSize(axis), d.params.Settle, false)
}

// Play animates a scripted shift over the given duration, bypassing the gate.
// Any gesture in progress is abandoned.
func (d *DragController) Play(s Shift, over time.Duration) {
	d.Reset()
	d.axis = s.Axis
	d.index = s.Index
	d.settle(0, float64(s.Amount)*d.cellSize(s.Axis), over, true)
}

// Reset abandons any gesture or settle animation and returns every line to
// its origin. Nothing is committed.
func (d *DragController) Reset() {
	d.timer.Stop()
	d.state = DragIdle
	d.offset = 0
	d.velocity = 0
	d.scripted = false
}

// Excludes reports whether a cell belongs to the captured column, in which
// case its row must neither draw nor move it.
func (d *DragController) Excludes(row, col int) bool {
	return d.Captured() && d.axis == AxisColumn && d.index == col
}

// View returns the state for rendering.
func (d *DragController) View() DragView {
	v := DragView{State: d.state, Captured: d.Captured(), Axis: d.axis, Index: d.index}
	if v.Captured {
		v.Offset = d.currentOffset() / d.cellSize(d.axis)
	}
	return v
}

func (d *DragController) settle(from, to float64, over time.Duration, scripted bool) {
	d.state = DragSettling
	d.from = from
	d.to = to
	d.offset = from
	d.settleStart = d.clock.Now()
	d.settleLen = over
	d.scripted = scripted
	d.timer.Schedule(over, d.finish)
}

// finish converts the settled offset into a signed whole number of cells
// and commits it if non-zero. The sign is the direction of the gesture; the
// grid wraps the count itself.
func (d *DragController) finish() {
	count := int(math.Round(d.to / d.cellSize(d.axis)))

	c := Commit{
		Shift:    Shift{Axis: d.axis, Index: d.index, Amount: count},
		Scripted: d.scripted,
	}
	d.Reset()
	if count != 0 {
		d.commit(c)
	}
}

func (d *DragController) currentOffset() float64 {
	if d.state != DragSettling {
		return d.offset
	}
	if d.settleLen <= 0 {
		return d.to
	}
	t := float64(d.clock.Now()-d.settleStart) / float64(d.settleLen)
	t = math.Max(0, math.Min(1, t))
	return d.from + (d.to-d.from)*easeOutCubic(t)
}

func (d *DragController) cellSize(axis Axis) float64 {
	if axis == AxisColumn {
		return d.cellH
	}
	return d.cellW
}

// lineLength is the number of cells the captured line holds.
func (d *DragController) lineLength(axis Axis) int {
	if axis == AxisColumn {
		return max(d.rows, 1)
	}
	return max(d.cols, 1)
}

func (d *DragController) tile() float64 {
	return d.cellSize(d.axis) * float64(d.lineLength(d.axis))
}

func (d *DragController) validLine(axis Axis, index int) bool {
	if axis == AxisColumn {
		return index >= 0 && index < d.cols
	}
	return index >= 0 && index < d.rows
}

// easeOutCubic provides smooth deceleration for the settle animation.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
