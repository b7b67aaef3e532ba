package puzzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shift-shift/internal/config"
)

type dragHarness struct {
	clock   *Clock
	drag    *DragController
	commits []Commit
	allow   func(Axis, int) bool
}

// newDragHarness builds a controller on a 4x4 board with 4x2 unit cells.
func newDragHarness(t *testing.T) *dragHarness {
	t.Helper()
	h := &dragHarness{clock: NewClock(), allow: func(Axis, int) bool { return true }}
	h.drag = NewDragController(h.clock, config.DefaultShiftConfig().Drag,
		func(a Axis, i int) bool { return h.allow(a, i) },
		func(c Commit) { h.commits = append(h.commits, c) })
	h.drag.SetBoard(4, 4)
	h.drag.SetCellSize(4, 2)
	return h
}

func (h *dragHarness) settle() {
	h.clock.Advance(time.Second)
}

func TestDragBelowThresholdIsInert(t *testing.T) {
	h := newDragHarness(t)
	h.drag.Press(1, 2)
	h.drag.Move(0.4, -0.3, 0, 0)
	assert.Equal(t, DragPressed, h.drag.State())
	assert.False(t, h.drag.Captured())

	h.drag.Release()
	h.settle()
	assert.Equal(t, DragIdle, h.drag.State())
	assert.Empty(t, h.commits)
}

func TestDragCapturesDominantAxis(t *testing.T) {
	h := newDragHarness(t)
	h.drag.Press(1, 2)
	h.drag.Move(3, 1, 0, 0)
	require.True(t, h.drag.Captured())
	v := h.drag.View()
	assert.Equal(t, AxisRow, v.Axis)
	assert.Equal(t, 1, v.Index)
	assert.InDelta(t, 0.75, v.Offset, 1e-9)

	h = newDragHarness(t)
	h.drag.Press(1, 2)
	h.drag.Move(1, -3, 0, 0)
	v = h.drag.View()
	assert.Equal(t, AxisColumn, v.Axis)
	assert.Equal(t, 2, v.Index)
	assert.InDelta(t, -1.5, v.Offset, 1e-9)
}

func TestDragDirectionLock(t *testing.T) {
	h := newDragHarness(t)
	h.drag.Press(0, 0)
	h.drag.Move(2, 0, 0, 0)
	h.drag.Move(0, 9, 0, 0)

	v := h.drag.View()
	assert.Equal(t, AxisRow, v.Axis)
	assert.InDelta(t, 0, v.Offset, 1e-9)

	h.drag.Release()
	h.settle()
	assert.Empty(t, h.commits, "vertical motion must not move a captured row")
}

func TestDragReleaseSnapsAndCommits(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		vx, vy float64
		want   *Shift
	}{
		{"row one right", 5, 0, 0, 0, &Shift{AxisRow, 1, 1}},
		{"row one left", -5, 0, 0, 0, &Shift{AxisRow, 1, -1}},
		{"below half a cell", 1.5, 0, 0, 0, nil},
		{"velocity carries further", 3, 0, 30, 0, &Shift{AxisRow, 1, 2}},
		{"velocity pulls back", 5, 0, -20, 0, nil},
		{"offset wraps past a full turn", 17, 0, 0, 0, nil},
		{"three right stays right", 12, 0, 0, 0, &Shift{AxisRow, 1, 3}},
		{"half turn keeps direction", -8, 0, 0, 0, &Shift{AxisRow, 1, -2}},
		{"velocity to a full turn is a move", 12, 0, 20, 0, &Shift{AxisRow, 1, 4}},
		{"column down three", 0, 6, 0, 0, &Shift{AxisColumn, 2, 3}},
		{"column down", 0, 2.5, 0, 0, &Shift{AxisColumn, 2, 1}},
		{"column up two", 0, -3, 0, 0, &Shift{AxisColumn, 2, -2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newDragHarness(t)
			h.drag.Press(1, 2)
			h.drag.Move(tc.dx, tc.dy, tc.vx, tc.vy)
			h.drag.Release()
			assert.Equal(t, DragSettling, h.drag.State())

			h.settle()
			assert.Equal(t, DragIdle, h.drag.State())
			assert.False(t, h.drag.Captured())
			if tc.want == nil {
				assert.Empty(t, h.commits)
				return
			}
			require.Len(t, h.commits, 1)
			assert.Equal(t, *tc.want, h.commits[0].Shift)
			assert.False(t, h.commits[0].Scripted)
		})
	}
}

func TestDragSettleAnimates(t *testing.T) {
	h := newDragHarness(t)
	h.drag.Press(0, 0)
	h.drag.Move(3, 0, 0, 0)
	h.drag.Release()

	start := h.drag.View().Offset
	h.clock.Advance(90 * time.Millisecond)
	mid := h.drag.View().Offset
	assert.Greater(t, mid, start)
	assert.Less(t, mid, 1.0)
	assert.Empty(t, h.commits)

	h.clock.Advance(90 * time.Millisecond)
	require.Len(t, h.commits, 1)
}

func TestDragOnlyOneCapture(t *testing.T) {
	h := newDragHarness(t)
	h.drag.Press(0, 0)
	h.drag.Move(5, 0, 0, 0)

	h.drag.Press(2, 3)
	h.drag.Nudge(AxisColumn, 3, 1)
	v := h.drag.View()
	assert.Equal(t, AxisRow, v.Axis)
	assert.Equal(t, 0, v.Index)

	h.drag.Release()
	h.settle()
	require.Len(t, h.commits, 1)
	assert.Equal(t, Shift{AxisRow, 0, 1}, h.commits[0].Shift)
}

func TestDragGateRejectsCapture(t *testing.T) {
	h := newDragHarness(t)
	h.allow = func(a Axis, i int) bool { return a == AxisColumn && i == 3 }

	h.drag.Press(0, 0)
	h.drag.Move(6, 0, 0, 0)
	assert.Equal(t, DragRejected, h.drag.State())

	// Once rejected the gesture stays inert, even if it turns
	h.drag.Move(0, 6, 0, 0)
	assert.Equal(t, DragRejected, h.drag.State())
	h.drag.Release()
	h.settle()
	assert.Empty(t, h.commits)

	h.drag.Nudge(AxisRow, 0, 1)
	h.settle()
	assert.Empty(t, h.commits)

	h.drag.Press(0, 3)
	h.drag.Move(0, -2, 0, 0)
	assert.True(t, h.drag.Captured())
}

func TestDragExcludesCapturedColumn(t *testing.T) {
	h := newDragHarness(t)
	assert.False(t, h.drag.Excludes(0, 2))

	h.drag.Press(0, 2)
	h.drag.Move(0, 3, 0, 0)
	for row := 0; row < 4; row++ {
		assert.True(t, h.drag.Excludes(row, 2))
		assert.False(t, h.drag.Excludes(row, 1))
	}

	h.drag.Reset()
	h.drag.Press(1, 2)
	h.drag.Move(3, 0, 0, 0)
	assert.False(t, h.drag.Excludes(1, 2), "a captured row excludes nothing")
}

func TestDragNudge(t *testing.T) {
	h := newDragHarness(t)
	h.drag.Nudge(AxisColumn, 1, -1)
	assert.True(t, h.drag.Captured())
	h.settle()
	require.Len(t, h.commits, 1)
	assert.Equal(t, Shift{AxisColumn, 1, -1}, h.commits[0].Shift)

	h.drag.Nudge(AxisRow, 7, 1)
	h.drag.Nudge(AxisRow, 0, 0)
	h.settle()
	assert.Len(t, h.commits, 1)
}

func TestDragPlayIsScriptedAndBypassesGate(t *testing.T) {
	h := newDragHarness(t)
	h.allow = func(Axis, int) bool { return false }

	h.drag.Play(Shift{AxisRow, 1, 1}, 1500*time.Millisecond)
	h.clock.Advance(time.Second)
	assert.Empty(t, h.commits)
	h.clock.Advance(500 * time.Millisecond)

	require.Len(t, h.commits, 1)
	assert.Equal(t, Commit{Shift: Shift{AxisRow, 1, 1}, Scripted: true}, h.commits[0])
}

func TestDragResetCancelsSettle(t *testing.T) {
	h := newDragHarness(t)
	h.drag.Press(0, 0)
	h.drag.Move(5, 0, 0, 0)
	h.drag.Release()
	h.drag.Reset()
	h.settle()

	assert.Empty(t, h.commits)
	assert.Equal(t, DragIdle, h.drag.State())
	assert.Zero(t, h.drag.View().Offset)
}
