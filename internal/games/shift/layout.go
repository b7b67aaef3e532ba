package shift

import (
	"strings"

	"github.com/vovakirdan/shift-shift/internal/core"
	"github.com/vovakirdan/shift-shift/internal/games/shift/puzzle"
)

const (
	hudHeight   = 4 // HUD, status, gap, weekday header
	labelWidth  = 4 // Row initials plus padding
	peekHeight  = 3
	peekWidth   = 10
	footer      = 2
	overlayMinW = 36
)

// cellSizes are tried largest first; the first that fits the screen wins.
var cellSizes = []struct{ w, h int }{
	{8, 4},
	{6, 3},
	{4, 2},
	{3, 1},
}

// layout positions every element for one screen size and board.
type layout struct {
	tooSmall     bool
	cellW, cellH int
	board        core.Rect
	headerY      int
	peek         core.Rect
}

func computeLayout(screenW, screenH, rows, cols int) layout {
	for _, size := range cellSizes {
		boardW, boardH := cols*size.w, rows*size.h
		needW := labelWidth + boardW + 2
		needH := hudHeight + boardH + 1 + peekHeight + footer
		if needW > screenW || needH > screenH {
			continue
		}

		x := (screenW-boardW)/2 + labelWidth/2
		board := core.NewRect(x, hudHeight, boardW, boardH)
		return layout{
			cellW:   size.w,
			cellH:   size.h,
			board:   board,
			headerY: hudHeight - 1,
			peek:    core.NewRect(x+(boardW-peekWidth)/2, board.Bottom()+1, peekWidth, peekHeight),
		}
	}
	return layout{tooSmall: true, cellW: 1, cellH: 1}
}

// cellAt maps a screen position to a board cell.
func (l layout) cellAt(x, y int) (row, col int, ok bool) {
	if l.tooSmall || !l.board.Contains(x, y) {
		return 0, 0, false
	}
	return (y - l.board.Y) / l.cellH, (x - l.board.X) / l.cellW, true
}

// overlayBox positions a tutorial dialog and its buttons.
type overlayBox struct {
	rect    core.Rect
	lines   []string
	confirm core.Rect // Zero when the step does not wait
	skip    core.Rect // Zero when the step cannot be skipped
}

func (l layout) overlay(screenW int, o *puzzle.Overlay, skippable bool) overlayBox {
	w := core.Clamp(max(overlayMinW, l.board.W+8), overlayMinW, max(screenW-2, overlayMinW))
	lines := wrap(o.Text, w-4)

	h := 4 + len(lines) // border, title, gap, text, border
	if o.Action != "" || skippable {
		h += 2
	}
	y := max(0, l.board.Y+(l.board.H-h)/2)
	x := (screenW - w) / 2
	box := overlayBox{rect: core.NewRect(x, y, w, h), lines: lines}

	buttonY := y + h - 2
	if o.Action != "" {
		label := buttonLabel(o.Action)
		box.confirm = core.NewRect(x+w-2-len(label), buttonY, len(label), 1)
	}
	if skippable {
		box.skip = core.NewRect(x+2, buttonY, len(skipLabel), 1)
	}
	return box
}

const skipLabel = "[ SKIP ]"

func buttonLabel(action string) string {
	return "[ " + strings.ToUpper(action) + " ]"
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
