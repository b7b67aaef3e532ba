package shift

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/shift-shift/internal/core"
	"github.com/vovakirdan/shift-shift/internal/games/shift/puzzle"
)

const helpText = "drag rows/cols  arrows: cursor  shift+arrows: shift  space: peek  r: reset  x: end shift  q: quit"

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderStatus(dst)
	g.renderHeaders(dst)
	g.renderBoard(dst)
	g.renderPeekButton(dst)
	dst.DrawTextCentered(g.screenH-1, helpText, core.ColorGray)

	if g.snap.Overlay != nil {
		g.renderOverlay(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the title, player, level, moves, time and scores.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.snap
	parts := []string{"SHIFT/SHIFT"}
	if g.opts.Player != "" {
		parts = append(parts, "MGR "+g.opts.Player)
	}
	if s.Tutorial != puzzle.StepNone {
		parts = append(parts, "TRAINING")
	} else {
		parts = append(parts, fmt.Sprintf("Level %d", s.Level))
	}
	parts = append(parts,
		fmt.Sprintf("Moves %d/%d", s.Moves, s.MinMoves),
		"Time "+clock(s.Seconds),
		fmt.Sprintf("Score %d", s.SessionScore),
	)
	if g.opts.PersonalBest > 0 {
		parts = append(parts, fmt.Sprintf("Best %d", max(g.opts.PersonalBest, s.SessionScore)))
	}
	dst.DrawTextCentered(0, strings.Join(parts, "   "), core.ColorWhite)
}

// renderStatus draws the one-line phase message under the HUD.
func (g *Game) renderStatus(dst *core.Screen) {
	s := g.snap
	var text string
	color := core.ColorDefault

	switch {
	case s.Tutorial != puzzle.StepNone:
		return
	case s.Phase == puzzle.PhaseMemorize:
		text = fmt.Sprintf("Memorize the schedule  %s", seconds(s.PhaseRemaining))
		color = core.ColorBrightGreen
	case s.Phase == puzzle.PhasePlaying && s.Banner:
		text = "OH SHIFT!"
		color = core.ColorBrightRed
	case s.Phase == puzzle.PhasePlaying && s.Peeking:
		text = "Peeking at the goal schedule"
		color = core.ColorYellow
	case s.Phase == puzzle.PhasePlaying:
		text = "Restore the schedule"
	case s.Phase == puzzle.PhaseLevelComplete:
		r := s.LastResult
		text = fmt.Sprintf("Schedule restored! +%d  (%d moves, %ds)  Next level in %s",
			r.LevelScore, r.Moves, r.Seconds, seconds(s.PhaseRemaining))
		color = core.ColorBrightGreen
	case s.Phase == puzzle.PhaseShiftOver:
		text = fmt.Sprintf("SHIFT OVER  Final score %d  Max level %d  Enter: back to lobby", s.SessionScore, s.Level)
		color = core.ColorBrightYellow
	}
	dst.DrawTextCentered(1, text, color)
}

// renderHeaders draws weekday names over the columns and initials beside
// the rows.
func (g *Game) renderHeaders(dst *core.Screen) {
	l := g.layout
	for c := 0; c < g.snap.Config.Cols; c++ {
		name := puzzle.Weekday(c)
		if len(name) > l.cellW-1 {
			name = name[:max(l.cellW-1, 1)]
		}
		x := l.board.X + c*l.cellW + (l.cellW-1-len(name))/2
		dst.DrawTextColor(x, l.headerY, name, core.ColorGray)
	}
	for r := 0; r < g.snap.Config.Rows; r++ {
		y := l.board.Y + r*l.cellH + (l.cellH-1)/2
		dst.DrawTextColor(l.board.X-labelWidth, y, g.labels.row(r), core.ColorGray)
	}
}

// renderBoard draws the board character by character. A captured line is
// drawn with its live offset by looking cells up modulo the line length,
// and the captured column owns its cells in every row.
func (g *Game) renderBoard(dst *core.Screen) {
	s := g.snap
	if s.Grid == nil {
		return
	}
	l := g.layout

	grid := s.Grid
	if s.Peeking {
		grid = s.Target
	}
	base := g.boardColor()
	drag := s.Drag
	curRow, curCol := g.Cursor()
	showCursor := s.Phase == puzzle.PhasePlaying && !drag.Captured && !s.Peeking

	for py := 0; py < l.board.H; py++ {
		for px := 0; px < l.board.W; px++ {
			row, col := py/l.cellH, px/l.cellW
			sx, sy := px, py
			live := false
			if drag.Captured && !s.Peeking {
				switch {
				case drag.Axis == puzzle.AxisColumn && g.engine.Excludes(row, col):
					sy = core.Mod(py-int(math.Round(drag.Offset*float64(l.cellH))), l.board.H)
					live = true
				case drag.Axis == puzzle.AxisRow && drag.Index == row:
					sx = core.Mod(px-int(math.Round(drag.Offset*float64(l.cellW))), l.board.W)
					live = true
				}
			}

			occupied := grid.At(sy/l.cellH, sx/l.cellW)
			r := cellGlyph(occupied, sx%l.cellW, sy%l.cellH, l.cellW, l.cellH)
			color := base
			switch {
			case live:
				color = core.ColorBrightCyan
			case showCursor && row == curRow && col == curCol:
				color = core.ColorBrightYellow
				if !occupied && r == '·' {
					r = '+'
				}
			case !occupied:
				color = core.ColorGray
			}
			dst.SetColor(l.board.X+px, l.board.Y+py, r, color)
		}
	}
}

func (g *Game) boardColor() core.Color {
	switch {
	case g.snap.Peeking:
		return core.ColorYellow
	case g.snap.Phase == puzzle.PhaseMemorize, g.snap.Phase == puzzle.PhaseLevelComplete:
		return core.ColorBrightGreen
	case g.snap.Phase == puzzle.PhaseShiftOver:
		return core.ColorDim
	default:
		return core.ColorCyan
	}
}

// cellGlyph returns the rune at (ix, iy) inside a cell. The last column of
// every cell is a gap so neighbours stay apart.
func cellGlyph(occupied bool, ix, iy, cellW, cellH int) rune {
	if ix == cellW-1 && cellW > 1 {
		return ' '
	}
	if occupied {
		return '█'
	}
	if ix == max(cellW-2, 0)/2 && iy == (cellH-1)/2 {
		return '·'
	}
	return ' '
}

func (g *Game) renderPeekButton(dst *core.Screen) {
	r := g.layout.peek
	color := core.ColorGray
	if g.snap.Phase == puzzle.PhasePlaying {
		color = core.ColorWhite
	}
	if g.snap.Peeking {
		color = core.ColorYellow
	}
	dst.DrawBox(r, color)
	dst.DrawTextColor(r.X+(r.W-4)/2, r.Y+1, "PEEK", color)
}

// renderOverlay draws the tutorial dialog over the board.
func (g *Game) renderOverlay(dst *core.Screen) {
	o := g.snap.Overlay
	box := g.layout.overlay(g.screenW, o, g.snap.Skippable)
	r := box.rect

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorBrightYellow)
	dst.DrawTextColor(r.X+(r.W-len([]rune(o.Title)))/2, r.Y+1, o.Title, core.ColorBrightYellow)
	for i, line := range box.lines {
		dst.DrawTextColor(r.X+2, r.Y+3+i, line, core.ColorWhite)
	}
	if box.confirm.W > 0 {
		dst.DrawTextColor(box.confirm.X, box.confirm.Y, buttonLabel(o.Action), core.ColorBrightGreen)
	}
	if box.skip.W > 0 {
		dst.DrawTextColor(box.skip.X, box.skip.Y, skipLabel, core.ColorGray)
	}
}

// clock formats whole seconds as m:ss.
func clock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// seconds formats a countdown with one decimal.
func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
