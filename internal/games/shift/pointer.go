package shift

import (
	"time"

	"github.com/vovakirdan/shift-shift/internal/core"
)

// velocityWindow is how far back pointer samples count toward velocity.
const velocityWindow = 100 * time.Millisecond

type pointerSample struct {
	at   time.Duration
	x, y int
}

// pointerTracker follows one board gesture and estimates its velocity from
// recent samples stamped with engine time.
type pointerTracker struct {
	active     bool
	originX    int
	originY    int
	samples    []pointerSample
	velX, velY float64
}

func (p *pointerTracker) start(x, y int, at time.Duration) {
	p.active = true
	p.originX, p.originY = x, y
	p.samples = append(p.samples[:0], pointerSample{at: at, x: x, y: y})
	p.velX, p.velY = 0, 0
}

func (p *pointerTracker) add(x, y int, at time.Duration) {
	p.samples = append(p.samples, pointerSample{at: at, x: x, y: y})

	// Drop samples older than the window, keeping at least two
	cut := 0
	for cut < len(p.samples)-2 && at-p.samples[cut].at > velocityWindow {
		cut++
	}
	p.samples = p.samples[cut:]

	first := p.samples[0]
	if dt := (at - first.at).Seconds(); dt > 0 {
		p.velX = float64(x-first.x) / dt
		p.velY = float64(y-first.y) / dt
	}
}

func (p *pointerTracker) displacement() (dx, dy float64) {
	last := p.samples[len(p.samples)-1]
	return float64(last.x - p.originX), float64(last.y - p.originY)
}

func (p *pointerTracker) stop() {
	p.active = false
	p.samples = p.samples[:0]
}

// Pointer handles a mouse event in screen cells. Presses on the board start
// a drag; presses on the PEEK button hold the peek; presses on dialog
// buttons confirm or skip.
func (g *Game) Pointer(ev core.PointerEvent) {
	if g.engine == nil || g.layout.tooSmall {
		return
	}
	now := g.engine.Now()
	defer g.refresh()

	switch ev.Kind {
	case core.PointerPress:
		if g.pressOverlay(ev.X, ev.Y) {
			return
		}
		if g.layout.peek.Contains(ev.X, ev.Y) {
			g.peekButtonHeld = true
			g.updatePeek()
			return
		}
		row, col, ok := g.layout.cellAt(ev.X, ev.Y)
		if !ok {
			return
		}
		g.cursorRow, g.cursorCol = row, col
		g.pointer.start(ev.X, ev.Y, now)
		g.engine.Press(row, col)

	case core.PointerMotion:
		if !g.pointer.active {
			return
		}
		g.pointer.add(ev.X, ev.Y, now)
		dx, dy := g.pointer.displacement()
		g.engine.Move(dx, dy, g.pointer.velX, g.pointer.velY)

	case core.PointerRelease:
		if g.peekButtonHeld {
			g.peekButtonHeld = false
			g.updatePeek()
		}
		if !g.pointer.active {
			return
		}
		g.pointer.add(ev.X, ev.Y, now)
		dx, dy := g.pointer.displacement()
		g.engine.Move(dx, dy, g.pointer.velX, g.pointer.velY)
		g.engine.Release()
		g.pointer.stop()
	}
}

func (g *Game) pressOverlay(x, y int) bool {
	if g.snap.Overlay == nil {
		return false
	}
	box := g.layout.overlay(g.screenW, g.snap.Overlay, g.snap.Skippable)
	switch {
	case g.snap.Modal && box.confirm.Contains(x, y):
		g.engine.Confirm()
	case g.snap.Skippable && box.skip.Contains(x, y):
		g.engine.Skip()
	default:
		// Modal dialogs swallow clicks; the watch caption lets them through
		return g.snap.Modal && box.rect.Contains(x, y)
	}
	return true
}
