package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shift-shift/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim left", runeKey("h"), core.ActionLeft, false},
		{"shift+right", tea.KeyMsg{Type: tea.KeyShiftRight}, core.ActionShiftRight, false},
		{"shift+up", tea.KeyMsg{Type: tea.KeyShiftUp}, core.ActionShiftUp, false},
		{"capital J", runeKey("J"), core.ActionShiftDown, false},
		{"space peeks", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPeek, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"tab skips", tea.KeyMsg{Type: tea.KeyTab}, core.ActionSkip, false},
		{"r resets", runeKey("r"), core.ActionRestart, false},
		{"x ends", runeKey("x"), core.ActionEnd, false},
		{"esc ends", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionEnd, false},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("L"), &frame) {
		t.Error("L should not quit")
	}
	if !frame.Has(core.ActionShiftRight) {
		t.Error("frame should hold ActionShiftRight")
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		kind core.PointerKind
		ok   bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerPress, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
		{"motion", tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.PointerMotion, true},
		{"release", tea.MouseMsg{X: 6, Y: 4, Action: tea.MouseActionRelease}, core.PointerRelease, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tc.msg)
			if ok != tc.ok {
				t.Fatalf("MapMouse() ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if ev.Kind != tc.kind || ev.X != tc.msg.X || ev.Y != tc.msg.Y {
				t.Errorf("MapMouse() = %+v, want kind %v at (%d, %d)", ev, tc.kind, tc.msg.X, tc.msg.Y)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey("q"), MenuActionNone}, // Letters belong to the initials field
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tc.msg.String(), got, tc.want)
		}
	}
}
