package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shift-shift/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true

	// Cursor
	case "up", "k":
		return core.ActionUp, false
	case "down", "j":
		return core.ActionDown, false
	case "left", "h":
		return core.ActionLeft, false
	case "right", "l":
		return core.ActionRight, false

	// Shift the cursor's row or column
	case "shift+up", "K":
		return core.ActionShiftUp, false
	case "shift+down", "J":
		return core.ActionShiftDown, false
	case "shift+left", "H":
		return core.ActionShiftLeft, false
	case "shift+right", "L":
		return core.ActionShiftRight, false

	case " ":
		return core.ActionPeek, false
	case "enter":
		return core.ActionConfirm, false
	case "tab":
		return core.ActionSkip, false
	case "r":
		return core.ActionRestart, false
	case "x", "esc":
		return core.ActionEnd, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event. Only the left
// button drives the board; wheel and other buttons are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = core.PointerPress
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMotion
	case tea.MouseActionRelease:
		ev.Kind = core.PointerRelease
	default:
		return ev, false
	}
	return ev, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Letters are left
// to the initials field, so only ctrl+c quits from menus.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c":
		return MenuActionQuit
	case "up", "shift+tab":
		return MenuActionUp
	case "down", "tab":
		return MenuActionDown
	case "enter":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
