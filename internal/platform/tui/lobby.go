package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shift-shift/internal/storage"
)

const initialsLen = 3

// LobbyItem is one entry of the lobby menu.
type LobbyItem int

const (
	LobbyStart LobbyItem = iota
	LobbyTutorial
	LobbyScores
	LobbyQuit
)

var lobbyItems = []struct {
	item  LobbyItem
	title string
}{
	{LobbyStart, "Start shift"},
	{LobbyTutorial, "Redo tutorial"},
	{LobbyScores, "High scores"},
	{LobbyQuit, "Quit"},
}

// LobbyChoice is what the lobby hands to the game.
type LobbyChoice struct {
	Player   string
	Tutorial bool // Replay the tutorial even if already finished
}

// LobbyModel asks for the manager's initials and what to do next.
type LobbyModel struct {
	input     textinput.Model
	cursor    int
	width     int
	height    int
	store     *storage.Store
	keyMapper *KeyMapper
	errMsg    string

	selected *LobbyItem
}

// NewLobbyModel creates a lobby. Initials from a previous session are
// pre-filled.
func NewLobbyModel(store *storage.Store, width, height int, player string) LobbyModel {
	ti := textinput.New()
	ti.Placeholder = "ABC"
	ti.Prompt = "Initials: "
	ti.CharLimit = initialsLen
	ti.Width = initialsLen + 1
	ti.SetValue(player)
	ti.Focus()

	return LobbyModel{
		input:     ti,
		width:     width,
		height:    height,
		store:     store,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the cursor blinking.
func (m LobbyModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the lobby.
func (m LobbyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m LobbyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m.choose(LobbyQuit)
	case MenuActionUp:
		m.cursor = (m.cursor + len(lobbyItems) - 1) % len(lobbyItems)
		return m, nil
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(lobbyItems)
		return m, nil
	case MenuActionSelect:
		return m.choose(lobbyItems[m.cursor].item)
	case MenuActionBack:
		m.input.SetValue("")
		m.errMsg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.input.SetValue(normalizeInitials(m.input.Value()))
	m.errMsg = ""
	return m, cmd
}

func (m LobbyModel) choose(item LobbyItem) (tea.Model, tea.Cmd) {
	needsPlayer := item == LobbyStart || item == LobbyTutorial
	if needsPlayer && !ValidInitials(m.input.Value()) {
		m.errMsg = "Enter three letters to clock in"
		return m, nil
	}
	m.selected = &item
	return m, nil
}

// normalizeInitials keeps letters only, upper-cased.
func normalizeInitials(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > initialsLen {
		out = out[:initialsLen]
	}
	return out
}

// ValidInitials reports whether s is exactly three capital letters.
func ValidInitials(s string) bool {
	return len(s) == initialsLen && normalizeInitials(s) == s
}

// View renders the lobby.
func (m LobbyModel) View() string {
	th := menuTheme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(th.Title.Render("S H I F T / S H I F T"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(th.Subtitle.Render("Someone keeps moving the schedule. Put it back."), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n")
	if info := m.playerInfo(); info != "" {
		b.WriteString(centerText(th.Info.Render(info), m.width))
	}
	b.WriteString("\n\n")

	for i, it := range lobbyItems {
		line := th.ItemNormal.Render("  " + it.title)
		if i == m.cursor {
			line = th.ItemActive.Render("> " + it.title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(centerText(th.Error.Render(m.errMsg), m.width))
	}
	b.WriteString("\n")
	b.WriteString(centerText(th.Help.Render("Type initials  |  Up/Down: Navigate  |  Enter: Select  |  Ctrl+C: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// playerInfo describes the stored progress of the typed initials.
func (m LobbyModel) playerInfo() string {
	name := m.input.Value()
	if m.store == nil || !ValidInitials(name) {
		return ""
	}
	p, err := m.store.Player(name)
	if err != nil || (!p.HasPlayed && p.MaxLevel == 0) {
		return "New hire: training comes first"
	}
	best, err := m.store.PersonalBest(name)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Welcome back  |  Best %d  |  Max level %d", best, p.MaxLevel)
}

// Selected returns the chosen item, or nil while the lobby is open.
func (m LobbyModel) Selected() *LobbyItem {
	return m.selected
}

// Choice returns the player and mode for a start selection.
func (m LobbyModel) Choice() LobbyChoice {
	return LobbyChoice{
		Player:   m.input.Value(),
		Tutorial: m.selected != nil && *m.selected == LobbyTutorial,
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
