package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shift-shift/internal/config"
	"github.com/vovakirdan/shift-shift/internal/core"
	"github.com/vovakirdan/shift-shift/internal/storage"
)

type screenMode int

const (
	modeLobby screenMode = iota
	modeGame
	modeScores
)

// AppModel manages the full flow: lobby -> shift -> lobby, with the
// scoreboard reachable from the lobby. Local play and SSH sessions both
// run it.
type AppModel struct {
	shiftCfg config.ShiftConfig
	config   core.RuntimeConfig
	store    *storage.Store
	logger   *log.Logger
	player   string

	mode       screenMode
	lobby      LobbyModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewAppModel creates the top-level model. player pre-fills the initials
// field and may be empty.
func NewAppModel(shiftCfg config.ShiftConfig, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) AppModel {
	player = normalizeInitials(player)
	return AppModel{
		shiftCfg: shiftCfg,
		config:   cfg,
		store:    store,
		logger:   logger,
		player:   player,
		lobby:    NewLobbyModel(store, cfg.ScreenW, cfg.ScreenH, player),
	}
}

// Init initializes the lobby.
func (m AppModel) Init() tea.Cmd {
	return m.lobby.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateLobby(msg)
	}
}

func (m AppModel) updateLobby(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLobby, cmd := m.lobby.Update(msg)
	if lobby, ok := newLobby.(LobbyModel); ok {
		m.lobby = lobby
	}

	selected := m.lobby.Selected()
	if selected == nil {
		return m, cmd
	}

	switch *selected {
	case LobbyQuit:
		m.quitting = true
		return m, tea.Quit

	case LobbyScores:
		m.player = m.lobby.Choice().Player
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.mode = modeScores
		return m, m.scoreboard.Init()
	}

	choice := m.lobby.Choice()
	m.player = choice.Player
	game, err := NewShiftGame(m.shiftCfg, m.store, m.logger, choice)
	if err != nil {
		m.logger.Error("could not start shift", "error", err)
		m.quitting = true
		return m, tea.Quit
	}

	gameModel := NewGameModel(game, m.config)
	m.gameModel = &gameModel
	m.mode = modeGame
	return m, m.gameModel.Init()
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToLobby() {
		return m.toLobby()
	}

	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.toLobby()
	}

	return m, cmd
}

func (m AppModel) toLobby() (tea.Model, tea.Cmd) {
	m.mode = modeLobby
	m.gameModel = nil
	m.lobby = NewLobbyModel(m.store, m.config.ScreenW, m.config.ScreenH, m.player)
	return m, m.lobby.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.gameModel.View()
	case modeScores:
		return m.scoreboard.View()
	default:
		return m.lobby.View()
	}
}

// ProgramOptions are the Bubble Tea options every shift program needs:
// the alternate screen and mouse drag reporting.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// Run starts the app in the local terminal.
func Run(shiftCfg config.ShiftConfig, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(NewAppModel(shiftCfg, store, logger, cfg, player), ProgramOptions()...)
	_, err := p.Run()
	return err
}
