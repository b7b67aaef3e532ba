package tui

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/shift-shift/internal/config"
	"github.com/vovakirdan/shift-shift/internal/games/shift"
	"github.com/vovakirdan/shift-shift/internal/games/shift/puzzle"
	"github.com/vovakirdan/shift-shift/internal/storage"
)

// Recorder persists one player's session results. A nil store turns every
// call into a no-op; failures are logged and never interrupt play.
type Recorder struct {
	store     *storage.Store
	logger    *log.Logger
	player    string
	sessionID string
}

// NewRecorder creates a recorder with a fresh session id.
func NewRecorder(store *storage.Store, logger *log.Logger, player string) *Recorder {
	return &Recorder{
		store:     store,
		logger:    logger,
		player:    player,
		sessionID: uuid.NewString(),
	}
}

// SessionID identifies the session in the scores table.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

func (r *Recorder) levelComplete(res puzzle.LevelResult) {
	r.logger.Debug("level complete",
		"player", r.player,
		"level", res.Level,
		"moves", res.Moves,
		"min_moves", res.MinMoves,
		"seconds", res.Seconds,
		"score", res.LevelScore,
	)
	if r.store == nil {
		return
	}
	if err := r.store.RecordLevel(r.player, res.Level+1); err != nil {
		r.logger.Warn("could not record level", "player", r.player, "error", err)
	}
}

func (r *Recorder) sessionEnd(score, maxLevel int) {
	r.logger.Info("shift over",
		"player", r.player,
		"session", r.sessionID,
		"score", score,
		"max_level", maxLevel,
	)
	if r.store == nil {
		return
	}
	if err := r.store.RecordLevel(r.player, maxLevel); err != nil {
		r.logger.Warn("could not record level", "player", r.player, "error", err)
	}
	if score <= 0 {
		return
	}
	if _, err := r.store.SaveScore(r.player, score, maxLevel, r.sessionID); err != nil {
		r.logger.Warn("could not save score", "player", r.player, "error", err)
	}
}

func (r *Recorder) tutorialComplete() {
	r.logger.Debug("tutorial complete", "player", r.player)
	if r.store == nil {
		return
	}
	if err := r.store.MarkPlayed(r.player); err != nil {
		r.logger.Warn("could not mark player", "player", r.player, "error", err)
	}
}

// NewShiftGame builds a game for the lobby's choice with its results wired
// into the store.
func NewShiftGame(cfg config.ShiftConfig, store *storage.Store, logger *log.Logger, choice LobbyChoice) (*shift.Game, error) {
	rec := NewRecorder(store, logger, choice.Player)

	var progress storage.Player
	var best int
	if store != nil {
		var err error
		if progress, err = store.Player(choice.Player); err != nil {
			logger.Warn("could not load player", "player", choice.Player, "error", err)
		}
		if best, err = store.PersonalBest(choice.Player); err != nil {
			logger.Warn("could not load personal best", "player", choice.Player, "error", err)
		}
	}

	return shift.New(cfg, shift.Options{
		Player:             choice.Player,
		PersonalBest:       best,
		TutorialDone:       progress.HasPlayed,
		ForceTutorial:      choice.Tutorial,
		OnLevelComplete:    rec.levelComplete,
		OnSessionEnd:       rec.sessionEnd,
		OnTutorialComplete: rec.tutorialComplete,
	})
}
