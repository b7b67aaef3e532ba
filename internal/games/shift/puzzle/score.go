package puzzle

import "github.com/vovakirdan/shift-shift/internal/config"

// LevelResult is the breakdown of one completed level's score.
type LevelResult struct {
	Level       int
	Moves       int
	Seconds     int
	MinMoves    int
	ExcessMoves int
	MovePenalty int
	TimePenalty int
	RawScore    int // Clamped at zero before the level multiplier
	LevelScore  int
}

// ScoreLevel computes the score for a level solved in the given moves and
// seconds against a par of minMoves.
func ScoreLevel(p config.ScoringConfig, level, minMoves, moves, seconds int) LevelResult {
	r := LevelResult{
		Level:       level,
		Moves:       moves,
		Seconds:     seconds,
		MinMoves:    minMoves,
		ExcessMoves: max(0, moves-minMoves),
	}
	r.MovePenalty = r.ExcessMoves * p.MovePenalty
	r.TimePenalty = seconds * p.SecondPenalty
	r.RawScore = max(0, p.Base-r.MovePenalty-r.TimePenalty)
	r.LevelScore = r.RawScore * level
	return r
}

// MinMoves returns the par for a level. The tutorial board uses a fixed par.
func MinMoves(p config.ScoringConfig, lc LevelConfig, tutorial bool) int {
	if tutorial {
		return p.TutorialMinMoves
	}
	return lc.ScrambleSteps
}
