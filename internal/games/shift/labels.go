package shift

import (
	"math/rand"

	"github.com/vovakirdan/shift-shift/internal/games/shift/puzzle"
)

// labeler names each board row after a random employee. It has its own
// random source so labels never disturb the puzzle's sequence.
type labeler struct {
	rng      *rand.Rand
	key      labelKey
	initials []string
}

type labelKey struct {
	level    int
	tutorial bool
	rows     int
	target   string
}

func newLabeler(seed int64) *labeler {
	return &labeler{rng: rand.New(rand.NewSource(seed ^ 0x5f3759df))}
}

// update draws new initials whenever a new board appears.
func (l *labeler) update(s puzzle.Snapshot) {
	if s.Target == nil {
		return
	}
	key := labelKey{
		level:    s.Level,
		tutorial: s.Tutorial != puzzle.StepNone,
		rows:     s.Config.Rows,
		target:   s.Target.String(),
	}
	if key == l.key {
		return
	}
	l.key = key
	l.initials = l.initials[:0]
	for i := 0; i < s.Config.Rows; i++ {
		l.initials = append(l.initials, randomInitials(l.rng))
	}
}

func (l *labeler) row(i int) string {
	if i < 0 || i >= len(l.initials) {
		return "  "
	}
	return l.initials[i]
}

func randomInitials(rng *rand.Rand) string {
	return string([]byte{byte('A' + rng.Intn(26)), byte('A' + rng.Intn(26))})
}
