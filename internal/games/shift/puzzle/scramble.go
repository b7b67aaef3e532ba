package puzzle

import "math/rand"

// Scramble applies steps random unit shifts to a copy of target and returns
// the scrambled grid with the shifts in the order applied. Replaying their
// inverses in reverse order restores the target, so every scramble is
// solvable in at most steps moves.
//
// Random shifts may cancel each other; in rare cases the result equals the
// target. See ScrambleAvoidingIdentity.
func Scramble(target *Grid, steps int, rng *rand.Rand) (*Grid, []Shift) {
	g := target.Clone()
	shifts := make([]Shift, 0, steps)
	for i := 0; i < steps; i++ {
		s := randomUnitShift(g, rng)
		g.Apply(s)
		shifts = append(shifts, s)
	}
	return g, shifts
}

// ScrambleAvoidingIdentity re-rolls a scramble that landed back on the
// target. Boards where every shift is the identity (all cells equal) are
// returned as scrambled once; nothing can move them.
func ScrambleAvoidingIdentity(target *Grid, steps int, rng *rand.Rand) (*Grid, []Shift) {
	const attempts = 8
	g, shifts := Scramble(target, steps, rng)
	for i := 1; i < attempts && steps > 0 && g.Equal(target); i++ {
		g, shifts = Scramble(target, steps, rng)
	}
	return g, shifts
}

func randomUnitShift(g *Grid, rng *rand.Rand) Shift {
	axis := AxisRow
	if rng.Intn(2) == 1 {
		axis = AxisColumn
	}
	amount := 1
	if rng.Intn(2) == 1 {
		amount = -1
	}
	return Shift{Axis: axis, Index: rng.Intn(g.Lines(axis)), Amount: amount}
}

// Unscramble returns the moves that undo a scramble.
func Unscramble(shifts []Shift) []Shift {
	out := make([]Shift, len(shifts))
	for i, s := range shifts {
		out[len(shifts)-1-i] = s.Inverse()
	}
	return out
}
