package cubesolver

import (
	"math/rand"
)

// ScrambleGen produces random scramble sequences. It is deterministic for
// a given seed, which keeps benchmark runs reproducible.
type ScrambleGen struct {
	rng *rand.Rand
}

// NewScrambleGen returns a generator seeded with the given value.
func NewScrambleGen(seed int64) *ScrambleGen {
	return &ScrambleGen{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a scramble of n moves. Consecutive moves never share a
// face, and moves on the same axis always come in ascending face order, so
// no shorter sequence produces the same state trivially.
func (g *ScrambleGen) Generate(n int) []Move {
	moves := make([]Move, 0, n)
	prev := Move(NumMoves)
	for len(moves) < n {
		m := Move(g.rng.Intn(NumMoves))
		if prev < NumMoves {
			if m.Face() == prev.Face() {
				continue
			}
			if m.Face().Axis() == prev.Face().Axis() && m.Face() < prev.Face() {
				continue
			}
		}
		moves = append(moves, m)
		prev = m
	}
	return moves
}

// GenerateCube returns a scramble of n moves together with the cube state
// it produces.
func (g *ScrambleGen) GenerateCube(n int) ([]Move, Cube) {
	moves := g.Generate(n)
	return moves, SolvedCube().ApplyAll(moves)
}
