package cubesolver

import "math/bits"

// MoveSet is a bitmask over the 18 canonical moves.
type MoveSet uint32

// AllMoves returns the set of all 18 face turns.
func AllMoves() MoveSet {
	return MoveSet(1<<NumMoves - 1)
}

// SubgroupMoves returns the generator set of the phase-2 subgroup:
// {L2, R2, U, U2, U', D, D2, D', F2, B2}.
func SubgroupMoves() MoveSet {
	var s MoveSet
	for _, m := range []Move{MoveL2, MoveR2, MoveU, MoveU2, MoveUPrime, MoveD, MoveD2, MoveDPrime, MoveF2, MoveB2} {
		s = s.Add(m)
	}
	return s
}

// Add returns the set with m included.
func (s MoveSet) Add(m Move) MoveSet {
	return s | 1<<m
}

// Remove returns the set with m excluded.
func (s MoveSet) Remove(m Move) MoveSet {
	return s &^ (1 << m)
}

// Contains reports whether m is in the set.
func (s MoveSet) Contains(m Move) bool {
	return s&(1<<m) != 0
}

// Size returns the number of moves in the set.
func (s MoveSet) Size() int {
	return bits.OnesCount32(uint32(s))
}

// Moves returns the moves in the set in canonical (index) order.
func (s MoveSet) Moves() []Move {
	moves := make([]Move, 0, s.Size())
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		moves = append(moves, Move(bits.TrailingZeros32(rest)))
	}
	return moves
}
