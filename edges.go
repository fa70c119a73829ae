package cubesolver

import (
	"fmt"
	"strings"
)

// Coordinate space sizes for the edge pieces. "Slice" refers to the four
// equator edges (positions 8 to 11), which the phase-2 subgroup keeps
// inside their slice.
const (
	SlicePermSize = 24    // 4!
	EdgePermSize  = 40320 // 8! (non-slice edges)
	SliceLocSize  = 495   // C(12,4)
	EdgeOriSize   = 2048  // 2^11

	// HomeSliceLoc is the slice location index of a solved cube: the
	// slice edges occupy positions {8, 9, 10, 11}.
	HomeSliceLoc = 494
)

// Edges holds the edge pieces of the cube.
//
// Edge numbering scheme:
//
//	    +----1----+
//	   /|        /|
//	  4 11      5 10
//	 +----0----+  |
//	 |  |      |  |
//	 |  +----2-|--+
//	 8 /       9 /
//	 |7        |6
//	 +----3----+
//
// Each byte encodes the cubie at one position:
//   - bits 0 to 3: cubie number (0 to 11)
//   - bit 4: orientation (0 or 1)
type Edges struct {
	s [12]uint8
}

// SolvedEdges returns the edges of a solved cube.
func SolvedEdges() Edges {
	return Edges{s: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}}
}

func (e Edges) cubie(i int) uint8 {
	return e.s[i] & 0x0F
}

func (e Edges) orientation(i int) uint8 {
	return e.s[i] >> 4
}

func (e Edges) cubies() [12]uint8 {
	var out [12]uint8
	for i := 0; i < 12; i++ {
		out[i] = e.cubie(i)
	}
	return out
}

// EdgesFromIndices reconstructs edges from the four edge coordinates:
//   - slicePrm: permutation of the slice edges (0 to SlicePermSize-1)
//   - nonSlicePrm: permutation of the other eight edges (0 to EdgePermSize-1)
//   - sliceLoc: which positions hold slice edges (0 to SliceLocSize-1)
//   - ori: orientation bits of positions 0 to 10 (0 to EdgeOriSize-1);
//     the last orientation is implied by the flip-sum invariant.
func EdgesFromIndices(slicePrm, nonSlicePrm, sliceLoc, ori int) Edges {
	var loc [4]uint8
	nthCombination(12, sliceLoc, loc[:])

	var nonSlice [8]uint8
	nthPermutation(nonSlicePrm, nonSlice[:])

	var slice [4]uint8
	nthPermutation(slicePrm, slice[:])

	s := make([]uint8, 0, 12)
	s = append(s, nonSlice[:]...)
	for i := 0; i < 4; i++ {
		pos := int(loc[i])
		s = append(s, 0)
		copy(s[pos+1:], s[pos:])
		s[pos] = slice[i] + 8
	}

	flips := 0
	for i := 0; i < 11; i++ {
		bit := (ori >> i) & 1
		s[i] |= uint8(bit) << 4
		flips += bit
	}
	s[11] |= uint8(flips%2) << 4

	var e Edges
	copy(e.s[:], s)
	return e
}

// SlicePermIndex returns the permutation index of the slice edges
// (0 to SlicePermSize-1), in order of their current positions.
func (e Edges) SlicePermIndex() int {
	var slice [4]uint8
	j := 0
	for i := 0; i < 12; i++ {
		if e.cubie(i) > 7 {
			slice[j] = e.cubie(i) - 8
			j++
		}
	}
	return permutationIndex(slice[:])
}

// NonSlicePermIndex returns the permutation index of the eight non-slice
// edges (0 to EdgePermSize-1).
func (e Edges) NonSlicePermIndex() int {
	var nonSlice [8]uint8
	j := 0
	for i := 0; i < 12; i++ {
		if e.cubie(i) <= 7 {
			nonSlice[j] = e.cubie(i)
			j++
		}
	}
	return permutationIndex(nonSlice[:])
}

// SliceLocIndex returns the combination index of the positions currently
// holding slice edges (0 to SliceLocSize-1).
func (e Edges) SliceLocIndex() int {
	var loc [4]uint8
	j := 0
	for i := 0; i < 12; i++ {
		if e.cubie(i) > 7 {
			loc[j] = uint8(i)
			j++
		}
	}
	return combinationIndex(12, loc[:])
}

// OriIndex returns the edge orientation index (0 to EdgeOriSize-1).
func (e Edges) OriIndex() int {
	index := 0
	for i := 0; i < 11; i++ {
		index |= int(e.orientation(i)) << i
	}
	return index
}

// Apply returns the edges after one face turn.
func (e Edges) Apply(m Move) Edges {
	switch m {
	case MoveL:
		return e.shuffled(0, 1, 2, 3, 11, 5, 6, 8, 4, 9, 10, 7).oriFlip(4, 7, 8, 11)
	case MoveL2:
		return e.shuffled(0, 1, 2, 3, 7, 5, 6, 4, 11, 9, 10, 8)
	case MoveLPrime:
		return e.shuffled(0, 1, 2, 3, 8, 5, 6, 11, 7, 9, 10, 4).oriFlip(4, 7, 8, 11)
	case MoveR:
		return e.shuffled(0, 1, 2, 3, 4, 9, 10, 7, 8, 6, 5, 11).oriFlip(5, 6, 9, 10)
	case MoveR2:
		return e.shuffled(0, 1, 2, 3, 4, 6, 5, 7, 8, 10, 9, 11)
	case MoveRPrime:
		return e.shuffled(0, 1, 2, 3, 4, 10, 9, 7, 8, 5, 6, 11).oriFlip(5, 6, 9, 10)
	case MoveU:
		return e.shuffled(5, 4, 2, 3, 0, 1, 6, 7, 8, 9, 10, 11)
	case MoveU2:
		return e.shuffled(1, 0, 2, 3, 5, 4, 6, 7, 8, 9, 10, 11)
	case MoveUPrime:
		return e.shuffled(4, 5, 2, 3, 1, 0, 6, 7, 8, 9, 10, 11)
	case MoveD:
		return e.shuffled(0, 1, 6, 7, 4, 5, 3, 2, 8, 9, 10, 11)
	case MoveD2:
		return e.shuffled(0, 1, 3, 2, 4, 5, 7, 6, 8, 9, 10, 11)
	case MoveDPrime:
		return e.shuffled(0, 1, 7, 6, 4, 5, 2, 3, 8, 9, 10, 11)
	case MoveF:
		return e.shuffled(8, 1, 2, 9, 4, 5, 6, 7, 3, 0, 10, 11)
	case MoveF2:
		return e.shuffled(3, 1, 2, 0, 4, 5, 6, 7, 9, 8, 10, 11)
	case MoveFPrime:
		return e.shuffled(9, 1, 2, 8, 4, 5, 6, 7, 0, 3, 10, 11)
	case MoveB:
		return e.shuffled(0, 10, 11, 3, 4, 5, 6, 7, 8, 9, 2, 1)
	case MoveB2:
		return e.shuffled(0, 2, 1, 3, 4, 5, 6, 7, 8, 9, 11, 10)
	case MoveBPrime:
		return e.shuffled(0, 11, 10, 3, 4, 5, 6, 7, 8, 9, 1, 2)
	default:
		return e
	}
}

// ApplyAll returns the edges after a sequence of face turns.
func (e Edges) ApplyAll(moves []Move) Edges {
	for _, m := range moves {
		e = e.Apply(m)
	}
	return e
}

func (e Edges) shuffled(a, b, c, d, f, g, h, i, j, k, l, m int) Edges {
	return Edges{s: [12]uint8{
		e.s[a], e.s[b], e.s[c], e.s[d], e.s[f], e.s[g],
		e.s[h], e.s[i], e.s[j], e.s[k], e.s[l], e.s[m],
	}}
}

// oriFlip toggles the orientation bit at the given positions.
func (e Edges) oriFlip(indices ...int) Edges {
	for _, i := range indices {
		e.s[i] ^= 0x10
	}
	return e
}

func (e Edges) String() string {
	cubies := make([]string, 12)
	oris := make([]string, 12)
	for i := 0; i < 12; i++ {
		cubies[i] = fmt.Sprintf("%d", e.cubie(i))
		oris[i] = fmt.Sprintf("%d", e.orientation(i))
	}
	return strings.Join(cubies, " ") + " | " + strings.Join(oris, " ")
}
