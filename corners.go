package cubesolver

import (
	"fmt"
	"strings"
)

// Coordinate space sizes for the corner pieces.
const (
	CornerPermSize   = 40320 // 8!
	CornerOriSize    = 2187  // 3^7
	CornersIndexSize = CornerPermSize * CornerOriSize
)

// Corners holds the corner pieces of the cube.
//
// Corner numbering scheme (bit 0: right, bit 1: back, bit 2: down):
//
//	     2---------3
//	    /|        /|
//	   0---------1 |
//	   | 6-------|-7
//	   |/        |/
//	   4---------5
//
// Each byte encodes the cubie at one position:
//   - bits 0 to 3: cubie number (0 to 7)
//   - bits 4 to 5: orientation (0 to 2)
type Corners struct {
	s [8]uint8
}

// SolvedCorners returns the corners of a solved cube.
func SolvedCorners() Corners {
	return Corners{s: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}}
}

func (c Corners) cubie(i int) uint8 {
	return c.s[i] & 0x0F
}

func (c Corners) orientation(i int) uint8 {
	return c.s[i] >> 4
}

// CornersFromIndices reconstructs corners from a permutation index
// (0 to CornerPermSize-1) and orientation index (0 to CornerOriSize-1).
// The orientation of the last corner is implied by the others.
func CornersFromIndices(prm, ori int) Corners {
	var o [8]int
	for i := 0; i < 7; i++ {
		o[i] = ori % 3
		ori /= 3
	}
	o[7] = (12 + o[0] - o[1] - o[2] + o[3] - o[4] + o[5] + o[6]) % 3

	var p [8]uint8
	nthPermutation(prm, p[:])

	var c Corners
	for i := 0; i < 8; i++ {
		c.s[i] = p[i] | uint8(o[i])<<4
	}
	return c
}

// PermIndex returns the corner permutation index (0 to CornerPermSize-1).
func (c Corners) PermIndex() int {
	var cubies [8]uint8
	for i := 0; i < 8; i++ {
		cubies[i] = c.cubie(i)
	}
	return permutationIndex(cubies[:])
}

// OriIndex returns the corner orientation index (0 to CornerOriSize-1).
func (c Corners) OriIndex() int {
	index := 0
	for i := 6; i >= 0; i-- {
		index = index*3 + int(c.orientation(i))
	}
	return index
}

// Apply returns the corners after one face turn.
func (c Corners) Apply(m Move) Corners {
	switch m {
	case MoveL:
		return c.shuffled(2, 1, 6, 3, 0, 5, 4, 7).oriSwap02(0, 2, 4, 6)
	case MoveL2:
		return c.shuffled(6, 1, 4, 3, 2, 5, 0, 7)
	case MoveLPrime:
		return c.shuffled(4, 1, 0, 3, 6, 5, 2, 7).oriSwap02(0, 2, 4, 6)
	case MoveR:
		return c.shuffled(0, 5, 2, 1, 4, 7, 6, 3).oriSwap02(1, 3, 5, 7)
	case MoveR2:
		return c.shuffled(0, 7, 2, 5, 4, 3, 6, 1)
	case MoveRPrime:
		return c.shuffled(0, 3, 2, 7, 4, 1, 6, 5).oriSwap02(1, 3, 5, 7)
	case MoveU:
		return c.shuffled(1, 3, 0, 2, 4, 5, 6, 7).oriSwap12(0, 1, 2, 3)
	case MoveU2:
		return c.shuffled(3, 2, 1, 0, 4, 5, 6, 7)
	case MoveUPrime:
		return c.shuffled(2, 0, 3, 1, 4, 5, 6, 7).oriSwap12(0, 1, 2, 3)
	case MoveD:
		return c.shuffled(0, 1, 2, 3, 6, 4, 7, 5).oriSwap12(4, 5, 6, 7)
	case MoveD2:
		return c.shuffled(0, 1, 2, 3, 7, 6, 5, 4)
	case MoveDPrime:
		return c.shuffled(0, 1, 2, 3, 5, 7, 4, 6).oriSwap12(4, 5, 6, 7)
	case MoveF:
		return c.shuffled(4, 0, 2, 3, 5, 1, 6, 7).oriSwap01(0, 1, 4, 5)
	case MoveF2:
		return c.shuffled(5, 4, 2, 3, 1, 0, 6, 7)
	case MoveFPrime:
		return c.shuffled(1, 5, 2, 3, 0, 4, 6, 7).oriSwap01(0, 1, 4, 5)
	case MoveB:
		return c.shuffled(0, 1, 3, 7, 4, 5, 2, 6).oriSwap01(2, 3, 6, 7)
	case MoveB2:
		return c.shuffled(0, 1, 7, 6, 4, 5, 3, 2)
	case MoveBPrime:
		return c.shuffled(0, 1, 6, 2, 4, 5, 7, 3).oriSwap01(2, 3, 6, 7)
	default:
		return c
	}
}

// ApplyAll returns the corners after a sequence of face turns.
func (c Corners) ApplyAll(moves []Move) Corners {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

func (c Corners) shuffled(a, b, cc, d, e, f, g, h int) Corners {
	return Corners{s: [8]uint8{c.s[a], c.s[b], c.s[cc], c.s[d], c.s[e], c.s[f], c.s[g], c.s[h]}}
}

// oriSwap01 exchanges orientations 0 and 1 at the given positions.
func (c Corners) oriSwap01(indices ...int) Corners {
	for _, i := range indices {
		c.s[i] ^= (^c.s[i] & 0x20) >> 1
	}
	return c
}

// oriSwap02 exchanges orientations 0 and 2 at the given positions.
func (c Corners) oriSwap02(indices ...int) Corners {
	for _, i := range indices {
		c.s[i] = (0x20 - (c.s[i] & 0x30)) | (c.s[i] & 0x0F)
	}
	return c
}

// oriSwap12 exchanges orientations 1 and 2 at the given positions.
func (c Corners) oriSwap12(indices ...int) Corners {
	for _, i := range indices {
		l := (c.s[i] & 0x20) >> 1
		r := (c.s[i] & 0x10) << 1
		c.s[i] = (c.s[i] & 0x0F) | l | r
	}
	return c
}

func (c Corners) String() string {
	cubies := make([]string, 8)
	oris := make([]string, 8)
	for i := 0; i < 8; i++ {
		cubies[i] = fmt.Sprintf("%d", c.cubie(i))
		oris[i] = fmt.Sprintf("%d", c.orientation(i))
	}
	return strings.Join(cubies, " ") + " | " + strings.Join(oris, " ")
}
