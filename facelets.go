package cubesolver

import (
	"math/bits"
	"strings"
)

// Facelet strings use 54 characters of WYGBRO, nine per face, in face order
// U, D, F, B, R, L with each face row-major:
//
//   - U viewed from above with F at the bottom
//   - D viewed from below with F at the top
//   - F viewed from the front
//   - B viewed from behind (its first column is the cube's right)
//   - R viewed from the right (its first column is the front)
//   - L viewed from the left (its first column is the back)
//
// Colors follow the standard scheme: U white, D yellow, F green, B blue,
// R red, L orange.
const faceletColors = "WYGBRO"

// centerFacelets[f] is the string index of face f's center sticker.
var centerFacelets = [6]int{4, 13, 22, 31, 40, 49}

// cornerFacelets[p] lists the string indices of corner position p's three
// stickers in axis order y, x, z (the up/down sticker slot first).
var cornerFacelets = [8][3]int{
	{6, 47, 18},  // UFL
	{8, 36, 20},  // UFR
	{0, 45, 29},  // UBL
	{2, 38, 27},  // UBR
	{9, 53, 24},  // DFL
	{11, 42, 26}, // DFR
	{15, 51, 35}, // DBL
	{17, 44, 33}, // DBR
}

// cornerColors[c] is corner cubie c's colors in axis order y, x, z.
var cornerColors = [8][3]byte{
	{'W', 'O', 'G'},
	{'W', 'R', 'G'},
	{'W', 'O', 'B'},
	{'W', 'R', 'B'},
	{'Y', 'O', 'G'},
	{'Y', 'R', 'G'},
	{'Y', 'O', 'B'},
	{'Y', 'R', 'B'},
}

// edgeFacelets[p] lists the string indices of edge position p's stickers,
// primary slot first. The primary slot is the U/D facelet for positions
// 0 to 7 and the L/R facelet for the slice positions 8 to 11.
var edgeFacelets = [12][2]int{
	{7, 19},  // UF
	{1, 28},  // UB
	{16, 34}, // DB
	{10, 25}, // DF
	{3, 46},  // UL
	{5, 37},  // UR
	{14, 43}, // DR
	{12, 52}, // DL
	{50, 21}, // FL
	{39, 23}, // FR
	{41, 30}, // BR
	{48, 32}, // BL
}

// edgeColors[c] is edge cubie c's colors, primary color first.
var edgeColors = [12][2]byte{
	{'W', 'G'},
	{'W', 'B'},
	{'Y', 'B'},
	{'Y', 'G'},
	{'W', 'O'},
	{'W', 'R'},
	{'Y', 'R'},
	{'Y', 'O'},
	{'O', 'G'},
	{'R', 'G'},
	{'R', 'B'},
	{'O', 'B'},
}

// Corner stickers map onto a position's slots as a permutation of the three
// axes. The permutation is even when the cubie's chirality matches the
// position's and odd otherwise; its image of the y axis is the orientation.
var (
	evenCornerMaps = [3][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
	oddCornerMaps  = [3][3]int{{0, 2, 1}, {1, 0, 2}, {2, 1, 0}}
)

// chirality of a corner index: corners at an odd number of set coordinate
// bits are mirror images of those at an even number.
func cornerChirality(i uint8) int {
	return bits.OnesCount8(i) & 1
}

// FaceletString renders the cube as a 54-character facelet string.
func (c Cube) FaceletString() string {
	var out [54]byte
	for f := 0; f < 6; f++ {
		out[centerFacelets[f]] = faceletColors[f]
	}
	for p := 0; p < 8; p++ {
		cubie := c.Corners.cubie(p)
		o := int(c.Corners.orientation(p))
		maps := &evenCornerMaps
		if cornerChirality(cubie) != cornerChirality(uint8(p)) {
			maps = &oddCornerMaps
		}
		for axis := 0; axis < 3; axis++ {
			out[cornerFacelets[p][maps[o][axis]]] = cornerColors[cubie][axis]
		}
	}
	for p := 0; p < 12; p++ {
		cubie := c.Edges.cubie(p)
		o := int(c.Edges.orientation(p))
		out[edgeFacelets[p][o]] = edgeColors[cubie][0]
		out[edgeFacelets[p][1-o]] = edgeColors[cubie][1]
	}
	return string(out[:])
}

// ParseFacelets parses a 54-character facelet string into a cube state.
// The string must describe a reachable cube: real pieces, a corner twist
// that is a multiple of three, an even number of flipped edges, and
// matching corner and edge permutation parity.
func ParseFacelets(s string) (Cube, error) {
	if len(s) != 54 {
		return Cube{}, ErrInvalidFacelets
	}
	var counts [6]int
	for i := 0; i < 54; i++ {
		f := strings.IndexByte(faceletColors, s[i])
		if f < 0 {
			return Cube{}, ErrInvalidFacelets
		}
		counts[f]++
	}
	for f := 0; f < 6; f++ {
		if counts[f] != 9 {
			return Cube{}, ErrInvalidFacelets
		}
		if s[centerFacelets[f]] != faceletColors[f] {
			return Cube{}, ErrInvalidFacelets
		}
	}

	cube := Cube{}
	var cornerSeen [8]bool
	twist := 0
	for p := 0; p < 8; p++ {
		var got [3]byte
		for axis := 0; axis < 3; axis++ {
			got[axis] = s[cornerFacelets[p][axis]]
		}
		cubie, o := identifyCorner(got, cornerChirality(uint8(p)))
		if cubie < 0 {
			return Cube{}, ErrBadPieceSet
		}
		if cornerSeen[cubie] {
			return Cube{}, ErrBadPieceSet
		}
		cornerSeen[cubie] = true
		cube.Corners.s[p] = uint8(cubie) | uint8(o)<<4
		if cornerChirality(uint8(p)) == 0 {
			twist += o
		} else {
			twist -= o
		}
	}
	if (twist%3+3)%3 != 0 {
		return Cube{}, ErrBadCornerTwist
	}

	var edgeSeen [12]bool
	flips := 0
	for p := 0; p < 12; p++ {
		got := [2]byte{s[edgeFacelets[p][0]], s[edgeFacelets[p][1]]}
		cubie, o := identifyEdge(got)
		if cubie < 0 {
			return Cube{}, ErrBadPieceSet
		}
		if edgeSeen[cubie] {
			return Cube{}, ErrBadPieceSet
		}
		edgeSeen[cubie] = true
		cube.Edges.s[p] = uint8(cubie) | uint8(o)<<4
		flips += o
	}
	if flips%2 != 0 {
		return Cube{}, ErrBadEdgeFlip
	}

	// Corner parity falls out of the permutation rank; the twelve edges
	// split across two coordinates, so edge parity is counted from the
	// cubie array.
	ep := cube.Edges.cubies()
	if isEvenPermutation(cube.Corners.PermIndex()) != isEvenPermutationSlice(ep[:]) {
		return Cube{}, ErrBadParity
	}
	return cube, nil
}

// identifyCorner matches the three sticker colors read from a corner
// position (in slot order y, x, z) to a cubie and its orientation. The
// orientation is the slot holding the cubie's up/down color. A cubie
// matches only when every sticker sits in the slot its chirality map
// assigns, so a mirror-image corner is rejected.
func identifyCorner(got [3]byte, posChirality int) (int, int) {
	o := -1
	for slot := 0; slot < 3; slot++ {
		if got[slot] == 'W' || got[slot] == 'Y' {
			if o >= 0 {
				return -1, 0
			}
			o = slot
		}
	}
	if o < 0 {
		return -1, 0
	}
	for cubie := 0; cubie < 8; cubie++ {
		maps := &evenCornerMaps
		if cornerChirality(uint8(cubie)) != posChirality {
			maps = &oddCornerMaps
		}
		match := true
		for axis := 0; axis < 3; axis++ {
			if got[maps[o][axis]] != cornerColors[cubie][axis] {
				match = false
				break
			}
		}
		if match {
			return cubie, o
		}
	}
	return -1, 0
}

// identifyEdge matches the two sticker colors read from an edge position
// (primary slot first) to a cubie and its orientation.
func identifyEdge(got [2]byte) (int, int) {
	for cubie := 0; cubie < 12; cubie++ {
		c := edgeColors[cubie]
		if got[0] == c[0] && got[1] == c[1] {
			return cubie, 0
		}
		if got[0] == c[1] && got[1] == c[0] {
			return cubie, 1
		}
	}
	return -1, 0
}
