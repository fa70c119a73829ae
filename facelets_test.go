package cubesolver

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

const solvedFacelets = "WWWWWWWWW" + "YYYYYYYYY" + "GGGGGGGGG" + "BBBBBBBBB" + "RRRRRRRRR" + "OOOOOOOOO"

func TestSolvedFaceletString(t *testing.T) {
	if got := SolvedCube().FaceletString(); got != solvedFacelets {
		t.Errorf("solved facelets = %q", got)
	}
}

func TestParseSolvedFacelets(t *testing.T) {
	cube, err := ParseFacelets(solvedFacelets)
	if err != nil {
		t.Fatal(err)
	}
	if !cube.IsSolved() {
		t.Error("parsed solved string is not solved")
	}
}

func TestFaceletRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cube := SolvedCube()
	for i := 0; i < 300; i++ {
		cube = cube.Apply(Move(rng.Intn(NumMoves)))
		s := cube.FaceletString()
		got, err := ParseFacelets(s)
		if err != nil {
			t.Fatalf("step %d: parse %q: %v", i, s, err)
		}
		if got != cube {
			t.Fatalf("step %d: round trip mismatch\n %q", i, s)
		}
	}
}

func TestParseFaceletsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"short", solvedFacelets[:53]},
		{"long", solvedFacelets + "W"},
		{"bad char", "X" + solvedFacelets[1:]},
		{"bad counts", strings.Replace(solvedFacelets, "W", "Y", 1)},
	}
	for _, c := range cases {
		if _, err := ParseFacelets(c.in); !errors.Is(err, ErrInvalidFacelets) {
			t.Errorf("%s: err = %v, want ErrInvalidFacelets", c.name, err)
		}
	}
}

func TestParseFaceletsBadCenter(t *testing.T) {
	// Swap the U and D centers; counts stay balanced.
	b := []byte(solvedFacelets)
	b[4], b[13] = b[13], b[4]
	if _, err := ParseFacelets(string(b)); !errors.Is(err, ErrInvalidFacelets) {
		t.Errorf("err = %v, want ErrInvalidFacelets", err)
	}
}

func TestParseFaceletsTwistedCorner(t *testing.T) {
	// Rotate the stickers of the corner at UFL in place.
	b := []byte(solvedFacelets)
	b[6], b[47], b[18] = b[18], b[6], b[47]
	if _, err := ParseFacelets(string(b)); !errors.Is(err, ErrBadCornerTwist) {
		t.Errorf("err = %v, want ErrBadCornerTwist", err)
	}
}

func TestParseFaceletsFlippedEdge(t *testing.T) {
	// Flip the UF edge in place.
	b := []byte(solvedFacelets)
	b[7], b[19] = b[19], b[7]
	if _, err := ParseFacelets(string(b)); !errors.Is(err, ErrBadEdgeFlip) {
		t.Errorf("err = %v, want ErrBadEdgeFlip", err)
	}
}

func TestParseFaceletsParity(t *testing.T) {
	// Swap the UF and UB edges, a lone two-cycle.
	b := []byte(solvedFacelets)
	b[19], b[28] = b[28], b[19]
	if _, err := ParseFacelets(string(b)); !errors.Is(err, ErrBadParity) {
		t.Errorf("err = %v, want ErrBadParity", err)
	}
}

func TestParseFaceletsCornerParity(t *testing.T) {
	// Swap the UFL and UFR corners, a lone two-cycle. Both positions have
	// the opposite chirality of their new cubie, so the side stickers
	// land in transposed slots.
	b := []byte(solvedFacelets)
	b[18], b[47] = 'R', 'G'
	b[20], b[36] = 'O', 'G'
	if _, err := ParseFacelets(string(b)); !errors.Is(err, ErrBadParity) {
		t.Errorf("err = %v, want ErrBadParity", err)
	}
}

func TestParseFaceletsMirroredCorner(t *testing.T) {
	// Swap the two side stickers of the UFL corner. The color set is a
	// real cubie's, but the placement is its mirror image and no twist
	// of a real corner produces it.
	b := []byte(solvedFacelets)
	b[47], b[18] = b[18], b[47]
	if _, err := ParseFacelets(string(b)); !errors.Is(err, ErrBadPieceSet) {
		t.Errorf("err = %v, want ErrBadPieceSet", err)
	}
}

func TestParseFaceletsBadPieces(t *testing.T) {
	// Give the UFL corner two up/down colors.
	b := []byte(solvedFacelets)
	b[47], b[9] = b[9], b[47]
	if _, err := ParseFacelets(string(b)); !errors.Is(err, ErrBadPieceSet) {
		t.Errorf("err = %v, want ErrBadPieceSet", err)
	}
}
