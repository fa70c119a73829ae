package cubesolver

import (
	"testing"
)

func TestMoveNotationRoundTrip(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		parsed, err := ParseMove(m.Notation())
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", m.Notation(), err)
		}
		if parsed != m {
			t.Errorf("ParseMove(%q) = %v, want %v", m.Notation(), parsed, m)
		}
	}
}

func TestParseMoveVariants(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", MoveR},
		{"r", MoveR},
		{"R'", MoveRPrime},
		{"R`", MoveRPrime},
		{"R2", MoveR2},
		{"R2'", MoveR2},
		{" U ", MoveU},
		{"b'", MoveBPrime},
	}
	for _, c := range cases {
		got, err := ParseMove(c.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "RR", "R''", "M", "2"} {
		if _, err := ParseMove(in); err == nil {
			t.Errorf("ParseMove(%q) should fail", in)
		}
	}
}

func TestParseMovesRejectsMalformed(t *testing.T) {
	if _, err := ParseMoves("R U X U'"); err == nil {
		t.Error("sequence with invalid move should fail")
	}
	moves, err := ParseMoves("  R   U2\tF' ")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []Move{MoveR, MoveU2, MoveFPrime}
	if len(moves) != len(want) {
		t.Fatalf("got %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("got %v, want %v", moves, want)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		inv := m.Inverse()
		if inv.Face() != m.Face() {
			t.Errorf("%v inverse %v changes face", m, inv)
		}
		if inv.Inverse() != m {
			t.Errorf("double inverse of %v = %v", m, inv.Inverse())
		}
		if got := SolvedCube().Apply(m).Apply(inv); !got.IsSolved() {
			t.Errorf("%v then %v does not cancel", m, inv)
		}
	}
}

func TestFaceAxisOpposite(t *testing.T) {
	if FaceL.Axis() != FaceR.Axis() || FaceU.Axis() != FaceD.Axis() || FaceF.Axis() != FaceB.Axis() {
		t.Error("opposite faces must share an axis")
	}
	if FaceL.Axis() == FaceU.Axis() || FaceU.Axis() == FaceF.Axis() {
		t.Error("distinct axes must differ")
	}
	for f := Face(0); f < 6; f++ {
		if f.Opposite().Opposite() != f || f.Opposite() == f {
			t.Errorf("bad opposite for %v", f)
		}
	}
}

func TestFormatMoves(t *testing.T) {
	moves := []Move{MoveR, MoveUPrime, MoveF2}
	if got := FormatMoves(moves); got != "R U' F2" {
		t.Errorf("FormatMoves = %q", got)
	}
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q", got)
	}
}

func TestInverseMovesCancel(t *testing.T) {
	moves, err := ParseMoves("R U R' U' F2 D B'")
	if err != nil {
		t.Fatal(err)
	}
	cube := SolvedCube().ApplyAll(moves).ApplyAll(InverseMoves(moves))
	if !cube.IsSolved() {
		t.Error("sequence followed by its inverse must solve")
	}
}
