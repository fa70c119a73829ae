package cubesolver

import (
	"testing"
)

func TestScrambleGenDeterministic(t *testing.T) {
	a := NewScrambleGen(42).Generate(25)
	b := NewScrambleGen(42).Generate(25)
	if len(a) != 25 || len(b) != 25 {
		t.Fatalf("lengths %d, %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, a, b)
		}
	}
}

func TestScrambleGenSeedsDiffer(t *testing.T) {
	a := NewScrambleGen(1).Generate(25)
	b := NewScrambleGen(2).Generate(25)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical scrambles")
	}
}

func TestScrambleGenNoRedundantMoves(t *testing.T) {
	g := NewScrambleGen(9)
	for run := 0; run < 20; run++ {
		moves := g.Generate(30)
		for i := 1; i < len(moves); i++ {
			prev, cur := moves[i-1], moves[i]
			if cur.Face() == prev.Face() {
				t.Fatalf("consecutive moves on one face: %v %v", prev, cur)
			}
			if cur.Face().Axis() == prev.Face().Axis() && cur.Face() < prev.Face() {
				t.Fatalf("axis pair out of order: %v %v", prev, cur)
			}
		}
	}
}

func TestGenerateCube(t *testing.T) {
	moves, cube := NewScrambleGen(7).GenerateCube(20)
	if got := SolvedCube().ApplyAll(moves); got != cube {
		t.Error("returned cube does not match the scramble")
	}
	if cube.IsSolved() {
		t.Error("20-move scramble left the cube solved")
	}
}
