package cubesolver

import (
	"math/rand"
	"sync"
	"testing"
)

var (
	moveTablesOnce sync.Once
	moveTables     *MoveTables
)

func testMoveTables() *MoveTables {
	moveTablesOnce.Do(func() {
		moveTables = NewMoveTables()
	})
	return moveTables
}

func TestMoveTablesMatchCubieModel(t *testing.T) {
	mt := testMoveTables()
	rng := rand.New(rand.NewSource(10))
	cube := SolvedCube()
	for i := 0; i < 500; i++ {
		for m := Move(0); m < NumMoves; m++ {
			next := cube.Apply(m)
			if got := mt.CornerOri(cube.Corners.OriIndex(), m); got != next.Corners.OriIndex() {
				t.Fatalf("corner ori table wrong for %v at step %d", m, i)
			}
			if got := mt.CornerPerm(cube.Corners.PermIndex(), m); got != next.Corners.PermIndex() {
				t.Fatalf("corner perm table wrong for %v at step %d", m, i)
			}
			if got := mt.EdgeOri(cube.Edges.OriIndex(), m); got != next.Edges.OriIndex() {
				t.Fatalf("edge ori table wrong for %v at step %d", m, i)
			}
			if got := mt.SliceLoc(cube.Edges.SliceLocIndex(), m); got != next.Edges.SliceLocIndex() {
				t.Fatalf("slice loc table wrong for %v at step %d", m, i)
			}
			joint := cube.Corners.PermIndex()*CornerOriSize + cube.Corners.OriIndex()
			wantJoint := next.Corners.PermIndex()*CornerOriSize + next.Corners.OriIndex()
			if got := mt.Corners(joint, m); got != wantJoint {
				t.Fatalf("joint corner table wrong for %v at step %d", m, i)
			}
		}
		cube = cube.Apply(Move(rng.Intn(NumMoves)))
	}
}

func TestMoveTablesSubgroupPermutations(t *testing.T) {
	// The permutation tables are built with the slice at home, so walk
	// only subgroup moves.
	mt := testMoveTables()
	rng := rand.New(rand.NewSource(11))
	moves := SubgroupMoves().Moves()
	cube := SolvedCube()
	for i := 0; i < 500; i++ {
		for _, m := range moves {
			next := cube.Apply(m)
			if got := mt.SlicePerm(cube.Edges.SlicePermIndex(), m); got != next.Edges.SlicePermIndex() {
				t.Fatalf("slice perm table wrong for %v at step %d", m, i)
			}
			if got := mt.NonSlicePerm(cube.Edges.NonSlicePermIndex(), m); got != next.Edges.NonSlicePermIndex() {
				t.Fatalf("non-slice perm table wrong for %v at step %d", m, i)
			}
		}
		cube = cube.Apply(moves[rng.Intn(len(moves))])
	}
}

func TestMoveTablesInverse(t *testing.T) {
	mt := testMoveTables()
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 2000; i++ {
		m := Move(rng.Intn(NumMoves))
		ori := rng.Intn(CornerOriSize)
		if got := mt.CornerOri(mt.CornerOri(ori, m), m.Inverse()); got != ori {
			t.Fatalf("corner ori %d not restored by %v %v", ori, m, m.Inverse())
		}
		prm := rng.Intn(CornerPermSize)
		if got := mt.CornerPerm(mt.CornerPerm(prm, m), m.Inverse()); got != prm {
			t.Fatalf("corner perm %d not restored by %v %v", prm, m, m.Inverse())
		}
		eo := rng.Intn(EdgeOriSize)
		if got := mt.EdgeOri(mt.EdgeOri(eo, m), m.Inverse()); got != eo {
			t.Fatalf("edge ori %d not restored by %v %v", eo, m, m.Inverse())
		}
		loc := rng.Intn(SliceLocSize)
		if got := mt.SliceLoc(mt.SliceLoc(loc, m), m.Inverse()); got != loc {
			t.Fatalf("slice loc %d not restored by %v %v", loc, m, m.Inverse())
		}
	}
}
