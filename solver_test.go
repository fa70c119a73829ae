package cubesolver

import (
	"context"
	"math/rand"
	"testing"
)

// testSolverTables assembles full tables from the shared test singletons,
// including the large corners table.
func testSolverTables(t *testing.T) *Tables {
	t.Helper()
	if testing.Short() {
		t.Skip("corners table build is slow")
	}
	small := testSmallPruning()
	return &Tables{
		Moves: testMoveTables(),
		Pruning: &PruningTables{
			Corners:         testCornersTable(),
			CornerOriSlice:  small.CornerOriSlice,
			EdgeOriSlice:    small.EdgeOriSlice,
			CornerPermSlice: small.CornerPermSlice,
			EdgePermSlice:   small.EdgePermSlice,
		},
	}
}

func TestSolveSolvedCube(t *testing.T) {
	solver := NewSolver(testSolverTables(t))
	sol, err := solver.Solve(SolvedCube())
	if err != nil {
		t.Fatal(err)
	}
	if len(sol.Moves) != 0 {
		t.Errorf("solved cube got %v", sol.Moves)
	}

	// The search itself yields the empty solution even with a zero cap.
	capped := NewSolver(testSolverTables(t), WithMaxLength(0))
	sol, err = capped.Solve(SolvedCube())
	if err != nil {
		t.Fatal(err)
	}
	if sol.Moves == nil || len(sol.Moves) != 0 {
		t.Errorf("capped solved cube got %v", sol.Moves)
	}
}

func TestSolveSingleMove(t *testing.T) {
	solver := NewSolver(testSolverTables(t))
	for m := Move(0); m < NumMoves; m++ {
		sol, err := solver.Solve(SolvedCube().Apply(m))
		if err != nil {
			t.Fatalf("%v: %v", m, err)
		}
		if len(sol.Moves) != 1 || sol.Moves[0] != m.Inverse() {
			t.Errorf("%v: got %v, want [%v]", m, sol.Moves, m.Inverse())
		}
	}
}

func TestSolveScrambles(t *testing.T) {
	solver := NewSolver(testSolverTables(t))
	gen := NewScrambleGen(100)
	for run := 0; run < 10; run++ {
		scramble, cube := gen.GenerateCube(25)
		sol, err := solver.Solve(cube)
		if err != nil {
			t.Fatalf("scramble %v: %v", FormatMoves(scramble), err)
		}
		if len(sol.Moves) > DefaultMaxLength {
			t.Errorf("solution of length %d exceeds cap", len(sol.Moves))
		}
		if !cube.ApplyAll(sol.Moves).IsSolved() {
			t.Errorf("solution %v does not solve %v", FormatMoves(sol.Moves), FormatMoves(scramble))
		}
		if sol.Stats.Phase1Probes == 0 {
			t.Error("stats not collected")
		}
		if sol.Stats.Elapsed <= 0 {
			t.Error("elapsed time not recorded")
		}
	}
}

func TestSolveSubgroupScramble(t *testing.T) {
	// A cube already in the subgroup should solve with subgroup moves
	// alone when that is shortest.
	solver := NewSolver(testSolverTables(t))
	cube, err := CubeFromScramble("U2 D' R2 F2 U L2")
	if err != nil {
		t.Fatal(err)
	}
	sol, err := solver.Solve(cube)
	if err != nil {
		t.Fatal(err)
	}
	if !cube.ApplyAll(sol.Moves).IsSolved() {
		t.Fatalf("solution %v does not solve", FormatMoves(sol.Moves))
	}
	if len(sol.Moves) > 6 {
		t.Errorf("solution length %d, scramble inverse has 6", len(sol.Moves))
	}
}

func TestSolveDeterministic(t *testing.T) {
	solver := NewSolver(testSolverTables(t))
	_, cube := NewScrambleGen(101).GenerateCube(25)
	a, err := solver.Solve(cube)
	if err != nil {
		t.Fatal(err)
	}
	b, err := solver.Solve(cube)
	if err != nil {
		t.Fatal(err)
	}
	if FormatMoves(a.Moves) != FormatMoves(b.Moves) {
		t.Errorf("same cube solved differently: %v vs %v", a.Moves, b.Moves)
	}
}

func TestSolveRespectsTargetLength(t *testing.T) {
	tables := testSolverTables(t)
	relaxed := NewSolver(tables, WithTargetLength(24))
	_, cube := NewScrambleGen(102).GenerateCube(25)
	sol, err := relaxed.Solve(cube)
	if err != nil {
		t.Fatal(err)
	}
	if !cube.ApplyAll(sol.Moves).IsSolved() {
		t.Error("relaxed target must still solve")
	}
	if len(sol.Moves) > DefaultMaxLength {
		t.Errorf("length %d over cap", len(sol.Moves))
	}
}

func TestSolveBatchMatchesSequential(t *testing.T) {
	solver := NewSolver(testSolverTables(t))
	gen := NewScrambleGen(103)
	cubes := make([]Cube, 8)
	for i := range cubes {
		_, cubes[i] = gen.GenerateCube(25)
	}

	batch, err := solver.SolveBatch(context.Background(), cubes, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, cube := range cubes {
		seq, err := solver.Solve(cube)
		if err != nil {
			t.Fatal(err)
		}
		if FormatMoves(batch[i].Moves) != FormatMoves(seq.Moves) {
			t.Errorf("cube %d: batch %v, sequential %v", i, batch[i].Moves, seq.Moves)
		}
	}
}

func TestSolveBatchCancellation(t *testing.T) {
	solver := NewSolver(testSolverTables(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cubes := make([]Cube, 100)
	rng := rand.New(rand.NewSource(104))
	for i := range cubes {
		cubes[i] = SolvedCube().Apply(Move(rng.Intn(NumMoves)))
	}
	if _, err := solver.SolveBatch(ctx, cubes, 2); err == nil {
		t.Error("cancelled batch must report the context error")
	}
}

func TestStatsAdd(t *testing.T) {
	a := Stats{Phase1Probes: 1, Phase2Probes: 2, CornerProbes: 3, NoTwistCuts: 4}
	a.Add(Stats{Phase1Probes: 10, Phase1Cuts: 5, Elapsed: 7})
	if a.Phase1Probes != 11 || a.Phase1Cuts != 5 || a.Phase2Probes != 2 || a.Elapsed != 7 {
		t.Errorf("Add result wrong: %+v", a)
	}
}
