package cubesolver

import (
	"math/rand"
	"sync"
	"testing"
)

var (
	smallPruningOnce sync.Once
	smallPruning     *PruningTables
)

// testSmallPruning builds every pruning table except the large corners
// table, shared across tests.
func testSmallPruning() *PruningTables {
	smallPruningOnce.Do(func() {
		mt := testMoveTables()
		smallPruning = &PruningTables{
			CornerOriSlice:  buildCornerOriSliceTable(mt),
			EdgeOriSlice:    buildEdgeOriSliceTable(mt),
			CornerPermSlice: buildCornerPermSliceTable(mt),
			EdgePermSlice:   buildEdgePermSliceTable(mt),
		}
	})
	return smallPruning
}

var (
	cornersTableOnce sync.Once
	cornersTable     *DistanceTable
)

func testCornersTable() *DistanceTable {
	cornersTableOnce.Do(func() {
		cornersTable = buildCornersTable(testMoveTables())
	})
	return cornersTable
}

func TestPruningGoalsAtZero(t *testing.T) {
	pt := testSmallPruning()
	if d := pt.CornerOriSlice.Dist(HomeSliceLoc); d != 0 {
		t.Errorf("corner-ori-slice goal dist = %d", d)
	}
	if d := pt.EdgeOriSlice.Dist(HomeSliceLoc); d != 0 {
		t.Errorf("edge-ori-slice goal dist = %d", d)
	}
	if d := pt.CornerPermSlice.Dist(0); d != 0 {
		t.Errorf("corner-perm-slice goal dist = %d", d)
	}
	if d := pt.EdgePermSlice.Dist(0); d != 0 {
		t.Errorf("edge-perm-slice goal dist = %d", d)
	}
}

func TestPruningNeighborConsistency(t *testing.T) {
	pt := testSmallPruning()
	mt := testMoveTables()
	rng := rand.New(rand.NewSource(20))

	moves := AllMoves().Moves()
	for i := 0; i < 5000; i++ {
		j := rng.Intn(pt.CornerOriSlice.Len())
		d := pt.CornerOriSlice.Dist(j)
		if d == unreachedDist {
			t.Fatalf("corner-ori-slice %d unreached", j)
		}
		m := moves[rng.Intn(len(moves))]
		next := mt.CornerOri(j/SliceLocSize, m)*SliceLocSize + mt.SliceLoc(j%SliceLocSize, m)
		nd := pt.CornerOriSlice.Dist(next)
		if nd < d-1 || nd > d+1 {
			t.Fatalf("neighbor distance jump: %d -> %d", d, nd)
		}
	}
}

func TestPruningAdmissible(t *testing.T) {
	// A state k moves from solved can never sit deeper than k in any
	// phase-1 table.
	pt := testSmallPruning()
	rng := rand.New(rand.NewSource(21))
	for run := 0; run < 200; run++ {
		k := rng.Intn(13)
		cube := SolvedCube()
		for i := 0; i < k; i++ {
			cube = cube.Apply(Move(rng.Intn(NumMoves)))
		}
		loc := cube.Edges.SliceLocIndex()
		if d := pt.CornerOriSlice.Dist(cube.Corners.OriIndex()*SliceLocSize + loc); d > k {
			t.Fatalf("corner-ori-slice overestimates: %d > %d", d, k)
		}
		if d := pt.EdgeOriSlice.Dist(cube.Edges.OriIndex()*SliceLocSize + loc); d > k {
			t.Fatalf("edge-ori-slice overestimates: %d > %d", d, k)
		}
	}
}

func TestPruningAdmissibleSubgroup(t *testing.T) {
	pt := testSmallPruning()
	rng := rand.New(rand.NewSource(22))
	moves := SubgroupMoves().Moves()
	for run := 0; run < 200; run++ {
		k := rng.Intn(19)
		cube := SolvedCube()
		for i := 0; i < k; i++ {
			cube = cube.Apply(moves[rng.Intn(len(moves))])
		}
		sp := cube.Edges.SlicePermIndex()
		if d := pt.CornerPermSlice.Dist(cube.Corners.PermIndex()*SlicePermSize + sp); d > k {
			t.Fatalf("corner-perm-slice overestimates: %d > %d", d, k)
		}
		if d := pt.EdgePermSlice.Dist(cube.Edges.NonSlicePermIndex()*SlicePermSize + sp); d > k {
			t.Fatalf("edge-perm-slice overestimates: %d > %d", d, k)
		}
	}
}

func TestCornersTableDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("corners table build is slow")
	}
	// Known distribution of the 8!*3^7 corner states by distance.
	want := []int{
		1, 18, 243, 2874, 28000, 205416, 1168516, 5402628,
		20776176, 45391616, 15139616, 64736,
	}
	counts := testCornersTable().LevelCounts()
	if len(counts) != len(want) {
		t.Fatalf("level count %d, want %d (%v)", len(counts), len(want), counts)
	}
	for d := range want {
		if counts[d] != want[d] {
			t.Errorf("level %d: %d states, want %d", d, counts[d], want[d])
		}
	}
}

func TestCornersTableAdmissible(t *testing.T) {
	if testing.Short() {
		t.Skip("corners table build is slow")
	}
	ct := testCornersTable()
	rng := rand.New(rand.NewSource(23))
	for run := 0; run < 500; run++ {
		k := rng.Intn(15)
		c := SolvedCorners()
		for i := 0; i < k; i++ {
			c = c.Apply(Move(rng.Intn(NumMoves)))
		}
		if d := ct.Dist(c.PermIndex()*CornerOriSize + c.OriIndex()); d > k {
			t.Fatalf("corners table overestimates: %d > %d", d, k)
		}
	}
}
