package cubesolver

import (
	"runtime"
	"sync"
)

const unreachedDist = 0xFF

// DistanceTable maps a coordinate to the exact number of moves needed to
// reach the goal coordinate, under a fixed move set. Distances are
// admissible lower bounds for any search whose state projects onto the
// coordinate.
type DistanceTable struct {
	name string
	dist []uint8
}

// Name identifies the table, also used as its cache file name.
func (t *DistanceTable) Name() string { return t.name }

// Len returns the coordinate space size.
func (t *DistanceTable) Len() int { return len(t.dist) }

// Dist returns the distance of a coordinate.
func (t *DistanceTable) Dist(i int) int { return int(t.dist[i]) }

// LevelCounts returns how many coordinates sit at each distance.
func (t *DistanceTable) LevelCounts() []int {
	max := 0
	for _, d := range t.dist {
		if int(d) > max {
			max = int(d)
		}
	}
	counts := make([]int, max+1)
	for _, d := range t.dist {
		counts[d]++
	}
	return counts
}

// buildDistanceTable runs a breadth-first scan from the goal coordinate.
// Each level is a backward scan: an unreached coordinate joins level d+1
// when some move leads it to a coordinate at level d. Workers own disjoint
// ranges of the table and each level runs in two phases, a read-only scan
// that collects candidates and a write phase, so no worker ever reads an
// entry another one is writing.
func buildDistanceTable(name string, size, goal int, moves []Move, next func(int, Move) int) *DistanceTable {
	dist := make([]uint8, size)
	for i := range dist {
		dist[i] = unreachedDist
	}
	dist[goal] = 0

	workers := runtime.GOMAXPROCS(0)
	if workers > size/1024+1 {
		workers = size/1024 + 1
	}
	chunk := (size + workers - 1) / workers
	pending := make([][]int32, workers)

	filled := 1
	for d := uint8(0); filled < size; d++ {
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > size {
				hi = size
			}
			wg.Add(1)
			go func(w, lo, hi int) {
				defer wg.Done()
				found := pending[w][:0]
				for i := lo; i < hi; i++ {
					if dist[i] != unreachedDist {
						continue
					}
					for _, m := range moves {
						if dist[next(i, m)] == d {
							found = append(found, int32(i))
							break
						}
					}
				}
				pending[w] = found
			}(w, lo, hi)
		}
		wg.Wait()

		grew := 0
		wg = sync.WaitGroup{}
		for w := 0; w < workers; w++ {
			grew += len(pending[w])
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for _, i := range pending[w] {
					dist[i] = d + 1
				}
			}(w)
		}
		wg.Wait()
		if grew == 0 {
			break
		}
		filled += grew
	}
	return &DistanceTable{name: name, dist: dist}
}

// PruningTables bundle the distance tables the two search phases consult.
// Phase 1 tables cover all 18 moves; phase 2 tables cover only the
// subgroup moves, with the slice edges held at home.
type PruningTables struct {
	// Corners is keyed by the joint corner coordinate
	// (perm*CornerOriSize + ori) and covers all moves. Its distance is a
	// lower bound on the full solution length, used to cut phase-1
	// branches that cannot beat the best solution found so far.
	Corners *DistanceTable

	// CornerOriSlice is keyed by cornerOri*SliceLocSize + sliceLoc.
	CornerOriSlice *DistanceTable

	// EdgeOriSlice is keyed by edgeOri*SliceLocSize + sliceLoc.
	EdgeOriSlice *DistanceTable

	// CornerPermSlice is keyed by cornerPerm*SlicePermSize + slicePerm.
	CornerPermSlice *DistanceTable

	// EdgePermSlice is keyed by nonSlicePerm*SlicePermSize + slicePerm.
	EdgePermSlice *DistanceTable
}

func buildCornersTable(mt *MoveTables) *DistanceTable {
	moves := AllMoves().Moves()
	return buildDistanceTable("corners", CornersIndexSize, 0, moves, mt.Corners)
}

// cornersDistribution is the known count of corner states at each distance
// from solved; the built table must reproduce it exactly.
var cornersDistribution = []int{
	1, 18, 243, 2874, 28000, 205416, 1168516, 5402628,
	20776176, 45391616, 15139616, 64736,
}

func validCornersTable(t *DistanceTable) bool {
	counts := t.LevelCounts()
	if len(counts) != len(cornersDistribution) {
		return false
	}
	for i := range counts {
		if counts[i] != cornersDistribution[i] {
			return false
		}
	}
	return true
}

func buildCornerOriSliceTable(mt *MoveTables) *DistanceTable {
	moves := AllMoves().Moves()
	next := func(i int, m Move) int {
		return mt.CornerOri(i/SliceLocSize, m)*SliceLocSize + mt.SliceLoc(i%SliceLocSize, m)
	}
	return buildDistanceTable("corner-ori-slice", CornerOriSize*SliceLocSize, HomeSliceLoc, moves, next)
}

func buildEdgeOriSliceTable(mt *MoveTables) *DistanceTable {
	moves := AllMoves().Moves()
	next := func(i int, m Move) int {
		return mt.EdgeOri(i/SliceLocSize, m)*SliceLocSize + mt.SliceLoc(i%SliceLocSize, m)
	}
	return buildDistanceTable("edge-ori-slice", EdgeOriSize*SliceLocSize, HomeSliceLoc, moves, next)
}

func buildCornerPermSliceTable(mt *MoveTables) *DistanceTable {
	moves := SubgroupMoves().Moves()
	next := func(i int, m Move) int {
		return mt.CornerPerm(i/SlicePermSize, m)*SlicePermSize + mt.SlicePerm(i%SlicePermSize, m)
	}
	return buildDistanceTable("corner-perm-slice", CornerPermSize*SlicePermSize, 0, moves, next)
}

func buildEdgePermSliceTable(mt *MoveTables) *DistanceTable {
	moves := SubgroupMoves().Moves()
	next := func(i int, m Move) int {
		return mt.NonSlicePerm(i/SlicePermSize, m)*SlicePermSize + mt.SlicePerm(i%SlicePermSize, m)
	}
	return buildDistanceTable("edge-perm-slice", EdgePermSize*SlicePermSize, 0, moves, next)
}
